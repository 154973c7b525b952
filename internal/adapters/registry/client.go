package registry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"animals-registry/internal/domain/animals"
	"animals-registry/internal/platform/httpclient"
)

var (
	ErrNotConfigured = errors.New("registry source not configured")
)

const animalsPath = "/animals"

// Source lee el catálogo de otra instancia de animals-registry por HTTP.
// Implementa mammals.Database[animals.Animal]: una llamada GET por Animals().
type Source struct {
	http *httpclient.Client
}

func NewSource(baseURL string, timeout time.Duration) (*Source, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, ErrNotConfigured
	}
	c, err := httpclient.NewWithBaseURL(baseURL, timeout)
	if err != nil {
		return nil, err
	}
	return &Source{http: c}, nil
}

// Animals devuelve los registros en el orden en que los entrega el remoto.
// Los errores del remoto (incluido *httpclient.HTTPError) vuelven sin tocar.
func (s *Source) Animals(ctx context.Context) ([]animals.Animal, error) {
	if s == nil || s.http == nil {
		return nil, ErrNotConfigured
	}

	var payload []animals.Response
	if err := s.http.GetJSON(ctx, animalsPath, &payload); err != nil {
		return nil, err
	}

	out := make([]animals.Animal, 0, len(payload))
	for _, r := range payload {
		out = append(out, r.Animal())
	}
	return out, nil
}

func (s *Source) String() string {
	if s == nil || s.http == nil {
		return "registry(<nil>)"
	}
	return fmt.Sprintf("registry(%s)", s.http.BaseURL)
}
