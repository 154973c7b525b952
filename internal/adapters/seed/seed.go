package seed

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"animals-registry/internal/domain/animals"

	"sigs.k8s.io/yaml"
)

var (
	ErrEmptyPath = errors.New("seed: empty path")
)

// File es el formato del archivo de seed (YAML o JSON, mismas keys).
//
//	animals:
//	  - name: Horse
//	    species: equus caballus
//	    class: mammal
type File struct {
	Animals []Entry `json:"animals"`
}

type Entry struct {
	Name    string `json:"name"`
	Species string `json:"species"`
	Class   string `json:"class"`
	Notes   string `json:"notes,omitempty"`
}

// Catalog es lo único que el seed necesita del servicio de animals.
type Catalog interface {
	Create(ctx context.Context, in animals.CreateInput) (animals.Animal, error)
	List(ctx context.Context) ([]animals.Animal, error)
}

func Load(path string) (File, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return File{}, ErrEmptyPath
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("seed: read %s: %w", path, err)
	}

	var f File
	if err := yaml.UnmarshalStrict(raw, &f); err != nil {
		return File{}, fmt.Errorf("seed: parse %s: %w", path, err)
	}
	return f, nil
}

// Apply crea en orden las entradas que el catálogo todavía no tiene
// (mismo nombre y especie) y corta en el primer error indicando qué entrada
// falló. Devuelve cuántas creó; aplicar el mismo archivo dos veces no duplica.
func Apply(ctx context.Context, c Catalog, f File) (int, error) {
	existing, err := c.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed: list catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(existing)+len(f.Animals))
	for _, a := range existing {
		seen[entryKey(a.Name, a.Species)] = struct{}{}
	}

	created := 0
	for i, e := range f.Animals {
		key := entryKey(e.Name, e.Species)
		if _, ok := seen[key]; ok {
			continue
		}

		_, err := c.Create(ctx, animals.CreateInput{
			Name:    e.Name,
			Species: e.Species,
			Class:   e.Class,
			Notes:   e.Notes,
		})
		if err != nil {
			return created, fmt.Errorf("seed: entry %d (%q): %w", i, e.Name, err)
		}
		seen[key] = struct{}{}
		created++
	}
	return created, nil
}

// entryKey compara nombre y especie sin espacios ni mayúsculas.
func entryKey(name, species string) string {
	return strings.ToLower(strings.TrimSpace(name)) + "\x00" + strings.ToLower(strings.TrimSpace(species))
}

// LoadAndApply junta ambos pasos; es lo que usa main.
func LoadAndApply(ctx context.Context, c Catalog, path string) (int, error) {
	f, err := Load(path)
	if err != nil {
		return 0, err
	}
	return Apply(ctx, c, f)
}
