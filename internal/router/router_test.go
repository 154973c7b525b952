package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"animals-registry/internal/adapters/auth/apikey"
	"animals-registry/internal/domain/animals"
	"animals-registry/internal/router"
)

type mammalsBody struct {
	Count       int     `json:"count"`
	RefreshedAt *string `json:"refreshed_at"`
	Items       []struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Class string `json:"class"`
	} `json:"items"`
}

func TestHTTP_EndToEnd_RefreshKeepsOnlyMammals(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	userID := "keeper-1"

	// 1) Antes de refrescar el set está vacío
	{
		body := getMammals(t, ts.URL)
		if body.Count != 0 || len(body.Items) != 0 || body.RefreshedAt != nil {
			t.Fatalf("expected empty set before refresh, got %+v", body)
		}
	}

	// 2) Se cargan animales de varias clases
	horseID := createAnimal(t, ts.URL, userID, map[string]any{"name": "Horse", "species": "equus caballus", "class": "mammal"})
	createAnimal(t, ts.URL, userID, map[string]any{"name": "Trout", "species": "salmo trutta", "class": "fish"})
	batID := createAnimal(t, ts.URL, userID, map[string]any{"name": "Bat", "species": "myotis myotis", "class": "Mammal"})

	// 3) Cargar animales no toca el set
	if body := getMammals(t, ts.URL); body.Count != 0 {
		t.Fatalf("expected set untouched until refresh, got %d", body.Count)
	}

	// 4) Refresh
	{
		st, raw := doReq(t, ts.URL, "POST", "/mammals/refresh", userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 refresh, got %d body=%s", st, string(raw))
		}
	}

	// 5) Solo mamíferos, en orden de alta
	{
		body := getMammals(t, ts.URL)
		if body.Count != 2 || len(body.Items) != 2 {
			t.Fatalf("expected 2 mammals, got %+v", body)
		}
		if body.Items[0].ID != horseID || body.Items[1].ID != batID {
			t.Fatalf("unexpected order: %+v", body.Items)
		}
		if body.RefreshedAt == nil {
			t.Fatalf("expected refreshed_at after refresh")
		}
	}

	// 6) El animal se puede leer por id
	{
		st, raw := doReq(t, ts.URL, "GET", "/animals/"+horseID, "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get animal, got %d body=%s", st, string(raw))
		}
	}
}

func TestHTTP_WritesRequireAuth(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, _ := doReq(t, ts.URL, "POST", "/animals", "", map[string]any{"name": "Horse", "species": "x", "class": "mammal"})
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 create without user, got %d", st)
	}

	st, _ = doReq(t, ts.URL, "POST", "/mammals/refresh", "", nil)
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 refresh without user, got %d", st)
	}
}

func TestHTTP_APIKeyMode(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{
		AuthVerifier: apikey.NewVerifier("k1", ""),
	}))
	defer ts.Close()

	// el header de debug no sirve con verifier
	st, _ := doReq(t, ts.URL, "POST", "/mammals/refresh", "dev-user", nil)
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 with debug header in api key mode, got %d", st)
	}

	req, _ := http.NewRequest("POST", ts.URL+"/mammals/refresh", nil)
	req.Header.Set("Authorization", "Bearer k1")
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 with api key, got %d", res.StatusCode)
	}
}

func TestHTTP_CreateAnimal_Validation(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	cases := []map[string]any{
		{"species": "x", "class": "mammal"},
		{"name": "Horse", "class": "mammal"},
		{"name": "Nessie", "species": "x", "class": "legend"},
		{"name": "Nessie", "species": "x"},
	}
	for _, payload := range cases {
		st, raw := doReq(t, ts.URL, "POST", "/animals", "keeper-1", payload)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for %v, got %d body=%s", payload, st, string(raw))
		}
	}

	st, _ := doReq(t, ts.URL, "GET", "/animals/does-not-exist", "", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", st)
	}
}

type flakySource struct {
	mu    sync.Mutex
	items []animals.Animal
	err   error
}

func (s *flakySource) set(items []animals.Animal, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items, s.err = items, err
}

func (s *flakySource) Animals(context.Context) ([]animals.Animal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items, s.err
}

func TestHTTP_RefreshFailures_KeepPreviousSet(t *testing.T) {
	src := &flakySource{}
	src.set([]animals.Animal{
		{ID: "1", Name: "Horse", Class: animals.ClassMammal},
		{ID: "2", Name: "Trout", Class: animals.ClassFish},
	}, nil)
	ts := httptest.NewServer(router.NewRouter(router.Options{Source: src}))
	defer ts.Close()

	if st, raw := doReq(t, ts.URL, "POST", "/mammals/refresh", "keeper-1", nil); st != http.StatusOK {
		t.Fatalf("expected 200 first refresh, got %d body=%s", st, string(raw))
	}

	// base caída => 502 y el set sigue igual
	src.set(nil, errors.New("connection refused"))
	if st, _ := doReq(t, ts.URL, "POST", "/mammals/refresh", "keeper-1", nil); st != http.StatusBadGateway {
		t.Fatalf("expected 502 on database error, got %d", st)
	}
	if body := getMammals(t, ts.URL); body.Count != 1 || body.Items[0].Name != "Horse" {
		t.Fatalf("expected previous set after failure, got %+v", body)
	}

	// clase desconocida => 422 y el set sigue igual
	src.set([]animals.Animal{
		{ID: "3", Name: "Cow", Class: animals.ClassMammal},
		{ID: "4", Name: "Chimera", Class: "myth"},
	}, nil)
	st, raw := doReq(t, ts.URL, "POST", "/mammals/refresh", "keeper-1", nil)
	if st != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 on unknown class, got %d", st)
	}
	if !strings.Contains(string(raw), "unknown animal class") {
		t.Fatalf("expected unknown class message, got %s", string(raw))
	}
	if body := getMammals(t, ts.URL); body.Count != 1 || body.Items[0].Name != "Horse" {
		t.Fatalf("expected previous set after predicate failure, got %+v", body)
	}
}

func TestHTTP_Health_Metrics_Swagger(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	if st, raw := doReq(t, ts.URL, "GET", "/health", "", nil); st != http.StatusOK || string(raw) != "ok" {
		t.Fatalf("expected 200 ok on health, got %d %s", st, string(raw))
	}

	// genera al menos una serie http antes de leer /metrics
	_, _ = doReq(t, ts.URL, "GET", "/mammals", "", nil)

	st, raw := doReq(t, ts.URL, "GET", "/metrics", "", nil)
	if st != http.StatusOK || !strings.Contains(string(raw), "animals_registry_http_requests_total") {
		t.Fatalf("expected prometheus metrics, got %d", st)
	}

	st, raw = doReq(t, ts.URL, "GET", "/swagger/doc.json", "", nil)
	if st != http.StatusOK || !strings.Contains(string(raw), "/mammals/refresh") {
		t.Fatalf("expected swagger doc, got %d body=%s", st, string(raw))
	}
}

func TestBuild_ExposesServices(t *testing.T) {
	app := router.Build(router.Options{})

	_, err := app.Animals.Create(context.Background(), animals.CreateInput{Name: "Horse", Species: "equus caballus", Class: "mammal"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := app.Mammals.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if app.Mammals.Len() != 1 {
		t.Fatalf("expected 1 mammal, got %d", app.Mammals.Len())
	}

	body := getMammalsFrom(t, app.Handler)
	if body.Count != 1 {
		t.Fatalf("expected handler to share the set, got %d", body.Count)
	}
}

func createAnimal(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/animals", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create animal, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create animal: missing id body=%s", string(body))
	}
	return resp.ID
}

func getMammals(t *testing.T, baseURL string) mammalsBody {
	t.Helper()

	st, raw := doReq(t, baseURL, "GET", "/mammals", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list mammals, got %d body=%s", st, string(raw))
	}
	var body mammalsBody
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("decode mammals: %v", err)
	}
	return body
}

func getMammalsFrom(t *testing.T, h http.Handler) mammalsBody {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/mammals", nil))

	var body mammalsBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode mammals: %v", err)
	}
	return body
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
