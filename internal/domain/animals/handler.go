package animals

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"animals-registry/internal/middleware"
	"animals-registry/internal/platform/validation"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/animals", func(ar chi.Router) {
		ar.Post("/", createAnimalHandler(svc))
		ar.Get("/", listAnimalsHandler(svc))
		ar.Get("/{animalID}", getAnimalHandler(svc))
	})
}

type createAnimalRequest struct {
	Name    string `json:"name" validate:"notblank,max=120"`
	Species string `json:"species" validate:"notblank,max=120"`
	Class   string `json:"class" validate:"notblank"` // mammal, bird, fish, ...
	Notes   string `json:"notes" validate:"max=2000"`
}

// Response es la forma JSON de un Animal; la usan también mammals y el
// adapter registry para leer el catálogo de otra instancia.
type Response struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Species   string    `json:"species"`
	Class     Class     `json:"class"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type validationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// createAnimalHandler godoc
// @Summary Registrar animal
// @Description Agrega un animal al catálogo. La clase debe ser una de: mammal, bird, fish, reptile, amphibian, insect. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <api key>`.
// @Tags animals
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param Authorization header string false "Bearer <api key>"
// @Param payload body createAnimalRequest true "Datos del animal"
// @Success 201 {object} Response
// @Failure 400 {object} validationErrorResponse
// @Failure 401 {string} string "unauthorized"
// @Router /animals [post]
func createAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if err := validation.Default().Struct(req); err != nil {
			writeJSON(w, http.StatusBadRequest, validationErrorResponse{
				Error:  "validation failed",
				Fields: validation.Fields(err),
			})
			return
		}
		if _, err := ParseClass(req.Class); err != nil {
			writeJSON(w, http.StatusBadRequest, validationErrorResponse{
				Error:  "validation failed",
				Fields: map[string]string{"class": "must be one of: mammal bird fish reptile amphibian insect"},
			})
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{
			Name:    req.Name,
			Species: req.Species,
			Class:   req.Class,
			Notes:   req.Notes,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, ToResponse(a))
	}
}

// listAnimalsHandler godoc
// @Summary Listar catálogo
// @Description Lista todos los animales en orden de alta.
// @Tags animals
// @Produce json
// @Success 200 {array} Response
// @Router /animals [get]
func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]Response, 0, len(items))
		for _, a := range items {
			out = append(out, ToResponse(a))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getAnimalHandler godoc
// @Summary Obtener animal
// @Tags animals
// @Produce json
// @Param animalID path string true "ID del animal"
// @Success 200 {object} Response
// @Failure 404 {string} string "animal not found"
// @Failure 500 {string} string "internal error"
// @Router /animals/{animalID} [get]
func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput) {
				http.Error(w, "animal not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, ToResponse(a))
	}
}

func ToResponse(a Animal) Response {
	return Response{
		ID:        a.ID,
		Name:      a.Name,
		Species:   a.Species,
		Class:     a.Class,
		Notes:     a.Notes,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// Animal reconstruye el registro sin revalidar la clase: IsMammal decide.
func (r Response) Animal() Animal {
	return Animal{
		ID:        r.ID,
		Name:      r.Name,
		Species:   r.Species,
		Class:     r.Class,
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// writeJSON está duplicado en mammals.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
