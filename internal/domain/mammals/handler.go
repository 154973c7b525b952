package mammals

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"animals-registry/internal/domain/animals"
	"animals-registry/internal/metrics"
	"animals-registry/internal/middleware"
	"animals-registry/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func RegisterRoutes(r chi.Router, set *Set[animals.Animal], log logger.Logger) {
	if log == nil {
		log = logger.Nop()
	}

	r.Route("/mammals", func(mr chi.Router) {
		mr.Get("/", listMammalsHandler(set))
		mr.Post("/refresh", refreshHandler(set, log))
	})
}

type setResponse struct {
	Count       int                `json:"count"`
	RefreshedAt *time.Time         `json:"refreshed_at,omitempty"`
	Items       []animals.Response `json:"items"`
}

// listMammalsHandler godoc
// @Summary Listar mamíferos
// @Description Devuelve el set de mamíferos tal como quedó en el último refresh exitoso. Vacío si nunca se refrescó.
// @Tags mammals
// @Produce json
// @Success 200 {object} setResponse
// @Router /mammals [get]
func listMammalsHandler(set *Set[animals.Animal]) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, toSetResponse(set))
	}
}

// refreshHandler godoc
// @Summary Refrescar mamíferos
// @Description Consulta la base una vez y reemplaza el set con los mamíferos devueltos. Si falla, el set anterior se mantiene. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <api key>`.
// @Tags mammals
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param Authorization header string false "Bearer <api key>"
// @Success 200 {object} setResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 422 {string} string "animal with unknown class"
// @Failure 502 {string} string "database error"
// @Failure 503 {string} string "database not configured"
// @Router /mammals/refresh [post]
func refreshHandler(set *Set[animals.Animal], log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		l := log.With(map[string]any{
			"request_id": chimw.GetReqID(r.Context()),
			"user_id":    claims.UserID,
		})

		start := time.Now()
		err := set.Refresh(r.Context())
		result := RefreshResult(err)
		if err != nil {
			l.Warn("mammals refresh failed", map[string]any{"err": err, "result": result})
			metrics.RecordRefresh(result, 0)

			switch result {
			case metrics.ResultNoDatabase:
				http.Error(w, "database not configured", http.StatusServiceUnavailable)
			case metrics.ResultUnknownData:
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			default:
				http.Error(w, "database error", http.StatusBadGateway)
			}
			return
		}

		n := set.Len()
		metrics.RecordRefresh(result, n)
		l.Info("mammals refreshed", map[string]any{
			"count":       n,
			"duration_ms": time.Since(start).Milliseconds(),
		})

		writeJSON(w, http.StatusOK, toSetResponse(set))
	}
}

// RefreshResult clasifica el resultado de Refresh con las etiquetas de metrics.
// Lo usan el handler y el refresh inicial de main.
func RefreshResult(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, ErrNoDatabase):
		return metrics.ResultNoDatabase
	case errors.Is(err, animals.ErrUnknownClass):
		return metrics.ResultUnknownData
	default:
		return metrics.ResultError
	}
}

func toSetResponse(set *Set[animals.Animal]) setResponse {
	items := set.Mammals()

	out := setResponse{
		Count: len(items),
		Items: make([]animals.Response, 0, len(items)),
	}
	if at := set.RefreshedAt(); !at.IsZero() {
		out.RefreshedAt = &at
	}
	for _, a := range items {
		out.Items = append(out.Items, animals.ToResponse(a))
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
