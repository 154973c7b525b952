package router

import (
	"database/sql"
	"net/http"

	_ "animals-registry/docs"
	mem "animals-registry/internal/adapters/storage/memory"
	pg "animals-registry/internal/adapters/storage/postgres"
	"animals-registry/internal/domain/animals"
	"animals-registry/internal/domain/mammals"
	"animals-registry/internal/metrics"
	"animals-registry/internal/middleware"
	"animals-registry/internal/platform/logger"
	"animals-registry/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres (ya migrado). Si no, in-memory.
	DB *sql.DB

	// Opcional: fuente del set de mamíferos. Si es nil, el propio catálogo.
	Source mammals.Database[animals.Animal]

	Logger logger.Logger
}

// App expone lo que main necesita además del handler (seed, refresh inicial).
type App struct {
	Handler http.Handler
	Animals *animals.Service
	Mammals *mammals.Set[animals.Animal]
}

func NewRouter(opts Options) http.Handler {
	return Build(opts).Handler
}

func Build(opts Options) *App {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	var animalRepo animals.Repository
	if opts.DB != nil {
		animalRepo = pg.NewAnimalsRepo(opts.DB)
	} else {
		animalRepo = mem.NewAnimalRepo()
	}

	animalsSvc := animals.NewService(animalRepo)

	var source mammals.Database[animals.Animal] = animalsSvc
	if opts.Source != nil {
		source = opts.Source
	}
	set := mammals.NewSet(source)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	animals.RegisterRoutes(r, animalsSvc)
	mammals.RegisterRoutes(r, set, log)

	return &App{
		Handler: r,
		Animals: animalsSvc,
		Mammals: set,
	}
}
