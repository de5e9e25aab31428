package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/blogem/table-admin/config"
	"github.com/blogem/table-admin/controllers"
	"github.com/blogem/table-admin/database"
	appmiddleware "github.com/blogem/table-admin/middleware"
	"github.com/blogem/table-admin/repositories"
	"github.com/blogem/table-admin/services"
)

func main() {
	// Load configuration from .env, config.yaml and the environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database; an unreachable store is fatal
	store, err := database.InitializeDatabase(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer store.Close()

	// Initialize repositories
	repos := repositories.NewRepositories(store, cfg.Audit.Table)

	// Initialize services
	srvs := services.NewServices(repos, store, cfg)

	// Initialize controllers
	ctrl := controllers.NewControllers(srvs, cfg.HTTP.MaxBodyBytes)

	// Set up router
	r := setupRouter(ctrl, cfg)

	fmt.Printf("🚀 Table admin API starting on port %d\n", cfg.Port)
	fmt.Printf("📂 Visit: http://localhost:%d/api/tables\n", cfg.Port)
	fmt.Printf("🗃️  Database: %s (%s)\n", store.Identity.Database, store.Identity.Driver)
	fmt.Printf("📝 Audit table: %s\n", cfg.Audit.Table)

	log.Fatal(http.ListenAndServe(cfg.Addr(), r))
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RealIP)
	r.Use(appmiddleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.HTTP.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", appmiddleware.ActorHeader, appmiddleware.RequestIDHeader},
		ExposedHeaders: []string{appmiddleware.RequestIDHeader},
		MaxAge:         300,
	}))
	r.Use(appmiddleware.Actor)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", ctrl.Health.Check)
		r.Get("/tables", ctrl.Table.List)

		r.Route("/table/{name}", func(r chi.Router) {
			r.Get("/", ctrl.Table.Read)
			r.Post("/", ctrl.Table.Create)
			r.Put("/{id}", ctrl.Table.Update)
			r.Delete("/{id}", ctrl.Table.Delete)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message": "route not found"}`)
	})

	return r
}
