package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/worktrace/worktrace-backend-go/internal/config"
	"github.com/worktrace/worktrace-backend-go/internal/handler/http/middleware"
	"github.com/worktrace/worktrace-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	workLogHandler WorkLogHandler,
	statsHandler StatsHandler,
	reportHandler ReportHandler,
	holidayHandler HolidayHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "worktrace-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// Local blob storage serves uploads straight off disk.
	if cfg.Storage.Type == "local" {
		r.Handle("/uploads/*", http.StripPrefix("/uploads/",
			http.FileServer(http.Dir(cfg.Storage.BasePath))))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)

		// Requires a live session
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.SessionRequired(jwtService))

			r.Post("/auth/logout", authHandler.Logout)

			r.Route("/work-updates", func(r chi.Router) {
				r.Get("/", workLogHandler.List)
				r.Put("/{key}", workLogHandler.Upsert)
				r.Get("/{key}/images", workLogHandler.ListImages)
				r.Post("/{key}/images", workLogHandler.AddImage)
			})
			r.Delete("/images/{id}", workLogHandler.RemoveImage)

			r.Route("/stats", func(r chi.Router) {
				r.Get("/", statsHandler.Stats)
				r.Get("/summary", statsHandler.MonthlySummary)
				r.Get("/heatmap", statsHandler.Heatmap)
			})

			r.Get("/reports/work-updates", reportHandler.ExportWorkUpdates)
			r.Get("/holidays", holidayHandler.ListYear)
		})
	})
	return r
}
