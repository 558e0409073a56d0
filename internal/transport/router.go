package transport

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/taskflow/backend/internal/transport/handler"
	transportMiddleware "github.com/taskflow/backend/internal/transport/middleware"
)

func NewRouter(
	userHandler *handler.UserHandler,
	projectHandler *handler.ProjectHandler,
	taskHandler *handler.TaskHandler,
	commentHandler *handler.CommentHandler,
	attachmentHandler *handler.AttachmentHandler,
	statsHandler *handler.StatsHandler,
	healthHandler *handler.HealthHandler,
	log *zap.Logger,
) *chi.Mux {
	router := chi.NewRouter()

	// Recovery goes first so panics in other middleware are caught too
	router.Use(transportMiddleware.Recovery(log))

	// RequestID for request tracing
	router.Use(middleware.RequestID)

	// Structured logging of every request
	router.Use(transportMiddleware.Logging(log))

	// Request execution deadline
	router.Use(transportMiddleware.Timeout(500*time.Millisecond, log))

	// Request counters and latency histograms
	router.Use(transportMiddleware.Metrics)

	router.Handle("/metrics", promhttp.Handler())

	router.Route("/users", func(r chi.Router) {
		r.Post("/register", userHandler.Register)
		r.Get("/get", userHandler.Get)
		r.Post("/setRole", userHandler.SetRole)
		r.Post("/touch", userHandler.Touch)
	})

	router.Route("/projects", func(r chi.Router) {
		r.Post("/create", projectHandler.Create)
		r.Get("/get", projectHandler.Get)
		r.Get("/list", projectHandler.List)
		r.Post("/update", projectHandler.Update)
		r.Post("/delete", projectHandler.Delete)
		r.Post("/addMember", projectHandler.AddMember)
		r.Post("/removeMember", projectHandler.RemoveMember)
	})

	router.Route("/tasks", func(r chi.Router) {
		r.Post("/create", taskHandler.Create)
		r.Get("/get", taskHandler.Get)
		r.Get("/list", taskHandler.List)
		r.Post("/update", taskHandler.Update)
		r.Post("/setStatus", taskHandler.SetStatus)
		r.Post("/assign", taskHandler.Assign)
		r.Post("/delete", taskHandler.Delete)
	})

	router.Route("/comments", func(r chi.Router) {
		r.Post("/add", commentHandler.Add)
		r.Get("/list", commentHandler.List)
		r.Post("/delete", commentHandler.Delete)
	})

	router.Route("/attachments", func(r chi.Router) {
		r.Post("/add", attachmentHandler.Add)
		r.Get("/list", attachmentHandler.List)
		r.Post("/delete", attachmentHandler.Delete)
	})

	router.Get("/stats", statsHandler.GetStats)

	router.Get("/health", healthHandler.HealthCheck)
	return router
}
