package api

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"AgendorBridge/internal/config"
	"AgendorBridge/internal/http-server/handlers/contact"
	"AgendorBridge/internal/http-server/handlers/deal"
	"AgendorBridge/internal/http-server/handlers/errors"
	"AgendorBridge/internal/http-server/handlers/health"
	"AgendorBridge/internal/http-server/middleware/authenticate"
	"AgendorBridge/internal/lib/sl"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	log        *slog.Logger
}

type Handler interface {
	authenticate.Authenticate
	contact.Core
	deal.Core
	health.Core
}

// NewRouter wires every route of the service.
func NewRouter(conf *config.Config, log *slog.Logger, handler Handler) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	if conf.Listen.Timeout > 0 {
		router.Use(middleware.Timeout(conf.Listen.Timeout))
	}
	router.Use(middleware.Compress(5, "application/json"))
	router.Use(render.SetContentType(render.ContentTypeJSON))

	router.NotFound(errors.NotFound(log))
	router.MethodNotAllowed(errors.NotAllowed(log))

	router.Get("/health", health.Check(handler))

	router.Route("/api/agendor", func(r chi.Router) {
		r.Use(authenticate.New(log, handler))

		r.Route("/contact", func(r chi.Router) {
			r.Post("/create", contact.Create(log, handler))
			r.Get("/find/{phone}", contact.Find(log, handler))
			r.Put("/update", contact.Update(log, handler))
		})
		r.Route("/deal", func(r chi.Router) {
			r.Post("/create-deal", deal.Create(log, handler))
			r.Get("/find-deal/{entityType}/{entityId}", deal.Find(log, handler))
			r.Put("/update", deal.Update(log, handler))
			r.Put("/stage", deal.UpdateStage(log, handler))
			r.Put("/status", deal.UpdateStatus(log, handler))
		})
	})

	return router
}

func New(conf *config.Config, log *slog.Logger, handler Handler) error {

	server := Server{
		conf: conf,
		log:  log.With(sl.Module("api.server")),
	}

	httpLog := slog.NewLogLogger(log.Handler(), slog.LevelError)
	server.httpServer = &http.Server{
		Handler:  NewRouter(conf, log, handler),
		ErrorLog: httpLog,
	}

	serverAddress := fmt.Sprintf("%s:%s", conf.Listen.BindIP, conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	server.log.Info("starting api server", slog.String("address", serverAddress))

	return server.httpServer.Serve(listener)
}
