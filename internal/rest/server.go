package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	log      *logrus.Entry
	app      App
	address  string
	version  string
	validate *validator.Validate
}

func NewServer(log *logrus.Logger, app App, address, version string) *Server {
	s := Server{
		log:      log.WithField("component", "rest"),
		app:      app,
		address:  address,
		version:  version,
		validate: validator.New(),
	}
	return &s
}

func (s *Server) router() chi.Router {
	r := chi.NewRouter()
	r.Use(s.logRequests)
	r.Get("/version", s.versionHandler)
	r.Handle("/metrics", promhttp.Handler())
	r.Route("/api", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			r.Get("/schedule", s.getScheduleHandler)
			r.Get("/calendar", s.getCalendarHandler)
			r.Get("/calendar.ics", s.getCalendarICSHandler)
			r.Route("/slots", func(r chi.Router) {
				r.Get("/", s.getSlotsHandler)
				r.Post("/", s.addSlotHandler)
				r.Delete("/{id}", s.removeSlotHandler)
			})
			r.Route("/requests", func(r chi.Router) {
				r.Get("/", s.getRequestsHandler)
				r.Post("/", s.submitRequestHandler)
				r.Post("/{id}/decision", s.decideHandler)
			})
			r.Get("/meetings", s.getMeetingsHandler)
			r.Route("/events", func(r chi.Router) {
				r.Get("/", s.getEventsHandler)
				r.Post("/", s.addEventHandler)
				r.Patch("/{id}", s.editEventHandler)
				r.Delete("/{id}", s.deleteEventHandler)
			})
		})
	})
	return r
}

func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    s.address,
		Handler: s.router(),
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.log.Warnf("err during shutdown: %v", err)
		}
	}()
	s.log.Infof("starting server on %s", s.address)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
