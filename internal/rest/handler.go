package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pitchmate/meetslots/pkg/display"
	"github.com/pitchmate/meetslots/pkg/memstore"
	"github.com/pitchmate/meetslots/pkg/models"
)

type App interface {
	AddSlot(ctx context.Context, date, timeOfDay string) (models.AvailabilitySlot, error)
	RemoveSlot(ctx context.Context, id int)
	Slots(ctx context.Context) []models.AvailabilitySlot
	SubmitRequest(ctx context.Context, from, date, timeOfDay string) (models.MeetingRequest, error)
	Requests(ctx context.Context) []models.MeetingRequest
	Decide(ctx context.Context, id int, decision models.Decision) (models.MeetingRequest, error)
	Meetings(ctx context.Context) []models.Meeting
	AddEvent(ctx context.Context, title, start string, allDay bool, kind models.Kind) (models.Event, error)
	EditEvent(ctx context.Context, id int, patch models.EventPatch)
	DeleteEvent(ctx context.Context, id int)
	Events(ctx context.Context) []models.Event
	Schedule(ctx context.Context) models.Snapshot
	Calendar(ctx context.Context) []display.Event
	CalendarICS(ctx context.Context) (string, error)
}

type SlotRequest struct {
	Date string `json:"date" validate:"required"`
	Time string `json:"time" validate:"required"`
}

type SubmitRequest struct {
	From string `json:"from" validate:"required"`
	Date string `json:"date" validate:"required"`
	Time string `json:"time" validate:"required"`
}

type DecisionRequest struct {
	Decision models.Decision `json:"decision" validate:"required,oneof=accepted declined"`
}

type EventRequest struct {
	Title  string      `json:"title" validate:"required"`
	Start  string      `json:"start" validate:"required"`
	AllDay bool        `json:"allDay"`
	Kind   models.Kind `json:"kind" validate:"required,oneof=availability meeting"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) versionHandler(w http.ResponseWriter, _ *http.Request) {
	_, err := fmt.Fprintf(w, "%s\n", s.version)
	if err != nil {
		s.log.Warnf("err during writing to connection: %v", err)
	}
}

func (s *Server) getScheduleHandler(w http.ResponseWriter, r *http.Request) {
	s.writeResponse(w, http.StatusOK, s.app.Schedule(r.Context()))
}

func (s *Server) getCalendarHandler(w http.ResponseWriter, r *http.Request) {
	s.writeResponse(w, http.StatusOK, s.app.Calendar(r.Context()))
}

func (s *Server) getCalendarICSHandler(w http.ResponseWriter, r *http.Request) {
	out, err := s.app.CalendarICS(r.Context())
	if err != nil {
		s.log.Warnf("err during exporting calendar: %v", err)
		s.writeResponse(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "text/calendar")
	if _, err = w.Write([]byte(out)); err != nil {
		s.log.Warnf("err during writing to connection: %v", err)
	}
}

func (s *Server) getSlotsHandler(w http.ResponseWriter, r *http.Request) {
	s.writeResponse(w, http.StatusOK, s.app.Slots(r.Context()))
}

func (s *Server) addSlotHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req SlotRequest
	if !s.decode(w, r, &req) {
		return
	}
	slot, err := s.app.AddSlot(ctx, req.Date, req.Time)
	switch {
	case errors.Is(err, memstore.ErrValidation):
		s.writeResponse(w, http.StatusBadRequest, err)
		return
	case err != nil:
		s.log.Warnf("err during adding slot: %v", err)
		s.writeResponse(w, http.StatusInternalServerError, err)
		return
	}
	s.writeResponse(w, http.StatusCreated, slot)
}

func (s *Server) removeSlotHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		s.writeResponse(w, http.StatusBadRequest, err)
		return
	}
	// removal is lenient: unknown ids are already gone
	s.app.RemoveSlot(ctx, id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) getRequestsHandler(w http.ResponseWriter, r *http.Request) {
	s.writeResponse(w, http.StatusOK, s.app.Requests(r.Context()))
}

func (s *Server) submitRequestHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req SubmitRequest
	if !s.decode(w, r, &req) {
		return
	}
	created, err := s.app.SubmitRequest(ctx, req.From, req.Date, req.Time)
	switch {
	case errors.Is(err, memstore.ErrValidation):
		s.writeResponse(w, http.StatusBadRequest, err)
		return
	case err != nil:
		s.log.Warnf("err during submitting request: %v", err)
		s.writeResponse(w, http.StatusInternalServerError, err)
		return
	}
	s.writeResponse(w, http.StatusCreated, created)
}

func (s *Server) decideHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		s.writeResponse(w, http.StatusBadRequest, err)
		return
	}
	var req DecisionRequest
	if !s.decode(w, r, &req) {
		return
	}
	updated, err := s.app.Decide(ctx, id, req.Decision)
	switch {
	case errors.Is(err, memstore.ErrValidation):
		s.writeResponse(w, http.StatusBadRequest, err)
		return
	case errors.Is(err, memstore.ErrRequestNotFound):
		s.writeResponse(w, http.StatusNotFound, err)
		return
	case err != nil:
		s.log.Warnf("err during deciding request: %v", err)
		s.writeResponse(w, http.StatusInternalServerError, err)
		return
	}
	s.writeResponse(w, http.StatusOK, updated)
}

func (s *Server) getMeetingsHandler(w http.ResponseWriter, r *http.Request) {
	s.writeResponse(w, http.StatusOK, s.app.Meetings(r.Context()))
}

func (s *Server) getEventsHandler(w http.ResponseWriter, r *http.Request) {
	s.writeResponse(w, http.StatusOK, s.app.Events(r.Context()))
}

func (s *Server) addEventHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req EventRequest
	if !s.decode(w, r, &req) {
		return
	}
	event, err := s.app.AddEvent(ctx, req.Title, req.Start, req.AllDay, req.Kind)
	switch {
	case errors.Is(err, memstore.ErrValidation):
		s.writeResponse(w, http.StatusBadRequest, err)
		return
	case err != nil:
		s.log.Warnf("err during adding event: %v", err)
		s.writeResponse(w, http.StatusInternalServerError, err)
		return
	}
	s.writeResponse(w, http.StatusCreated, event)
}

func (s *Server) editEventHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		s.writeResponse(w, http.StatusBadRequest, err)
		return
	}
	var patch models.EventPatch
	if err = json.NewDecoder(r.Body).Decode(&patch); err != nil {
		s.writeResponse(w, http.StatusBadRequest, err)
		return
	}
	s.app.EditEvent(ctx, id, patch)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) deleteEventHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		s.writeResponse(w, http.StatusBadRequest, err)
		return
	}
	s.app.DeleteEvent(ctx, id)
	w.WriteHeader(http.StatusNoContent)
}

// decode unmarshals and validates a command body, answering 400 itself
// when the body is malformed or incomplete.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeResponse(w, http.StatusBadRequest, err)
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		s.writeResponse(w, http.StatusBadRequest, err)
		return false
	}
	return true
}

func (s *Server) writeResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if x, ok := data.(error); ok {
		if err := json.NewEncoder(w).Encode(ErrorResponse{Error: x.Error()}); err != nil {
			s.log.Warnf("err during encoding error: %v", err)
		}
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Warnf("err during encoding responce: %v", err)
	}
}
