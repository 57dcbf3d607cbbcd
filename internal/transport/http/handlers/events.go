package http_handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/sparcom/backend/internal/application/events"
	"github.com/sparcom/backend/internal/logger"
	"github.com/sparcom/backend/internal/metrics"
	"github.com/sparcom/backend/internal/transport/http/dto"
	"github.com/sparcom/backend/internal/transport/http/middleware"
	"github.com/sparcom/backend/internal/transport/http/response"
)

type EventsHandler struct {
	svc *events.Service
	lg  zerolog.Logger
}

func NewEventsHandler(svc *events.Service, lg zerolog.Logger) *EventsHandler {
	return &EventsHandler{svc: svc, lg: lg}
}

// List handles GET /events?status=published|draft|...|all
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.List(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, map[string]any{"events": dto.ToEventViews(list)})
}

// Get handles GET /events/{id}
func (h *EventsHandler) Get(w http.ResponseWriter, r *http.Request) {
	e, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, dto.ToEventView(e))
}

// Create handles POST /events. Role gating is applied in the router.
func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	acc, ok := middleware.AccountFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, errNoAccount())
		return
	}

	var req dto.CreateEventRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	e, err := h.svc.Create(r.Context(), acc.User.ID, events.CreateInput{
		Title:           req.Title,
		Description:     req.Description,
		BathhouseID:     req.BathhouseID,
		EventDate:       req.ParsedDate(),
		DurationHours:   req.DurationHours,
		MaxParticipants: req.MaxParticipants,
		PricePerPerson:  req.PricePerPerson,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	ctxLog := logger.WithCtx(r.Context(), h.lg)
	ctxLog.Info().
		Str("event_id", e.ID).
		Str("organizer_id", e.OrganizerID).
		Msg("event_created")
	metrics.RecordEventCreated()

	response.Created(w, dto.CreateEventResponse{EventID: e.ID})
}
