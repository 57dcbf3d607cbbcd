package http_handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/sparcom/backend/internal/application/roles"
	"github.com/sparcom/backend/internal/logger"
	"github.com/sparcom/backend/internal/metrics"
	"github.com/sparcom/backend/internal/transport/http/dto"
	"github.com/sparcom/backend/internal/transport/http/middleware"
	"github.com/sparcom/backend/internal/transport/http/response"
)

type RolesHandler struct {
	svc *roles.Service
	lg  zerolog.Logger
}

func NewRolesHandler(svc *roles.Service, lg zerolog.Logger) *RolesHandler {
	return &RolesHandler{svc: svc, lg: lg}
}

// Apply handles POST /roles/applications.
func (h *RolesHandler) Apply(w http.ResponseWriter, r *http.Request) {
	acc, ok := middleware.AccountFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, errNoAccount())
		return
	}

	var req dto.ApplyRoleRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	a, err := h.svc.Apply(r.Context(), acc.User.ID, roles.ApplyInput{
		RequestedRole: req.RequestedRole,
		Motivation:    req.Motivation,
		PortfolioURL:  req.PortfolioURL,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	ctxLog := logger.WithCtx(r.Context(), h.lg)
	ctxLog.Info().
		Str("application_id", a.ID).
		Str("user_id", a.UserID).
		Str("requested_role", a.RequestedRole).
		Msg("role_application_submitted")
	metrics.RecordApplicationSubmitted()

	response.Created(w, dto.ToApplicationView(*a))
}

// My handles GET /roles/applications/my.
func (h *RolesHandler) My(w http.ResponseWriter, r *http.Request) {
	acc, ok := middleware.AccountFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, errNoAccount())
		return
	}

	list, err := h.svc.MyApplications(r.Context(), acc.User.ID)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, map[string]any{"applications": dto.ToApplicationViews(list)})
}

// Pending handles GET /roles/applications. Master-only, gated in the router.
func (h *RolesHandler) Pending(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.PendingApplications(r.Context())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, map[string]any{"applications": dto.ToPendingApplicationViews(list)})
}
