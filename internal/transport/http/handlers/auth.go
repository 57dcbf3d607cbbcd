package http_handlers

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/sparcom/backend/internal/application/auth"
	"github.com/sparcom/backend/internal/infrastructure/security"
	"github.com/sparcom/backend/internal/logger"
	"github.com/sparcom/backend/internal/metrics"
	"github.com/sparcom/backend/internal/transport/http/dto"
	"github.com/sparcom/backend/internal/transport/http/middleware"
	"github.com/sparcom/backend/internal/transport/http/response"
)

type AuthHandler struct {
	svc           *auth.Service
	sessionTTL    time.Duration
	secureCookies bool
	lg            zerolog.Logger
}

func NewAuthHandler(svc *auth.Service, sessionTTL time.Duration, secureCookies bool, lg zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		svc:           svc,
		sessionTTL:    sessionTTL,
		secureCookies: secureCookies,
		lg:            lg,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Register(r.Context(), auth.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
		Phone:     req.Phone,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	ctxLog := logger.WithCtx(r.Context(), h.lg)
	ctxLog.Info().
		Str("user_id", res.UserID).
		Str("username", res.Username).
		Msg("user_registered")
	metrics.RecordRegistration()

	response.Created(w, dto.RegisterResponse{
		UserID:   res.UserID,
		Username: res.Username,
		Role:     res.Role,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		metrics.RecordLoginFailed()
		response.WriteError(w, r, err)
		return
	}

	ctxLog := logger.WithCtx(r.Context(), h.lg)
	ctxLog.Info().
		Str("user_id", res.Account.User.ID).
		Msg("user_logged_in")
	metrics.RecordLogin()

	security.SetSessionCookie(w, res.Token, h.sessionTTL, h.secureCookies)

	response.OK(w, dto.LoginResponse{
		Token: res.Token,
		User:  dto.ToUserView(res.Account),
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := middleware.BearerToken(r)

	if err := h.svc.Logout(r.Context(), token); err != nil {
		response.WriteError(w, r, err)
		return
	}

	security.ClearSessionCookie(w, h.secureCookies)
	response.OK(w, map[string]string{"status": "logged_out"})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	acc, ok := middleware.AccountFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, errNoAccount())
		return
	}
	response.OK(w, dto.ToMeResponse(acc))
}
