package dto

import (
	"strings"
	"time"

	"github.com/sparcom/backend/internal/domain"
)

type ApplyRoleRequest struct {
	RequestedRole string `json:"requested_role"`
	Motivation    string `json:"motivation"`
	PortfolioURL  string `json:"portfolio_url,omitempty"`
}

func (r *ApplyRoleRequest) Validate() error {
	r.RequestedRole = strings.TrimSpace(r.RequestedRole)
	if r.RequestedRole == "" {
		return domain.ErrMissingField("requested_role")
	}
	if !domain.IsApplicableRole(r.RequestedRole) {
		return domain.ErrInvalidField("requested_role", "must be organizer or master")
	}
	if strings.TrimSpace(r.Motivation) == "" {
		return domain.ErrMissingField("motivation")
	}
	return nil
}

type ApplicationView struct {
	ID              string  `json:"id"`
	RequestedRole   string  `json:"requested_role"`
	Motivation      string  `json:"motivation"`
	PortfolioURL    string  `json:"portfolio_url"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"created_at"`
	ReviewedAt      *string `json:"reviewed_at"`
	ReviewerComment *string `json:"reviewer_comment"`
}

type PendingApplicationView struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	RequestedRole string `json:"requested_role"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}

func ToApplicationView(a domain.RoleApplication) ApplicationView {
	v := ApplicationView{
		ID:              a.ID,
		RequestedRole:   a.RequestedRole,
		Motivation:      a.Motivation,
		PortfolioURL:    a.PortfolioURL,
		Status:          string(a.Status),
		CreatedAt:       a.CreatedAt.Format(time.RFC3339),
		ReviewerComment: a.ReviewerComment,
	}
	if a.ReviewedAt != nil {
		s := a.ReviewedAt.Format(time.RFC3339)
		v.ReviewedAt = &s
	}
	return v
}

func ToApplicationViews(list []domain.RoleApplication) []ApplicationView {
	out := make([]ApplicationView, 0, len(list))
	for _, a := range list {
		out = append(out, ToApplicationView(a))
	}
	return out
}

func ToPendingApplicationViews(list []domain.PendingApplication) []PendingApplicationView {
	out := make([]PendingApplicationView, 0, len(list))
	for _, p := range list {
		out = append(out, PendingApplicationView{
			ID:            p.ID,
			UserID:        p.UserID,
			Username:      p.Username,
			Email:         p.Email,
			RequestedRole: p.RequestedRole,
			Status:        string(p.Status),
			CreatedAt:     p.CreatedAt.Format(time.RFC3339),
		})
	}
	return out
}
