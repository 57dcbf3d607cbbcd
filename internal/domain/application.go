package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// MinMotivationLen is the minimum motivation length, counted in runes after
// trimming surrounding whitespace.
const MinMotivationLen = 50

// RoleApplication is a user's request to be granted organizer or master,
// subject to manual review. At most one pending application per user,
// enforced by a partial unique index.
type RoleApplication struct {
	ID              string
	UserID          string
	RequestedRole   string
	Motivation      string
	PortfolioURL    string
	Status          ApplicationStatus
	CreatedAt       time.Time
	ReviewedAt      *time.Time
	ReviewerComment *string
}

// PendingApplication is a pending row joined with requester identity, the
// shape the review queue returns.
type PendingApplication struct {
	ID            string
	UserID        string
	Username      string
	Email         string
	RequestedRole string
	Status        ApplicationStatus
	CreatedAt     time.Time
}

func NewRoleApplication(userID, requestedRole, motivation, portfolioURL string, now time.Time) (*RoleApplication, error) {
	if !IsApplicableRole(requestedRole) {
		return nil, ErrInvalidField("requested_role", "must be organizer or master")
	}
	motivation = strings.TrimSpace(motivation)
	if len([]rune(motivation)) < MinMotivationLen {
		return nil, ErrMotivationTooShort()
	}

	return &RoleApplication{
		ID:            uuid.NewString(),
		UserID:        userID,
		RequestedRole: requestedRole,
		Motivation:    motivation,
		PortfolioURL:  strings.TrimSpace(portfolioURL),
		Status:        ApplicationPending,
		CreatedAt:     now.UTC(),
	}, nil
}
