package events

import (
	"time"

	"github.com/rs/zerolog"
)

type Service struct {
	repo EventRepo
	pub  EventPublisher
	now  func() time.Time
	lg   zerolog.Logger
}

func NewService(repo EventRepo, pub EventPublisher, lg zerolog.Logger, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{repo: repo, pub: pub, now: now, lg: lg}
}
