package roles

import (
	"time"

	"github.com/rs/zerolog"
)

type Service struct {
	apps ApplicationRepo
	pub  EventPublisher
	now  func() time.Time
	lg   zerolog.Logger
}

func NewService(apps ApplicationRepo, pub EventPublisher, lg zerolog.Logger, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{apps: apps, pub: pub, now: now, lg: lg}
}
