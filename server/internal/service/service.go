package service

import (
	"time"

	"github.com/practicum/shareit/server/internal/errs"
	"github.com/practicum/shareit/server/internal/repository"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Service struct {
	log    *zap.Logger
	repo   repository.Repository
	events EventPublisher
	now    func() time.Time
}

type Option func(*Service)

// WithClock overrides the time source. Tests pin "now" with it.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(repo repository.Repository, events EventPublisher, log *zap.Logger, ops ...Option) *Service {
	s := &Service{
		log:    log,
		repo:   repo,
		events: events,
		now:    time.Now,
	}
	for _, op := range ops {
		op(s)
	}
	return s
}

func validatePage(from, size int) error {
	if from < 0 || size <= 0 {
		return errors.Wrap(errs.ErrValidation, "invalid search parameters")
	}
	return nil
}
