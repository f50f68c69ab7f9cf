package service

import (
	"context"

	"github.com/practicum/shareit/pkg/kafka"
	"github.com/practicum/shareit/stats/internal/model"
	"github.com/practicum/shareit/stats/internal/repository"
	"go.uber.org/zap"
)

type Service struct {
	log  *zap.Logger
	repo repository.Repository
}

func NewService(repo repository.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log,
		repo: repo,
	}
}

// GetStats aggregates booking activity per item.
func (s *Service) GetStats(ctx context.Context) (model.StatsInfo, error) {
	return s.repo.GetStats(ctx)
}

// Record is called by the kafka consumer.
func (s *Service) Record(ctx context.Context, event kafka.EventBooking) error {
	return s.repo.Record(ctx, event)
}
