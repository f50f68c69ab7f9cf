package handler

import (
	"context"

	"github.com/practicum/shareit/pkg/kafka"
	"github.com/practicum/shareit/stats/internal/model"
	"github.com/practicum/shareit/stats/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type StatsService interface {
	GetStats(ctx context.Context) (model.StatsInfo, error)
	Record(ctx context.Context, event kafka.EventBooking) error
}

var _ StatsService = (*service.Service)(nil)
