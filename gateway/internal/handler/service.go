package handler

import (
	"github.com/practicum/shareit/gateway/internal/service/shareit"
	"github.com/practicum/shareit/pkg/circuit_breaker"

	"github.com/labstack/echo/v4"
)

var _ ShareItService = (*shareit.Service)(nil)

type ShareItService interface {
	Forward(c echo.Context) ([]byte, int, error)
	CB() circuit_breaker.CircuitBreaker
}
