package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/practicum/shareit/pkg/circuit_breaker"
	"github.com/practicum/shareit/pkg/metrics"
	md "github.com/practicum/shareit/pkg/middleware"
	"github.com/practicum/shareit/pkg/validate"
	_ "github.com/practicum/shareit/swagger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// Handler validates request shape and identity, then forwards to the server
// tier. Business rules live behind the forward.
type Handler struct {
	svc ShareItService
	log *zap.Logger
}

func New(svc ShareItService, log *zap.Logger) *Handler {
	return &Handler{
		svc: svc,
		log: log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/users", h.CreateUser)
	api.GET("/users", h.Forward)
	api.GET("/users/:id", h.ForwardByID)
	api.PATCH("/users/:id", h.UpdateUser)
	api.DELETE("/users/:id", h.ForwardByID)

	api.POST("/items", h.CreateItem)
	api.GET("/items", h.ForwardAs)
	api.GET("/items/search", h.Forward)
	api.GET("/items/:id", h.ForwardByIDAs)
	api.PATCH("/items/:id", h.UpdateItem)
	api.DELETE("/items/:id", h.ForwardByID)
	api.POST("/items/:id/comment", h.CreateComment)

	api.POST("/requests", h.CreateItemRequest)
	api.GET("/requests", h.ForwardAs)
	api.GET("/requests/all", h.ForwardAs)
	api.GET("/requests/:id", h.ForwardByIDAs)

	api.POST("/bookings", h.CreateBooking)
	api.GET("/bookings", h.ForwardAs)
	api.GET("/bookings/owner", h.ForwardAs)
	api.GET("/bookings/:id", h.ForwardByIDAs)
	api.PATCH("/bookings/:id", h.SetBookingStatus)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// Forward passes the request through untouched.
func (h *Handler) Forward(c echo.Context) error {
	return h.forward(c)
}

// ForwardAs requires the sharer identity header first.
func (h *Handler) ForwardAs(c echo.Context) error {
	if _, err := md.UserID(c); err != nil {
		return err
	}
	return h.forward(c)
}

func (h *Handler) ForwardByID(c echo.Context) error {
	if _, err := pathID(c); err != nil {
		return err
	}
	return h.forward(c)
}

func (h *Handler) ForwardByIDAs(c echo.Context) error {
	if _, err := md.UserID(c); err != nil {
		return err
	}
	if _, err := pathID(c); err != nil {
		return err
	}
	return h.forward(c)
}

func (h *Handler) forward(c echo.Context) error {
	metrics.IncHTTP(c.Request().Method, c.Path())

	var (
		data   []byte
		status int
	)
	if err := h.svc.CB().Call(func() error {
		var err error
		data, status, err = h.svc.Forward(c)
		return err
	}); err != nil {
		metrics.IncProxyFailure()
		h.log.Warn("forward", zap.Error(err))
		if errors.Is(err, circuit_breaker.ErrOpen) {
			return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSONBlob(status, data)
}

// bindValidate checks the body against v and puts it back for forwarding.
func bindValidate(c echo.Context, v interface{}) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := json.Unmarshal(body, v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(v); err != nil {
		return err
	}
	c.Request().Body = io.NopCloser(bytes.NewReader(body))
	return nil
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id is invalid")
	}
	return id, nil
}
