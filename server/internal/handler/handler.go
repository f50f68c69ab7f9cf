package handler

import (
	"net/http"
	"strconv"

	md "github.com/practicum/shareit/pkg/middleware"
	"github.com/practicum/shareit/pkg/validate"
	"github.com/practicum/shareit/server/internal/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

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

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/users", h.CreateUser)
	api.GET("/users", h.ListUsers)
	api.GET("/users/:id", h.GetUser)
	api.PATCH("/users/:id", h.UpdateUser)
	api.DELETE("/users/:id", h.DeleteUser)

	api.POST("/items", h.CreateItem)
	api.GET("/items", h.ListItems)
	api.GET("/items/search", h.SearchItems)
	api.GET("/items/:id", h.GetItem)
	api.PATCH("/items/:id", h.UpdateItem)
	api.DELETE("/items/:id", h.DeleteItem)
	api.POST("/items/:id/comment", h.CreateComment)

	api.POST("/requests", h.CreateItemRequest)
	api.GET("/requests", h.ListOwnItemRequests)
	api.GET("/requests/all", h.ListItemRequests)
	api.GET("/requests/:id", h.GetItemRequest)

	api.POST("/bookings", h.CreateBooking)
	api.GET("/bookings", h.ListBookingsByRenter)
	api.GET("/bookings/owner", h.ListBookingsByOwner)
	api.GET("/bookings/:id", h.GetBooking)
	api.PATCH("/bookings/:id", h.SetBookingStatus)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps domain sentinels to status codes. Ownership failures arrive
// already folded into ErrNotFound.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "id is invalid")
	}
	return id, nil
}

// pageParams parses from/size with the conventional defaults. Bounds are
// validated in the service so they hold for every caller.
func pageParams(c echo.Context) (int, int, error) {
	from, size := 0, 10
	var err error
	if fromParam := c.QueryParam("from"); fromParam != "" {
		if from, err = strconv.Atoi(fromParam); err != nil {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "from is invalid")
		}
	}
	if sizeParam := c.QueryParam("size"); sizeParam != "" {
		if size, err = strconv.Atoi(sizeParam); err != nil {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "size is invalid")
		}
	}
	return from, size, nil
}
