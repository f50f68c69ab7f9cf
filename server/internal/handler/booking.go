package handler

import (
	"context"
	"net/http"
	"strconv"

	md "github.com/practicum/shareit/pkg/middleware"
	"github.com/practicum/shareit/server/internal/errs"
	"github.com/practicum/shareit/server/internal/model"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func (h *Handler) CreateBooking(c echo.Context) error {
	userID, err := md.UserID(c)
	if err != nil {
		return err
	}
	var req model.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	booking, err := h.svc.CreateBooking(c.Request().Context(), req, userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *Handler) SetBookingStatus(c echo.Context) error {
	userID, err := md.UserID(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c)
	if err != nil {
		return err
	}
	approved, err := strconv.ParseBool(c.QueryParam("approved"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "approved is invalid")
	}

	booking, err := h.svc.SetBookingStatus(c.Request().Context(), bookingID, userID, approved)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *Handler) GetBooking(c echo.Context) error {
	userID, err := md.UserID(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c)
	if err != nil {
		return err
	}

	booking, err := h.svc.GetBooking(c.Request().Context(), bookingID, userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *Handler) ListBookingsByRenter(c echo.Context) error {
	return h.listBookings(c, h.svc.ListBookingsByRenter)
}

func (h *Handler) ListBookingsByOwner(c echo.Context) error {
	return h.listBookings(c, h.svc.ListBookingsByOwner)
}

func (h *Handler) listBookings(c echo.Context, list func(ctx context.Context, subjectID int64, state model.BookingState, from, size int) ([]model.Booking, error)) error {
	userID, err := md.UserID(c)
	if err != nil {
		return err
	}
	state := model.StateAll
	if stateParam := c.QueryParam("state"); stateParam != "" {
		if state, err = model.ParseBookingState(stateParam); err != nil {
			return httpError(errors.Wrap(errs.ErrValidation, "unknown state"))
		}
	}
	from, size, err := pageParams(c)
	if err != nil {
		return err
	}

	bookings, err := list(c.Request().Context(), userID, state, from, size)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, bookings)
}
