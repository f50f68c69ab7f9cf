package handler

import (
	"net/http"
	"strconv"

	"github.com/practicum/shareit/gateway/internal/model"
	md "github.com/practicum/shareit/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func (h *Handler) CreateUser(c echo.Context) error {
	var req model.CreateUserRequest
	if err := bindValidate(c, &req); err != nil {
		return err
	}
	return h.forward(c)
}

func (h *Handler) UpdateUser(c echo.Context) error {
	if _, err := pathID(c); err != nil {
		return err
	}
	var req model.UpdateUserRequest
	if err := bindValidate(c, &req); err != nil {
		return err
	}
	return h.forward(c)
}

func (h *Handler) CreateItem(c echo.Context) error {
	if _, err := md.UserID(c); err != nil {
		return err
	}
	var req model.CreateItemRequest
	if err := bindValidate(c, &req); err != nil {
		return err
	}
	return h.forward(c)
}

func (h *Handler) UpdateItem(c echo.Context) error {
	if _, err := md.UserID(c); err != nil {
		return err
	}
	if _, err := pathID(c); err != nil {
		return err
	}
	var req model.UpdateItemRequest
	if err := bindValidate(c, &req); err != nil {
		return err
	}
	return h.forward(c)
}

func (h *Handler) CreateComment(c echo.Context) error {
	if _, err := md.UserID(c); err != nil {
		return err
	}
	if _, err := pathID(c); err != nil {
		return err
	}
	var req model.CreateCommentRequest
	if err := bindValidate(c, &req); err != nil {
		return err
	}
	return h.forward(c)
}

func (h *Handler) CreateItemRequest(c echo.Context) error {
	if _, err := md.UserID(c); err != nil {
		return err
	}
	var req model.CreateItemRequestRequest
	if err := bindValidate(c, &req); err != nil {
		return err
	}
	return h.forward(c)
}

func (h *Handler) CreateBooking(c echo.Context) error {
	if _, err := md.UserID(c); err != nil {
		return err
	}
	var req model.CreateBookingRequest
	if err := bindValidate(c, &req); err != nil {
		return err
	}
	return h.forward(c)
}

func (h *Handler) SetBookingStatus(c echo.Context) error {
	if _, err := md.UserID(c); err != nil {
		return err
	}
	if _, err := pathID(c); err != nil {
		return err
	}
	if _, err := strconv.ParseBool(c.QueryParam("approved")); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "approved is invalid")
	}
	return h.forward(c)
}
