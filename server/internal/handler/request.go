package handler

import (
	"net/http"

	md "github.com/practicum/shareit/pkg/middleware"
	"github.com/practicum/shareit/server/internal/model"

	"github.com/labstack/echo/v4"
)

func (h *Handler) CreateItemRequest(c echo.Context) error {
	userID, err := md.UserID(c)
	if err != nil {
		return err
	}
	var req model.CreateItemRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	created, err := h.svc.CreateItemRequest(c.Request().Context(), req, userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, created)
}

func (h *Handler) ListOwnItemRequests(c echo.Context) error {
	userID, err := md.UserID(c)
	if err != nil {
		return err
	}
	reqs, err := h.svc.ListOwnItemRequests(c.Request().Context(), userID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, reqs)
}

func (h *Handler) ListItemRequests(c echo.Context) error {
	userID, err := md.UserID(c)
	if err != nil {
		return err
	}
	from, size, err := pageParams(c)
	if err != nil {
		return err
	}

	reqs, err := h.svc.ListItemRequests(c.Request().Context(), userID, from, size)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, reqs)
}

func (h *Handler) GetItemRequest(c echo.Context) error {
	userID, err := md.UserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	req, err := h.svc.GetItemRequest(c.Request().Context(), userID, id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, req)
}
