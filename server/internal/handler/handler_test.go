package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	md "github.com/practicum/shareit/pkg/middleware"
	"github.com/practicum/shareit/pkg/validate"
	"github.com/practicum/shareit/server/internal/errs"
	"github.com/practicum/shareit/server/internal/handler"
	service_mocks "github.com/practicum/shareit/server/internal/handler/mocks"
	"github.com/practicum/shareit/server/internal/model"
)

var (
	bookingStart = time.Date(2025, 2, 1, 1, 1, 1, 0, time.UTC)
	bookingEnd   = time.Date(2025, 3, 1, 1, 1, 1, 0, time.UTC)
)

func TestHandler_CreateBooking(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockShareItService)

	var tests = []struct {
		name         string
		userID       string
		body         string
		mockBehavior mockBehavior
		expectedCode int
		expectedBody string
	}{
		{
			name:   "ok",
			userID: "1",
			body:   `{"itemId":10,"start":"2025-02-01T01:01:01Z","end":"2025-03-01T01:01:01Z"}`,
			mockBehavior: func(r *service_mocks.MockShareItService) {
				r.EXPECT().
					CreateBooking(gomock.Any(), model.CreateBookingRequest{
						ItemID: 10,
						Start:  bookingStart,
						End:    bookingEnd,
					}, int64(1)).
					Return(model.Booking{
						ID:       100,
						Start:    bookingStart,
						End:      bookingEnd,
						ItemID:   10,
						BookerID: 1,
						Status:   model.StatusWaiting,
						ItemName: "drill",
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":100,"start":"2025-02-01T01:01:01Z","end":"2025-03-01T01:01:01Z","itemId":10,"bookerId":1,"status":"WAITING","itemName":"drill"}`,
		},
		{
			name:         "err. missing identity header",
			userID:       "",
			body:         `{"itemId":10,"start":"2025-02-01T01:01:01Z","end":"2025-03-01T01:01:01Z"}`,
			mockBehavior: func(r *service_mocks.MockShareItService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"X-Sharer-User-Id header is required"}`,
		},
		{
			name:   "err. booking in the past",
			userID: "1",
			body:   `{"itemId":10,"start":"2025-02-01T01:01:01Z","end":"2025-03-01T01:01:01Z"}`,
			mockBehavior: func(r *service_mocks.MockShareItService) {
				r.EXPECT().
					CreateBooking(gomock.Any(), gomock.Any(), int64(1)).
					Return(model.Booking{}, errors.Wrap(errs.ErrValidation, "booking in the past"))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"booking in the past: validation failed"}`,
		},
		{
			name:   "err. item not found",
			userID: "1",
			body:   `{"itemId":10,"start":"2025-02-01T01:01:01Z","end":"2025-03-01T01:01:01Z"}`,
			mockBehavior: func(r *service_mocks.MockShareItService) {
				r.EXPECT().
					CreateBooking(gomock.Any(), gomock.Any(), int64(1)).
					Return(model.Booking{}, errors.Wrap(errs.ErrNotFound, "item"))
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"item: not found"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockShareItService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/bookings", h.CreateBooking)

			r := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if tt.userID != "" {
				r.Header.Set(md.XSharerUserID, tt.userID)
			}
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_SetBookingStatus(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockShareItService)

	var tests = []struct {
		name         string
		target       string
		mockBehavior mockBehavior
		expectedCode int
		expectedBody string
	}{
		{
			name:   "approve",
			target: "/bookings/100?approved=true",
			mockBehavior: func(r *service_mocks.MockShareItService) {
				r.EXPECT().
					SetBookingStatus(gomock.Any(), int64(100), int64(2), true).
					Return(model.Booking{
						ID:       100,
						Start:    bookingStart,
						End:      bookingEnd,
						ItemID:   10,
						BookerID: 1,
						Status:   model.StatusApproved,
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":100,"start":"2025-02-01T01:01:01Z","end":"2025-03-01T01:01:01Z","itemId":10,"bookerId":1,"status":"APPROVED"}`,
		},
		{
			name:         "err. approved not a bool",
			target:       "/bookings/100?approved=yep",
			mockBehavior: func(r *service_mocks.MockShareItService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"approved is invalid"}`,
		},
		{
			name:   "err. already resolved",
			target: "/bookings/100?approved=false",
			mockBehavior: func(r *service_mocks.MockShareItService) {
				r.EXPECT().
					SetBookingStatus(gomock.Any(), int64(100), int64(2), false).
					Return(model.Booking{}, errors.Wrapf(errs.ErrValidation, "status already '%s'", model.StatusApproved))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"status already 'APPROVED': validation failed"}`,
		},
		{
			name:         "err. bad id",
			target:       "/bookings/abc?approved=true",
			mockBehavior: func(r *service_mocks.MockShareItService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"id is invalid"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockShareItService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.PATCH("/bookings/:id", h.SetBookingStatus)

			r := httptest.NewRequest(http.MethodPatch, tt.target, http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			r.Header.Set(md.XSharerUserID, "2")
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_ListBookingsByRenter(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockShareItService)

	var tests = []struct {
		name         string
		target       string
		mockBehavior mockBehavior
		expectedCode int
		expectedBody string
	}{
		{
			name:   "state defaults to ALL, page to 0/10",
			target: "/bookings",
			mockBehavior: func(r *service_mocks.MockShareItService) {
				r.EXPECT().
					ListBookingsByRenter(gomock.Any(), int64(1), model.StateAll, 0, 10).
					Return([]model.Booking{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[]`,
		},
		{
			name:   "explicit state and page",
			target: "/bookings?state=WAITING&from=7&size=3",
			mockBehavior: func(r *service_mocks.MockShareItService) {
				r.EXPECT().
					ListBookingsByRenter(gomock.Any(), int64(1), model.StateWaiting, 7, 3).
					Return([]model.Booking{{
						ID:       100,
						Start:    bookingStart,
						End:      bookingEnd,
						ItemID:   10,
						BookerID: 1,
						Status:   model.StatusWaiting,
					}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[{"id":100,"start":"2025-02-01T01:01:01Z","end":"2025-03-01T01:01:01Z","itemId":10,"bookerId":1,"status":"WAITING"}]`,
		},
		{
			name:         "err. unknown state",
			target:       "/bookings?state=SOMEDAY",
			mockBehavior: func(r *service_mocks.MockShareItService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"unknown state: validation failed"}`,
		},
		{
			name:         "err. from not a number",
			target:       "/bookings?from=x",
			mockBehavior: func(r *service_mocks.MockShareItService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"from is invalid"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockShareItService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/bookings", h.ListBookingsByRenter)

			r := httptest.NewRequest(http.MethodGet, tt.target, http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			r.Header.Set(md.XSharerUserID, "1")
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_CreateUser(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockShareItService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		expectedCode int
		expectedBody string
	}{
		{
			name: "ok",
			body: `{"name":"user","email":"user@mail.com"}`,
			mockBehavior: func(r *service_mocks.MockShareItService) {
				r.EXPECT().
					CreateUser(gomock.Any(), model.CreateUserRequest{Name: "user", Email: "user@mail.com"}).
					Return(model.User{ID: 1, Name: "user", Email: "user@mail.com"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":1,"name":"user","email":"user@mail.com"}`,
		},
		{
			name:         "err. malformed email",
			body:         `{"name":"user","email":"no-at-sign"}`,
			mockBehavior: func(r *service_mocks.MockShareItService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "err. duplicate email",
			body: `{"name":"user","email":"user@mail.com"}`,
			mockBehavior: func(r *service_mocks.MockShareItService) {
				r.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					Return(model.User{}, errors.Wrap(errs.ErrConflict, "email already in use"))
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"message":"email already in use: conflict"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockShareItService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/users", h.CreateUser)

			r := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_GetItem(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockShareItService)

	var tests = []struct {
		name         string
		target       string
		mockBehavior mockBehavior
		expectedCode int
		expectedBody string
	}{
		{
			name:   "owner view carries bookings",
			target: "/items/10",
			mockBehavior: func(r *service_mocks.MockShareItService) {
				r.EXPECT().
					GetItem(gomock.Any(), int64(10), int64(2)).
					Return(model.ItemWithBookings{
						Item:        model.Item{ID: 10, Name: "drill", Description: "simple drill", Available: true, OwnerID: 2},
						LastBooking: &model.BookingShort{ID: 101, BookerID: 3},
						NextBooking: &model.BookingShort{ID: 102, BookerID: 4},
						Comments:    []model.Comment{},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"id":10,"name":"drill","description":"simple drill","available":true,"ownerId":2,"lastBooking":{"id":101,"bookerId":3},"nextBooking":{"id":102,"bookerId":4},"comments":[]}`,
		},
		{
			name:   "err. unknown item",
			target: "/items/10",
			mockBehavior: func(r *service_mocks.MockShareItService) {
				r.EXPECT().
					GetItem(gomock.Any(), int64(10), int64(2)).
					Return(model.ItemWithBookings{}, errors.Wrap(errs.ErrNotFound, "item"))
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"item: not found"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockShareItService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/items/:id", h.GetItem)

			r := httptest.NewRequest(http.MethodGet, tt.target, http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			r.Header.Set(md.XSharerUserID, "2")
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
