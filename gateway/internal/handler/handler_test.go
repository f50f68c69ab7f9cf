package handler_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/practicum/shareit/gateway/config"
	"github.com/practicum/shareit/gateway/internal/handler"
	"github.com/practicum/shareit/gateway/internal/service/shareit"
	md "github.com/practicum/shareit/pkg/middleware"
	"github.com/practicum/shareit/pkg/validate"
)

// newGateway wires a handler against the given downstream address.
func newGateway(t *testing.T, downstream string) *echo.Echo {
	t.Helper()
	u, err := url.Parse(downstream)
	require.NoError(t, err)

	log := zap.NewExample().Named("test")
	svc := shareit.NewService(log, config.ShareItHTTPServer{
		Host: u.Hostname(),
		Port: u.Port(),
	})
	h := handler.New(svc, log)

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.POST("/api/v1/bookings", h.CreateBooking)
	e.GET("/api/v1/bookings", h.ForwardAs)
	e.PATCH("/api/v1/bookings/:id", h.SetBookingStatus)
	e.POST("/api/v1/users", h.CreateUser)
	return e
}

func TestHandler_CreateBooking_forwards(t *testing.T) {
	body := `{"itemId":10,"start":"2025-02-01T01:01:01Z","end":"2025-03-01T01:01:01Z"}`
	resp := `{"id":100,"status":"WAITING"}`

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/bookings", r.URL.Path)
		require.Equal(t, "1", r.Header.Get(md.XSharerUserID))
		got, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.JSONEq(t, body, string(got))

		w.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		_, _ = w.Write([]byte(resp))
	}))
	defer ts.Close()

	e := newGateway(t, ts.URL)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	r.Header.Set(md.XSharerUserID, "1")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, resp, w.Body.String())
}

func TestHandler_CreateBooking_rejectsBeforeForward(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not reach the server tier")
	}))
	defer ts.Close()

	e := newGateway(t, ts.URL)

	tests := []struct {
		name   string
		userID string
		body   string
	}{
		{
			name:   "missing identity header",
			userID: "",
			body:   `{"itemId":10,"start":"2025-02-01T01:01:01Z","end":"2025-03-01T01:01:01Z"}`,
		},
		{
			name:   "missing itemId",
			userID: "1",
			body:   `{"start":"2025-02-01T01:01:01Z","end":"2025-03-01T01:01:01Z"}`,
		},
		{
			name:   "malformed json",
			userID: "1",
			body:   `{"itemId":`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if tt.userID != "" {
				r.Header.Set(md.XSharerUserID, tt.userID)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandler_SetBookingStatus_badApproved(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not reach the server tier")
	}))
	defer ts.Close()

	e := newGateway(t, ts.URL)

	r := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/100?approved=yep", http.NoBody)
	r.Header.Set(md.XSharerUserID, "2")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, `{"message":"approved is invalid"}`, strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_Forward_statusPassthrough(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "WAITING", r.URL.Query().Get("state"))
		w.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"user: not found"}`))
	}))
	defer ts.Close()

	e := newGateway(t, ts.URL)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/bookings?state=WAITING", http.NoBody)
	r.Header.Set(md.XSharerUserID, "1")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"message":"user: not found"}`, w.Body.String())
}

func TestHandler_Forward_downstreamDown(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	e := newGateway(t, ts.URL)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", http.NoBody)
	r.Header.Set(md.XSharerUserID, "1")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusBadGateway, w.Code)
}
