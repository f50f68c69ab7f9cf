package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/practicum/shareit/stats/internal/handler"
	service_mocks "github.com/practicum/shareit/stats/internal/handler/mocks"
	"github.com/practicum/shareit/stats/internal/model"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandler_GetStats(t *testing.T) {
	type mockBehavior func(s *service_mocks.MockStatsService)

	tests := []struct {
		name         string
		mockBehavior mockBehavior
		expectedCode int
		expectedBody string
	}{
		{
			name: "ok",
			mockBehavior: func(s *service_mocks.MockStatsService) {
				s.EXPECT().GetStats(gomock.Any()).Return(model.StatsInfo{
					Data: []model.ItemStats{
						{
							ItemID:      10,
							LastUpdated: time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC),
							Created:     3,
							Approved:    2,
							Rejected:    1,
						},
					},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"data":[{"itemId":10,"lastUpdated":"2025-01-15T12:00:00Z","created":3,"approved":2,"rejected":1}]}`,
		},
		{
			name: "empty",
			mockBehavior: func(s *service_mocks.MockStatsService) {
				s.EXPECT().GetStats(gomock.Any()).Return(model.StatsInfo{Data: []model.ItemStats{}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"data":[]}`,
		},
		{
			name: "store failure",
			mockBehavior: func(s *service_mocks.MockStatsService) {
				s.EXPECT().GetStats(gomock.Any()).Return(model.StatsInfo{}, errors.New("pool closed"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := service_mocks.NewMockStatsService(ctrl)
			tt.mockBehavior(svc)

			h := handler.New(svc, zap.NewExample().Named("test"))
			e := echo.New()
			e.GET("/api/v1/stats", h.GetStats)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
			w := httptest.NewRecorder()
			e.ServeHTTP(w, req)

			require.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}
