package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/backend/internal/common"
	"github.com/portfolio/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockTrackingService is a mock implementation of TrackingService
type MockTrackingService struct {
	mock.Mock
}

func (m *MockTrackingService) RecordPageview(ctx context.Context, req *domain.PageviewRequest, clientIP, userAgent, referrer string) (*domain.TrackResponse, error) {
	args := m.Called(ctx, req, clientIP, userAgent, referrer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrackResponse), args.Error(1)
}

func (m *MockTrackingService) RecordClick(ctx context.Context, req *domain.ClickRequest, clientIP, userAgent string) (*domain.TrackResponse, error) {
	args := m.Called(ctx, req, clientIP, userAgent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrackResponse), args.Error(1)
}

func setupTrackingRouter(svc *MockTrackingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewTrackingHandler(svc)

	r := gin.New()
	r.POST("/api/v1/track/pageview", h.TrackPageview)
	r.POST("/api/v1/track/click", h.TrackClick)
	return r
}

func TestTrackPageview(t *testing.T) {
	svc := new(MockTrackingService)
	r := setupTrackingRouter(svc)

	svc.On("RecordPageview", mock.Anything, mock.AnythingOfType("*domain.PageviewRequest"),
		"203.0.113.7, 10.0.0.1", "test-agent", "").
		Return(&domain.TrackResponse{Success: true, ID: "ev-1"}, nil)

	body := `{"path":"/projects","referrer":"https://example.com"}`
	req, _ := http.NewRequest("POST", "/api/v1/track/pageview", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	req.Header.Set("User-Agent", "test-agent")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	svc.AssertExpectations(t)
}

func TestTrackPageview_InvalidBody(t *testing.T) {
	svc := new(MockTrackingService)
	r := setupTrackingRouter(svc)

	req, _ := http.NewRequest("POST", "/api/v1/track/pageview", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "RecordPageview")
}

func TestTrackPageview_Disabled(t *testing.T) {
	svc := new(MockTrackingService)
	r := setupTrackingRouter(svc)

	svc.On("RecordPageview", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, common.ErrTrackingDisabled)

	req, _ := http.NewRequest("POST", "/api/v1/track/pageview", strings.NewReader(`{"path":"/"}`))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestTrackClick_StoreFailureIsSoft(t *testing.T) {
	svc := new(MockTrackingService)
	r := setupTrackingRouter(svc)

	svc.On("RecordClick", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, assert.AnError)

	body := `{"elementType":"button","currentPath":"/"}`
	req, _ := http.NewRequest("POST", "/api/v1/track/click", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// Storage failure stays invisible to the visitor.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestTrackClick(t *testing.T) {
	svc := new(MockTrackingService)
	r := setupTrackingRouter(svc)

	svc.On("RecordClick", mock.Anything, mock.AnythingOfType("*domain.ClickRequest"), mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			req := args.Get(1).(*domain.ClickRequest)
			assert.Equal(t, "contact-submit", req.ElementID)
			assert.Equal(t, 120, req.X)
		}).
		Return(&domain.TrackResponse{Success: true, ID: "c-1"}, nil)

	body := `{"elementId":"contact-submit","elementType":"button","currentPath":"/contact","x":120,"y":40}`
	req, _ := http.NewRequest("POST", "/api/v1/track/click", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestParseStatsFilter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newCtx := func(query string) *gin.Context {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request, _ = http.NewRequest("GET", "/admin/stats/visitors?"+query, nil)
		return c
	}

	t.Run("start and end", func(t *testing.T) {
		filter, err := parseStatsFilter(newCtx("startDate=2026-03-01&endDate=2026-03-10"))
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), filter.Start)
		// End bound is inclusive of the whole day
		assert.True(t, filter.End.After(time.Date(2026, 3, 10, 23, 59, 59, 0, time.UTC)))
		assert.True(t, filter.End.Before(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("single date wins", func(t *testing.T) {
		filter, err := parseStatsFilter(newCtx("date=2026-03-05&startDate=2026-01-01"))
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), filter.Start)
		assert.True(t, filter.End.Before(time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("empty", func(t *testing.T) {
		filter, err := parseStatsFilter(newCtx(""))
		assert.NoError(t, err)
		assert.True(t, filter.Start.IsZero())
		assert.True(t, filter.End.IsZero())
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := parseStatsFilter(newCtx("date=03/05/2026"))
		assert.Error(t, err)
	})
}
