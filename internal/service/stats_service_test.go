package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/portfolio/backend/internal/domain"
	"github.com/stretchr/testify/assert"
)

// fakeCache is an exact-key in-memory cache.Service
type fakeCache struct {
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (f *fakeCache) Get(_ context.Context, key string, dest interface{}) error {
	raw, ok := f.entries[key]
	if !ok {
		return errors.New("cache miss")
	}
	return json.Unmarshal(raw, dest)
}

func (f *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.entries[key] = raw
	return nil
}

func (f *fakeCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.entries, k)
	}
	return nil
}

func (f *fakeCache) IsAvailable() bool { return true }

func (f *fakeCache) Ping(_ context.Context) error { return nil }

func makeVisitors(n int) []*domain.VisitorEvent {
	base := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)
	events := make([]*domain.VisitorEvent, 0, n)
	for i := 0; i < n; i++ {
		events = append(events, &domain.VisitorEvent{
			ID:        fmt.Sprintf("ev-%03d", i),
			Path:      "/projects",
			Country:   "South Korea",
			City:      "Seoul",
			CreatedAt: base.Add(-time.Duration(i) * time.Minute),
		})
	}
	return events
}

func TestStatsService_VisitorAggregation(t *testing.T) {
	mockRepo := new(MockTrackingRepository)
	svc := NewStatsService(mockRepo, nil)

	events := []*domain.VisitorEvent{
		{ID: "a", Path: "/", Country: "South Korea", City: "Seoul",
			CreatedAt: time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)},
		{ID: "b", Path: "/", Country: "",
			CreatedAt: time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC)},
		{ID: "c", Path: "/about", Country: "Japan", City: "Tokyo",
			CreatedAt: time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)},
	}
	mockRepo.On("ListVisitorEvents", domain.StatsFilter{}).Return(events, nil)

	resp, err := svc.VisitorStats(context.Background(), domain.StatsFilter{}, 1, false)
	assert.NoError(t, err)

	assert.Equal(t, int64(3), resp.TotalVisitors)
	assert.Equal(t, 2, resp.PageviewsByPage["/"])
	assert.Equal(t, 1, resp.PageviewsByPage["/about"])
	assert.Equal(t, 2, resp.VisitorsByCountry["South Korea"]+resp.VisitorsByCountry["Japan"])
	assert.Equal(t, 1, resp.VisitorsByCountry[domain.UnknownBucket])
	assert.Equal(t, 2, resp.VisitorsByDate["2026-03-10"])
	assert.Equal(t, 1, resp.VisitorsByDate["2026-03-11"])
	assert.Nil(t, resp.Visitors)
}

func TestStatsService_DateBucketsAreUTC(t *testing.T) {
	mockRepo := new(MockTrackingRepository)
	svc := NewStatsService(mockRepo, nil)

	// 23:30 in UTC+9 is 14:30 UTC the same day; 02:30 UTC+9 is the
	// previous UTC day.
	kst := time.FixedZone("KST", 9*3600)
	events := []*domain.VisitorEvent{
		{ID: "a", Path: "/", CreatedAt: time.Date(2026, 3, 10, 23, 30, 0, 0, kst)},
		{ID: "b", Path: "/", CreatedAt: time.Date(2026, 3, 10, 2, 30, 0, 0, kst)},
	}
	mockRepo.On("ListVisitorEvents", domain.StatsFilter{}).Return(events, nil)

	resp, err := svc.VisitorStats(context.Background(), domain.StatsFilter{}, 1, false)
	assert.NoError(t, err)

	assert.Equal(t, 1, resp.VisitorsByDate["2026-03-10"])
	assert.Equal(t, 1, resp.VisitorsByDate["2026-03-09"])
}

func TestStatsService_Pagination(t *testing.T) {
	mockRepo := new(MockTrackingRepository)
	svc := NewStatsService(mockRepo, nil)

	mockRepo.On("ListVisitorEvents", domain.StatsFilter{}).Return(makeVisitors(25), nil)

	resp, err := svc.VisitorStats(context.Background(), domain.StatsFilter{}, 1, true)
	assert.NoError(t, err)
	assert.Equal(t, 1, resp.CurrentPage)
	assert.Equal(t, StatsPageSize, resp.PageSize)
	assert.Equal(t, 3, resp.TotalPages)
	assert.True(t, resp.HasMore)
	assert.Len(t, resp.Visitors, 10)
	assert.Equal(t, "ev-000", resp.Visitors[0].ID)

	resp, err = svc.VisitorStats(context.Background(), domain.StatsFilter{}, 3, true)
	assert.NoError(t, err)
	assert.Equal(t, 3, resp.CurrentPage)
	assert.False(t, resp.HasMore)
	assert.Len(t, resp.Visitors, 5)
	assert.Equal(t, "ev-020", resp.Visitors[0].ID)
}

func TestStatsService_PageClampedToOne(t *testing.T) {
	mockRepo := new(MockTrackingRepository)
	svc := NewStatsService(mockRepo, nil)

	mockRepo.On("ListVisitorEvents", domain.StatsFilter{}).Return(makeVisitors(5), nil)

	resp, err := svc.VisitorStats(context.Background(), domain.StatsFilter{}, -3, true)
	assert.NoError(t, err)
	assert.Equal(t, 1, resp.CurrentPage)
	assert.Equal(t, 1, resp.TotalPages)
	assert.False(t, resp.HasMore)
	assert.Len(t, resp.Visitors, 5)
}

func TestStatsService_PageBeyondEnd(t *testing.T) {
	mockRepo := new(MockTrackingRepository)
	svc := NewStatsService(mockRepo, nil)

	mockRepo.On("ListVisitorEvents", domain.StatsFilter{}).Return(makeVisitors(5), nil)

	resp, err := svc.VisitorStats(context.Background(), domain.StatsFilter{}, 9, true)
	assert.NoError(t, err)
	assert.Equal(t, 9, resp.CurrentPage)
	assert.False(t, resp.HasMore)
	assert.Empty(t, resp.Visitors)
}

func TestStatsService_EmptyStream(t *testing.T) {
	mockRepo := new(MockTrackingRepository)
	svc := NewStatsService(mockRepo, nil)

	mockRepo.On("ListVisitorEvents", domain.StatsFilter{}).Return([]*domain.VisitorEvent{}, nil)

	resp, err := svc.VisitorStats(context.Background(), domain.StatsFilter{}, 1, true)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), resp.TotalVisitors)
	assert.Equal(t, 0, resp.TotalPages)
	assert.False(t, resp.HasMore)
	assert.Empty(t, resp.Visitors)
}

func TestStatsService_ClickAggregation(t *testing.T) {
	mockRepo := new(MockTrackingRepository)
	svc := NewStatsService(mockRepo, nil)

	events := []*domain.ClickEvent{
		{ID: "a", ElementType: "button", ElementID: "contact-submit", CurrentPath: "/contact",
			CreatedAt: time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)},
		{ID: "b", ElementType: "button", ElementID: "contact-submit", CurrentPath: "/contact",
			CreatedAt: time.Date(2026, 3, 10, 10, 5, 0, 0, time.UTC)},
		{ID: "c", ElementType: "a", CurrentPath: "/",
			CreatedAt: time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC)},
	}
	mockRepo.On("ListClickEvents", domain.StatsFilter{}).Return(events, nil)

	resp, err := svc.ClickStats(context.Background(), domain.StatsFilter{}, 1, false)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), resp.TotalClicks)
	assert.Equal(t, 2, resp.ClicksByPage["/contact"])
	assert.Equal(t, 2, resp.ClicksByElement["button#contact-submit"])
	assert.Equal(t, 1, resp.ClicksByElement["a"])
	assert.Equal(t, 3, resp.ClicksByDate["2026-03-10"])
}

func TestStatsService_ReadAfterDeleteIsEmptyDespiteCache(t *testing.T) {
	mockRepo := new(MockTrackingRepository)
	svc := NewStatsService(mockRepo, newFakeCache())

	mockRepo.On("CurrentGeneration", domain.StreamVisitors).Return(int64(0), nil).Once()
	mockRepo.On("ListVisitorEvents", domain.StatsFilter{}).Return(makeVisitors(1), nil).Once()

	resp, err := svc.VisitorStats(context.Background(), domain.StatsFilter{}, 1, false)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), resp.TotalVisitors)

	mockRepo.On("DeleteAllVisitorEvents").Return(nil)
	assert.NoError(t, svc.DeleteVisitors(context.Background()))

	// The cached pre-delete aggregate is still fresh, but the advanced
	// generation keys it out of reach.
	mockRepo.On("CurrentGeneration", domain.StreamVisitors).Return(int64(1), nil).Once()
	mockRepo.On("ListVisitorEvents", domain.StatsFilter{}).Return([]*domain.VisitorEvent{}, nil).Once()

	resp, err = svc.VisitorStats(context.Background(), domain.StatsFilter{}, 1, false)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), resp.TotalVisitors)
	assert.Empty(t, resp.PageviewsByPage)
	mockRepo.AssertExpectations(t)
}

func TestStatsService_CacheReusedWithinGeneration(t *testing.T) {
	mockRepo := new(MockTrackingRepository)
	svc := NewStatsService(mockRepo, newFakeCache())

	mockRepo.On("CurrentGeneration", domain.StreamVisitors).Return(int64(0), nil)
	mockRepo.On("ListVisitorEvents", domain.StatsFilter{}).Return(makeVisitors(3), nil).Once()

	for i := 0; i < 2; i++ {
		resp, err := svc.VisitorStats(context.Background(), domain.StatsFilter{}, 1, false)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), resp.TotalVisitors)
	}
	mockRepo.AssertNumberOfCalls(t, "ListVisitorEvents", 1)
}

func TestStatsService_Delete(t *testing.T) {
	mockRepo := new(MockTrackingRepository)
	svc := NewStatsService(mockRepo, nil)

	mockRepo.On("DeleteAllVisitorEvents").Return(nil)
	mockRepo.On("DeleteAllClickEvents").Return(nil)

	assert.NoError(t, svc.DeleteVisitors(context.Background()))
	assert.NoError(t, svc.DeleteClicks(context.Background()))
	mockRepo.AssertExpectations(t)
}
