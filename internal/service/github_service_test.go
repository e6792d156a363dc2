package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockContributionFetcher is a mock implementation of ContributionFetcher
type MockContributionFetcher struct {
	mock.Mock
}

func (m *MockContributionFetcher) FetchContributions(ctx context.Context, login string, from, to time.Time) (map[string]int, error) {
	args := m.Called(ctx, login, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func TestGitHubService_Calendar(t *testing.T) {
	fetcher := new(MockContributionFetcher)
	svc := NewGitHubService(fetcher, nil, "octocat", 0)

	today := time.Now().UTC().Format("2006-01-02")
	fetcher.On("FetchContributions", mock.Anything, "octocat", mock.Anything, mock.Anything).
		Return(map[string]int{today: 7}, nil)

	calendar, err := svc.Calendar(context.Background(), 4)
	assert.NoError(t, err)
	assert.False(t, calendar.Fallback)
	assert.Equal(t, "octocat", calendar.Username)
	assert.Equal(t, 7, calendar.Total)

	// Today lands in the last week column with heatmap level 3.
	lastWeek := calendar.Weeks[len(calendar.Weeks)-1]
	lastDay := lastWeek.Days[len(lastWeek.Days)-1]
	assert.Equal(t, today, lastDay.Date)
	assert.Equal(t, 7, lastDay.Count)
	assert.Equal(t, 3, lastDay.Level)
}

func TestGitHubService_WeekStructure(t *testing.T) {
	fetcher := new(MockContributionFetcher)
	svc := NewGitHubService(fetcher, nil, "octocat", 0)

	fetcher.On("FetchContributions", mock.Anything, "octocat", mock.Anything, mock.Anything).
		Return(map[string]int{}, nil)

	calendar, err := svc.Calendar(context.Background(), 8)
	assert.NoError(t, err)

	// All columns but the trailing partial week hold a full Sunday to
	// Saturday span.
	for i, week := range calendar.Weeks[:len(calendar.Weeks)-1] {
		assert.Len(t, week.Days, 7, "week %d", i)
		first, err := time.Parse("2006-01-02", week.Days[0].Date)
		assert.NoError(t, err)
		assert.Equal(t, time.Sunday, first.Weekday())
	}
}

func TestGitHubService_FallbackOnFetchError(t *testing.T) {
	fetcher := new(MockContributionFetcher)
	svc := NewGitHubService(fetcher, nil, "octocat", 0)

	fetcher.On("FetchContributions", mock.Anything, "octocat", mock.Anything, mock.Anything).
		Return(nil, errors.New("api unreachable"))

	calendar, err := svc.Calendar(context.Background(), 4)
	assert.NoError(t, err)
	assert.True(t, calendar.Fallback)
	assert.NotEmpty(t, calendar.Weeks)

	// Fallback counts are deterministic for a given user and date.
	again, err := svc.Calendar(context.Background(), 4)
	assert.NoError(t, err)
	assert.Equal(t, calendar.Total, again.Total)
	assert.Equal(t, calendar.Weeks, again.Weeks)
}

func TestGitHubService_FallbackWithoutFetcher(t *testing.T) {
	svc := NewGitHubService(nil, nil, "octocat", 0)

	calendar, err := svc.Calendar(context.Background(), 4)
	assert.NoError(t, err)
	assert.True(t, calendar.Fallback)
}

func TestGitHubService_WeeksClamped(t *testing.T) {
	svc := NewGitHubService(nil, nil, "octocat", 0)

	calendar, err := svc.Calendar(context.Background(), 500)
	assert.NoError(t, err)
	assert.LessOrEqual(t, len(calendar.Weeks), maxCalendarWeeks+1)

	calendar, err = svc.Calendar(context.Background(), 0)
	assert.NoError(t, err)
	// Zero falls back to the default span.
	assert.GreaterOrEqual(t, len(calendar.Weeks), defaultCalendarWeeks)
}

func TestContributionLevel(t *testing.T) {
	cases := []struct {
		count int
		level int
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 2},
		{5, 2},
		{6, 3},
		{9, 3},
		{10, 4},
		{40, 4},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.level, contributionLevel(tc.count), "count %d", tc.count)
	}
}

func TestCalendarRange_SundayAligned(t *testing.T) {
	now := time.Date(2026, 3, 11, 15, 30, 0, 0, time.UTC) // a Wednesday
	from, to := calendarRange(4, now)

	assert.Equal(t, time.Sunday, from.Weekday())
	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), to)
	assert.Equal(t, time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC), from)
}
