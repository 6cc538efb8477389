package queries

import (
	"context"
	"testing"
	"time"

	"github.com/felixgeelhaar/cadence/internal/tracking/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockActivityRepo struct {
	mock.Mock
}

func (m *mockActivityRepo) Create(ctx context.Context, activity *domain.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *mockActivityRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Activity), args.Error(1)
}

func (m *mockActivityRepo) List(ctx context.Context, limit int) ([]*domain.Activity, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Activity), args.Error(1)
}

func (m *mockActivityRepo) ListByDateRange(ctx context.Context, start, end time.Time) ([]*domain.Activity, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Activity), args.Error(1)
}

func (m *mockActivityRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockActivityRepo) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockActivityRepo) WeeklyTotals(ctx context.Context, start, end time.Time) ([]domain.DailyTypeTotal, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyTypeTotal), args.Error(1)
}

func TestListActivitiesHandler_Handle_DefaultLimit(t *testing.T) {
	repo := new(mockActivityRepo)
	handler := NewListActivitiesHandler(repo, 50)

	repo.On("List", mock.Anything, 50).Return([]*domain.Activity{}, nil)

	_, err := handler.Handle(context.Background(), ListActivitiesQuery{})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestListActivitiesHandler_Handle_ExplicitLimit(t *testing.T) {
	repo := new(mockActivityRepo)
	handler := NewListActivitiesHandler(repo, 50)

	repo.On("List", mock.Anything, 10).Return([]*domain.Activity{}, nil)

	_, err := handler.Handle(context.Background(), ListActivitiesQuery{Limit: 10})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestListTodayHandler_Handle_UsesMidnightBounds(t *testing.T) {
	repo := new(mockActivityRepo)
	handler := NewListTodayHandler(repo)

	now := time.Date(2026, 3, 14, 15, 42, 0, 0, time.UTC)
	start := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	repo.On("ListByDateRange", mock.Anything, start, end).Return([]*domain.Activity{}, nil)

	_, err := handler.Handle(context.Background(), now)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestListByDateRangeHandler_Handle_InvalidRange(t *testing.T) {
	repo := new(mockActivityRepo)
	handler := NewListByDateRangeHandler(repo)

	_, err := handler.Handle(context.Background(), ListByDateRangeQuery{
		Start: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrInvalidRange)
	repo.AssertNotCalled(t, "ListByDateRange")
}

func TestGetWeeklyTotalsHandler_Handle_TrailingSevenDays(t *testing.T) {
	repo := new(mockActivityRepo)
	handler := NewGetWeeklyTotalsHandler(repo)

	now := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	start := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	totals := []domain.DailyTypeTotal{
		{Date: "2026-03-13", ActivityType: "coding", TotalMinutes: 90, Count: 2},
	}
	repo.On("WeeklyTotals", mock.Anything, start, end).Return(totals, nil)

	got, err := handler.Handle(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, totals, got)
}
