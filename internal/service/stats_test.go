package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opportunest/opportunest-server/internal/domain"
)

type fakeStatsRepo struct {
	since time.Time
}

func (f *fakeStatsRepo) CountUsers(ctx context.Context) (int64, error)        { return 12, nil }
func (f *fakeStatsRepo) CountScholarships(ctx context.Context) (int64, error) { return 7, nil }
func (f *fakeStatsRepo) CountApplications(ctx context.Context) (int64, error) { return 31, nil }

func (f *fakeStatsRepo) CategoryBreakdown(ctx context.Context) ([]domain.CategoryStat, error) {
	return []domain.CategoryStat{{Name: "Full fund", Value: 4}, {Name: "Partial", Value: 3}}, nil
}

func (f *fakeStatsRepo) DailyApplications(ctx context.Context, since time.Time) ([]domain.DailyApplicationStat, error) {
	f.since = since
	return []domain.DailyApplicationStat{
		{Date: "2026-08-28", Applications: 2},
		{Date: "2026-08-30", Applications: 5},
	}, nil
}

func TestStatsService_Overview(t *testing.T) {
	now := mustTime(t, "2026-08-30T10:00:00Z")
	repo := &fakeStatsRepo{}
	svc := NewStatsService(repo, fakeClock{t: now})

	out, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(12), out.TotalUsers)
	assert.Equal(t, int64(7), out.TotalScholarships)
	assert.Equal(t, int64(31), out.TotalApplications)
	assert.Len(t, out.CategoryStats, 2)

	assert.Equal(t, now.Add(-7*24*time.Hour), repo.since, "histogram window is the trailing 7 days")
	// zero-fill is not guaranteed; gaps stay gaps
	assert.Len(t, out.ApplicationStats, 2)
}
