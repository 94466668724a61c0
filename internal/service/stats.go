package service

import (
	"context"
	"time"

	"github.com/opportunest/opportunest-server/internal/domain"
)

type StatsService struct {
	repo  StatsRepo
	clock Clock
}

func NewStatsService(repo StatsRepo, clock Clock) *StatsService {
	return &StatsService{repo: repo, clock: clock}
}

// Overview is a point-in-time read computed fresh on every request. The daily
// histogram covers the trailing seven days; days without submissions are not
// zero-filled.
func (s *StatsService) Overview(ctx context.Context) (*domain.StatsOverview, error) {
	users, err := s.repo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	scholarships, err := s.repo.CountScholarships(ctx)
	if err != nil {
		return nil, err
	}
	applications, err := s.repo.CountApplications(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := s.repo.CategoryBreakdown(ctx)
	if err != nil {
		return nil, err
	}
	since := s.clock.Now().UTC().Add(-7 * 24 * time.Hour)
	daily, err := s.repo.DailyApplications(ctx, since)
	if err != nil {
		return nil, err
	}

	return &domain.StatsOverview{
		TotalUsers:        users,
		TotalScholarships: scholarships,
		TotalApplications: applications,
		CategoryStats:     categories,
		ApplicationStats:  daily,
	}, nil
}
