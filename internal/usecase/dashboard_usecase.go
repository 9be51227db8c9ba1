package usecase

import (
	"context"

	"student-recommendation-platform/internal/delivery/dto"
	"student-recommendation-platform/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// AggregateCache abstracts the dashboard cache so the Redis-backed
// implementation stays swappable. service.DashboardCache satisfies it.
type AggregateCache interface {
	Get(ctx context.Context) (*dto.DashboardResponse, bool)
	Set(ctx context.Context, aggregates *dto.DashboardResponse)
	Invalidate(ctx context.Context)
}

type DashboardUsecase interface {
	GetAggregates(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardUsecase struct {
	log         *logrus.Logger
	studentRepo repository.StudentProfileRepository
	cache       AggregateCache
}

func NewDashboardUsecase(
	log *logrus.Logger,
	studentRepo repository.StudentProfileRepository,
	cache AggregateCache,
) DashboardUsecase {
	return &dashboardUsecase{
		log:         log,
		studentRepo: studentRepo,
		cache:       cache,
	}
}

// GetAggregates serves the dashboard from the Redis cache when possible and
// recomputes from the full collection otherwise. Cache trouble never fails the
// request; the document store remains the source of truth.
func (u *dashboardUsecase) GetAggregates(ctx context.Context) (*dto.DashboardResponse, error) {
	if cached, ok := u.cache.Get(ctx); ok {
		return cached, nil
	}

	profiles, err := u.studentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load profiles for dashboard: %+v", err)
		return nil, ErrStoreUnavailable
	}

	aggregates := AggregateProfiles(profiles)
	u.cache.Set(ctx, aggregates)

	return aggregates, nil
}
