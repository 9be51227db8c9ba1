package usecase

import (
	"context"
	"errors"
	"testing"

	"student-recommendation-platform/internal/delivery/dto"
	"student-recommendation-platform/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAggregatesComputesAndCaches(t *testing.T) {
	repo := newFakeStudentRepo()
	repo.byName["Ada"] = entity.StudentProfile{
		Name:           "Ada",
		EducationLevel: "Undergraduate",
		FieldOfStudy:   "Computer Science",
		PreviousMarks:  80,
	}
	cache := &fakeCache{}
	u := NewDashboardUsecase(testLogger(), repo, cache)

	aggregates, err := u.GetAggregates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, aggregates.TotalStudents)
	assert.Equal(t, 1, aggregates.EducationLevelCounts["Undergraduate"])
	require.NotNil(t, cache.stored)
	assert.Equal(t, aggregates, cache.stored)
}

func TestGetAggregatesServesFromCache(t *testing.T) {
	repo := newFakeStudentRepo()
	repo.findErr = errors.New("store should not be hit on cache hit")
	cache := &fakeCache{stored: &dto.DashboardResponse{TotalStudents: 7}}
	u := NewDashboardUsecase(testLogger(), repo, cache)

	aggregates, err := u.GetAggregates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, aggregates.TotalStudents)
}

func TestGetAggregatesStoreFailure(t *testing.T) {
	repo := newFakeStudentRepo()
	repo.findErr = errors.New("connection reset")
	u := NewDashboardUsecase(testLogger(), repo, &fakeCache{})

	_, err := u.GetAggregates(context.Background())

	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestGetAggregatesEmptyCollection(t *testing.T) {
	u := NewDashboardUsecase(testLogger(), newFakeStudentRepo(), &fakeCache{})

	aggregates, err := u.GetAggregates(context.Background())
	require.NoError(t, err)
	assert.True(t, aggregates.NoData)
	assert.Equal(t, 0, aggregates.TotalStudents)
}
