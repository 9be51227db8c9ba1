package usecase

import (
	"context"
	"errors"

	"student-recommendation-platform/internal/converter"
	"student-recommendation-platform/internal/delivery/dto"
	"student-recommendation-platform/internal/domain/repository"
	"student-recommendation-platform/internal/service"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

var (
	// ErrAdvisorUnavailable means the generative service failed after retries.
	// The profile is not persisted in that case; the client may simply resubmit.
	ErrAdvisorUnavailable = errors.New("recommendation service unavailable")

	// ErrStoreUnavailable means the document store rejected or failed the write.
	ErrStoreUnavailable = errors.New("student store unavailable")

	// ErrDuplicateName means the unique index rejected the write. Under atomic
	// upserts this branch should be unreachable; it is kept as a guard against
	// non-atomic writers sharing the collection.
	ErrDuplicateName = errors.New("a profile with this name already exists")
)

type StudentIntakeUsecase interface {
	Submit(ctx context.Context, req *dto.StudentSubmitRequest) (*dto.StudentSubmitResponse, error)
	ListAll(ctx context.Context) ([]dto.StudentResponse, error)
}

type studentIntakeUsecase struct {
	log         *logrus.Logger
	studentRepo repository.StudentProfileRepository
	advisor     service.ProfileAdvisor
	courses     service.RecommendationSource
	cache       AggregateCache
}

func NewStudentIntakeUsecase(
	log *logrus.Logger,
	studentRepo repository.StudentProfileRepository,
	advisor service.ProfileAdvisor,
	courses service.RecommendationSource,
	cache AggregateCache,
) StudentIntakeUsecase {
	return &studentIntakeUsecase{
		log:         log,
		studentRepo: studentRepo,
		advisor:     advisor,
		courses:     courses,
		cache:       cache,
	}
}

// Submit runs the full intake pipeline: analyze the profile with the advisor,
// attach the static course list, then atomically upsert the document by name.
// The advisor runs before the write, so a failed analysis leaves the store
// untouched and the client can resubmit.
func (u *studentIntakeUsecase) Submit(ctx context.Context, req *dto.StudentSubmitRequest) (*dto.StudentSubmitResponse, error) {
	profile := converter.StudentRequestToEntity(req)

	analysis, err := u.advisor.Analyze(ctx, profile)
	if err != nil {
		u.log.Warnf("Advisor call failed for %q: %+v", profile.Name, err)
		return nil, ErrAdvisorUnavailable
	}

	result, err := u.studentRepo.UpsertByName(ctx, profile)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			u.log.Warnf("Duplicate name on upsert for %q: %+v", profile.Name, err)
			return nil, ErrDuplicateName
		}
		u.log.Warnf("Failed to upsert profile %q: %+v", profile.Name, err)
		return nil, ErrStoreUnavailable
	}

	u.cache.Invalidate(ctx)

	if result.Created {
		u.log.Infof("Created student profile %q", profile.Name)
	} else {
		u.log.Infof("Updated student profile %q", profile.Name)
	}

	return &dto.StudentSubmitResponse{
		Student:  *converter.StudentToResponse(profile),
		Created:  result.Created,
		Analysis: analysis,
		Courses:  converter.CoursesToResponse(u.courses.Courses(analysis)),
	}, nil
}

func (u *studentIntakeUsecase) ListAll(ctx context.Context) ([]dto.StudentResponse, error) {
	profiles, err := u.studentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load profiles: %+v", err)
		return nil, ErrStoreUnavailable
	}

	responses := make([]dto.StudentResponse, 0, len(profiles))
	for i := range profiles {
		responses = append(responses, *converter.StudentToResponse(&profiles[i]))
	}

	return responses, nil
}
