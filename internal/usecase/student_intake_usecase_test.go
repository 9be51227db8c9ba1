package usecase

import (
	"context"
	"errors"
	"io"
	"testing"

	"student-recommendation-platform/internal/delivery/dto"
	"student-recommendation-platform/internal/domain/entity"
	"student-recommendation-platform/internal/domain/repository"
	"student-recommendation-platform/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// fakeStudentRepo keeps profiles in a map keyed by name, mirroring the
// replace-or-insert semantics of the real store.
type fakeStudentRepo struct {
	byName    map[string]entity.StudentProfile
	upsertErr error
	findErr   error
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{byName: map[string]entity.StudentProfile{}}
}

func (f *fakeStudentRepo) UpsertByName(_ context.Context, profile *entity.StudentProfile) (*repository.UpsertResult, error) {
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	_, exists := f.byName[profile.Name]
	f.byName[profile.Name] = *profile
	return &repository.UpsertResult{Created: !exists}, nil
}

func (f *fakeStudentRepo) FindAll(_ context.Context) ([]entity.StudentProfile, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	profiles := make([]entity.StudentProfile, 0, len(f.byName))
	for _, p := range f.byName {
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func (f *fakeStudentRepo) EnsureIndexes(_ context.Context) error { return nil }

type fakeAdvisor struct {
	text string
	err  error
}

func (f *fakeAdvisor) Analyze(_ context.Context, _ *entity.StudentProfile) (string, error) {
	return f.text, f.err
}

type fakeCache struct {
	stored      *dto.DashboardResponse
	invalidated int
}

func (f *fakeCache) Get(_ context.Context) (*dto.DashboardResponse, bool) {
	return f.stored, f.stored != nil
}

func (f *fakeCache) Set(_ context.Context, aggregates *dto.DashboardResponse) {
	f.stored = aggregates
}

func (f *fakeCache) Invalidate(_ context.Context) {
	f.stored = nil
	f.invalidated++
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func submitRequest(name string) *dto.StudentSubmitRequest {
	return &dto.StudentSubmitRequest{
		Name:              name,
		Age:               21,
		Gender:            entity.GenderFemale,
		EducationLevel:    "Undergraduate",
		FieldOfStudy:      "Computer Science",
		PreviousMarks:     82.5,
		TechnicalSkills:   []string{"Programming"},
		LearningInterests: []string{"Data Science"},
	}
}

func newIntakeUsecase(repo *fakeStudentRepo, advisor service.ProfileAdvisor, cache AggregateCache) StudentIntakeUsecase {
	return NewStudentIntakeUsecase(testLogger(), repo, advisor, service.NewStaticCourseSource(), cache)
}

func TestSubmitCreatesThenReplaces(t *testing.T) {
	repo := newFakeStudentRepo()
	cache := &fakeCache{}
	u := newIntakeUsecase(repo, &fakeAdvisor{text: "study hard"}, cache)

	first, err := u.Submit(context.Background(), submitRequest("Ada"))
	require.NoError(t, err)
	assert.True(t, first.Created)
	assert.Equal(t, "study hard", first.Analysis)
	assert.Len(t, first.Courses, 2)

	// Resubmission with the same name replaces the document, not appends.
	req := submitRequest("Ada")
	req.PreviousMarks = 95
	req.TechnicalSkills = []string{"Programming", "Cloud Computing"}

	second, err := u.Submit(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, second.Created)

	require.Len(t, repo.byName, 1)
	stored := repo.byName["Ada"]
	assert.InDelta(t, 95.0, stored.PreviousMarks, 1e-9)
	assert.Equal(t, []string{"Programming", "Cloud Computing"}, stored.TechnicalSkills)
	assert.Equal(t, 2, cache.invalidated)
}

func TestSubmitAdvisorFailureLeavesStoreUntouched(t *testing.T) {
	repo := newFakeStudentRepo()
	u := newIntakeUsecase(repo, &fakeAdvisor{err: errors.New("quota exceeded")}, &fakeCache{})

	_, err := u.Submit(context.Background(), submitRequest("Ada"))

	assert.ErrorIs(t, err, ErrAdvisorUnavailable)
	assert.Empty(t, repo.byName)
}

func TestSubmitDuplicateKeyError(t *testing.T) {
	repo := newFakeStudentRepo()
	repo.upsertErr = mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "duplicate key"}},
	}
	u := newIntakeUsecase(repo, &fakeAdvisor{text: "ok"}, &fakeCache{})

	_, err := u.Submit(context.Background(), submitRequest("Ada"))

	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestSubmitStoreFailure(t *testing.T) {
	repo := newFakeStudentRepo()
	repo.upsertErr = errors.New("connection reset")
	u := newIntakeUsecase(repo, &fakeAdvisor{text: "ok"}, &fakeCache{})

	_, err := u.Submit(context.Background(), submitRequest("Ada"))

	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestListAll(t *testing.T) {
	repo := newFakeStudentRepo()
	u := newIntakeUsecase(repo, &fakeAdvisor{text: "ok"}, &fakeCache{})

	_, err := u.Submit(context.Background(), submitRequest("Ada"))
	require.NoError(t, err)
	_, err = u.Submit(context.Background(), submitRequest("Grace"))
	require.NoError(t, err)

	students, err := u.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, students, 2)
}

func TestListAllStoreFailure(t *testing.T) {
	repo := newFakeStudentRepo()
	repo.findErr = errors.New("connection reset")
	u := newIntakeUsecase(repo, &fakeAdvisor{text: "ok"}, &fakeCache{})

	_, err := u.ListAll(context.Background())

	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
