package repository

import (
	"context"

	"student-recommendation-platform/internal/domain/entity"
	domainRepo "student-recommendation-platform/internal/domain/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const studentsCollection = "students"

type studentProfileRepository struct {
	col *mongo.Collection
}

func NewStudentProfileRepository(db *mongo.Database) domainRepo.StudentProfileRepository {
	return &studentProfileRepository{col: db.Collection(studentsCollection)}
}

// UpsertByName relies on a single atomic ReplaceOne with upsert enabled. A separate
// exists-check plus insert would open a race between two first submissions for the
// same name; the store's upsert primitive resolves that for us.
func (r *studentProfileRepository) UpsertByName(ctx context.Context, profile *entity.StudentProfile) (*domainRepo.UpsertResult, error) {
	filter := bson.M{"name": profile.Name}

	result, err := r.col.ReplaceOne(ctx, filter, profile, options.Replace().SetUpsert(true))
	if err != nil {
		return nil, err
	}

	return &domainRepo.UpsertResult{Created: result.UpsertedCount > 0}, nil
}

func (r *studentProfileRepository) FindAll(ctx context.Context) ([]entity.StudentProfile, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var profiles []entity.StudentProfile
	if err := cur.All(ctx, &profiles); err != nil {
		return nil, err
	}

	return profiles, nil
}

// EnsureIndexes creates the unique index backing the one-document-per-name invariant.
// With atomic upserts the index should never actually reject a write; it stays as a
// guard against non-atomic writers sharing the collection.
func (r *studentProfileRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_name"),
	})
	return err
}
