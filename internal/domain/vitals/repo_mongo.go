package vitals

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wardtrack/wardtrack/internal/platform/apperrors"
	"github.com/wardtrack/wardtrack/pkg/pagination"
)

const collectionName = "vital_signs"

type mongoRepo struct {
	collection *mongo.Collection
}

func NewMongoRepo(db *mongo.Database) Repository {
	return &mongoRepo{collection: db.Collection(collectionName)}
}

func (r *mongoRepo) Insert(ctx context.Context, vs *VitalSigns) error {
	if _, err := r.collection.InsertOne(ctx, vs); err != nil {
		return fmt.Errorf("insert vital signs: %w", err)
	}
	return nil
}

func (r *mongoRepo) FindByID(ctx context.Context, id string) (*VitalSigns, error) {
	var vs VitalSigns
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&vs)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFound("vital signs record not found")
	}
	if err != nil {
		return nil, fmt.Errorf("find vital signs: %w", err)
	}
	return &vs, nil
}

func (r *mongoRepo) List(ctx context.Context, f Filter) ([]*VitalSigns, error) {
	query := bson.M{}
	if f.PatientID != "" {
		query["patient_id"] = f.PatientID
	}
	if f.Ward != "" {
		query["ward_number"] = f.Ward
	}

	limit := f.Limit
	if limit <= 0 {
		limit = pagination.DefaultLimit
	}
	if limit > pagination.MaxLimit {
		limit = pagination.MaxLimit
	}

	// Newest observations first.
	opts := options.Find().
		SetSort(bson.D{{Key: "monitoring_datetime", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list vital signs: %w", err)
	}
	defer cursor.Close(ctx)

	var records []*VitalSigns
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode vital signs: %w", err)
	}
	return records, nil
}

func (r *mongoRepo) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete vital signs: %w", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.NotFound("vital signs record not found")
	}
	return nil
}

func (r *mongoRepo) DeleteByPatient(ctx context.Context, patientID string) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"patient_id": patientID})
	if err != nil {
		return 0, fmt.Errorf("delete vital signs for patient: %w", err)
	}
	return result.DeletedCount, nil
}
