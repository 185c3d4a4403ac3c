package patient

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wardtrack/wardtrack/internal/platform/apperrors"
)

const (
	collectionName = "patients"

	// maxListResults caps unpaginated list queries.
	maxListResults = 1000
)

type mongoRepo struct {
	collection *mongo.Collection
}

func NewMongoRepo(db *mongo.Database) Repository {
	return &mongoRepo{collection: db.Collection(collectionName)}
}

func (r *mongoRepo) Insert(ctx context.Context, p *Patient) error {
	_, err := r.collection.InsertOne(ctx, p)
	if err != nil {
		// The unique index on patient_id is what actually enforces
		// uniqueness; translate its violation into the domain error.
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.Conflict("patient ID %q already exists", p.PatientID)
		}
		return fmt.Errorf("insert patient: %w", err)
	}
	return nil
}

func (r *mongoRepo) FindByID(ctx context.Context, id string) (*Patient, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *mongoRepo) FindByPatientID(ctx context.Context, patientID string) (*Patient, error) {
	return r.findOne(ctx, bson.M{"patient_id": patientID})
}

func (r *mongoRepo) findOne(ctx context.Context, filter bson.M) (*Patient, error) {
	var p Patient
	err := r.collection.FindOne(ctx, filter).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NotFound("patient not found")
	}
	if err != nil {
		return nil, fmt.Errorf("find patient: %w", err)
	}
	return &p, nil
}

func (r *mongoRepo) List(ctx context.Context, f Filter) ([]*Patient, error) {
	query := bson.M{}

	if f.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"full_name": pattern},
			bson.M{"patient_id": pattern},
			bson.M{"ward_number": pattern},
		}
	}
	if f.HighRisk != nil {
		query["high_risk"] = YesNoFromBool(*f.HighRisk)
	}
	if f.Discharged != nil {
		query["discharged"] = YesNoFromBool(*f.Discharged)
	}
	if f.Ward != "" {
		query["ward_number"] = f.Ward
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "ward_number", Value: 1}}).
		SetLimit(maxListResults)

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	defer cursor.Close(ctx)

	var patients []*Patient
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, fmt.Errorf("decode patients: %w", err)
	}
	return patients, nil
}

func (r *mongoRepo) Update(ctx context.Context, id string, set map[string]interface{}) (*Patient, error) {
	result, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("update patient: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, apperrors.NotFound("patient not found")
	}
	return r.FindByID(ctx, id)
}

func (r *mongoRepo) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}
	if result.DeletedCount == 0 {
		return apperrors.NotFound("patient not found")
	}
	return nil
}
