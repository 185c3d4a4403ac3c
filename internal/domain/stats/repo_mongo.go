package stats

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoRepo struct {
	patients   *mongo.Collection
	vitalSigns *mongo.Collection
}

func NewMongoRepo(db *mongo.Database) Repository {
	return &mongoRepo{
		patients:   db.Collection("patients"),
		vitalSigns: db.Collection("vital_signs"),
	}
}

func (r *mongoRepo) CountAdmitted(ctx context.Context) (int64, error) {
	n, err := r.patients.CountDocuments(ctx, bson.M{"discharged": "No"})
	if err != nil {
		return 0, fmt.Errorf("count admitted patients: %w", err)
	}
	return n, nil
}

func (r *mongoRepo) CountAdmittedHighRisk(ctx context.Context) (int64, error) {
	n, err := r.patients.CountDocuments(ctx, bson.M{"discharged": "No", "high_risk": "Yes"})
	if err != nil {
		return 0, fmt.Errorf("count high-risk patients: %w", err)
	}
	return n, nil
}

func (r *mongoRepo) CountDischarged(ctx context.Context) (int64, error) {
	n, err := r.patients.CountDocuments(ctx, bson.M{"discharged": "Yes"})
	if err != nil {
		return 0, fmt.Errorf("count discharged patients: %w", err)
	}
	return n, nil
}

func (r *mongoRepo) WardCounts(ctx context.Context) ([]WardCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"discharged": "No"}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$ward_number",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
	cursor, err := r.patients.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate ward counts: %w", err)
	}
	defer cursor.Close(ctx)

	var counts []WardCount
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("decode ward counts: %w", err)
	}
	return counts, nil
}

func (r *mongoRepo) CountVitalSigns(ctx context.Context) (int64, error) {
	n, err := r.vitalSigns.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count vital signs: %w", err)
	}
	return n, nil
}
