// Package db owns the MongoDB client lifecycle: connection bootstrap,
// index management and the database health endpoint.
package db

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

// Connect establishes and pings a MongoDB client.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return client, nil
}

// EnsureIndexes creates the indexes the record managers rely on. The unique
// index on patients.patient_id is what actually enforces hospital-ID
// uniqueness under concurrent creates; the service-level existence check
// only provides the friendly error message.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	_, err := database.Collection("patients").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "patient_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("UniqueHospitalPatientID"),
		},
		{
			Keys:    bson.D{{Key: "ward_number", Value: 1}},
			Options: options.Index().SetName("PatientWardNumber"),
		},
	})
	if err != nil {
		return fmt.Errorf("create patient indexes: %w", err)
	}

	_, err = database.Collection("vital_signs").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "patient_id", Value: 1}},
			Options: options.Index().SetName("VitalSignsPatientRef"),
		},
		{
			Keys:    bson.D{{Key: "monitoring_datetime", Value: -1}},
			Options: options.Index().SetName("VitalSignsMonitoringTime"),
		},
	})
	if err != nil {
		return fmt.Errorf("create vital signs indexes: %w", err)
	}
	return nil
}

// HealthHandler returns a handler for the database health check endpoint.
func HealthHandler(client *mongo.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
				"status": "unhealthy",
				"error":  err.Error(),
			})
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status": "healthy",
		})
	}
}
