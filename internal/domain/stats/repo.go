package stats

import "context"

// Repository answers the count queries behind the overview. Implementations
// read the same collections the patient and vitals repositories write.
type Repository interface {
	CountAdmitted(ctx context.Context) (int64, error)
	CountAdmittedHighRisk(ctx context.Context) (int64, error)
	CountDischarged(ctx context.Context) (int64, error)
	WardCounts(ctx context.Context) ([]WardCount, error)
	CountVitalSigns(ctx context.Context) (int64, error)
}
