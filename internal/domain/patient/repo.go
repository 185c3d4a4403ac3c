package patient

import "context"

type Repository interface {
	Insert(ctx context.Context, p *Patient) error
	FindByID(ctx context.Context, id string) (*Patient, error)
	FindByPatientID(ctx context.Context, patientID string) (*Patient, error)
	List(ctx context.Context, f Filter) ([]*Patient, error)
	// Update applies a $set-style patch of stored field names and returns
	// the resulting record.
	Update(ctx context.Context, id string, set map[string]interface{}) (*Patient, error)
	Delete(ctx context.Context, id string) error
}
