package vitals

import "context"

// Repository is the persistence boundary for vital signs observations.
type Repository interface {
	Insert(ctx context.Context, vs *VitalSigns) error
	FindByID(ctx context.Context, id string) (*VitalSigns, error)
	List(ctx context.Context, f Filter) ([]*VitalSigns, error)
	Delete(ctx context.Context, id string) error
	// DeleteByPatient removes every observation for one patient and
	// reports how many were removed. Used by the patient delete cascade.
	DeleteByPatient(ctx context.Context, patientID string) (int64, error)
}
