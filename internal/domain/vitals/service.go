package vitals

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/wardtrack/wardtrack/internal/domain/patient"
)

// PatientDirectory resolves a patient by system id. Implemented by the
// patient service; only the lookup is needed here.
type PatientDirectory interface {
	Get(ctx context.Context, id string) (*patient.Patient, error)
}

type Service struct {
	repo     Repository
	patients PatientDirectory
}

func NewService(repo Repository, patients PatientDirectory) *Service {
	return &Service{repo: repo, patients: patients}
}

// Create records an observation. The referenced patient must exist; their
// name, ward and bed are copied onto the record so it stays a faithful
// point-in-time snapshot even after transfers or discharge.
func (s *Service) Create(ctx context.Context, in *CreateInput) (*VitalSigns, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	p, err := s.patients.Get(ctx, in.PatientID)
	if err != nil {
		return nil, err
	}

	vs := &VitalSigns{
		ID:                 uuid.NewString(),
		PatientID:          p.ID,
		PatientName:        p.FullName,
		WardNumber:         p.WardNumber,
		BedNumber:          p.BedNumber,
		MonitoringDatetime: in.MonitoringDatetime,
		BloodPressure:      in.BloodPressure,
		HeartRate:          *in.HeartRate,
		Temperature:        *in.Temperature,
		RespiratoryRate:    *in.RespiratoryRate,
		SpO2:               *in.SpO2,
		PainScore:          *in.PainScore,
		IVFluidsType:       in.IVFluidsType,
		IVFluidsVolume:     in.IVFluidsVolume,
		IVFluidsStatus:     in.IVFluidsStatus,
		IVMedications:      in.IVMedications,
		OralIntake:         in.OralIntake,
		UrineOutput:        in.UrineOutput,
		OtherOutput:        in.OtherOutput,
		AdditionalNotes:    in.AdditionalNotes,
		CreatedAt:          time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, vs); err != nil {
		return nil, err
	}
	return vs, nil
}

func (s *Service) Get(ctx context.Context, id string) (*VitalSigns, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f Filter) ([]*VitalSigns, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// DeleteByPatient satisfies the patient package's cascade hook.
func (s *Service) DeleteByPatient(ctx context.Context, patientID string) (int64, error) {
	return s.repo.DeleteByPatient(ctx, patientID)
}
