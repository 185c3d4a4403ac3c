package patient

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wardtrack/wardtrack/internal/platform/apperrors"
	"github.com/wardtrack/wardtrack/pkg/agecalc"
)

// VitalsPurger removes every vital-signs record referencing a patient's
// system id. Implemented by the vitals service; the interface lives here so
// the cascade can be wired without an import cycle.
type VitalsPurger interface {
	DeleteByPatient(ctx context.Context, patientID string) (int64, error)
}

type Service struct {
	repo   Repository
	vitals VitalsPurger
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SetVitalsPurger attaches the cascade target for Delete. The vitals
// service depends on this service for auto-fill, so the purger is wired
// after both are constructed.
func (s *Service) SetVitalsPurger(p VitalsPurger) {
	s.vitals = p
}

func (s *Service) Create(ctx context.Context, in *CreateInput) (*Patient, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	// Pre-check for a friendly Conflict; the unique index backs this up
	// under concurrent identical creates (see Insert).
	_, err := s.repo.FindByPatientID(ctx, in.PatientID)
	if err == nil {
		return nil, apperrors.Conflict("patient ID %q already exists", in.PatientID)
	}
	if !apperrors.IsNotFound(err) {
		return nil, err
	}

	now := time.Now().UTC()
	p := &Patient{
		ID:            uuid.NewString(),
		PatientID:     in.PatientID,
		FullName:      in.FullName,
		Age:           agecalc.Years(in.Birthdate.Time(), now),
		Birthdate:     in.Birthdate,
		Address:       in.Address,
		WardNumber:    in.WardNumber,
		BedNumber:     in.BedNumber,
		AdmissionDate: in.AdmissionDate,
		Diagnosis:     in.Diagnosis,
		HighRisk:      in.HighRisk,
		Discharged:    in.Discharged,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Insert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Patient, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Age = agecalc.Years(p.Birthdate.Time(), time.Now().UTC())
	return p, nil
}

func (s *Service) List(ctx context.Context, f Filter) ([]*Patient, error) {
	patients, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	for _, p := range patients {
		p.Age = agecalc.Years(p.Birthdate.Time(), now)
	}
	return patients, nil
}

func (s *Service) Update(ctx context.Context, id string, in *UpdateInput) (*Patient, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	set := map[string]interface{}{
		"updated_at": now,
	}
	if in.FullName != nil {
		set["full_name"] = *in.FullName
	}
	if in.Address != nil {
		set["address"] = *in.Address
	}
	if in.WardNumber != nil {
		set["ward_number"] = *in.WardNumber
	}
	if in.BedNumber != nil {
		set["bed_number"] = *in.BedNumber
	}
	if in.AdmissionDate != nil {
		set["admission_date"] = *in.AdmissionDate
	}
	if in.Diagnosis != nil {
		set["diagnosis"] = *in.Diagnosis
	}
	if in.HighRisk != nil {
		set["high_risk"] = *in.HighRisk
	}
	if in.Discharged != nil {
		set["discharged"] = *in.Discharged
	}
	if in.Notes != nil {
		set["notes"] = *in.Notes
	}

	// Keep the persisted age aligned with "now" whether or not the
	// birthdate is part of the patch.
	if in.Birthdate != nil {
		set["birthdate"] = *in.Birthdate
		set["age"] = agecalc.Years(in.Birthdate.Time(), now)
	} else {
		set["age"] = agecalc.Years(existing.Birthdate.Time(), now)
	}

	return s.repo.Update(ctx, id, set)
}

// Delete removes the patient and then every vital-signs record referencing
// it. The two steps are separate store operations: a crash in between
// leaves orphaned observations, which reads tolerate by never re-resolving
// the reference.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.vitals != nil {
		if _, err := s.vitals.DeleteByPatient(ctx, id); err != nil {
			return fmt.Errorf("cascade vital signs delete: %w", err)
		}
	}
	return nil
}
