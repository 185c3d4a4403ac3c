package vitals

import (
	"time"

	"github.com/wardtrack/wardtrack/internal/platform/apperrors"
)

// FluidStatus is the state of a running IV fluids line.
type FluidStatus string

const (
	FluidRunning   FluidStatus = "running"
	FluidCompleted FluidStatus = "completed"
	FluidStopped   FluidStatus = "stopped"
)

func (s FluidStatus) Valid() bool {
	switch s {
	case FluidRunning, FluidCompleted, FluidStopped:
		return true
	}
	return false
}

// VitalSigns is one bedside observation. PatientID references the patient's
// system id; PatientName, WardNumber and BedNumber are copied from the
// patient record at creation time and deliberately not kept in sync, so the
// observation reflects the bed state at the moment it was taken.
type VitalSigns struct {
	ID                 string      `bson:"id" json:"id"`
	PatientID          string      `bson:"patient_id" json:"patient_id"`
	PatientName        string      `bson:"patient_name" json:"patient_name"`
	WardNumber         string      `bson:"ward_number" json:"ward_number"`
	BedNumber          string      `bson:"bed_number" json:"bed_number"`
	MonitoringDatetime time.Time   `bson:"monitoring_datetime" json:"monitoring_datetime"`
	BloodPressure      string      `bson:"blood_pressure" json:"blood_pressure"`
	HeartRate          int         `bson:"heart_rate" json:"heart_rate"`
	Temperature        float64     `bson:"temperature" json:"temperature"`
	RespiratoryRate    int         `bson:"respiratory_rate" json:"respiratory_rate"`
	SpO2               int         `bson:"spo2" json:"spo2"`
	PainScore          int         `bson:"pain_score" json:"pain_score"`
	IVFluidsType       string      `bson:"iv_fluids_type" json:"iv_fluids_type"`
	IVFluidsVolume     *int        `bson:"iv_fluids_volume" json:"iv_fluids_volume"`
	IVFluidsStatus     FluidStatus `bson:"iv_fluids_status" json:"iv_fluids_status"`
	IVMedications      string      `bson:"iv_medications" json:"iv_medications"`
	OralIntake         string      `bson:"oral_intake" json:"oral_intake"`
	UrineOutput        *int        `bson:"urine_output" json:"urine_output"`
	OtherOutput        string      `bson:"other_output" json:"other_output"`
	AdditionalNotes    string      `bson:"additional_notes" json:"additional_notes"`
	CreatedAt          time.Time   `bson:"created_at" json:"created_at"`
}

// CreateInput is the payload for recording an observation. The snapshot
// fields are filled from the referenced patient, never from the caller.
// The core measurements are pointers so an omitted reading is
// distinguishable from a genuine zero and can be rejected.
type CreateInput struct {
	PatientID          string      `json:"patient_id"`
	MonitoringDatetime time.Time   `json:"monitoring_datetime"`
	BloodPressure      string      `json:"blood_pressure"`
	HeartRate          *int        `json:"heart_rate"`
	Temperature        *float64    `json:"temperature"`
	RespiratoryRate    *int        `json:"respiratory_rate"`
	SpO2               *int        `json:"spo2"`
	PainScore          *int        `json:"pain_score"`
	IVFluidsType       string      `json:"iv_fluids_type"`
	IVFluidsVolume     *int        `json:"iv_fluids_volume"`
	IVFluidsStatus     FluidStatus `json:"iv_fluids_status"`
	IVMedications      string      `json:"iv_medications"`
	OralIntake         string      `json:"oral_intake"`
	UrineOutput        *int        `json:"urine_output"`
	OtherOutput        string      `json:"other_output"`
	AdditionalNotes    string      `json:"additional_notes"`
}

// Validate checks required fields, the pain score range and the fluid
// status enum, defaulting an omitted status to running.
func (in *CreateInput) Validate() error {
	if in.PatientID == "" {
		return apperrors.Validation("patient_id is required")
	}
	if in.MonitoringDatetime.IsZero() {
		return apperrors.Validation("monitoring_datetime is required")
	}
	if in.BloodPressure == "" {
		return apperrors.Validation("blood_pressure is required")
	}
	if in.HeartRate == nil {
		return apperrors.Validation("heart_rate is required")
	}
	if in.Temperature == nil {
		return apperrors.Validation("temperature is required")
	}
	if in.RespiratoryRate == nil {
		return apperrors.Validation("respiratory_rate is required")
	}
	if in.SpO2 == nil {
		return apperrors.Validation("spo2 is required")
	}
	if in.PainScore == nil {
		return apperrors.Validation("pain_score is required")
	}
	if *in.PainScore < 0 || *in.PainScore > 10 {
		return apperrors.Validation("pain_score must be between 0 and 10")
	}
	if in.IVFluidsStatus == "" {
		in.IVFluidsStatus = FluidRunning
	}
	if !in.IVFluidsStatus.Valid() {
		return apperrors.Validation("iv_fluids_status must be %q, %q or %q",
			FluidRunning, FluidCompleted, FluidStopped)
	}
	return nil
}

// Filter narrows List results; all set fields AND together. Limit caps the
// result count, with a server-side default when unset.
type Filter struct {
	PatientID string
	Ward      string
	Limit     int
}
