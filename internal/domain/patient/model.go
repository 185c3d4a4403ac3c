package patient

import (
	"time"

	"github.com/wardtrack/wardtrack/internal/platform/apperrors"
	"github.com/wardtrack/wardtrack/pkg/civildate"
)

// YesNo is the closed Yes/No flag used for clinical booleans. The literal
// strings are the stored and serialized representation; boolean query
// parameters map onto them at the handler boundary.
type YesNo string

const (
	Yes YesNo = "Yes"
	No  YesNo = "No"
)

func (y YesNo) Valid() bool { return y == Yes || y == No }

// Bool maps Yes to true and anything else to false.
func (y YesNo) Bool() bool { return y == Yes }

// YesNoFromBool maps a boolean filter value back to the stored literal.
func YesNoFromBool(b bool) YesNo {
	if b {
		return Yes
	}
	return No
}

// Patient is one admitted individual's record in the patients collection.
// The id field is the system identity; patient_id is the human-assigned
// hospital identifier and is unique across the collection. Age is derived
// from birthdate and recomputed on every read; the stored value is never
// authoritative.
type Patient struct {
	ID            string         `bson:"id" json:"id"`
	PatientID     string         `bson:"patient_id" json:"patient_id"`
	FullName      string         `bson:"full_name" json:"full_name"`
	Age           int            `bson:"age" json:"age"`
	Birthdate     civildate.Date `bson:"birthdate" json:"birthdate"`
	Address       string         `bson:"address" json:"address"`
	WardNumber    string         `bson:"ward_number" json:"ward_number"`
	BedNumber     string         `bson:"bed_number" json:"bed_number"`
	AdmissionDate civildate.Date `bson:"admission_date" json:"admission_date"`
	Diagnosis     string         `bson:"diagnosis" json:"diagnosis"`
	HighRisk      YesNo          `bson:"high_risk" json:"high_risk"`
	Discharged    YesNo          `bson:"discharged" json:"discharged"`
	Notes         string         `bson:"notes" json:"notes"`
	CreatedAt     time.Time      `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time      `bson:"updated_at" json:"updated_at"`
}

// CreateInput is the payload for admitting a patient.
type CreateInput struct {
	PatientID     string         `json:"patient_id"`
	FullName      string         `json:"full_name"`
	Birthdate     civildate.Date `json:"birthdate"`
	Address       string         `json:"address"`
	WardNumber    string         `json:"ward_number"`
	BedNumber     string         `json:"bed_number"`
	AdmissionDate civildate.Date `json:"admission_date"`
	Diagnosis     string         `json:"diagnosis"`
	HighRisk      YesNo          `json:"high_risk"`
	Discharged    YesNo          `json:"discharged"`
	Notes         string         `json:"notes"`
}

// Validate checks required fields and enum values, defaulting the Yes/No
// flags to No when omitted.
func (in *CreateInput) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"patient_id", in.PatientID},
		{"full_name", in.FullName},
		{"address", in.Address},
		{"ward_number", in.WardNumber},
		{"bed_number", in.BedNumber},
		{"diagnosis", in.Diagnosis},
	}
	for _, r := range required {
		if r.value == "" {
			return apperrors.Validation("%s is required", r.field)
		}
	}
	if in.Birthdate.IsZero() {
		return apperrors.Validation("birthdate is required")
	}
	if in.AdmissionDate.IsZero() {
		return apperrors.Validation("admission_date is required")
	}
	if in.HighRisk == "" {
		in.HighRisk = No
	}
	if in.Discharged == "" {
		in.Discharged = No
	}
	if !in.HighRisk.Valid() {
		return apperrors.Validation("high_risk must be %q or %q", Yes, No)
	}
	if !in.Discharged.Valid() {
		return apperrors.Validation("discharged must be %q or %q", Yes, No)
	}
	return nil
}

// UpdateInput is a partial patch: nil fields are left untouched. There is
// no way to null out a stored field through this type.
type UpdateInput struct {
	FullName      *string         `json:"full_name"`
	Address       *string         `json:"address"`
	WardNumber    *string         `json:"ward_number"`
	BedNumber     *string         `json:"bed_number"`
	AdmissionDate *civildate.Date `json:"admission_date"`
	Diagnosis     *string         `json:"diagnosis"`
	HighRisk      *YesNo          `json:"high_risk"`
	Discharged    *YesNo          `json:"discharged"`
	Notes         *string         `json:"notes"`
	Birthdate     *civildate.Date `json:"birthdate"`
}

func (in *UpdateInput) Validate() error {
	if in.HighRisk != nil && !in.HighRisk.Valid() {
		return apperrors.Validation("high_risk must be %q or %q", Yes, No)
	}
	if in.Discharged != nil && !in.Discharged.Valid() {
		return apperrors.Validation("discharged must be %q or %q", Yes, No)
	}
	if in.Birthdate != nil && in.Birthdate.IsZero() {
		return apperrors.Validation("birthdate must be a valid date")
	}
	if in.AdmissionDate != nil && in.AdmissionDate.IsZero() {
		return apperrors.Validation("admission_date must be a valid date")
	}
	return nil
}

// Filter narrows List results. Search is an OR-group substring match over
// full_name, patient_id and ward_number; the remaining fields AND together.
type Filter struct {
	Search     string
	HighRisk   *bool
	Discharged *bool
	Ward       string
}
