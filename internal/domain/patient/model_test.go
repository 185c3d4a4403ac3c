package patient

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/wardtrack/wardtrack/internal/platform/apperrors"
	"github.com/wardtrack/wardtrack/pkg/civildate"
)

func TestYesNo(t *testing.T) {
	if !Yes.Valid() || !No.Valid() {
		t.Error("expected Yes and No to be valid")
	}
	if YesNo("true").Valid() {
		t.Error("expected non-literal values to be invalid")
	}
	if !Yes.Bool() || No.Bool() {
		t.Error("expected Yes=true, No=false")
	}
	if YesNoFromBool(true) != Yes || YesNoFromBool(false) != No {
		t.Error("expected boolean round-trip to the stored literals")
	}
}

func TestCreateInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateInput)
		wantErr bool
	}{
		{"valid", func(in *CreateInput) {}, false},
		{"missing patient_id", func(in *CreateInput) { in.PatientID = "" }, true},
		{"missing full_name", func(in *CreateInput) { in.FullName = "" }, true},
		{"missing address", func(in *CreateInput) { in.Address = "" }, true},
		{"missing ward_number", func(in *CreateInput) { in.WardNumber = "" }, true},
		{"missing bed_number", func(in *CreateInput) { in.BedNumber = "" }, true},
		{"missing diagnosis", func(in *CreateInput) { in.Diagnosis = "" }, true},
		{"zero birthdate", func(in *CreateInput) { in.Birthdate = civildate.Date{} }, true},
		{"zero admission_date", func(in *CreateInput) { in.AdmissionDate = civildate.Date{} }, true},
		{"bad high_risk", func(in *CreateInput) { in.HighRisk = "yes" }, true},
		{"bad discharged", func(in *CreateInput) { in.Discharged = "nope" }, true},
		{"explicit flags", func(in *CreateInput) { in.HighRisk = Yes; in.Discharged = No }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validCreateInput()
			tt.mutate(in)
			err := in.Validate()
			if tt.wantErr {
				if !apperrors.IsValidation(err) {
					t.Errorf("expected Validation, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestCreateInputValidate_StableFieldOrder(t *testing.T) {
	// With several fields missing the first declared one is reported,
	// so repeated submissions see the same message.
	in := &CreateInput{}
	for i := 0; i < 10; i++ {
		err := in.Validate()
		if err == nil || err.Error() != "patient_id is required" {
			t.Fatalf("expected %q, got %v", "patient_id is required", err)
		}
	}
}

func TestCreateInputValidate_DefaultsFlags(t *testing.T) {
	in := validCreateInput()
	if err := in.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.HighRisk != No || in.Discharged != No {
		t.Errorf("expected omitted flags to default to No, got %s/%s", in.HighRisk, in.Discharged)
	}
}

func TestUpdateInputValidate(t *testing.T) {
	bad := YesNo("sometimes")
	zero := civildate.Date{}
	good := civildate.New(2025, time.August, 2)

	if err := (&UpdateInput{}).Validate(); err != nil {
		t.Errorf("empty patch must validate, got %v", err)
	}
	if err := (&UpdateInput{HighRisk: &bad}).Validate(); !apperrors.IsValidation(err) {
		t.Errorf("expected Validation for bad high_risk, got %v", err)
	}
	if err := (&UpdateInput{Birthdate: &zero}).Validate(); !apperrors.IsValidation(err) {
		t.Errorf("expected Validation for zero birthdate, got %v", err)
	}
	if err := (&UpdateInput{AdmissionDate: &good}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestUpdateInput_OmittedFieldsStayNil(t *testing.T) {
	var in UpdateInput
	if err := json.Unmarshal([]byte(`{"diagnosis":"Anemia"}`), &in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Diagnosis == nil || *in.Diagnosis != "Anemia" {
		t.Error("expected diagnosis to be set")
	}
	if in.FullName != nil || in.Birthdate != nil || in.HighRisk != nil {
		t.Error("expected omitted fields to stay nil")
	}
}

func TestPatientJSONShape(t *testing.T) {
	p := &Patient{
		ID:            "abc",
		PatientID:     "MAT2025001",
		FullName:      "Sarah Johnson",
		Age:           30,
		Birthdate:     civildate.New(1995, time.March, 15),
		AdmissionDate: civildate.New(2025, time.August, 1),
		HighRisk:      No,
		Discharged:    No,
	}
	raw, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m["birthdate"] != "1995-03-15" {
		t.Errorf("expected calendar-date birthdate, got %v", m["birthdate"])
	}
	if m["high_risk"] != "No" {
		t.Errorf("expected Yes/No literal, got %v", m["high_risk"])
	}
	if _, ok := m["patient_id"]; !ok {
		t.Error("expected snake_case patient_id key")
	}
}
