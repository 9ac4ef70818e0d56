package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func validRequest() CreateRequest {
	return CreateRequest{
		PatientName:     "Jane Roe",
		OrganNeeded:     "kidney",
		BloodTypeNeeded: "AB-",
		Urgency:         "critical",
		City:            "New York",
	}
}

func TestCreateRequest_Validation(t *testing.T) {
	now = func() time.Time { return time.Date(2025, 4, 20, 15, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = time.Now })

	v := NewValidator()

	tests := []struct {
		name    string
		mutate  func(r *CreateRequest)
		wantErr string
	}{
		{"valid", func(r *CreateRequest) {}, ""},
		{"valid with optionals", func(r *CreateRequest) {
			r.PatientAge = intPtr(0)
			r.Description = strPtr("needs transplant")
			r.RequiredBy = strPtr("2025-04-20")
		}, ""},
		{"short name", func(r *CreateRequest) { r.PatientName = "J" }, "Patient name must be at least 2 characters"},
		{"digits in name", func(r *CreateRequest) { r.PatientName = "Jane 2" }, "Patient name can only contain letters and spaces"},
		{"unknown organ", func(r *CreateRequest) { r.OrganNeeded = "cornea" }, "Please select a valid organ/donation type"},
		{"unknown blood type", func(r *CreateRequest) { r.BloodTypeNeeded = "C+" }, "Please select a valid blood type"},
		{"unknown urgency", func(r *CreateRequest) { r.Urgency = "asap" }, "Please select a valid urgency level"},
		{"city punctuation", func(r *CreateRequest) { r.City = "St. Louis" }, "City can only contain letters and spaces"},
		{"age too high", func(r *CreateRequest) { r.PatientAge = intPtr(121) }, "Age must be less than 120"},
		{"negative age", func(r *CreateRequest) { r.PatientAge = intPtr(-1) }, "Age must be at least 0"},
		{"long description", func(r *CreateRequest) {
			b := make([]byte, 1001)
			for i := range b {
				b[i] = 'a'
			}
			r.Description = strPtr(string(b))
		}, "Description must be less than 1000 characters"},
		{"bad date", func(r *CreateRequest) { r.RequiredBy = strPtr("20/04/2025") }, "Please enter a valid date"},
		{"past date", func(r *CreateRequest) { r.RequiredBy = strPtr("2025-04-19") }, "Required date must be in the future"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := v.Struct(req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, Describe(err), tt.wantErr)
		})
	}
}

func TestCreateRequest_NormalizeAndConvert(t *testing.T) {
	req := validRequest()
	req.PatientName = "  Jane Roe "
	req.Description = strPtr("  urgent  ")
	req.RequiredBy = strPtr("2030-01-31")

	req.Normalize()
	assert.Equal(t, "Jane Roe", req.PatientName)
	assert.Equal(t, "urgent", *req.Description)

	m, err := req.ToModel()
	require.NoError(t, err)
	require.NotNil(t, m.RequiredBy)
	assert.Equal(t, time.Date(2030, 1, 31, 0, 0, 0, 0, time.UTC), *m.RequiredBy)
	assert.Equal(t, "AB-", m.BloodTypeNeeded)
}

func TestUpdateStatusRequest_Validation(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Struct(UpdateStatusRequest{Status: "accepted"}))
	assert.NoError(t, v.Struct(UpdateStatusRequest{Status: "declined"}))

	err := v.Struct(UpdateStatusRequest{Status: "completed"})
	require.Error(t, err)
	assert.Equal(t, "status must be accepted or declined", Describe(err))
}
