package model

import (
	"time"

	"github.com/google/uuid"
)

// RequestSummary is the part of a request needed to word a notification.
type RequestSummary struct {
	ID              uuid.UUID     `json:"id"`
	PatientName     string        `json:"patient_name"`
	OrganNeeded     string        `json:"organ_needed"`
	BloodTypeNeeded string        `json:"blood_type_needed"`
	Urgency         string        `json:"urgency"`
	City            string        `json:"city"`
	HospitalID      uuid.UUID     `json:"hospital_id"`
	HospitalName    string        `json:"hospital_name"`     // empty when the hospital row is missing
	HospitalOwnerID uuid.NullUUID `json:"hospital_owner_id"` // profile owning the hospital
}

// Request is a hospital's posted need as listed to hospitals and admins.
type Request struct {
	ID              uuid.UUID  `json:"id"`
	PatientName     string     `json:"patient_name"`
	PatientAge      *int       `json:"patient_age,omitempty"`
	OrganNeeded     string     `json:"organ_needed"`
	BloodTypeNeeded string     `json:"blood_type_needed"`
	Urgency         string     `json:"urgency"`
	Description     *string    `json:"description,omitempty"`
	City            string     `json:"city"`
	RequiredBy      *time.Time `json:"required_by,omitempty"`
	Status          string     `json:"status"`
	CreatedAt       *time.Time `json:"created_at"`
	Hospital        *Hospital  `json:"hospitals,omitempty"`
}

// AnonymizedRequest is a request with patient-identifying fields redacted,
// as returned by the matching procedures.
type AnonymizedRequest struct {
	ID                    uuid.UUID  `json:"id"`
	AnonymizedPatientName string     `json:"anonymized_patient_name"`
	OrganNeeded           string     `json:"organ_needed"`
	BloodTypeNeeded       string     `json:"blood_type_needed"`
	Urgency               string     `json:"urgency"`
	City                  string     `json:"city"`
	RequiredBy            *time.Time `json:"required_by,omitempty"`
	Status                string     `json:"status"`
	CreatedAt             *time.Time `json:"created_at"`
	HospitalID            uuid.UUID  `json:"hospital_id"`
	HospitalName          string     `json:"hospital_name"`
	HospitalAddress       string     `json:"hospital_address"`
	HospitalVerified      bool       `json:"hospital_verified"`
}

// NewRequest holds the fields a hospital submits to open a request.
type NewRequest struct {
	PatientName     string
	PatientAge      *int
	OrganNeeded     string
	BloodTypeNeeded string
	Urgency         string
	Description     *string
	City            string
	RequiredBy      *time.Time
}

// RequestBoard is the role-dependent request listing.
type RequestBoard struct {
	Requests   []Request           `json:"requests,omitempty"`
	Anonymized []AnonymizedRequest `json:"anonymized,omitempty"`
	Verified   *bool               `json:"verified,omitempty"` // set for NGO profiles only
}
