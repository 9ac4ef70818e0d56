package model

import (
	"time"

	"github.com/google/uuid"
)

// MatchStatus is the lifecycle state of a donor match.
type MatchStatus string

const (
	MatchPending   MatchStatus = "pending"
	MatchAccepted  MatchStatus = "accepted"
	MatchDeclined  MatchStatus = "declined"
	MatchCompleted MatchStatus = "completed"
)

// IsResponse reports whether the status is one a donor may answer a match with.
func (s MatchStatus) IsResponse() bool {
	return s == MatchAccepted || s == MatchDeclined
}

// Match represents a pairing between a donor and a hospital request,
// joined with the request and hospital it points at.
type Match struct {
	ID          uuid.UUID    `json:"id"`                     // unique identifier of the match
	RequestID   uuid.UUID    `json:"request_id"`             // request the donor was matched with
	DonorID     uuid.UUID    `json:"donor_id"`               // matched donor
	Status      MatchStatus  `json:"status"`                 // pending, accepted, declined or completed
	MatchedAt   *time.Time   `json:"matched_at"`             // set by the database when the match is computed
	RespondedAt *time.Time   `json:"responded_at,omitempty"` // set when the donor answers
	Notes       *string      `json:"notes,omitempty"`        // optional free text
	Request     MatchRequest `json:"requests"`               // read-only projection of the request
}

// MatchRequest is the request projection embedded into a Match.
type MatchRequest struct {
	ID              uuid.UUID     `json:"id"`
	PatientName     string        `json:"patient_name"`
	OrganNeeded     string        `json:"organ_needed"`
	BloodTypeNeeded string        `json:"blood_type_needed"`
	Urgency         string        `json:"urgency"`
	Description     *string       `json:"description,omitempty"`
	City            string        `json:"city"`
	CreatedAt       *time.Time    `json:"created_at"`
	Hospital        MatchHospital `json:"hospitals"`
}

// MatchHospital is the hospital projection embedded into a MatchRequest.
type MatchHospital struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// MatchCard is a match as shown to the donor, with the in-flight marker.
type MatchCard struct {
	Match
	Updating bool `json:"updating"` // a status update for this match is outstanding
}

// MatchBoard is a snapshot of a donor's matches.
type MatchBoard struct {
	Loading bool        `json:"loading"`
	Matches []MatchCard `json:"matches"`
}
