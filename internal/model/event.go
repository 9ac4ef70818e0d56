package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Op is the row operation a change event reports.
type Op string

const (
	OpInsert Op = "INSERT"
	OpUpdate Op = "UPDATE"
	OpDelete Op = "DELETE"
)

// MatchesTable is the table match change events originate from.
const MatchesTable = "matches"

// ChangeEvent is a row-level change pushed by the database change feed.
type ChangeEvent struct {
	Schema          string          `json:"schema"`
	Table           string          `json:"table"`
	Type            Op              `json:"eventType"`
	CommitTimestamp time.Time       `json:"commit_timestamp"`
	New             json.RawMessage `json:"new,omitempty"` // row image after the change
	Old             json.RawMessage `json:"old,omitempty"` // row image before an update, when replicated
}

// MatchRow is the raw matches row carried by a change event.
type MatchRow struct {
	ID          uuid.UUID   `json:"id"`
	RequestID   uuid.UUID   `json:"request_id"`
	DonorID     uuid.UUID   `json:"donor_id"`
	Status      MatchStatus `json:"status"`
	MatchedAt   *time.Time  `json:"matched_at"`
	RespondedAt *time.Time  `json:"responded_at"`
	Notes       *string     `json:"notes"`
}

// MatchRows decodes the new row image and, when present, the old one.
func (e ChangeEvent) MatchRows() (MatchRow, *MatchRow, error) {
	var newRow MatchRow
	if len(e.New) == 0 {
		return newRow, nil, fmt.Errorf("%s event on %s carries no new row", e.Type, e.Table)
	}

	if err := json.Unmarshal(e.New, &newRow); err != nil {
		return newRow, nil, fmt.Errorf("decode new row: %w", err)
	}

	if len(e.Old) == 0 || string(e.Old) == "null" {
		return newRow, nil, nil
	}

	var oldRow MatchRow
	if err := json.Unmarshal(e.Old, &oldRow); err != nil {
		return newRow, nil, fmt.Errorf("decode old row: %w", err)
	}

	return newRow, &oldRow, nil
}
