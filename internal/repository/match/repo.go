package match

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/donorlink/internal/model"
)

var ErrMatchNotFound = errors.New("match not found")

// Repository provides methods to interact with the matches table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new match repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// ListByDonor returns every match of the donor joined with its request and
// the request's hospital, newest matched_at first.
func (r *Repository) ListByDonor(ctx context.Context, donorID uuid.UUID) ([]model.Match, error) {
	query := `
		SELECT m.id, m.request_id, m.donor_id, m.status, m.matched_at, m.responded_at, m.notes,
		       r.id, r.patient_name, r.organ_needed, r.blood_type_needed, r.urgency,
		       r.description, r.city, r.created_at,
		       h.name, h.address
		FROM matches m
		JOIN requests r ON r.id = m.request_id
		LEFT JOIN hospitals h ON h.id = r.hospital_id
		WHERE m.donor_id = $1
		ORDER BY m.matched_at DESC;
    `

	rows, err := r.db.QueryContext(ctx, query, donorID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	matches := make([]model.Match, 0)
	for rows.Next() {
		var (
			m                        model.Match
			status                   string
			matchedAt, respondedAt   sql.NullTime
			notes, description       sql.NullString
			createdAt                sql.NullTime
			hospitalName, hospitalAd sql.NullString
		)

		err := rows.Scan(
			&m.ID, &m.RequestID, &m.DonorID, &status, &matchedAt, &respondedAt, &notes,
			&m.Request.ID, &m.Request.PatientName, &m.Request.OrganNeeded, &m.Request.BloodTypeNeeded, &m.Request.Urgency,
			&description, &m.Request.City, &createdAt,
			&hospitalName, &hospitalAd,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}

		m.Status = model.MatchStatus(status)
		m.MatchedAt = timePtr(matchedAt)
		m.RespondedAt = timePtr(respondedAt)
		m.Notes = stringPtr(notes)
		m.Request.Description = stringPtr(description)
		m.Request.CreatedAt = timePtr(createdAt)
		m.Request.Hospital = model.MatchHospital{Name: hospitalName.String, Address: hospitalAd.String}

		matches = append(matches, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate matches: %w", err)
	}

	return matches, nil
}

// UpdateStatus sets the status and response time of a match by its ID.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.MatchStatus, respondedAt time.Time) error {
	query := `
		UPDATE matches
		SET status = $1, responded_at = $2
		WHERE id = $3;
    `

	res, err := r.db.ExecContext(ctx, query, string(status), respondedAt, id.String())
	if err != nil {
		return fmt.Errorf("failed to update match: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrMatchNotFound
	}

	return nil
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}

	v := t.Time
	return &v
}

func stringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}

	v := s.String
	return &v
}
