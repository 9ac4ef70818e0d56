package request

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/donorlink/internal/model"
)

// Repository provides access to hospital requests and the request matching
// procedures exposed by the database.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new request repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// ListPending returns pending requests with their hospital, newest first.
func (r *Repository) ListPending(ctx context.Context) ([]model.Request, error) {
	query := `
		SELECT r.id, r.patient_name, r.patient_age, r.organ_needed, r.blood_type_needed, r.urgency,
		       r.description, r.city, r.required_by, r.status, r.created_at,
		       h.id, h.name, h.address, h.verified
		FROM requests r
		LEFT JOIN hospitals h ON h.id = r.hospital_id
		WHERE r.status = 'pending'
		ORDER BY r.created_at DESC;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	defer rows.Close()

	requests := make([]model.Request, 0)
	for rows.Next() {
		var (
			req                   model.Request
			age                   sql.NullInt64
			description           sql.NullString
			requiredBy, createdAt sql.NullTime
			hospitalID            uuid.NullUUID
			name, address         sql.NullString
			verified              sql.NullBool
		)

		err := rows.Scan(
			&req.ID, &req.PatientName, &age, &req.OrganNeeded, &req.BloodTypeNeeded, &req.Urgency,
			&description, &req.City, &requiredBy, &req.Status, &createdAt,
			&hospitalID, &name, &address, &verified,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan request: %w", err)
		}

		if age.Valid {
			v := int(age.Int64)
			req.PatientAge = &v
		}
		if description.Valid {
			req.Description = &description.String
		}
		req.RequiredBy = timePtr(requiredBy)
		req.CreatedAt = timePtr(createdAt)

		if hospitalID.Valid {
			req.Hospital = &model.Hospital{
				ID:       hospitalID.UUID,
				Name:     name.String,
				Address:  address.String,
				Verified: verified.Bool,
			}
		}

		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate requests: %w", err)
	}

	return requests, nil
}

// Create inserts a pending request for the hospital and returns it.
func (r *Repository) Create(ctx context.Context, hospitalID uuid.UUID, req model.NewRequest) (model.Request, error) {
	query := `
		INSERT INTO requests (
		    hospital_id, patient_name, patient_age, organ_needed, blood_type_needed,
		    urgency, description, city, required_by, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 'pending')
		RETURNING id, created_at;
    `

	created := model.Request{
		PatientName:     req.PatientName,
		PatientAge:      req.PatientAge,
		OrganNeeded:     req.OrganNeeded,
		BloodTypeNeeded: req.BloodTypeNeeded,
		Urgency:         req.Urgency,
		Description:     req.Description,
		City:            req.City,
		RequiredBy:      req.RequiredBy,
		Status:          "pending",
	}

	var createdAt time.Time
	err := r.db.Master.QueryRowContext(
		ctx, query,
		hospitalID.String(), req.PatientName, nullInt(req.PatientAge), req.OrganNeeded, req.BloodTypeNeeded,
		req.Urgency, nullString(req.Description), req.City, nullTime(req.RequiredBy),
	).Scan(&created.ID, &createdAt)
	if err != nil {
		return model.Request{}, fmt.Errorf("failed to create request: %w", err)
	}

	created.CreatedAt = &createdAt

	return created, nil
}

// DonorMatchingRequests runs get_donor_matching_requests as the given profile.
func (r *Repository) DonorMatchingRequests(ctx context.Context, profileID uuid.UUID) ([]model.AnonymizedRequest, error) {
	var out []model.AnonymizedRequest

	err := r.asProfile(ctx, profileID, func(tx *sql.Tx) error {
		var err error
		out, err = scanAnonymized(ctx, tx, `SELECT `+anonymizedColumns+` FROM get_donor_matching_requests();`)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get donor matching requests: %w", err)
	}

	return out, nil
}

// IsVerifiedNGO runs is_verified_ngo as the given profile.
func (r *Repository) IsVerifiedNGO(ctx context.Context, profileID uuid.UUID) (bool, error) {
	var verified sql.NullBool

	err := r.asProfile(ctx, profileID, func(tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, `SELECT is_verified_ngo();`).Scan(&verified)
	})
	if err != nil {
		return false, fmt.Errorf("failed to check ngo verification: %w", err)
	}

	return verified.Bool, nil
}

// NGOAnonymizedRequests runs get_ngo_anonymized_requests as the given profile.
func (r *Repository) NGOAnonymizedRequests(ctx context.Context, profileID uuid.UUID) ([]model.AnonymizedRequest, error) {
	var out []model.AnonymizedRequest

	err := r.asProfile(ctx, profileID, func(tx *sql.Tx) error {
		var err error
		out, err = scanAnonymized(ctx, tx, `SELECT `+anonymizedColumns+` FROM get_ngo_anonymized_requests();`)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get ngo requests: %w", err)
	}

	return out, nil
}

const anonymizedColumns = `id, anonymized_patient_name, organ_needed, blood_type_needed, urgency, city, ` +
	`required_by, status, created_at, hospital_id, hospital_name, hospital_address, hospital_verified`

// asProfile runs fn in a transaction whose request.jwt.claims
// setting identifies the profile, so auth.uid() inside the procedures
// resolves to it.
func (r *Repository) asProfile(ctx context.Context, profileID uuid.UUID, fn func(tx *sql.Tx) error) error {
	claims, err := json.Marshal(map[string]string{"sub": profileID.String(), "role": "authenticated"})
	if err != nil {
		return fmt.Errorf("marshal claims: %w", err)
	}

	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `SELECT set_config('request.jwt.claims', $1, true);`, string(claims)); err != nil {
		return fmt.Errorf("set claims: %w", err)
	}

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func scanAnonymized(ctx context.Context, tx *sql.Tx, query string) ([]model.AnonymizedRequest, error) {
	rows, err := tx.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.AnonymizedRequest, 0)
	for rows.Next() {
		var (
			a                     model.AnonymizedRequest
			requiredBy, createdAt sql.NullTime
			verified              sql.NullBool
			name, address         sql.NullString
		)

		err := rows.Scan(
			&a.ID, &a.AnonymizedPatientName, &a.OrganNeeded, &a.BloodTypeNeeded, &a.Urgency, &a.City,
			&requiredBy, &a.Status, &createdAt, &a.HospitalID, &name, &address, &verified,
		)
		if err != nil {
			return nil, err
		}

		a.RequiredBy = timePtr(requiredBy)
		a.CreatedAt = timePtr(createdAt)
		a.HospitalName = name.String
		a.HospitalAddress = address.String
		a.HospitalVerified = verified.Bool

		out = append(out, a)
	}

	return out, rows.Err()
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}

	v := t.Time
	return &v
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}

	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}

	return sql.NullString{String: *v, Valid: true}
}

func nullTime(v *time.Time) sql.NullTime {
	if v == nil {
		return sql.NullTime{}
	}

	return sql.NullTime{Time: *v, Valid: true}
}
