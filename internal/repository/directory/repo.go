package directory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/donorlink/internal/model"
)

var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrDonorNotFound    = errors.New("donor not found")
	ErrHospitalNotFound = errors.New("hospital not found")
	ErrRequestNotFound  = errors.New("request not found")
)

// Repository resolves identities and ownership across profiles, donors,
// hospitals and requests.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new directory repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// ProfileByID retrieves a profile by its ID.
func (r *Repository) ProfileByID(ctx context.Context, id uuid.UUID) (model.Profile, error) {
	query := `
		SELECT id, email, full_name, role
		FROM profiles
		WHERE id = $1;
    `

	var (
		p    model.Profile
		role string
	)

	err := r.db.Master.QueryRowContext(ctx, query, id.String()).Scan(&p.ID, &p.Email, &p.FullName, &role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Profile{}, ErrProfileNotFound
		}

		return model.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}

	p.Role = model.Role(role)

	return p, nil
}

// DonorIDByProfile resolves the donor record belonging to a profile.
func (r *Repository) DonorIDByProfile(ctx context.Context, profileID uuid.UUID) (uuid.UUID, error) {
	query := `
		SELECT id
		FROM donors
		WHERE user_id = $1;
    `

	var id uuid.UUID
	err := r.db.Master.QueryRowContext(ctx, query, profileID.String()).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, ErrDonorNotFound
		}

		return uuid.Nil, fmt.Errorf("failed to get donor id: %w", err)
	}

	return id, nil
}

// DonorDisplayName returns the full name of the profile behind a donor.
// The name is empty when the donor has no profile row.
func (r *Repository) DonorDisplayName(ctx context.Context, donorID uuid.UUID) (string, error) {
	query := `
		SELECT p.full_name
		FROM donors d
		LEFT JOIN profiles p ON p.id = d.user_id
		WHERE d.id = $1;
    `

	var name sql.NullString
	err := r.db.Master.QueryRowContext(ctx, query, donorID.String()).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrDonorNotFound
		}

		return "", fmt.Errorf("failed to get donor name: %w", err)
	}

	return name.String, nil
}

// HospitalByProfile retrieves the hospital owned by a profile.
func (r *Repository) HospitalByProfile(ctx context.Context, profileID uuid.UUID) (model.Hospital, error) {
	query := `
		SELECT id, user_id, name, address, verified
		FROM hospitals
		WHERE user_id = $1;
    `

	var (
		h        model.Hospital
		verified sql.NullBool
	)

	err := r.db.Master.QueryRowContext(ctx, query, profileID.String()).Scan(&h.ID, &h.UserID, &h.Name, &h.Address, &verified)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Hospital{}, ErrHospitalNotFound
		}

		return model.Hospital{}, fmt.Errorf("failed to get hospital: %w", err)
	}

	h.Verified = verified.Bool

	return h, nil
}

// RequestSummary retrieves a request with its hospital's name and owner.
func (r *Repository) RequestSummary(ctx context.Context, requestID uuid.UUID) (model.RequestSummary, error) {
	query := `
		SELECT r.id, r.patient_name, r.organ_needed, r.blood_type_needed, r.urgency, r.city,
		       r.hospital_id, h.name, h.user_id
		FROM requests r
		LEFT JOIN hospitals h ON h.id = r.hospital_id
		WHERE r.id = $1;
    `

	var (
		s            model.RequestSummary
		hospitalName sql.NullString
	)

	err := r.db.Master.QueryRowContext(ctx, query, requestID.String()).Scan(
		&s.ID, &s.PatientName, &s.OrganNeeded, &s.BloodTypeNeeded, &s.Urgency, &s.City,
		&s.HospitalID, &hospitalName, &s.HospitalOwnerID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.RequestSummary{}, ErrRequestNotFound
		}

		return model.RequestSummary{}, fmt.Errorf("failed to get request: %w", err)
	}

	s.HospitalName = hospitalName.String

	return s, nil
}
