package request

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/donorlink/internal/model"
	"github.com/aliskhannn/donorlink/internal/repository/directory"
)

var (
	ErrNotHospital = errors.New("profile is not associated with a hospital")
	ErrUnknownRole = errors.New("unknown profile role")
)

// NotHospitalMessage is shown to profiles that try to create a request
// without owning a hospital.
const NotHospitalMessage = "You must be associated with a hospital to create requests"

//go:generate mockgen -source=service.go -destination=../../mocks/service/request/mock.go -package=mocks
type requestRepository interface {
	ListPending(ctx context.Context) ([]model.Request, error)
	Create(ctx context.Context, hospitalID uuid.UUID, req model.NewRequest) (model.Request, error)
	DonorMatchingRequests(ctx context.Context, profileID uuid.UUID) ([]model.AnonymizedRequest, error)
	IsVerifiedNGO(ctx context.Context, profileID uuid.UUID) (bool, error)
	NGOAnonymizedRequests(ctx context.Context, profileID uuid.UUID) ([]model.AnonymizedRequest, error)
}

type profileDirectory interface {
	ProfileByID(ctx context.Context, id uuid.UUID) (model.Profile, error)
	HospitalByProfile(ctx context.Context, profileID uuid.UUID) (model.Hospital, error)
}

type toaster interface {
	Toast(profileID uuid.UUID, t model.Toast)
}

// Service lists requests according to the caller's role and lets
// hospitals open new ones.
type Service struct {
	repo   requestRepository
	dir    profileDirectory
	toasts toaster
}

func NewService(repo requestRepository, dir profileDirectory, toasts toaster) *Service {
	return &Service{repo: repo, dir: dir, toasts: toasts}
}

// Browse returns the requests the profile may see. Donors get the
// anonymized requests compatible with them, verified NGOs every anonymized
// request, hospitals and admins the full pending list.
func (s *Service) Browse(ctx context.Context, strategy retry.Strategy, profileID uuid.UUID) (model.RequestBoard, error) {
	profile, err := s.dir.ProfileByID(ctx, profileID)
	if err != nil {
		return model.RequestBoard{}, fmt.Errorf("get profile: %w", err)
	}

	board, err := s.browse(ctx, strategy, profile)
	if err != nil {
		if !errors.Is(err, ErrUnknownRole) {
			s.toasts.Toast(profileID, model.Toast{
				Title:       "Error fetching requests",
				Description: err.Error(),
				Variant:     model.ToastDestructive,
			})
		}
		return model.RequestBoard{}, err
	}

	return board, nil
}

func (s *Service) browse(ctx context.Context, strategy retry.Strategy, profile model.Profile) (model.RequestBoard, error) {
	var board model.RequestBoard

	switch profile.Role {
	case model.RoleDonor:
		err := retry.Do(func() error {
			var err error
			board.Anonymized, err = s.repo.DonorMatchingRequests(ctx, profile.ID)
			return err
		}, strategy)
		if err != nil {
			return model.RequestBoard{}, err
		}

	case model.RoleNGO:
		var verified bool
		err := retry.Do(func() error {
			var err error
			verified, err = s.repo.IsVerifiedNGO(ctx, profile.ID)
			return err
		}, strategy)
		if err != nil {
			return model.RequestBoard{}, err
		}

		board.Verified = &verified
		if !verified {
			zlog.Logger.Info().Str("profile_id", profile.ID.String()).Msg("ngo is not verified, hiding requests")
			board.Anonymized = []model.AnonymizedRequest{}
			return board, nil
		}

		err = retry.Do(func() error {
			var err error
			board.Anonymized, err = s.repo.NGOAnonymizedRequests(ctx, profile.ID)
			return err
		}, strategy)
		if err != nil {
			return model.RequestBoard{}, err
		}

	case model.RoleHospital, model.RoleAdmin:
		err := retry.Do(func() error {
			var err error
			board.Requests, err = s.repo.ListPending(ctx)
			return err
		}, strategy)
		if err != nil {
			return model.RequestBoard{}, err
		}

	default:
		return model.RequestBoard{}, fmt.Errorf("%w: %s", ErrUnknownRole, profile.Role)
	}

	return board, nil
}

// Create opens a pending request on behalf of the hospital the profile owns.
func (s *Service) Create(ctx context.Context, profileID uuid.UUID, req model.NewRequest) (model.Request, error) {
	created, err := s.create(ctx, profileID, req)
	if err != nil {
		description := err.Error()
		if errors.Is(err, ErrNotHospital) {
			description = NotHospitalMessage
		}

		s.toasts.Toast(profileID, model.Toast{
			Title:       "Error creating request",
			Description: description,
			Variant:     model.ToastDestructive,
		})
		return model.Request{}, err
	}

	s.toasts.Toast(profileID, model.Toast{
		Title:       "Request created successfully",
		Description: "Compatible donors will be automatically matched.",
		Variant:     model.ToastDefault,
	})

	zlog.Logger.Info().
		Str("profile_id", profileID.String()).
		Str("request_id", created.ID.String()).
		Str("organ", created.OrganNeeded).
		Str("urgency", created.Urgency).
		Msg("request created")

	return created, nil
}

func (s *Service) create(ctx context.Context, profileID uuid.UUID, req model.NewRequest) (model.Request, error) {
	hospital, err := s.dir.HospitalByProfile(ctx, profileID)
	if err != nil {
		if errors.Is(err, directory.ErrHospitalNotFound) {
			return model.Request{}, ErrNotHospital
		}
		return model.Request{}, fmt.Errorf("get hospital: %w", err)
	}

	created, err := s.repo.Create(ctx, hospital.ID, req)
	if err != nil {
		return model.Request{}, fmt.Errorf("create request: %w", err)
	}

	created.Hospital = &hospital

	return created, nil
}
