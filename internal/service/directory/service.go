package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/donorlink/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/directory/mock.go -package=mocks

type directoryRepository interface {
	ProfileByID(context.Context, uuid.UUID) (model.Profile, error)
	DonorIDByProfile(context.Context, uuid.UUID) (uuid.UUID, error)
	DonorDisplayName(context.Context, uuid.UUID) (string, error)
	HospitalByProfile(context.Context, uuid.UUID) (model.Hospital, error)
	RequestSummary(context.Context, uuid.UUID) (model.RequestSummary, error)
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Service answers identity and ownership lookups, caching the
// profile-to-donor mapping since it never changes once created.
type Service struct {
	repo  directoryRepository
	cache cache
}

func NewService(repo directoryRepository, cache cache) *Service {
	return &Service{repo: repo, cache: cache}
}

func donorKey(profileID uuid.UUID) string {
	return "donor-of:" + profileID.String()
}

func (s *Service) DonorIDByProfile(ctx context.Context, strategy retry.Strategy, profileID uuid.UUID) (uuid.UUID, error) {
	key := donorKey(profileID)

	cached, err := s.cache.GetWithRetry(ctx, strategy, key)
	switch {
	case err == nil:
		id, parseErr := uuid.Parse(cached)
		if parseErr == nil {
			return id, nil
		}
		zlog.Logger.Warn().Err(parseErr).Str("key", key).Msg("discarding malformed cached donor id")
	case !errors.Is(err, redis.Nil):
		zlog.Logger.Error().Err(err).Str("key", key).Msg("failed to get donor id from cache")
	}

	id, err := s.repo.DonorIDByProfile(ctx, profileID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("get donor id: %w", err)
	}

	if err := s.cache.SetWithRetry(ctx, strategy, key, id.String()); err != nil {
		zlog.Logger.Error().Err(err).Str("key", key).Msg("failed to cache donor id")
	}

	return id, nil
}

func (s *Service) ProfileByID(ctx context.Context, id uuid.UUID) (model.Profile, error) {
	p, err := s.repo.ProfileByID(ctx, id)
	if err != nil {
		return model.Profile{}, fmt.Errorf("get profile: %w", err)
	}

	return p, nil
}

func (s *Service) DonorDisplayName(ctx context.Context, donorID uuid.UUID) (string, error) {
	name, err := s.repo.DonorDisplayName(ctx, donorID)
	if err != nil {
		return "", fmt.Errorf("get donor name: %w", err)
	}

	return name, nil
}

func (s *Service) HospitalByProfile(ctx context.Context, profileID uuid.UUID) (model.Hospital, error) {
	h, err := s.repo.HospitalByProfile(ctx, profileID)
	if err != nil {
		return model.Hospital{}, fmt.Errorf("get hospital: %w", err)
	}

	return h, nil
}

func (s *Service) RequestSummary(ctx context.Context, requestID uuid.UUID) (model.RequestSummary, error) {
	summary, err := s.repo.RequestSummary(ctx, requestID)
	if err != nil {
		return model.RequestSummary{}, fmt.Errorf("get request summary: %w", err)
	}

	return summary, nil
}
