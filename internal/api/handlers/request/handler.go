package request

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/donorlink/internal/api/dto"
	"github.com/aliskhannn/donorlink/internal/api/respond"
	"github.com/aliskhannn/donorlink/internal/config"
	"github.com/aliskhannn/donorlink/internal/middlewares"
	"github.com/aliskhannn/donorlink/internal/model"
	"github.com/aliskhannn/donorlink/internal/repository/directory"
	requestsvc "github.com/aliskhannn/donorlink/internal/service/request"
)

// requestService defines the interface that the Handler depends on.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/request/mock.go -package=mocks
type requestService interface {
	Browse(ctx context.Context, strategy retry.Strategy, profileID uuid.UUID) (model.RequestBoard, error)
	Create(ctx context.Context, profileID uuid.UUID, req model.NewRequest) (model.Request, error)
}

// Handler handles HTTP requests related to medical requests.
//
// It lists the requests visible to the caller's role and lets hospital
// staff open new ones.
type Handler struct {
	service   requestService
	validator *validator.Validate
	cfg       *config.Config
}

// NewHandler creates a new Handler instance.
//
// Parameters:
//   - s: implementation of requestService
//   - v: validator built by dto.NewValidator
//   - cfg: configuration instance
func NewHandler(s requestService, v *validator.Validate, cfg *config.Config) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// Browse handles GET requests for the request list.
func (h *Handler) Browse(c *ginext.Context) {
	profileID, ok := middlewares.ProfileID(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
		return
	}

	board, err := h.service.Browse(c.Request.Context(), h.cfg.Retry, profileID)
	if err != nil {
		fail(c, profileID, err)
		return
	}

	respond.OK(c.Writer, board)
}

// Create handles POST requests that open a new medical request.
//
// It decodes and validates the body, converts it to a model.NewRequest and
// returns the created request.
func (h *Handler) Create(c *ginext.Context) {
	profileID, ok := middlewares.ProfileID(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
		return
	}

	var req dto.CreateRequest

	// Decode JSON request body into CreateRequest struct.
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	req.Normalize()

	// Validate request fields using go-playground/validator.
	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Debug().Err(err).Msg("request body failed validation")
		respond.Fail(c.Writer, http.StatusBadRequest, errors.New(dto.Describe(err)))
		return
	}

	newReq, err := req.ToModel()
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), profileID, newReq)
	if err != nil {
		fail(c, profileID, err)
		return
	}

	respond.Created(c.Writer, created)
}

func fail(c *ginext.Context, profileID uuid.UUID, err error) {
	switch {
	case errors.Is(err, requestsvc.ErrNotHospital):
		respond.Fail(c.Writer, http.StatusForbidden, errors.New(requestsvc.NotHospitalMessage))
	case errors.Is(err, requestsvc.ErrUnknownRole):
		respond.Fail(c.Writer, http.StatusForbidden, err)
	case errors.Is(err, directory.ErrProfileNotFound):
		respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("profile not found"))
	default:
		zlog.Logger.Error().Err(err).Str("profile_id", profileID.String()).Msg("request operation failed")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
	}
}
