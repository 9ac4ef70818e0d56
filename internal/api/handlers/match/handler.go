package match

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/donorlink/internal/api/dto"
	"github.com/aliskhannn/donorlink/internal/api/respond"
	"github.com/aliskhannn/donorlink/internal/middlewares"
	"github.com/aliskhannn/donorlink/internal/model"
	matchrepo "github.com/aliskhannn/donorlink/internal/repository/match"
	"github.com/aliskhannn/donorlink/internal/session"
	"github.com/aliskhannn/donorlink/internal/tracker"
)

// matchSessions is the part of the session manager the Handler depends on.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/match/mock.go -package=mocks
type matchSessions interface {
	Board(ctx context.Context, profileID uuid.UUID) (model.MatchBoard, error)
	Refresh(ctx context.Context, profileID uuid.UUID) (model.MatchBoard, error)
	UpdateMatchStatus(ctx context.Context, profileID, matchID uuid.UUID, status model.MatchStatus) (model.MatchBoard, error)
}

// Handler serves the donor's match list.
type Handler struct {
	sessions  matchSessions
	validator *validator.Validate
}

// NewHandler creates a new Handler instance.
func NewHandler(s matchSessions, v *validator.Validate) *Handler {
	return &Handler{sessions: s, validator: v}
}

// Board handles GET requests for the caller's current match list.
func (h *Handler) Board(c *ginext.Context) {
	profileID, ok := middlewares.ProfileID(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
		return
	}

	board, err := h.sessions.Board(c.Request.Context(), profileID)
	if err != nil {
		fail(c, profileID, err)
		return
	}

	respond.OK(c.Writer, board)
}

// Refresh handles POST requests that reload the match list.
func (h *Handler) Refresh(c *ginext.Context) {
	profileID, ok := middlewares.ProfileID(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
		return
	}

	board, err := h.sessions.Refresh(c.Request.Context(), profileID)
	if err != nil {
		fail(c, profileID, err)
		return
	}

	respond.OK(c.Writer, board)
}

// UpdateStatus handles POST requests that accept or decline a match.
//
// It expects the match ID as a URL parameter and {"status": ...} as the body.
func (h *Handler) UpdateStatus(c *ginext.Context) {
	profileID, ok := middlewares.ProfileID(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
		return
	}

	// Extract match ID from URL parameters.
	idStr := c.Param("id")
	matchID, err := uuid.Parse(idStr)
	if err != nil || matchID == uuid.Nil {
		zlog.Logger.Warn().Err(err).Str("id", idStr).Msg("invalid match id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	var req dto.UpdateStatusRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, errors.New(dto.Describe(err)))
		return
	}

	board, err := h.sessions.UpdateMatchStatus(c.Request.Context(), profileID, matchID, model.MatchStatus(req.Status))
	if err != nil {
		fail(c, profileID, err)
		return
	}

	respond.OK(c.Writer, board)
}

func fail(c *ginext.Context, profileID uuid.UUID, err error) {
	switch {
	case errors.Is(err, session.ErrProfileNotFound):
		respond.Fail(c.Writer, http.StatusNotFound, err)
	case errors.Is(err, tracker.ErrInvalidStatus):
		respond.Fail(c.Writer, http.StatusBadRequest, err)
	case errors.Is(err, tracker.ErrMatchNotFound), errors.Is(err, matchrepo.ErrMatchNotFound):
		respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("match not found"))
	case errors.Is(err, tracker.ErrUpdateInFlight):
		respond.Fail(c.Writer, http.StatusConflict, err)
	default:
		zlog.Logger.Error().Err(err).Str("profile_id", profileID.String()).Msg("match request failed")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
	}
}
