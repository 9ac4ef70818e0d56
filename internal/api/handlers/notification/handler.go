package notification

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/donorlink/internal/api/respond"
	"github.com/aliskhannn/donorlink/internal/middlewares"
	"github.com/aliskhannn/donorlink/internal/model"
	"github.com/aliskhannn/donorlink/internal/session"
)

// notificationSessions is the part of the session manager the Handler
// depends on.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/notification/mock.go -package=mocks
type notificationSessions interface {
	Notifications(ctx context.Context, profileID uuid.UUID, now time.Time) (model.NotificationFeed, error)
	MarkRead(ctx context.Context, profileID, entryID uuid.UUID) error
	MarkAllRead(ctx context.Context, profileID uuid.UUID) error
	Toasts(ctx context.Context, profileID uuid.UUID) ([]model.Toast, error)
	Release(profileID uuid.UUID) bool
}

// Handler serves the notification panel, the toast queue and session
// teardown.
type Handler struct {
	sessions notificationSessions
	now      func() time.Time
}

// NewHandler creates a new Handler instance.
func NewHandler(s notificationSessions) *Handler {
	return &Handler{sessions: s, now: time.Now}
}

// List handles GET requests for the notification panel.
func (h *Handler) List(c *ginext.Context) {
	profileID, ok := middlewares.ProfileID(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
		return
	}

	feed, err := h.sessions.Notifications(c.Request.Context(), profileID, h.now())
	if err != nil {
		fail(c, profileID, err)
		return
	}

	respond.OK(c.Writer, feed)
}

// MarkRead handles POST requests that mark one notification read.
func (h *Handler) MarkRead(c *ginext.Context) {
	profileID, ok := middlewares.ProfileID(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
		return
	}

	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("id", idStr).Msg("invalid notification id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	if err := h.sessions.MarkRead(c.Request.Context(), profileID, id); err != nil {
		fail(c, profileID, err)
		return
	}

	respond.OK(c.Writer, "notification marked read")
}

// MarkAllRead handles POST requests that mark every notification read.
func (h *Handler) MarkAllRead(c *ginext.Context) {
	profileID, ok := middlewares.ProfileID(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
		return
	}

	if err := h.sessions.MarkAllRead(c.Request.Context(), profileID); err != nil {
		fail(c, profileID, err)
		return
	}

	respond.OK(c.Writer, "all notifications marked read")
}

// Toasts handles GET requests that drain the caller's pending toasts.
func (h *Handler) Toasts(c *ginext.Context) {
	profileID, ok := middlewares.ProfileID(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
		return
	}

	toasts, err := h.sessions.Toasts(c.Request.Context(), profileID)
	if err != nil {
		fail(c, profileID, err)
		return
	}

	respond.OK(c.Writer, toasts)
}

// Release handles DELETE requests that end the caller's session.
func (h *Handler) Release(c *ginext.Context) {
	profileID, ok := middlewares.ProfileID(c)
	if !ok {
		respond.Fail(c.Writer, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
		return
	}

	if !h.sessions.Release(profileID) {
		respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("no active session"))
		return
	}

	respond.OK(c.Writer, "session released")
}

func fail(c *ginext.Context, profileID uuid.UUID, err error) {
	switch {
	case errors.Is(err, session.ErrProfileNotFound), errors.Is(err, session.ErrEntryNotFound):
		respond.Fail(c.Writer, http.StatusNotFound, err)
	default:
		zlog.Logger.Error().Err(err).Str("profile_id", profileID.String()).Msg("notification request failed")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
	}
}
