package match

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/donorlink/internal/api/dto"
	"github.com/aliskhannn/donorlink/internal/middlewares"
	"github.com/aliskhannn/donorlink/internal/mocks/api/handlers/match"
	"github.com/aliskhannn/donorlink/internal/model"
	matchrepo "github.com/aliskhannn/donorlink/internal/repository/match"
	"github.com/aliskhannn/donorlink/internal/session"
	"github.com/aliskhannn/donorlink/internal/tracker"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockmatchSessions) {
	ctrl := gomock.NewController(t)
	mockSessions := mocks.NewMockmatchSessions(ctrl)
	return NewHandler(mockSessions, dto.NewValidator()), mockSessions
}

func newContext(method, target string, body []byte, profileID uuid.UUID) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, bytes.NewReader(body))
	if profileID != uuid.Nil {
		middlewares.SetProfileID(c, profileID)
	}
	return c, w
}

func TestHandler_Board_Success(t *testing.T) {
	handler, mockSessions := setupHandler(t)
	profileID := uuid.New()

	board := model.MatchBoard{Matches: []model.MatchCard{{Match: model.Match{ID: uuid.New(), Status: model.MatchPending}}}}
	mockSessions.EXPECT().Board(gomock.Any(), profileID).Return(board, nil)

	c, w := newContext(http.MethodGet, "/api/matches", nil, profileID)
	handler.Board(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Result model.MatchBoard `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Result.Matches, 1)
}

func TestHandler_Board_Unauthorized(t *testing.T) {
	handler, _ := setupHandler(t)

	c, w := newContext(http.MethodGet, "/api/matches", nil, uuid.Nil)
	handler.Board(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_Refresh_ProfileNotFound(t *testing.T) {
	handler, mockSessions := setupHandler(t)
	profileID := uuid.New()

	mockSessions.EXPECT().Refresh(gomock.Any(), profileID).Return(model.MatchBoard{}, session.ErrProfileNotFound)

	c, w := newContext(http.MethodPost, "/api/matches/refresh", nil, profileID)
	handler.Refresh(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_UpdateStatus_Success(t *testing.T) {
	handler, mockSessions := setupHandler(t)
	profileID, matchID := uuid.New(), uuid.New()

	mockSessions.EXPECT().
		UpdateMatchStatus(gomock.Any(), profileID, matchID, model.MatchAccepted).
		Return(model.MatchBoard{}, nil)

	c, w := newContext(http.MethodPost, "/api/matches/"+matchID.String()+"/status", []byte(`{"status":"accepted"}`), profileID)
	c.Params = gin.Params{{Key: "id", Value: matchID.String()}}
	handler.UpdateStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_UpdateStatus_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		id   string
		body string
	}{
		{"bad id", "not-a-uuid", `{"status":"accepted"}`},
		{"nil id", uuid.Nil.String(), `{"status":"accepted"}`},
		{"bad body", uuid.NewString(), `{`},
		{"unknown status", uuid.NewString(), `{"status":"completed"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := setupHandler(t)

			c, w := newContext(http.MethodPost, "/api/matches/x/status", []byte(tt.body), uuid.New())
			c.Params = gin.Params{{Key: "id", Value: tt.id}}
			handler.UpdateStatus(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandler_UpdateStatus_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown locally", tracker.ErrMatchNotFound, http.StatusNotFound},
		{"gone from store", fmt.Errorf("update match status: %w", matchrepo.ErrMatchNotFound), http.StatusNotFound},
		{"in flight", tracker.ErrUpdateInFlight, http.StatusConflict},
		{"invalid status", tracker.ErrInvalidStatus, http.StatusBadRequest},
		{"store failure", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, mockSessions := setupHandler(t)
			profileID, matchID := uuid.New(), uuid.New()

			mockSessions.EXPECT().
				UpdateMatchStatus(gomock.Any(), profileID, matchID, model.MatchDeclined).
				Return(model.MatchBoard{}, tt.err)

			c, w := newContext(http.MethodPost, "/", []byte(`{"status":"declined"}`), profileID)
			c.Params = gin.Params{{Key: "id", Value: matchID.String()}}
			handler.UpdateStatus(c)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}
