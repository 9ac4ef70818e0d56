package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/donorlink/internal/api/respond"
)

const profileIDKey = "profileID"

// Claims are the access token claims issued by the auth platform.
// The subject is the profile id.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates the HS256 bearer token and stores the profile id
// in the context. With an empty secret every request is rejected.
func AuthMiddleware(secret string) gin.HandlerFunc {
	if secret == "" {
		zlog.Logger.Error().Msg("jwt secret is empty, rejecting all requests")
		return func(c *gin.Context) {
			unauthorized(c, errors.New("authentication is not configured"))
		}
	}

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, errors.New("authorization header is required"))
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			unauthorized(c, errors.New("invalid authorization header format"))
			return
		}

		token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			zlog.Logger.Debug().Err(err).Msg("rejected access token")
			unauthorized(c, errors.New("invalid or expired token"))
			return
		}

		claims, ok := token.Claims.(*Claims)
		if !ok {
			unauthorized(c, errors.New("invalid token claims"))
			return
		}

		profileID, err := uuid.Parse(claims.Subject)
		if err != nil {
			unauthorized(c, fmt.Errorf("invalid token subject"))
			return
		}

		c.Set(profileIDKey, profileID)
		c.Next()
	}
}

// ProfileID returns the profile id stored by AuthMiddleware.
func ProfileID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(profileIDKey)
	if !ok {
		return uuid.Nil, false
	}

	id, ok := v.(uuid.UUID)
	return id, ok
}

// SetProfileID stores the profile id the way AuthMiddleware does.
func SetProfileID(c *gin.Context, id uuid.UUID) {
	c.Set(profileIDKey, id)
}

func unauthorized(c *gin.Context, err error) {
	respond.Fail(c.Writer, http.StatusUnauthorized, err)
	c.Abort()
}
