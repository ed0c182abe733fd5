package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"yourfuture/internal/logger"
	"yourfuture/internal/model"
	"yourfuture/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	AuthUserKey   = "authUser"
	AuthRoleKey   = "authRole"
	AuthClaimsKey = "authClaims"
)

// Codes returned next to the error message of a rejected token.
const (
	CodeTokenMissing = "token_missing"
	CodeTokenExpired = "token_expired"
	CodeTokenInvalid = "token_invalid"
	CodeTokenRevoked = "token_revoked"
)

// RevocationChecker reports whether a token id was revoked by logout.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type authError struct {
	status int
	code   string
	msg    string
}

func abortAuth(c *gin.Context, e *authError) {
	c.AbortWithStatusJSON(e.status, gin.H{"error": e.msg, "code": e.code})
}

// authenticate resolves the bearer token of the request. It returns nil
// claims and nil error when no Authorization header was sent.
func authenticate(c *gin.Context, jwtUtil *utils.JWTUtil, revoked RevocationChecker) (*utils.JWTClaims, *authError) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, nil
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, &authError{http.StatusUnprocessableEntity, CodeTokenInvalid, "invalid authorization header format"}
	}

	claims, err := jwtUtil.ValidateToken(parts[1])
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, &authError{http.StatusUnauthorized, CodeTokenExpired, "token has expired"}
		}
		return nil, &authError{http.StatusUnprocessableEntity, CodeTokenInvalid, "invalid token"}
	}

	isRevoked, err := revoked.IsRevoked(c.Request.Context(), claims.ID)
	if err != nil {
		logger.Error(c.Request.Context(), "could not check token revocation", zap.Error(err))
		return nil, &authError{http.StatusInternalServerError, CodeTokenInvalid, "internal server error"}
	}
	if isRevoked {
		return nil, &authError{http.StatusUnauthorized, CodeTokenRevoked, "token has been revoked"}
	}

	return claims, nil
}

func setIdentity(c *gin.Context, claims *utils.JWTClaims) {
	c.Set(AuthUserKey, claims.UserID)
	c.Set(AuthRoleKey, claims.Role)
	c.Set(AuthClaimsKey, claims)

	ctx := logger.WithFields(c.Request.Context(), zap.Int64("user_id", claims.UserID))
	c.Request = c.Request.WithContext(ctx)
}

// RequireAuth rejects requests without a valid, unrevoked bearer token.
func RequireAuth(jwtUtil *utils.JWTUtil, revoked RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, authErr := authenticate(c, jwtUtil, revoked)
		if authErr != nil {
			abortAuth(c, authErr)
			return
		}
		if claims == nil {
			abortAuth(c, &authError{http.StatusUnauthorized, CodeTokenMissing, "authorization header required"})
			return
		}

		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuth lets anonymous requests through but still rejects a token
// that was sent and is unusable.
func OptionalAuth(jwtUtil *utils.JWTUtil, revoked RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, authErr := authenticate(c, jwtUtil, revoked)
		if authErr != nil {
			abortAuth(c, authErr)
			return
		}
		if claims != nil {
			setIdentity(c, claims)
		}

		c.Next()
	}
}

// ActorFrom returns the authenticated caller, or nil for anonymous requests.
func ActorFrom(c *gin.Context) *model.Actor {
	claims := ClaimsFrom(c)
	if claims == nil {
		return nil
	}

	return &model.Actor{UserID: claims.UserID, Role: claims.Role}
}

// ClaimsFrom returns the validated token claims set by the auth middleware.
func ClaimsFrom(c *gin.Context) *utils.JWTClaims {
	v, ok := c.Get(AuthClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*utils.JWTClaims)

	return claims
}
