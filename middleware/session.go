// File: /middleware/session.go
package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"socialhub-app/locale"
	"socialhub-app/services"
)

const (
	SessionCookie = "socialhub_session"

	sessionKey   = "session"
	sessionIDKey = "session_id"
)

// SessionOpener is satisfied by *services.SessionManager.
type SessionOpener interface {
	Open(ctx context.Context, id, language string) (*services.Session, error)
}

type SessionOptions struct {
	Secret          string
	TTL             time.Duration
	DefaultLanguage string
	Secure          bool
}

type SessionClaims struct {
	jwt.RegisteredClaims
}

func signSession(id, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := SessionClaims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func parseSession(tokenStr, secret string) (*SessionClaims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	c, ok := t.Claims.(*SessionClaims)
	if !ok || !t.Valid || c.Subject == "" {
		return nil, errors.New("invalid session token")
	}
	return c, nil
}

// Session resolves the browser's session from its signed cookie, creating a
// new one on first visit, and stores it in the gin context. The cookie is
// re-issued once half of its lifetime has passed.
func Session(opener SessionOpener, opts SessionOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		var id string
		reissue := true

		if cookie, err := c.Cookie(SessionCookie); err == nil {
			if claims, err := parseSession(cookie, opts.Secret); err == nil {
				id = claims.Subject
				reissue = claims.ExpiresAt != nil && time.Until(claims.ExpiresAt.Time) < opts.TTL/2
			}
		}
		if id == "" {
			id = uuid.New().String()
		}

		if reissue {
			token, err := signSession(id, opts.Secret, opts.TTL)
			if err != nil {
				log.Printf("session: failed to sign cookie: %v", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Error: "Failed to start session",
					Code:  http.StatusInternalServerError,
				})
				return
			}
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookie, token, int(opts.TTL.Seconds()), "/", "", opts.Secure, true)
		}

		lang := locale.Negotiate(c.GetHeader("Accept-Language"), opts.DefaultLanguage)
		s, err := opener.Open(c.Request.Context(), id, lang)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, ErrorResponse{
				Error: "Session unavailable",
				Code:  http.StatusServiceUnavailable,
			})
			return
		}

		c.Set(sessionKey, s)
		c.Set(sessionIDKey, id)
		c.Next()
	}
}

// GetSession returns the session set by Session, or nil.
func GetSession(c *gin.Context) *services.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	s, _ := v.(*services.Session)
	return s
}

// RequireLogin rejects requests whose session is not logged in.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := GetSession(c)
		if s == nil || !s.State().Auth.IsLoggedIn {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Error: "Login required",
				Code:  http.StatusUnauthorized,
			})
			return
		}
		c.Next()
	}
}
