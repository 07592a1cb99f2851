// File: /services/auth_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/time/rate"

	"socialhub-app/apiclient"
	"socialhub-app/locale"
	"socialhub-app/models"
	"socialhub-app/store"
	"socialhub-app/utils"
)

var (
	ErrInvalidPhone   = errors.New("invalid mobile number")
	ErrInvalidCode    = errors.New("invalid verification code")
	ErrResendTooSoon  = errors.New("verification code was sent recently")
	ErrNoStoredTokens = errors.New("no stored tokens")
)

type phoneLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type AuthService struct {
	reservations   *ReservationService
	resendInterval time.Duration

	limiters map[string]*phoneLimiter
	mutex    sync.Mutex
}

func NewAuthService(reservations *ReservationService, resendInterval time.Duration) *AuthService {
	return &AuthService{
		reservations:   reservations,
		resendInterval: resendInterval,
		limiters:       make(map[string]*phoneLimiter),
	}
}

func (as *AuthService) allow(phone string) (bool, time.Duration) {
	if as.resendInterval <= 0 {
		return true, 0
	}

	as.mutex.Lock()
	defer as.mutex.Unlock()

	pl, exists := as.limiters[phone]
	if !exists {
		pl = &phoneLimiter{limiter: rate.NewLimiter(rate.Every(as.resendInterval), 1)}
		as.limiters[phone] = pl
	}
	pl.lastSeen = time.Now()

	r := pl.limiter.Reserve()
	if delay := r.Delay(); delay > 0 {
		r.Cancel()
		return false, delay
	}
	return true, 0
}

// CleanupLimiters drops throttles for numbers not seen within maxIdle.
func (as *AuthService) CleanupLimiters(maxIdle time.Duration) int {
	as.mutex.Lock()
	defer as.mutex.Unlock()

	cutoff := time.Now().Add(-maxIdle)
	removed := 0
	for phone, pl := range as.limiters {
		if pl.lastSeen.Before(cutoff) {
			delete(as.limiters, phone)
			removed++
		}
	}
	return removed
}

// ResendError tells the caller how long to wait before the next SMS.
type ResendError struct {
	RetryAfter time.Duration
}

func (e *ResendError) Error() string {
	return fmt.Sprintf("verification code was sent recently; retry in %s", e.RetryAfter.Round(time.Second))
}

func (e *ResendError) Is(target error) bool {
	return target == ErrResendTooSoon
}

// SendCode asks the gateway to text a verification code. It returns the
// normalized number the code was sent to.
func (as *AuthService) SendCode(ctx context.Context, s *Session, phone string) (string, error) {
	normalized, ok := utils.NormalizePhone(phone)
	if !ok {
		return "", ErrInvalidPhone
	}

	if allowed, wait := as.allow(normalized); !allowed {
		return "", &ResendError{RetryAfter: wait}
	}

	if err := s.API.SendCode(ctx, normalized); err != nil {
		return "", fmt.Errorf("failed to send verification code: %w", err)
	}

	log.Printf("auth: verification code sent to %s***%s", normalized[:4], normalized[len(normalized)-2:])
	return normalized, nil
}

// VerifyCode completes the SMS login: the tokens are stored, the customer is
// logged in and their reservations are loaded.
func (as *AuthService) VerifyCode(ctx context.Context, s *Session, phone, code string) (*models.Customer, error) {
	normalized, ok := utils.NormalizePhone(phone)
	if !ok {
		return nil, ErrInvalidPhone
	}
	if !utils.IsValidVerificationCode(code) {
		return nil, ErrInvalidCode
	}
	code = locale.ToLatinDigits(strings.TrimSpace(code))

	resp, err := s.API.VerifyCode(ctx, normalized, code)
	if err != nil {
		var apiErr *apiclient.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode < 500 {
			return nil, ErrInvalidCode
		}
		return nil, fmt.Errorf("failed to verify code: %w", err)
	}

	if err := s.Storage.SetTokens(models.Tokens{Access: resp.Access, Refresh: resp.Refresh}); err != nil {
		return nil, err
	}

	customer := resp.Customer
	if customer.PhoneNumber == "" {
		customer.PhoneNumber = normalized
	}
	s.Dispatch(store.Login{Customer: customer})

	if err := as.reservations.Load(ctx, s); err != nil {
		log.Printf("auth: %v", err)
	}

	name := customer.FullName()
	s.Notify(models.NotificationTypeSuccess,
		strings.TrimSpace("خوش آمدید "+name),
		strings.TrimSpace("Welcome "+name))
	return &customer, nil
}

// RestoreSession logs the session back in from stored tokens. Any failure
// evicts both tokens and leaves the session logged out.
func (as *AuthService) RestoreSession(ctx context.Context, s *Session) error {
	tokens, ok := s.Storage.Tokens()
	if !ok {
		return ErrNoStoredTokens
	}

	err := as.restore(ctx, s, tokens)
	if err != nil {
		if evictErr := s.Storage.EvictTokens(); evictErr != nil {
			log.Printf("auth: failed to evict tokens for session %s: %v", s.ID, evictErr)
		}
	}
	return err
}

func (as *AuthService) restore(ctx context.Context, s *Session, tokens models.Tokens) error {
	if tokenExpired(tokens.Access, time.Now()) {
		refreshed, err := s.API.RefreshToken(ctx, tokens.Refresh)
		if err != nil {
			return fmt.Errorf("failed to refresh access token: %w", err)
		}
		if err := s.Storage.SetTokens(*refreshed); err != nil {
			return err
		}
	}

	customer, err := s.API.Me(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch profile: %w", err)
	}
	s.Dispatch(store.Login{Customer: *customer})

	// A failed reservation load is recorded on the resource; the login stands.
	if err := as.reservations.Load(ctx, s); err != nil {
		log.Printf("auth: %v", err)
	}
	return nil
}

func (as *AuthService) Logout(s *Session) {
	s.Dispatch(store.Logout{})
}

// tokenExpired inspects the exp claim of a gateway JWT without verifying it;
// the gateway stays the authority. Opaque tokens are never treated as expired.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	return claims.ExpiresAt != nil && !claims.ExpiresAt.After(now)
}
