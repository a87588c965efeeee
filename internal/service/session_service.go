package service

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/tbcare/screening-api/internal/models"
	"github.com/tbcare/screening-api/pkg/config"
	appErrors "github.com/tbcare/screening-api/pkg/errors"
)

const sessionIssuer = "screening-api"

// SessionClaims is the payload of a session token.
type SessionClaims struct {
	UserID int64 `json:"uid"`
	jwt.RegisteredClaims
}

// SessionService issues and validates bearer session tokens.
type SessionService struct {
	secret  []byte
	ttl     time.Duration
	enabled bool
	now     func() time.Time
}

// NewSessionService constructs the service from configuration.
func NewSessionService(cfg config.SessionConfig) *SessionService {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionService{secret: []byte(cfg.Secret), ttl: ttl, enabled: cfg.Enabled, now: time.Now}
}

// Enabled reports whether sessions are issued and enforced.
func (s *SessionService) Enabled() bool {
	return s != nil && s.enabled
}

// Issue signs a token for user.
func (s *SessionService) Issue(user *models.User) (string, time.Time, error) {
	if len(s.secret) == 0 {
		return "", time.Time{}, errors.New("session secret not configured")
	}
	now := s.now().UTC()
	expiresAt := now.Add(s.ttl)
	claims := SessionClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    sessionIssuer,
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// Validate parses a token. Any failure is Unauthenticated.
func (s *SessionService) Validate(raw string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(sessionIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, appErrors.Clone(appErrors.ErrUnauthenticated, "session expired")
		}
		return nil, appErrors.Clone(appErrors.ErrUnauthenticated, "invalid session token")
	}
	return claims, nil
}
