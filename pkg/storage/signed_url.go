package storage

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrTokenMalformed = errors.New("invalid token format")
	ErrTokenSignature = errors.New("invalid token signature")
	ErrTokenExpired   = errors.New("token expired")
)

// Grant is the payload carried by a download token.
type Grant struct {
	ExportID  string
	Name      string
	ExpiresAt time.Time
}

// SignedURLSigner creates and validates HMAC-signed download tokens.
type SignedURLSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSignedURLSigner constructs a signer with the provided secret and TTL.
func NewSignedURLSigner(secret string, ttl time.Duration) *SignedURLSigner {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SignedURLSigner{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Sign returns a token granting access to the stored name.
func (s *SignedURLSigner) Sign(exportID, name string) (string, time.Time, error) {
	if exportID == "" || name == "" {
		return "", time.Time{}, errors.New("export id and name required")
	}
	if strings.Contains(exportID, ".") {
		return "", time.Time{}, fmt.Errorf("export id %q must not contain '.'", exportID)
	}
	if len(s.secret) == 0 {
		return "", time.Time{}, errors.New("signing secret missing")
	}
	expiresAt := s.now().Add(s.ttl)
	ts := strconv.FormatInt(expiresAt.Unix(), 10)
	encoded := base64.RawURLEncoding.EncodeToString([]byte(name))
	token := strings.Join([]string{exportID, ts, encoded, s.mac(exportID, ts, encoded)}, ".")
	return token, time.Unix(expiresAt.Unix(), 0), nil
}

// Parse validates a token and returns its grant.
func (s *SignedURLSigner) Parse(token string) (*Grant, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 4 {
		return nil, ErrTokenMalformed
	}
	exportID, ts, encoded, signature := parts[0], parts[1], parts[2], parts[3]

	if !hmac.Equal([]byte(s.mac(exportID, ts, encoded)), []byte(signature)) {
		return nil, ErrTokenSignature
	}
	exp, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return nil, ErrTokenMalformed
	}
	name, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrTokenMalformed
	}
	expiresAt := time.Unix(exp, 0)
	if s.now().After(expiresAt) {
		return nil, ErrTokenExpired
	}
	return &Grant{ExportID: exportID, Name: string(name), ExpiresAt: expiresAt}, nil
}

func (s *SignedURLSigner) mac(exportID, ts, encoded string) string {
	mac := hmac.New(sha256.New, s.secret)
	_, _ = mac.Write([]byte(exportID + "|" + ts + "|" + encoded))
	return hex.EncodeToString(mac.Sum(nil))
}
