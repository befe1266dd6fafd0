// Package security issues the tokens that identify an anonymous cart session
// and derives the storage key a session's cart lives under.
package security

import (
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

var ErrInvalidSession = errors.New("invalid cart session")

// Session identifies one browser's cart. It carries no user identity.
type Session struct {
	ID        string
	ExpiresAt time.Time
}

type SessionService struct {
	secret     []byte
	expiration time.Duration
	keyPrefix  string
	now        func() time.Time
}

func NewSessionService(secret string, expiration time.Duration, keyPrefix string) *SessionService {
	return &SessionService{
		secret:     []byte(secret),
		expiration: expiration,
		keyPrefix:  keyPrefix,
		now:        time.Now,
	}
}

type sessionClaims struct {
	jwt.RegisteredClaims
}

// Issue starts a new session and returns it with its signed token.
func (s *SessionService) Issue() (Session, string, error) {
	now := s.now()
	session := Session{
		ID:        uuid.NewString(),
		ExpiresAt: now.Add(s.expiration).Truncate(time.Second),
	}
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return Session{}, "", err
	}
	return session, token, nil
}

func (s *SessionService) Parse(token string) (Session, error) {
	parsed, err := jwt.ParseWithClaims(token, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return Session{}, errors.Join(ErrInvalidSession, err)
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return Session{}, ErrInvalidSession
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return Session{}, errors.Join(ErrInvalidSession, err)
	}

	session := Session{ID: claims.Subject}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	return session, nil
}

// StorageKey maps a session id to the durable key of its cart. The session
// id is hashed so storage contents do not reveal live session ids.
func (s *SessionService) StorageKey(sessionID string) string {
	sum := blake2b.Sum256([]byte(sessionID))
	return s.keyPrefix + ":" + hex.EncodeToString(sum[:16])
}
