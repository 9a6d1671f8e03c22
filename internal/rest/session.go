package rest

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	sessionCookie = "session"
	sessionTTL    = 14 * 24 * time.Hour
)

var errInvalidSession = errors.New("invalid session")

// Sessions issues and verifies signed session tokens.
type Sessions struct {
	secret []byte
	ttl    time.Duration
	secure bool
}

func NewSessions(secret string, secure bool) *Sessions {
	return &Sessions{
		secret: []byte(secret),
		ttl:    sessionTTL,
		secure: secure,
	}
}

// Issue returns an HS256 token for the user.
func (s *Sessions) Issue(userID int, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(userID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}

	return token, nil
}

// Parse returns the user id of a valid, unexpired token.
func (s *Sessions) Parse(tokenStr string) (int, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, errInvalidSession
	}

	userID, err := strconv.Atoi(claims.Subject)
	if err != nil || userID < 1 {
		return 0, errInvalidSession
	}

	return userID, nil
}

func (s *Sessions) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// Cookie wraps a token into the session cookie.
func (s *Sessions) Cookie(token string) *http.Cookie {
	return s.cookie(token, int(s.ttl.Seconds()))
}

// ExpiredCookie removes the session cookie.
func (s *Sessions) ExpiredCookie() *http.Cookie {
	return s.cookie("", -1)
}
