package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the explicit auth context handed to every workflow entry point:
// the bearer token the browser stored at login plus the role string that came
// with it. The gateway owns the signing secret, so tokens are only inspected
// here, never verified; the gateway re-checks them on every call.
type Session struct {
	token string
	role  Role
}

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
	RoleNone  Role = ""
)

func New(token string, role Role) *Session {
	return &Session{token: token, role: role}
}

func Anonymous() *Session {
	return &Session{}
}

func (s *Session) Token() string {
	return s.token
}

func (s *Session) Role() Role {
	return s.role
}

func (s *Session) IsAuthenticated() bool {
	return s.token != "" && !s.expired()
}

func (s *Session) IsAdmin() bool {
	return s.IsAuthenticated() && s.role == RoleAdmin
}

func (s *Session) Clear() {
	s.token = ""
	s.role = RoleNone
}

// expired reports whether the token carries an exp claim in the past. A token
// that cannot be parsed is left for the gateway to reject.
func (s *Session) expired() bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(s.token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

// RoleFromToken pulls the role claim out of a token for clients that stored
// only the token. Falls back to RoleNone when the claim is absent.
func RoleFromToken(token string) Role {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return RoleNone
	}
	if r, ok := claims["role"].(string); ok {
		return Role(r)
	}
	return RoleNone
}
