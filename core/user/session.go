package user

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var NowFunc = time.Now // mockable

// Session is the process-wide authenticated identity: the current user plus
// the access/refresh token pair. At most one session exists per store.
type Session struct {
	User         User   `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func (s Session) IsZero() bool {
	return s.AccessToken == "" && s.RefreshToken == "" && s.User.ID == ""
}

// AccessTokenExpired inspects the access token's exp claim without verifying
// the signature; verification is the backend's job. An unparseable token is
// reported expired so the refresh path kicks in.
func (s Session) AccessTokenExpired() bool {
	if s.AccessToken == "" {
		return true
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.AccessToken, claims); err != nil {
		return true
	}
	// a missing exp claim is not treated as expired; the backend decides
	return !claims.VerifyExpiresAt(NowFunc().Unix(), false)
}

// Store holds the single session. Implementations must be safe for
// concurrent use; every outgoing request reads the token pair from here.
type Store interface {
	// Get returns the current session; ok is false when logged out.
	Get() (sess Session, ok bool)
	// Set replaces the session (login, registration, token refresh).
	Set(sess Session) error
	// Update applies a merge-patch to the session, e.g. after a profile
	// image change.
	Update(fn func(*Session)) error
	// Clear destroys the session (logout or irrecoverable 401).
	Clear() error
}
