package client

import (
	"context"
	"net/http"

	"github.com/tutorlink/tutorlink-go/core/user"
)

// AuthService maps the /auth endpoints. Successful calls write the new
// session into the client's session store.
type AuthService struct {
	c *Client
}

func (s *AuthService) Login(ctx context.Context, creds user.Credentials) (*user.AuthResponse, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	return s.authenticate(ctx, "/auth/login", creds)
}

func (s *AuthService) RegisterLecturer(ctx context.Context, reg user.RegisterLecturer) (*user.AuthResponse, error) {
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return s.authenticate(ctx, "/auth/register/lecturer", reg)
}

func (s *AuthService) RegisterStudent(ctx context.Context, reg user.RegisterStudent) (*user.AuthResponse, error) {
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return s.authenticate(ctx, "/auth/register/student", reg)
}

func (s *AuthService) authenticate(ctx context.Context, path string, body any) (*user.AuthResponse, error) {
	var auth user.AuthResponse
	err := s.c.do(ctx, request{method: http.MethodPost, path: path, body: body, skipAuth: true}, &auth)
	if err != nil {
		return nil, err
	}
	if err := s.c.sessions.Set(user.Session{
		User:         auth.User,
		AccessToken:  auth.AccessToken,
		RefreshToken: auth.RefreshToken,
	}); err != nil {
		return nil, err
	}
	return &auth, nil
}

// Refresh exchanges the stored refresh token for a new pair. Concurrent
// callers are coalesced with the transparent 401 refresh path.
func (s *AuthService) Refresh(ctx context.Context) error {
	return s.c.refresh(ctx, "")
}

// Logout destroys the local session. The backend keeps no server-side
// session state to tear down.
func (s *AuthService) Logout() error {
	return s.c.sessions.Clear()
}
