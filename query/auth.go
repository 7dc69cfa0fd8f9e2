package query

import (
	"context"

	"github.com/tutorlink/tutorlink-go/core/user"
)

// AuthQueries covers login, registration and logout. Successful calls
// replace the session; any cached data from a previous identity is dropped.
type AuthQueries struct {
	q *Queries
}

func (a *AuthQueries) Login(ctx context.Context, creds user.Credentials) (*user.AuthResponse, error) {
	auth, err := a.q.api.Auth.Login(ctx, creds)
	if err != nil {
		a.q.notify.Error("Login failed", err)
		return nil, err
	}
	a.q.cache.Clear()
	a.q.notify.Success("Login successful!")
	return auth, nil
}

func (a *AuthQueries) RegisterLecturer(ctx context.Context, reg user.RegisterLecturer) (*user.AuthResponse, error) {
	auth, err := a.q.api.Auth.RegisterLecturer(ctx, reg)
	if err != nil {
		a.q.notify.Error("Registration failed", err)
		return nil, err
	}
	a.q.cache.Clear()
	a.q.notify.Success("Registration successful!")
	return auth, nil
}

func (a *AuthQueries) RegisterStudent(ctx context.Context, reg user.RegisterStudent) (*user.AuthResponse, error) {
	auth, err := a.q.api.Auth.RegisterStudent(ctx, reg)
	if err != nil {
		a.q.notify.Error("Registration failed", err)
		return nil, err
	}
	a.q.cache.Clear()
	a.q.notify.Success("Registration successful!")
	return auth, nil
}

// Logout clears the session and every cached query.
func (a *AuthQueries) Logout() error {
	if err := a.q.api.Auth.Logout(); err != nil {
		a.q.notify.Error("Logout failed", err)
		return err
	}
	a.q.cache.Clear()
	a.q.notify.Success("Logged out successfully")
	return nil
}

// Current returns the authenticated user, if any.
func (a *AuthQueries) Current() (user.User, bool) {
	sess, ok := a.q.api.Sessions().Get()
	if !ok {
		return user.User{}, false
	}
	return sess.User, true
}
