// Package client is the typed SDK for the TutorLink REST API.
//
// A single Client carries the shared HTTP plumbing: bearer-token injection
// from the session store, one coalesced token refresh on 401, and decoding
// of the backend's error envelope. Per-resource services hang off it and
// map one-to-one to REST endpoints.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"

	"github.com/tutorlink/tutorlink-go/core"
	"github.com/tutorlink/tutorlink-go/core/user"
)

// Client is the top-level TutorLink API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   user.Store
	log        core.Logger
	refreshSF  singleflight.Group

	Auth         *AuthService
	Courses      *CourseService
	Classes      *ClassService
	Enrollments  *EnrollmentService
	Availability *AvailabilityService
	Groups       *GroupService
	Lecturers    *LecturerService
	Students     *StudentService
	Admin        *AdminService
	Dashboard    *DashboardService
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithLogger routes the client's retry/refresh diagnostics to lg.
func WithLogger(lg core.Logger) Option {
	return func(c *Client) { c.log = lg }
}

// nopLogger is the default; diagnostics are opt-in.
type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// New creates a TutorLink client. Every outgoing request reads the bearer
// token from sessions; login/refresh responses are written back to it.
func New(conf *core.Config, sessions user.Store, opts ...Option) *Client {
	c := &Client{
		baseURL:    conf.API.BaseURL,
		httpClient: &http.Client{Timeout: conf.API.Timeout},
		sessions:   sessions,
		log:        nopLogger{},
	}
	for _, o := range opts {
		o(c)
	}
	c.Auth = &AuthService{c: c}
	c.Courses = &CourseService{c: c}
	c.Classes = &ClassService{c: c}
	c.Enrollments = &EnrollmentService{c: c}
	c.Availability = &AvailabilityService{c: c}
	c.Groups = &GroupService{c: c}
	c.Lecturers = &LecturerService{c: c}
	c.Students = &StudentService{c: c}
	c.Admin = &AdminService{c: c}
	c.Dashboard = &DashboardService{c: c}
	return c
}

// Sessions exposes the session store the client was built with.
func (c *Client) Sessions() user.Store { return c.sessions }

type request struct {
	method string
	path   string
	query  url.Values

	// body encoding: form takes precedence over body when it has files,
	// otherwise body is sent as JSON.
	body any
	form *form

	// skipAuth marks the auth endpoints themselves: no bearer token, and a
	// 401 must not trigger a refresh.
	skipAuth bool
}

// do executes the request and decodes the JSON response into result.
//
// GET requests are retried once on a network failure or 5xx; mutations are
// never auto-retried. A 401 on an authenticated request triggers exactly one
// silent refresh, shared across all concurrent 401s; after a failed refresh
// the session is cleared and the 401 propagates.
func (c *Client) do(ctx context.Context, req request, result any) error {
	payload, contentType, err := encodeBody(req)
	if err != nil {
		return err
	}

	isQuery := req.method == http.MethodGet
	var retried, refreshed bool
	for {
		resp, body, bearer, err := c.send(ctx, req, payload, contentType)
		if err != nil {
			if isQuery && !retried {
				retried = true
				c.log.Debug("retrying after network failure", "method", req.method, "path", req.path, "err", err)
				continue
			}
			return errors.Wrap(err, "request failed")
		}

		switch {
		case resp.StatusCode < 400:
			if result != nil && len(body) > 0 {
				if err := json.Unmarshal(body, result); err != nil {
					return errors.Wrap(err, "decoding response")
				}
			}
			return nil

		case resp.StatusCode == http.StatusUnauthorized && !req.skipAuth && !refreshed:
			refreshed = true
			if err := c.refresh(ctx, bearer); err != nil {
				// refresh failed: session is gone, surface the 401
				c.log.Warn("token refresh failed", "path", req.path, "err", err)
				return decodeAPIError(resp.StatusCode, body)
			}
			continue

		case resp.StatusCode >= http.StatusInternalServerError && isQuery && !retried:
			retried = true
			c.log.Debug("retrying after server error", "method", req.method, "path", req.path, "status", resp.StatusCode)
			continue

		default:
			return decodeAPIError(resp.StatusCode, body)
		}
	}
}

func (c *Client) send(ctx context.Context, req request, payload []byte, contentType string) (resp *http.Response, body []byte, bearer string, err error) {
	u := c.baseURL + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}

	var rd io.Reader
	if payload != nil {
		rd = bytes.NewReader(payload)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.method, u, rd)
	if err != nil {
		return nil, nil, "", errors.Wrap(err, "creating request")
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if !req.skipAuth {
		if sess, ok := c.sessions.Get(); ok && sess.AccessToken != "" {
			bearer = sess.AccessToken
			httpReq.Header.Set("Authorization", "Bearer "+bearer)
		}
	}

	resp, err = c.httpClient.Do(httpReq)
	if err != nil {
		return nil, nil, bearer, err
	}
	defer resp.Body.Close()

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, bearer, errors.Wrap(err, "reading response")
	}
	return resp, body, bearer, nil
}

// refresh exchanges the stored refresh token for a new token pair. All
// concurrent callers share one in-flight attempt; there is never a refresh
// storm when several requests 401 at once. staleToken is the bearer the
// failed request carried: when the stored token already differs, another
// caller refreshed in the meantime and this one just retries.
func (c *Client) refresh(ctx context.Context, staleToken string) error {
	_, err, _ := c.refreshSF.Do("refresh", func() (interface{}, error) {
		sess, ok := c.sessions.Get()
		if !ok || sess.RefreshToken == "" {
			return nil, errors.New("no refresh token")
		}
		if staleToken != "" && sess.AccessToken != staleToken {
			return nil, nil
		}

		var auth user.AuthResponse
		err := c.do(ctx, request{
			method:   http.MethodPost,
			path:     "/auth/refresh",
			body:     user.RefreshRequest{RefreshToken: sess.RefreshToken},
			skipAuth: true,
		}, &auth)
		if err != nil {
			_ = c.sessions.Clear()
			return nil, errors.Wrap(err, "refreshing token")
		}

		return nil, c.sessions.Set(user.Session{
			User:         auth.User,
			AccessToken:  auth.AccessToken,
			RefreshToken: auth.RefreshToken,
		})
	})
	return err
}

func encodeBody(req request) (payload []byte, contentType string, err error) {
	if req.form != nil && req.form.hasFiles() {
		payload, contentType, err = req.form.encode()
		return payload, contentType, err
	}
	body := req.body
	if body == nil && req.form != nil {
		// no file attached: fall back to plain JSON, never an empty
		// multipart body
		body = req.form.jsonBody
	}
	if body == nil {
		return nil, "", nil
	}
	payload, err = json.Marshal(body)
	if err != nil {
		return nil, "", errors.Wrap(err, "encoding request")
	}
	return payload, "application/json", nil
}

// decodeAPIError maps a non-2xx response onto core.APIError, falling back
// to the status text when the body carries no envelope.
func decodeAPIError(statusCode int, body []byte) error {
	apiErr := &core.APIError{}
	if len(body) > 0 && json.Unmarshal(body, apiErr) == nil && apiErr.Message != "" {
		apiErr.StatusCode = statusCode
		return apiErr
	}
	return core.NewAPIError(statusCode, "")
}

// convenience wrappers

func (c *Client) get(ctx context.Context, path string, query url.Values, result any) error {
	return c.do(ctx, request{method: http.MethodGet, path: path, query: query}, result)
}

func (c *Client) post(ctx context.Context, path string, body, result any) error {
	return c.do(ctx, request{method: http.MethodPost, path: path, body: body}, result)
}

func (c *Client) put(ctx context.Context, path string, body, result any) error {
	return c.do(ctx, request{method: http.MethodPut, path: path, body: body}, result)
}

func (c *Client) patch(ctx context.Context, path string, body, result any) error {
	return c.do(ctx, request{method: http.MethodPatch, path: path, body: body}, result)
}

func (c *Client) del(ctx context.Context, path string) error {
	return c.do(ctx, request{method: http.MethodDelete, path: path}, nil)
}
