// Package api provides the HTTP client for the M backend.
//
// Every interesting behavior of the product (AI responses, sentiment,
// analytics, persistence) lives server-side; this package is the single place
// the client talks to it. All methods take a context, return structured
// errors from the errors package, and never panic on malformed responses.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/Salman1205/M-bot/internal/auth"
	apperrors "github.com/Salman1205/M-bot/internal/errors"
	"github.com/Salman1205/M-bot/internal/logger"
)

// DefaultTimeout bounds every request. The chat endpoint waits on an LLM
// round trip server-side, so this is generous.
const DefaultTimeout = 60 * time.Second

// Client talks to the M backend over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      *auth.Store
}

// New creates a client for the given base origin, reading the bearer token
// from creds on every request. Timeout can be overridden via the
// MBOT_HTTP_TIMEOUT env var (a Go duration string).
func New(baseURL string, creds *auth.Store) *Client {
	timeout := DefaultTimeout
	if t := os.Getenv("MBOT_HTTP_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			timeout = d
		}
	}

	return &Client{
		baseURL: baseURL,
		creds:   creds,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// BaseURL returns the configured backend origin.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// errorBody is the structured error shape the backend returns on 4xx/5xx.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// do issues one JSON request and decodes the response into out (when non-nil).
// Error mapping: transport failure -> KindNetwork (KindTimeout when the
// context deadline hit), 401 -> KindAuth, 404 -> KindNotFound, other 4xx ->
// KindValidation, 5xx -> KindNetwork, undecodable success body -> KindDecode.
func (c *Client) do(ctx context.Context, op apperrors.Op, method, path string, reqBody, out any) error {
	var bodyReader io.Reader
	if reqBody != nil {
		data, err := json.Marshal(reqBody)
		if err != nil {
			return apperrors.E(op, apperrors.KindDecode, "marshal request", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return apperrors.E(op, apperrors.KindNetwork, err)
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.creds.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return apperrors.E(op, apperrors.KindTimeout, ctx.Err())
		}
		return apperrors.E(op, apperrors.KindNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.E(op, apperrors.KindNetwork, "read response", err)
	}

	logger.Debug("API: %s %s -> %d (%d bytes)", method, path, resp.StatusCode, len(body))

	if resp.StatusCode >= 400 {
		return c.statusError(op, resp.StatusCode, body)
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return apperrors.E(op, apperrors.KindDecode, "unmarshal response", err)
		}
	}
	return nil
}

// statusError converts a non-2xx response into a structured error, preferring
// the backend's own error message when the body parses.
func (c *Client) statusError(op apperrors.Op, status int, body []byte) error {
	msg := http.StatusText(status)
	var eb errorBody
	if json.Unmarshal(body, &eb) == nil {
		if eb.Error != "" {
			msg = eb.Error
		} else if eb.Message != "" {
			msg = eb.Message
		}
	}

	err := fmt.Errorf("HTTP %d: %s", status, msg)
	switch {
	case status == http.StatusUnauthorized:
		return apperrors.E(op, apperrors.KindAuth, err)
	case status == http.StatusNotFound:
		return apperrors.E(op, apperrors.KindNotFound, err)
	case status >= 400 && status < 500:
		return apperrors.E(op, apperrors.KindValidation, err)
	default:
		return apperrors.E(op, apperrors.KindNetwork, "server error", err)
	}
}

// Login authenticates with email and password and persists the returned
// bearer token into the credential store.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	const op = apperrors.Op("api.Login")

	var result LoginResult
	payload := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, op, http.MethodPost, "/api/login", payload, &result); err != nil {
		return nil, err
	}
	if result.AccessToken == "" {
		return nil, apperrors.E(op, apperrors.KindDecode, "no access token in response")
	}
	if err := c.creds.SetToken(result.AccessToken); err != nil {
		return nil, apperrors.E(op, apperrors.KindIO, "persist token", err)
	}
	return &result, nil
}

// Signup creates a new account. It does not sign the user in; the backend
// returns a token but the web client always followed signup with a login.
func (c *Client) Signup(ctx context.Context, email, password, name string) error {
	const op = apperrors.Op("api.Signup")
	payload := map[string]string{"email": email, "password": password, "name": name}
	return c.do(ctx, op, http.MethodPost, "/api/signup", payload, nil)
}

// Logout invalidates the session server-side and clears the stored token.
// The token is cleared even when the request fails; a dead token is useless.
func (c *Client) Logout(ctx context.Context) error {
	const op = apperrors.Op("api.Logout")
	reqErr := c.do(ctx, op, http.MethodPost, "/api/logout", nil, nil)
	if err := c.creds.Clear(); err != nil {
		return apperrors.E(op, apperrors.KindIO, "clear token", err)
	}
	return reqErr
}

// GoogleLoginURL returns the OAuth entry point. A terminal client cannot host
// the redirect, so this is surfaced for the user to open in a browser.
func (c *Client) GoogleLoginURL() string {
	return c.baseURL + "/api/google-login"
}

// CurrentUser fetches the signed-in user's account and profile fields.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	const op = apperrors.Op("api.CurrentUser")
	var user User
	if err := c.do(ctx, op, http.MethodGet, "/api/user", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Sessions fetches the user's session list, newest first.
func (c *Client) Sessions(ctx context.Context, userID string) ([]Session, error) {
	const op = apperrors.Op("api.Sessions")
	var list sessionList
	if err := c.do(ctx, op, http.MethodGet, "/api/sessions/"+userID, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SessionMessages fetches the full transcript of one session, in timestamp
// order as returned by the server.
func (c *Client) SessionMessages(ctx context.Context, sessionID string) ([]Message, error) {
	const op = apperrors.Op("api.SessionMessages")
	var list messageList
	if err := c.do(ctx, op, http.MethodGet, "/api/session/"+sessionID+"/messages", nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Conversation fetches the active-session snapshot for startup restore.
func (c *Client) Conversation(ctx context.Context, userID string) (*Conversation, error) {
	const op = apperrors.Op("api.Conversation")
	var conv Conversation
	if err := c.do(ctx, op, http.MethodGet, "/api/conversation/"+userID, nil, &conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

// SendChat sends one user message and returns the assistant's reply. A 200
// with an empty reply body is treated as a decode failure per the error
// policy; callers rely on Response being non-empty on success.
func (c *Client) SendChat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	const op = apperrors.Op("api.SendChat")
	var resp ChatResponse
	if err := c.do(ctx, op, http.MethodPost, "/api/chat", req, &resp); err != nil {
		return nil, err
	}
	if resp.Response == "" {
		return nil, apperrors.E(op, apperrors.KindDecode, "empty reply from server")
	}
	return &resp, nil
}

// EndSession marks the session completed server-side. The backend generates
// a summary on first completion; Summary may still be nil on older versions.
func (c *Client) EndSession(ctx context.Context, sessionID string) (*EndSessionResult, error) {
	const op = apperrors.Op("api.EndSession")
	var result EndSessionResult
	payload := map[string]string{"sessionId": sessionID}
	if err := c.do(ctx, op, http.MethodPost, "/api/end_session", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RenameSession sets a session's title.
func (c *Client) RenameSession(ctx context.Context, sessionID, title string) error {
	const op = apperrors.Op("api.RenameSession")
	payload := map[string]string{"title": title}
	return c.do(ctx, op, http.MethodPost, "/api/session/"+sessionID+"/rename", payload, nil)
}

// RecentSession fetches the most recent completed session's summary.
func (c *Client) RecentSession(ctx context.Context, userID string) (*ChatSummary, error) {
	const op = apperrors.Op("api.RecentSession")
	var summary ChatSummary
	if err := c.do(ctx, op, http.MethodGet, "/api/recent-session/"+userID, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// Analytics fetches the dashboard headline numbers.
func (c *Client) Analytics(ctx context.Context, userID string) (*Analytics, error) {
	const op = apperrors.Op("api.Analytics")
	var a Analytics
	if err := c.do(ctx, op, http.MethodGet, "/api/analytics/"+userID, nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// MoodData fetches the recent mood-over-time series, oldest first.
func (c *Client) MoodData(ctx context.Context, userID string) ([]MoodPoint, error) {
	const op = apperrors.Op("api.MoodData")
	var points []MoodPoint
	if err := c.do(ctx, op, http.MethodGet, "/api/mood-data/"+userID, nil, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// ChatSummaries fetches recent per-session summary cards.
func (c *Client) ChatSummaries(ctx context.Context, userID string) ([]ChatSummary, error) {
	const op = apperrors.Op("api.ChatSummaries")
	var summaries []ChatSummary
	if err := c.do(ctx, op, http.MethodGet, "/api/chat-summaries/"+userID, nil, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

// UpdateProfile saves the user's profile fields.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) error {
	const op = apperrors.Op("api.UpdateProfile")
	return c.do(ctx, op, http.MethodPut, "/api/profile", update, nil)
}

// ChangeEmail changes the account email, verifying with the current password.
func (c *Client) ChangeEmail(ctx context.Context, newEmail, password string) error {
	const op = apperrors.Op("api.ChangeEmail")
	payload := map[string]string{"new_email": newEmail, "password": password}
	return c.do(ctx, op, http.MethodPost, "/api/change-email", payload, nil)
}

// ChangePassword changes the account password.
func (c *Client) ChangePassword(ctx context.Context, current, next string) error {
	const op = apperrors.Op("api.ChangePassword")
	payload := map[string]string{"current_password": current, "new_password": next}
	return c.do(ctx, op, http.MethodPost, "/api/change-password", payload, nil)
}

// SubmitFeedback posts a feedback form.
func (c *Client) SubmitFeedback(ctx context.Context, fb Feedback) error {
	const op = apperrors.Op("api.SubmitFeedback")
	return c.do(ctx, op, http.MethodPost, "/api/feedback", fb, nil)
}

// UploadProfilePicture uploads an image file as multipart form data and
// returns the stored picture path.
func (c *Client) UploadProfilePicture(ctx context.Context, path string) (string, error) {
	const op = apperrors.Op("api.UploadProfilePicture")

	f, err := os.Open(path)
	if err != nil {
		return "", apperrors.E(op, apperrors.KindIO, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return "", apperrors.E(op, apperrors.KindIO, err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", apperrors.E(op, apperrors.KindIO, err)
	}
	if err := mw.Close(); err != nil {
		return "", apperrors.E(op, apperrors.KindIO, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload-profile-picture", &buf)
	if err != nil {
		return "", apperrors.E(op, apperrors.KindNetwork, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token := c.creds.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperrors.E(op, apperrors.KindNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperrors.E(op, apperrors.KindNetwork, "read response", err)
	}
	if resp.StatusCode >= 400 {
		return "", c.statusError(op, resp.StatusCode, body)
	}

	var result struct {
		ProfilePicture string `json:"profile_picture"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", apperrors.E(op, apperrors.KindDecode, "unmarshal response", err)
	}
	return result.ProfilePicture, nil
}

// Health probes the backend health endpoint. No auth required.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	const op = apperrors.Op("api.Health")
	var h Health
	if err := c.do(ctx, op, http.MethodGet, "/api/health", nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}
