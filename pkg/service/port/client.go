package port

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/aono-lab/portsync/pkg/domain/model"
	"github.com/aono-lab/portsync/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

const (
	// DefaultBaseURL is the Port API endpoint
	DefaultBaseURL = "https://api.port.io"

	invitePath     = "/v1/users/invite"
	requestTimeout = 30 * time.Second

	// maxDetailLen caps how much of an upstream response body is carried
	// into outcomes and logs
	maxDetailLen = 160
)

// Client sends user invitations to the Port API
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL overrides the API endpoint
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient overrides the HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates an invitation client. The API token is required.
func New(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, goerr.New("Port API token is required", goerr.T(model.ErrTagConfig))
	}

	client := &Client{
		baseURL:    DefaultBaseURL,
		token:      token,
		httpClient: &http.Client{Timeout: requestTimeout},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

type invitee struct {
	Email   string   `json:"email"`
	Role    string   `json:"role,omitempty"`
	TeamIDs []string `json:"teamIds,omitempty"`
}

type inviteRequest struct {
	Invitee invitee `json:"invitee"`
	Notify  bool    `json:"notify"`
}

// Invite sends one invitation request. Every failure mode, including network
// errors and timeouts, is mapped into the returned outcome so a single user
// can never abort the remaining dispatches.
func (c *Client) Invite(ctx context.Context, email types.EmailAddress, opts model.InviteOptions) model.InviteOutcome {
	outcome := model.InviteOutcome{Email: email}

	body, err := json.Marshal(inviteRequest{
		Invitee: invitee{
			Email:   email.String(),
			Role:    opts.Role,
			TeamIDs: opts.TeamIDs,
		},
		Notify: opts.Notify,
	})
	if err != nil {
		outcome.Status = model.InviteStatusFailed
		outcome.Detail = "failed to encode invite request"
		return outcome
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+invitePath, bytes.NewReader(body))
	if err != nil {
		outcome.Status = model.InviteStatusFailed
		outcome.Detail = "failed to create invite request"
		return outcome
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		ctxlog.From(ctx).Warn("Invite request failed",
			slog.String("email", email.String()),
			slog.Any("error", err))
		outcome.Status = model.InviteStatusFailed
		outcome.Detail = sanitizeDetail(err.Error())
		return outcome
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	outcome.StatusCode = resp.StatusCode

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		outcome.Status = model.InviteStatusInvited
		outcome.Detail = "invited"

	case resp.StatusCode == http.StatusConflict:
		// Already a member; idempotent success for reporting purposes
		outcome.Status = model.InviteStatusSkippedDuplicate
		outcome.Detail = "already exists"

	default:
		outcome.Status = model.InviteStatusFailed
		outcome.Detail = sanitizeDetail(string(respBody))
	}

	return outcome
}

// sanitizeDetail truncates an upstream message and strips control characters
// before it reaches outcomes or logs
func sanitizeDetail(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsControl(r) {
			continue
		}
		b.WriteRune(r)
		if b.Len() >= maxDetailLen {
			break
		}
	}
	return b.String()
}
