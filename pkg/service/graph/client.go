package graph

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aono-lab/portsync/pkg/domain/model"
	"github.com/aono-lab/portsync/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	// DefaultBaseURL is the Microsoft Graph v1.0 endpoint
	DefaultBaseURL = "https://graph.microsoft.com/v1.0"

	defaultScope   = "https://graph.microsoft.com/.default"
	authorityBase  = "https://login.microsoftonline.com"
	requestTimeout = 30 * time.Second

	// lookupTop caps the group lookup result set. An exact display-name
	// match should yield at most one record.
	lookupTop = "5"

	// membersPageSize is the maximum page size Graph allows for
	// transitiveMembers
	membersPageSize = "999"
)

// Client is a Microsoft Graph directory client. The access token is acquired
// once via Authenticate and is read-only afterwards.
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      clientcredentials.Config
	token      *oauth2.Token
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL overrides the Graph API endpoint
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTokenURL overrides the token endpoint
func WithTokenURL(tokenURL string) Option {
	return func(c *Client) {
		c.creds.TokenURL = tokenURL
	}
}

// WithHTTPClient overrides the HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a directory client for the given tenant. All credential fields
// are required.
func New(tenantID, clientID, clientSecret string, opts ...Option) (*Client, error) {
	if tenantID == "" {
		return nil, goerr.New("tenant ID is required", goerr.T(model.ErrTagConfig))
	}
	if clientID == "" {
		return nil, goerr.New("client ID is required", goerr.T(model.ErrTagConfig))
	}
	if clientSecret == "" {
		return nil, goerr.New("client secret is required", goerr.T(model.ErrTagConfig))
	}

	client := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		creds: clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     authorityBase + "/" + url.PathEscape(tenantID) + "/oauth2/v2.0/token",
			Scopes:       []string{defaultScope},
		},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Authenticate performs the client-credentials exchange against the tenant
// token endpoint. Token failures are fatal to the run; no retry.
func (c *Client) Authenticate(ctx context.Context) error {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	token, err := c.creds.Token(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to acquire directory access token",
			goerr.T(model.ErrTagAuth))
	}

	c.token = token
	ctxlog.From(ctx).Debug("Directory access token acquired",
		slog.Time("expiry", token.Expiry))
	return nil
}

// ResolveGroup maps a group display name to its directory object. The name
// is sanitized before it reaches the filter expression. Matching is exact
// and case-sensitive; with multiple exact matches the first candidate in
// response order is selected after logging all of them.
func (c *Client) ResolveGroup(ctx context.Context, name types.GroupName) (*model.Group, error) {
	sanitized, err := SanitizeDisplayName(name.String())
	if err != nil {
		return nil, err
	}
	if sanitized == "" {
		return nil, goerr.New("group name is empty", goerr.T(model.ErrTagConfig))
	}

	query := url.Values{
		"$select": {"id,displayName"},
		"$filter": {eqFilter("displayName", sanitized)},
		"$top":    {lookupTop},
	}

	var page struct {
		Value []struct {
			ID          string `json:"id"`
			DisplayName string `json:"displayName"`
		} `json:"value"`
	}
	if err := c.getJSON(ctx, c.baseURL+"/groups?"+query.Encode(), &page); err != nil {
		return nil, goerr.Wrap(err, "group lookup failed",
			goerr.V("displayName", sanitized))
	}

	var matches []*model.Group
	for _, candidate := range page.Value {
		if candidate.DisplayName == sanitized {
			matches = append(matches, &model.Group{
				ID:          types.GroupID(candidate.ID),
				DisplayName: types.GroupName(candidate.DisplayName),
			})
		}
	}

	if len(matches) == 0 {
		return nil, goerr.Wrap(model.ErrGroupNotFound, "no exact display name match",
			goerr.V("displayName", sanitized))
	}

	if len(matches) > 1 {
		logger := ctxlog.From(ctx)
		logger.Warn("Multiple groups matched display name, using the first",
			slog.String("displayName", sanitized),
			slog.Int("matchCount", len(matches)))
		for _, m := range matches {
			logger.Warn("Matched group candidate",
				slog.String("id", m.ID.String()),
				slog.String("displayName", m.DisplayName.String()))
		}
	}

	return matches[0], nil
}

// TransitiveMembers returns the full flattened member listing of a group,
// following every @odata.nextLink. A failure on any page aborts the whole
// expansion; partial member lists are never returned.
func (c *Client) TransitiveMembers(ctx context.Context, id types.GroupID) ([]model.MemberRecord, error) {
	query := url.Values{
		"$select": {"id,displayName,mail,userPrincipalName"},
		"$top":    {membersPageSize},
	}
	next := c.baseURL + "/groups/" + url.PathEscape(id.String()) + "/transitiveMembers?" + query.Encode()

	var records []model.MemberRecord
	var pages int
	for next != "" {
		var page struct {
			Value    []model.MemberRecord `json:"value"`
			NextLink string               `json:"@odata.nextLink"`
		}
		if err := c.getJSON(ctx, next, &page); err != nil {
			return nil, goerr.Wrap(err, "transitive member listing failed",
				goerr.V("groupID", id.String()),
				goerr.V("page", pages))
		}

		records = append(records, page.Value...)
		next = page.NextLink
		pages++
	}

	ctxlog.From(ctx).Debug("Transitive member listing complete",
		slog.String("groupID", id.String()),
		slog.Int("pages", pages),
		slog.Int("records", len(records)))

	return records, nil
}

// getJSON performs a bearer-authenticated GET and decodes the JSON response.
// Non-2xx responses are mapped to query errors carrying the Graph error code
// and a truncated message, never the raw body.
func (c *Client) getJSON(ctx context.Context, rawURL string, result any) error {
	if c.token == nil {
		return goerr.New("directory client is not authenticated",
			goerr.T(model.ErrTagQuery))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return goerr.Wrap(err, "failed to create directory request",
			goerr.T(model.ErrTagQuery))
	}
	req.Header.Set("Authorization", "Bearer "+c.token.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "directory request failed",
			goerr.T(model.ErrTagQuery))
	}
	defer func() { _ = resp.Body.Close() }()

	const maxResponseSize = 10 * 1024 * 1024
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return goerr.Wrap(err, "failed to read directory response",
			goerr.T(model.ErrTagQuery))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return goerr.New("directory returned error status",
			goerr.V("status", resp.StatusCode),
			goerr.V("code", gjson.GetBytes(body, "error.code").String()),
			goerr.V("message", truncate(gjson.GetBytes(body, "error.message").String(), 160)),
			goerr.T(model.ErrTagQuery))
	}

	if err := json.Unmarshal(body, result); err != nil {
		return goerr.Wrap(err, "failed to decode directory response",
			goerr.T(model.ErrTagQuery))
	}

	return nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
