package config

import (
	"log/slog"
	"strings"

	"github.com/aono-lab/portsync/pkg/domain/model"
	"github.com/aono-lab/portsync/pkg/service/port"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Port holds invitation platform configuration
type Port struct {
	Token   string
	BaseURL string
	Notify  bool
	Role    string
	TeamIDs string
	DryRun  bool
}

// Flags returns CLI flags for Port configuration
func (p *Port) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "port-token",
			Usage:       "Port API token",
			Category:    "Port",
			Sources:     cli.EnvVars("PORTSYNC_PORT_API_TOKEN", "PORT_API_TOKEN"),
			Destination: &p.Token,
		},
		&cli.StringFlag{
			Name:        "port-api-url",
			Usage:       "Port API base URL",
			Category:    "Port",
			Value:       port.DefaultBaseURL,
			Sources:     cli.EnvVars("PORTSYNC_PORT_API_URL"),
			Destination: &p.BaseURL,
		},
		&cli.BoolFlag{
			Name:        "notify",
			Usage:       "Whether Port sends invite emails",
			Category:    "Port",
			Value:       true,
			Sources:     cli.EnvVars("PORTSYNC_PORT_NOTIFY", "PORT_NOTIFY"),
			Destination: &p.Notify,
		},
		&cli.StringFlag{
			Name:        "role",
			Usage:       "Port role ID/slug to include in the invitee payload",
			Category:    "Port",
			Sources:     cli.EnvVars("PORTSYNC_PORT_ROLE", "PORT_ROLE"),
			Destination: &p.Role,
		},
		&cli.StringFlag{
			Name:        "team-ids",
			Usage:       "Comma-separated team IDs to assign on invite",
			Category:    "Port",
			Sources:     cli.EnvVars("PORTSYNC_PORT_TEAM_IDS", "PORT_TEAM_IDS"),
			Destination: &p.TeamIDs,
		},
		&cli.BoolFlag{
			Name:        "dry-run",
			Usage:       "Report what would be invited without calling the Port API",
			Category:    "Port",
			Sources:     cli.EnvVars("PORTSYNC_DRY_RUN", "DRY_RUN"),
			Destination: &p.DryRun,
		},
	}
}

// Validate checks required configuration. The token is not required for a
// dry run since no invitation call is made.
func (p *Port) Validate() error {
	if p.Token == "" && !p.DryRun {
		return goerr.New("Port API token is required (--port-token or PORTSYNC_PORT_API_TOKEN)")
	}
	return nil
}

// Configure creates the Port invitation client
func (p *Port) Configure() (*port.Client, error) {
	token := p.Token
	if token == "" && p.DryRun {
		// Never dereferenced: the dispatcher short-circuits in dry-run mode
		token = "dry-run"
	}
	return port.New(token, port.WithBaseURL(p.BaseURL))
}

// InviteOptions resolves the per-run invitation options
func (p *Port) InviteOptions() model.InviteOptions {
	opts := model.InviteOptions{
		Notify: p.Notify,
		Role:   p.Role,
	}
	for _, id := range strings.Split(p.TeamIDs, ",") {
		if id = strings.TrimSpace(id); id != "" {
			opts.TeamIDs = append(opts.TeamIDs, id)
		}
	}
	return opts
}

// LogValue returns structured log value; the token is redacted
func (p Port) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_token", p.Token != ""),
		slog.String("base_url", p.BaseURL),
		slog.Bool("notify", p.Notify),
		slog.String("role", p.Role),
		slog.String("team_ids", p.TeamIDs),
		slog.Bool("dry_run", p.DryRun),
	)
}
