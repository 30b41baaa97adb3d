package config

import (
	"log/slog"

	"github.com/aono-lab/portsync/pkg/service/graph"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Entra holds Microsoft Entra ID (directory) credentials
type Entra struct {
	TenantID     string
	ClientID     string
	ClientSecret string
}

// Flags returns CLI flags for Entra configuration. The unprefixed env names
// match what Azure Pipelines secrets were historically called.
func (e *Entra) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "tenant-id",
			Usage:       "Entra ID tenant ID",
			Category:    "Directory",
			Sources:     cli.EnvVars("PORTSYNC_GRAPH_TENANT_ID", "GRAPH_TENANT_ID"),
			Destination: &e.TenantID,
		},
		&cli.StringFlag{
			Name:        "client-id",
			Usage:       "App (client) ID with Graph application permissions",
			Category:    "Directory",
			Sources:     cli.EnvVars("PORTSYNC_GRAPH_CLIENT_ID", "GRAPH_CLIENT_ID"),
			Destination: &e.ClientID,
		},
		&cli.StringFlag{
			Name:        "client-secret",
			Usage:       "App (client) secret",
			Category:    "Directory",
			Sources:     cli.EnvVars("PORTSYNC_GRAPH_CLIENT_SECRET", "GRAPH_CLIENT_SECRET"),
			Destination: &e.ClientSecret,
		},
	}
}

// Validate checks that every credential field is present before any network
// call is made
func (e *Entra) Validate() error {
	if e.TenantID == "" {
		return goerr.New("tenant ID is required (--tenant-id or PORTSYNC_GRAPH_TENANT_ID)")
	}
	if e.ClientID == "" {
		return goerr.New("client ID is required (--client-id or PORTSYNC_GRAPH_CLIENT_ID)")
	}
	if e.ClientSecret == "" {
		return goerr.New("client secret is required (--client-secret or PORTSYNC_GRAPH_CLIENT_SECRET)")
	}
	return nil
}

// Configure creates the Graph directory client
func (e *Entra) Configure() (*graph.Client, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return graph.New(e.TenantID, e.ClientID, e.ClientSecret)
}

// LogValue returns structured log value; secrets are redacted
func (e Entra) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("tenant_id", e.TenantID),
		slog.Bool("has_client_id", e.ClientID != ""),
		slog.Bool("has_client_secret", e.ClientSecret != ""),
	)
}
