package config

import (
	"io"
	"log/slog"
	"os"

	"github.com/aono-lab/portsync/pkg/domain/model"
	"github.com/aono-lab/portsync/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// maxPayloadSize caps how much webhook payload is read from a file or stdin
const maxPayloadSize = 1 * 1024 * 1024

// Group resolves the target group name with deterministic precedence:
// CLI flag > environment > webhook payload (file, then piped stdin)
type Group struct {
	Name        string
	PayloadPath string
}

// Flags returns CLI flags for Group configuration
func (g *Group) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "group",
			Usage:       "Group displayName to sync",
			Category:    "Sync",
			Sources:     cli.EnvVars("PORTSYNC_GROUP_NAME", "GROUP_NAME"),
			Destination: &g.Name,
		},
		&cli.StringFlag{
			Name:        "webhook-payload",
			Usage:       "Path to a webhook payload JSON file carrying the group name",
			Category:    "Sync",
			Sources:     cli.EnvVars("PORTSYNC_WEBHOOK_PAYLOAD_PATH", "WEBHOOK_PAYLOAD_PATH"),
			Destination: &g.PayloadPath,
		},
	}
}

// Resolve yields the group name for this run. The flag/env value wins; the
// webhook payload is only consulted when neither is set.
func (g *Group) Resolve(stdin *os.File) (types.GroupName, error) {
	if g.Name != "" {
		return types.GroupName(g.Name), nil
	}

	if name := g.nameFromPayload(stdin); name != "" {
		return types.GroupName(name), nil
	}

	return "", goerr.New(
		"group name not provided: use --group, set PORTSYNC_GROUP_NAME, or supply it in the webhook payload",
		goerr.T(model.ErrTagConfig))
}

func (g *Group) nameFromPayload(stdin *os.File) string {
	payload := g.readPayload(stdin)
	if len(payload) == 0 || !gjson.ValidBytes(payload) {
		return ""
	}

	for _, path := range []string{"resource.groupName", "data.group", "group"} {
		if v := gjson.GetBytes(payload, path); v.Type == gjson.String && v.Str != "" {
			return v.Str
		}
	}
	return ""
}

func (g *Group) readPayload(stdin *os.File) []byte {
	if g.PayloadPath != "" {
		f, err := os.Open(g.PayloadPath)
		if err != nil {
			return nil
		}
		defer func() { _ = f.Close() }()
		data, _ := io.ReadAll(io.LimitReader(f, maxPayloadSize))
		return data
	}

	// Piped stdin only; an interactive terminal is never read
	if stdin == nil || term.IsTerminal(int(stdin.Fd())) {
		return nil
	}
	data, _ := io.ReadAll(io.LimitReader(stdin, maxPayloadSize))
	return data
}

// LogValue returns structured log value
func (g Group) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", g.Name),
		slog.String("payload_path", g.PayloadPath),
	)
}
