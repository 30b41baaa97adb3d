package cli

import (
	"context"
	"log/slog"

	"github.com/aono-lab/portsync/pkg/cli/config"
	"github.com/aono-lab/portsync/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var loggerCfg config.Logger

	app := &cli.Command{
		Name:    "portsync",
		Usage:   "Invite all members of an Entra ID group to Port",
		Version: "0.1.0",
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, err := loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdSync(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if goerr.HasTag(err, model.ErrTagPartialFailure) {
			// Already reported per identity; keep the summary the last word
			return err
		}
		slog.Default().Error("CLI execution failed", "error", err)
		return goerr.Wrap(err, "CLI execution failed")
	}

	return nil
}
