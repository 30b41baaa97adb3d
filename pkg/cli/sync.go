package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/aono-lab/portsync/pkg/cli/config"
	"github.com/aono-lab/portsync/pkg/domain/model"
	"github.com/aono-lab/portsync/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdSync() *cli.Command {
	var (
		groupCfg config.Group
		entraCfg config.Entra
		portCfg  config.Port
	)

	flags := joinFlags(
		groupCfg.Flags(),
		entraCfg.Flags(),
		portCfg.Flags(),
	)

	return &cli.Command{
		Name:  "sync",
		Usage: "Sync group members to Port by sending user invites",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			groupName, err := groupCfg.Resolve(os.Stdin)
			if err != nil {
				return err
			}

			if err := portCfg.Validate(); err != nil {
				return goerr.Wrap(err, "invalid configuration", goerr.T(model.ErrTagConfig))
			}

			logger.Info("Starting sync",
				slog.String("group", groupName.String()),
				slog.Any("directory", entraCfg),
				slog.Any("port", portCfg),
			)

			directory, err := entraCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "invalid configuration", goerr.T(model.ErrTagConfig))
			}

			inviter, err := portCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "invalid configuration", goerr.T(model.ErrTagConfig))
			}

			sync := usecase.NewSync(directory, inviter,
				usecase.WithInviteOptions(portCfg.InviteOptions()),
				usecase.WithDryRun(portCfg.DryRun),
			)

			result, err := sync.Run(ctx, groupName)
			if err != nil {
				return err
			}

			if result.Status() == model.RunStatusPartialFailure {
				return goerr.New("sync completed with failed invitations",
					goerr.V("failed", result.Failed()),
					goerr.V("invited", result.Invited()),
					goerr.T(model.ErrTagPartialFailure))
			}

			return nil
		},
	}
}
