package main

import (
	"context"
	"os"

	"github.com/aono-lab/portsync/pkg/cli"
	"github.com/aono-lab/portsync/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// Exit status contract for automation callers: 0 success, 2 partial failure
// (some invitations failed), 1 fatal error.
func main() {
	if err := cli.Run(context.Background(), os.Args); err != nil {
		if goerr.HasTag(err, model.ErrTagPartialFailure) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
