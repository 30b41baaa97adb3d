package interfaces

//go:generate moq -out mocks/inviter_mock.go -pkg mocks . Inviter

import (
	"context"

	"github.com/aono-lab/portsync/pkg/domain/model"
	"github.com/aono-lab/portsync/pkg/domain/types"
)

// Inviter defines the interface for the invitation platform
type Inviter interface {
	// Invite sends one invitation. Failures are mapped into the returned
	// outcome, never into an error, so one user cannot abort the run.
	Invite(ctx context.Context, email types.EmailAddress, opts model.InviteOptions) model.InviteOutcome
}
