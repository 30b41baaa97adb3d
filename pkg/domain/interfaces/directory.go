package interfaces

//go:generate moq -out mocks/directory_mock.go -pkg mocks . DirectoryClient

import (
	"context"

	"github.com/aono-lab/portsync/pkg/domain/model"
	"github.com/aono-lab/portsync/pkg/domain/types"
)

// DirectoryClient defines the interface for the identity directory
type DirectoryClient interface {
	// Authenticate performs the client-credentials exchange and caches the
	// access token for subsequent calls
	Authenticate(ctx context.Context) error

	// ResolveGroup maps a group display name to a directory group
	ResolveGroup(ctx context.Context, name types.GroupName) (*model.Group, error)

	// TransitiveMembers returns the full flattened member listing of a group,
	// following every pagination link
	TransitiveMembers(ctx context.Context, id types.GroupID) ([]model.MemberRecord, error)
}
