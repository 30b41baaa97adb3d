package types

// Phase represents the stage of the sync pipeline
type Phase string

const (
	PhaseIdle                 Phase = "idle"
	PhaseAuthenticating       Phase = "authenticating"
	PhaseResolvingGroup       Phase = "resolving_group"
	PhaseExpandingMembers     Phase = "expanding_members"
	PhaseExtractingIdentities Phase = "extracting_identities"
	PhaseDispatching          Phase = "dispatching"
	PhaseCompleted            Phase = "completed"
	PhaseAborted              Phase = "aborted"
)

// String returns the string representation
func (p Phase) String() string {
	return string(p)
}
