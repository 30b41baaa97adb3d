package model

import "github.com/aono-lab/portsync/pkg/domain/types"

// InviteStatus classifies the outcome of a single invitation
type InviteStatus string

const (
	// InviteStatusInvited means the platform accepted the invitation
	InviteStatusInvited InviteStatus = "invited"
	// InviteStatusWouldInvite is the synthetic dry-run outcome
	InviteStatusWouldInvite InviteStatus = "would-invite"
	// InviteStatusSkippedDuplicate means the user already exists (409)
	InviteStatusSkippedDuplicate InviteStatus = "skipped-duplicate"
	// InviteStatusFailed means the request errored or returned another non-2xx
	InviteStatusFailed InviteStatus = "failed"
)

// String returns the string representation
func (s InviteStatus) String() string {
	return string(s)
}

// OK reports whether the outcome counts as non-failed for exit derivation
func (s InviteStatus) OK() bool {
	return s != InviteStatusFailed
}

// InviteOptions are applied identically to every invitation in a run
type InviteOptions struct {
	Notify  bool
	Role    string
	TeamIDs []string
}

// InviteOutcome records the result of one invitation dispatch
type InviteOutcome struct {
	Email      types.EmailAddress
	Status     InviteStatus
	StatusCode int    // HTTP status of the upstream response, 0 if none
	Detail     string // sanitized upstream message or error summary
}

// RunResult accumulates per-identity outcomes for one sync run
type RunResult struct {
	Group          Group
	Outcomes       []InviteOutcome
	SkippedRecords int // member records without a usable email
}

// Append records one dispatch outcome
func (r *RunResult) Append(outcome InviteOutcome) {
	r.Outcomes = append(r.Outcomes, outcome)
}

// Invited counts non-failed outcomes, including duplicates and dry-run hits
func (r *RunResult) Invited() int {
	var n int
	for _, o := range r.Outcomes {
		if o.Status.OK() {
			n++
		}
	}
	return n
}

// Failed counts failed outcomes
func (r *RunResult) Failed() int {
	var n int
	for _, o := range r.Outcomes {
		if !o.Status.OK() {
			n++
		}
	}
	return n
}

// RunStatus is the terminal classification of a completed run
type RunStatus string

const (
	RunStatusSuccess        RunStatus = "success"
	RunStatusPartialFailure RunStatus = "partial_failure"
)

// Status derives the terminal run status from the accumulated outcomes
func (r *RunResult) Status() RunStatus {
	if r.Failed() > 0 {
		return RunStatusPartialFailure
	}
	return RunStatusSuccess
}
