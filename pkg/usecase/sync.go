package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/aono-lab/portsync/pkg/domain/interfaces"
	"github.com/aono-lab/portsync/pkg/domain/model"
	"github.com/aono-lab/portsync/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/time/rate"
)

// DefaultDispatchInterval is the unconditional floor between successive
// invitation dispatches, keeping the run under upstream rate limits
const DefaultDispatchInterval = 50 * time.Millisecond

// Sync orchestrates one membership sync run: authenticate, resolve the
// group, expand transitive members, extract identities, dispatch invitations
// one at a time, and account every outcome.
type Sync struct {
	directory interfaces.DirectoryClient
	inviter   interfaces.Inviter
	invite    model.InviteOptions
	dryRun    bool
	interval  time.Duration
	output    io.Writer
}

// SyncOption configures a Sync use case
type SyncOption func(*Sync)

// WithInviteOptions sets the invitation options applied to every identity
func WithInviteOptions(opts model.InviteOptions) SyncOption {
	return func(s *Sync) {
		s.invite = opts
	}
}

// WithDryRun suppresses invitation network calls, synthesizing would-invite
// outcomes while keeping spacing and reporting identical
func WithDryRun(dryRun bool) SyncOption {
	return func(s *Sync) {
		s.dryRun = dryRun
	}
}

// WithDispatchInterval overrides the inter-dispatch spacing floor
func WithDispatchInterval(interval time.Duration) SyncOption {
	return func(s *Sync) {
		s.interval = interval
	}
}

// WithOutput sets the writer for per-identity progress lines
func WithOutput(w io.Writer) SyncOption {
	return func(s *Sync) {
		s.output = w
	}
}

// NewSync creates a sync use case
func NewSync(directory interfaces.DirectoryClient, inviter interfaces.Inviter, opts ...SyncOption) *Sync {
	s := &Sync{
		directory: directory,
		inviter:   inviter,
		invite:    model.InviteOptions{Notify: true},
		interval:  DefaultDispatchInterval,
		output:    os.Stdout,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run executes the pipeline for one group. A fatal error at any stage before
// dispatching aborts the run; per-identity dispatch failures never do. The
// returned result accounts exactly one outcome per invitable identity.
func (s *Sync) Run(ctx context.Context, groupName types.GroupName) (*model.RunResult, error) {
	runID := types.NewRunID()
	logger := ctxlog.From(ctx).With(slog.String("runID", runID.String()))
	ctx = ctxlog.With(ctx, logger)

	phase := types.PhaseIdle
	abort := func(err error) error {
		failedPhase := phase
		phase = types.PhaseAborted
		return goerr.Wrap(err, "sync run aborted",
			goerr.V("phase", failedPhase.String()),
			goerr.V("runID", runID.String()))
	}

	phase = types.PhaseAuthenticating
	if err := s.directory.Authenticate(ctx); err != nil {
		return nil, abort(err)
	}

	phase = types.PhaseResolvingGroup
	logger.Info("Resolving group", slog.String("displayName", groupName.String()))
	group, err := s.directory.ResolveGroup(ctx, groupName)
	if err != nil {
		return nil, abort(err)
	}
	logger.Info("Group resolved",
		slog.String("id", group.ID.String()),
		slog.String("displayName", group.DisplayName.String()))

	phase = types.PhaseExpandingMembers
	records, err := s.directory.TransitiveMembers(ctx, group.ID)
	if err != nil {
		return nil, abort(err)
	}

	phase = types.PhaseExtractingIdentities
	emails, skipped := ExtractIdentities(ctx, records)
	logger.Info("Identities extracted",
		slog.Int("records", len(records)),
		slog.Int("identities", len(emails)),
		slog.Int("skipped", skipped))

	result := &model.RunResult{
		Group:          *group,
		SkippedRecords: skipped,
	}

	phase = types.PhaseDispatching
	s.dispatch(ctx, emails, result)

	phase = types.PhaseCompleted
	logger.Info("Sync run completed",
		slog.String("phase", phase.String()),
		slog.String("status", string(result.Status())),
		slog.Int("invited", result.Invited()),
		slog.Int("failed", result.Failed()))

	fmt.Fprintf(s.output, "Done. Invited OK: %d, failed: %d (records without email: %d)\n",
		result.Invited(), result.Failed(), result.SkippedRecords)

	return result, nil
}

// dispatch sends one invitation per identity, sequentially, with the rate
// floor applied before every call including dry runs. Failures are recorded
// per identity and never stop the loop.
func (s *Sync) dispatch(ctx context.Context, emails []types.EmailAddress, result *model.RunResult) {
	logger := ctxlog.From(ctx)
	limiter := rate.NewLimiter(rate.Every(s.interval), 1)
	total := len(emails)

	for i, email := range emails {
		if err := limiter.Wait(ctx); err != nil {
			// Context cancelled mid-run; record the remaining identities as
			// failed so accounting stays complete
			for _, rest := range emails[i:] {
				result.Append(model.InviteOutcome{
					Email:  rest,
					Status: model.InviteStatusFailed,
					Detail: "cancelled: " + err.Error(),
				})
			}
			return
		}

		var outcome model.InviteOutcome
		if s.dryRun {
			outcome = model.InviteOutcome{
				Email:  email,
				Status: model.InviteStatusWouldInvite,
				Detail: "dry run, not sending",
			}
		} else {
			outcome = s.inviter.Invite(ctx, email, s.invite)
		}
		result.Append(outcome)

		marker := "OK"
		if !outcome.Status.OK() {
			marker = "ERR"
		}
		fmt.Fprintf(s.output, "[%d/%d] %s: %s - %s\n", i+1, total, email, marker, outcome.Detail)

		logger.Debug("Invitation dispatched",
			slog.String("email", email.String()),
			slog.String("status", outcome.Status.String()),
			slog.Int("code", outcome.StatusCode))
	}
}
