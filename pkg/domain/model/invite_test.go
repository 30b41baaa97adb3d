package model_test

import (
	"testing"

	"github.com/aono-lab/portsync/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestRunResultAccounting(t *testing.T) {
	t.Run("Duplicates and dry-run hits count as invited", func(t *testing.T) {
		result := &model.RunResult{}
		result.Append(model.InviteOutcome{Email: "a@example.com", Status: model.InviteStatusInvited})
		result.Append(model.InviteOutcome{Email: "b@example.com", Status: model.InviteStatusSkippedDuplicate})
		result.Append(model.InviteOutcome{Email: "c@example.com", Status: model.InviteStatusWouldInvite})

		gt.Equal(t, 3, result.Invited())
		gt.Equal(t, 0, result.Failed())
		gt.Equal(t, model.RunStatusSuccess, result.Status())
	})

	t.Run("Any failed outcome makes the run a partial failure", func(t *testing.T) {
		result := &model.RunResult{}
		result.Append(model.InviteOutcome{Email: "a@example.com", Status: model.InviteStatusInvited})
		result.Append(model.InviteOutcome{Email: "b@example.com", Status: model.InviteStatusFailed, StatusCode: 500})

		gt.Equal(t, 1, result.Invited())
		gt.Equal(t, 1, result.Failed())
		gt.Equal(t, model.RunStatusPartialFailure, result.Status())
	})

	t.Run("Skipped records never affect the status", func(t *testing.T) {
		result := &model.RunResult{SkippedRecords: 4}
		gt.Equal(t, model.RunStatusSuccess, result.Status())
	})
}
