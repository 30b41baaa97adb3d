package port_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aono-lab/portsync/pkg/domain/model"
	"github.com/aono-lab/portsync/pkg/domain/types"
	"github.com/aono-lab/portsync/pkg/service/port"
	"github.com/m-mizutani/gt"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *port.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := port.New("test-token", port.WithBaseURL(server.URL))
	gt.NoError(t, err).Required()
	return client
}

func TestNew(t *testing.T) {
	t.Run("Token is required", func(t *testing.T) {
		_, err := port.New("")
		gt.Error(t, err)
	})
}

func TestInvite(t *testing.T) {
	ctx := context.Background()

	t.Run("2xx maps to invited", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gt.Equal(t, http.MethodPost, r.Method)
			gt.Equal(t, "/v1/users/invite", r.URL.Path)
			gt.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

			var body map[string]any
			gt.NoError(t, json.NewDecoder(r.Body).Decode(&body)).Required()
			invitee := body["invitee"].(map[string]any)
			gt.Equal(t, "alice@example.com", invitee["email"])
			gt.Equal(t, true, body["notify"])

			// role and teamIds must be omitted when unset
			_, hasRole := invitee["role"]
			gt.B(t, hasRole).False()
			_, hasTeams := invitee["teamIds"]
			gt.B(t, hasTeams).False()

			w.WriteHeader(http.StatusCreated)
		})

		outcome := client.Invite(ctx, types.EmailAddress("alice@example.com"), model.InviteOptions{Notify: true})
		gt.Equal(t, model.InviteStatusInvited, outcome.Status)
		gt.Equal(t, http.StatusCreated, outcome.StatusCode)
	})

	t.Run("Role and team IDs are carried when set", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			gt.NoError(t, json.NewDecoder(r.Body).Decode(&body)).Required()
			invitee := body["invitee"].(map[string]any)
			gt.Equal(t, "Member", invitee["role"])
			gt.Equal(t, 2, len(invitee["teamIds"].([]any)))
			gt.Equal(t, false, body["notify"])

			w.WriteHeader(http.StatusOK)
		})

		outcome := client.Invite(ctx, types.EmailAddress("bob@example.com"), model.InviteOptions{
			Role:    "Member",
			TeamIDs: []string{"team-a", "team-b"},
		})
		gt.Equal(t, model.InviteStatusInvited, outcome.Status)
	})

	t.Run("409 maps to skipped duplicate", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"message":"user already exists"}`, http.StatusConflict)
		})

		outcome := client.Invite(ctx, types.EmailAddress("alice@example.com"), model.InviteOptions{Notify: true})
		gt.Equal(t, model.InviteStatusSkippedDuplicate, outcome.Status)
		gt.Equal(t, http.StatusConflict, outcome.StatusCode)
		gt.B(t, outcome.Status.OK()).True()
	})

	t.Run("Other non-2xx maps to failed with sanitized detail", func(t *testing.T) {
		longBody := strings.Repeat("x", 500) + "\x00\x01"
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, longBody)
		})

		outcome := client.Invite(ctx, types.EmailAddress("alice@example.com"), model.InviteOptions{Notify: true})
		gt.Equal(t, model.InviteStatusFailed, outcome.Status)
		gt.Equal(t, http.StatusInternalServerError, outcome.StatusCode)
		gt.B(t, len(outcome.Detail) <= 160).True()
		gt.B(t, strings.ContainsRune(outcome.Detail, '\x00')).False()
	})

	t.Run("Network failure maps to failed, not an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // connection refused from here on

		client, err := port.New("test-token", port.WithBaseURL(server.URL))
		gt.NoError(t, err).Required()

		outcome := client.Invite(ctx, types.EmailAddress("alice@example.com"), model.InviteOptions{Notify: true})
		gt.Equal(t, model.InviteStatusFailed, outcome.Status)
		gt.Equal(t, 0, outcome.StatusCode)
		gt.B(t, outcome.Detail != "").True()
	})
}
