package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aono-lab/portsync/pkg/cli/config"
	"github.com/aono-lab/portsync/pkg/domain/model"
	"github.com/aono-lab/portsync/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func writePayload(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "payload.json")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600)).Required()
	return path
}

func TestGroupResolve(t *testing.T) {
	t.Run("Explicit name wins over payload", func(t *testing.T) {
		cfg := config.Group{
			Name:        "Platform Team",
			PayloadPath: writePayload(t, `{"group":"Other Team"}`),
		}

		name, err := cfg.Resolve(nil)
		gt.NoError(t, err).Required()
		gt.Equal(t, types.GroupName("Platform Team"), name)
	})

	t.Run("Payload fields are checked in order", func(t *testing.T) {
		cases := map[string]string{
			`{"resource":{"groupName":"From Resource"}}`:                "From Resource",
			`{"data":{"group":"From Data"}}`:                            "From Data",
			`{"group":"Top Level"}`:                                     "Top Level",
			`{"resource":{"groupName":"Wins"},"data":{"group":"Loses"}}`: "Wins",
		}

		for payload, expected := range cases {
			cfg := config.Group{PayloadPath: writePayload(t, payload)}
			name, err := cfg.Resolve(nil)
			gt.NoError(t, err).Required()
			gt.Equal(t, types.GroupName(expected), name)
		}
	})

	t.Run("Invalid payload falls through to error", func(t *testing.T) {
		cfg := config.Group{PayloadPath: writePayload(t, `not json at all`)}

		_, err := cfg.Resolve(nil)
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagConfig)).True()
	})

	t.Run("Missing everything is a configuration error", func(t *testing.T) {
		cfg := config.Group{}

		_, err := cfg.Resolve(nil)
		gt.Error(t, err)
		gt.B(t, goerr.HasTag(err, model.ErrTagConfig)).True()
	})

	t.Run("Non-string group field is ignored", func(t *testing.T) {
		cfg := config.Group{PayloadPath: writePayload(t, `{"group":42}`)}

		_, err := cfg.Resolve(nil)
		gt.Error(t, err)
	})
}
