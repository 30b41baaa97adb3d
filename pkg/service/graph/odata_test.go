package graph_test

import (
	"net/url"
	"strings"
	"testing"
	"unicode"

	"github.com/aono-lab/portsync/pkg/service/graph"
	"github.com/m-mizutani/gt"
)

func TestSanitizeDisplayName(t *testing.T) {
	t.Run("Plain names pass through unchanged", func(t *testing.T) {
		for _, name := range []string{"Engineering", "Platform Team 2", "SRE on call"} {
			sanitized, err := graph.SanitizeDisplayName(name)
			gt.NoError(t, err).Required()
			gt.Equal(t, name, sanitized)
		}
	})

	t.Run("Quotes and control characters are stripped", func(t *testing.T) {
		sanitized, err := graph.SanitizeDisplayName("Team' \"Red\"\x00\x1b\n")
		gt.NoError(t, err).Required()
		gt.Equal(t, "Team Red", sanitized)
	})

	t.Run("Output never contains quotes or control characters", func(t *testing.T) {
		inputs := []string{
			"normal",
			"with 'single' quotes",
			`with "double" quotes`,
			"ctrl\x00\x01\x02chars",
			"mixed '\"\t\r\n value",
		}
		for _, input := range inputs {
			sanitized, err := graph.SanitizeDisplayName(input)
			if err != nil {
				continue
			}
			gt.B(t, strings.ContainsAny(sanitized, `'"`)).False()
			gt.B(t, strings.ContainsFunc(sanitized, unicode.IsControl)).False()
		}
	})

	t.Run("OData metacharacters are rejected", func(t *testing.T) {
		for _, name := range []string{
			"a;b", "a,b", "f(x)", "a/b", `a\b`, "a$b", "a@b", "a#b",
			"displayName eq 'x' or startswith(displayName,'a')",
		} {
			_, err := graph.SanitizeDisplayName(name)
			gt.Error(t, err)
		}
	})

	t.Run("ASCII alphanumeric and space round-trips percent encoding", func(t *testing.T) {
		name := "Platform Team 42"
		sanitized, err := graph.SanitizeDisplayName(name)
		gt.NoError(t, err).Required()

		encoded := url.QueryEscape(sanitized)
		decoded, err := url.QueryUnescape(encoded)
		gt.NoError(t, err).Required()
		gt.Equal(t, sanitized, decoded)
	})
}
