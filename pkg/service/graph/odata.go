package graph

import (
	"strings"
	"unicode"

	"github.com/aono-lab/portsync/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// Characters that could alter OData filter semantics if they reached the
// server-side expression. A display name containing any of these is rejected
// outright rather than escaped.
const odataMetaChars = `;,()/\$@#`

// SanitizeDisplayName prepares a group display name for use inside an OData
// string literal. Quote characters and control characters are stripped, and
// OData metacharacters cause a rejection. The returned value is guaranteed to
// contain no single quotes, double quotes, or control characters.
func SanitizeDisplayName(name string) (string, error) {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if r == '\'' || r == '"' || unicode.IsControl(r) {
			continue
		}
		b.WriteRune(r)
	}
	sanitized := b.String()

	if i := strings.IndexAny(sanitized, odataMetaChars); i >= 0 {
		return "", goerr.New("group name contains unsupported characters",
			goerr.V("character", string(sanitized[i])),
			goerr.T(model.ErrTagConfig))
	}

	return sanitized, nil
}

// eqFilter builds an exact-match OData filter expression for a property.
// The value must already be sanitized.
func eqFilter(property, value string) string {
	return property + " eq '" + value + "'"
}
