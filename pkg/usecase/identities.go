package usecase

import (
	"context"
	"log/slog"
	"strings"
	"unicode"

	"github.com/aono-lab/portsync/pkg/domain/model"
	"github.com/aono-lab/portsync/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
)

// ExtractIdentities reduces raw member records to the deduplicated set of
// invitable email addresses. Only user records are considered; `mail` is
// preferred with `userPrincipalName` as fallback. Deduplication is
// case-insensitive and first-seen order is preserved. Records without a
// usable address are counted as skipped, never fatal.
func ExtractIdentities(ctx context.Context, records []model.MemberRecord) (emails []types.EmailAddress, skipped int) {
	logger := ctxlog.From(ctx)
	seen := make(map[string]struct{}, len(records))

	for _, record := range records {
		if !record.IsUser() {
			continue
		}

		candidate := strings.TrimSpace(record.Mail)
		if candidate == "" {
			candidate = strings.TrimSpace(record.UserPrincipalName)
		}

		if !ValidEmailAddress(candidate) {
			skipped++
			logger.Warn("Skipping member without usable email",
				slog.String("id", record.ID),
				slog.String("displayName", record.DisplayName))
			continue
		}

		email := types.EmailAddress(candidate)
		if _, ok := seen[email.Normalized()]; ok {
			continue
		}
		seen[email.Normalized()] = struct{}{}
		emails = append(emails, email)
	}

	return emails, skipped
}

// ValidEmailAddress performs the structural check applied before dispatch:
// exactly one @, non-empty local and domain parts, a dotted domain, and no
// whitespace or control characters anywhere.
func ValidEmailAddress(s string) bool {
	at := strings.IndexByte(s, '@')
	if at <= 0 || at != strings.LastIndexByte(s, '@') {
		return false
	}

	local, domain := s[:at], s[at+1:]
	if local == "" || domain == "" {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}

	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return false
		}
	}

	return true
}
