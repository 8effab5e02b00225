package membership

import (
	"strings"

	"community_site/internal/models"
)

// FirstName returns the first whitespace-delimited token of a submitted
// full name.
func FirstName(fullName string) string {
	fields := strings.Fields(fullName)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func firstNameMatches(rec *models.Membership, inputFirstName string) bool {
	stored := strings.TrimSpace(rec.FirstName)
	return stored != "" && inputFirstName != "" && strings.EqualFold(stored, inputFirstName)
}

// Resolve picks the best-matching row for submittedName among rows, which
// must already be filtered to the submitted email and ordered as the store
// returned them.
//
// Among rows whose first name matches, the first approved row wins outright;
// otherwise the first matching row (pending or any other status) is kept.
// Rows with a different first name never become the candidate.
func Resolve(rows []models.Membership, submittedName string) Decision {
	if len(rows) == 0 {
		return notFound()
	}

	input := FirstName(submittedName)

	var candidate *models.Membership
	for i := range rows {
		rec := &rows[i]
		if !firstNameMatches(rec, input) {
			continue
		}
		if rec.Status == models.MembershipApproved {
			candidate = rec
			break
		}
		// Pending and other statuses only fill an empty slot; scanning
		// continues in case an approved row follows.
		if candidate == nil {
			candidate = rec
		}
	}

	if candidate == nil {
		return nameMismatch(rows[0].FirstName)
	}

	switch candidate.Status {
	case models.MembershipApproved:
		// A candidate with an empty first name never reaches here, but the
		// grant path re-checks before handing out access.
		if !firstNameMatches(candidate, input) {
			return nameMismatch(candidate.FirstName)
		}
		return granted(candidate)
	case models.MembershipPending:
		return pending(candidate)
	default:
		return otherStatus(candidate)
	}
}
