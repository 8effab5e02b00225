package membership

import (
	"fmt"

	"community_site/internal/models"
)

// Outcome classifies an access check.
type Outcome string

const (
	Granted            Outcome = "granted"
	DeniedNotFound     Outcome = "denied-not-found"
	DeniedNameMismatch Outcome = "denied-name-mismatch"
	DeniedPending      Outcome = "denied-pending"
	DeniedOtherStatus  Outcome = "denied-other-status"
)

// Decision is the result of resolving an access request. Record is the
// selected best-match row and is nil for not-found and name-mismatch.
type Decision struct {
	Outcome Outcome
	Record  *models.Membership
	Message string
}

func (d Decision) Granted() bool { return d.Outcome == Granted }

func granted(rec *models.Membership) Decision {
	return Decision{
		Outcome: Granted,
		Record:  rec,
		Message: fmt.Sprintf("Access granted. Welcome, %s!", rec.FirstName),
	}
}

func notFound() Decision {
	return Decision{
		Outcome: DeniedNotFound,
		Message: "We couldn't find a membership application for this email address.",
	}
}

func nameMismatch(storedFirstName string) Decision {
	return Decision{
		Outcome: DeniedNameMismatch,
		Message: fmt.Sprintf("The name you entered does not match our records for this email (we have %q on file).", storedFirstName),
	}
}

func pending(rec *models.Membership) Decision {
	return Decision{
		Outcome: DeniedPending,
		Record:  rec,
		Message: "Your membership application is still pending approval. You'll get access once it has been reviewed.",
	}
}

func otherStatus(rec *models.Membership) Decision {
	return Decision{
		Outcome: DeniedOtherStatus,
		Record:  rec,
		Message: fmt.Sprintf("Your membership status (%s) does not allow access to the members feed. Please contact us.", rec.Status),
	}
}
