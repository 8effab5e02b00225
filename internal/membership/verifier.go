package membership

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"community_site/internal/models"
)

var ErrEmptyEmail = errors.New("email is required")

// Store finds membership rows by email, compared case-insensitively and
// returned in a stable order.
type Store interface {
	FindByEmail(ctx context.Context, email string) ([]models.Membership, error)
}

type Verifier struct {
	store Store
}

func NewVerifier(store Store) *Verifier {
	return &Verifier{store: store}
}

// Verify looks up every row for email and resolves the access decision for
// the submitted name.
func (v *Verifier) Verify(ctx context.Context, name, email string) (Decision, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return Decision{}, ErrEmptyEmail
	}

	rows, err := v.store.FindByEmail(ctx, email)
	if err != nil {
		return Decision{}, fmt.Errorf("find memberships: %w", err)
	}
	return Resolve(rows, name), nil
}
