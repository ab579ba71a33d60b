package users

import "context"

// Repo is the persistence boundary for accounts.
type Repo interface {
	Create(ctx context.Context, user User) error
	// Upsert inserts or refreshes a user keyed by email. Used by the
	// Google sign-in flow, which owns no password.
	Upsert(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, userID string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
}
