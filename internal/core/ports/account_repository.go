package ports

import (
	"context"

	"settlement/internal/core/domain/model/account"
	"settlement/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for balance accounts.
type AccountRepository interface {
	// Get retrieves a user's account. Fails with errs.ErrObjectNotFound if the
	// user has never been credited.
	Get(ctx context.Context, userID kernel.UUID) (*account.Account, error)

	// GetOrCreate retrieves a user's account, creating an empty one if none
	// exists yet. Used by escrow release, which may credit a seller for the
	// first time.
	GetOrCreate(ctx context.Context, userID kernel.UUID) (*account.Account, error)

	// Update persists a changed balance, guarded by the version the account
	// was loaded with.
	Update(ctx context.Context, aggregate *account.Account) error
}
