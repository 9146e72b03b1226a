package claim

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, c *Claim) error
	Save(ctx context.Context, c *Claim) error
	// Administrative soft delete; not part of the workflow core.
	Delete(ctx context.Context, id uint64) error

	GetByID(ctx context.Context, id uint64) (*Claim, error)
	// Same as GetByID but locks the row for the enclosing transaction.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Claim, error)

	// Oldest first, so reviewers see the longest-waiting claims.
	ListPending(ctx context.Context) ([]Claim, error)
	// Most recent first.
	ListByUser(ctx context.Context, userID uint64) ([]Claim, error)
	ListDecided(ctx context.Context) ([]Claim, error)
	ListAll(ctx context.Context) ([]Claim, error)

	// Sum of hours worked across the user's claims submitted in the given
	// calendar month, truncated to an integer.
	MonthlyHours(ctx context.Context, userID uint64, year int, month time.Month) (int, error)
}
