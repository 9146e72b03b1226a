package uow

import (
	"context"

	"lecturer-claims-service/internal/domain/claim"
	"lecturer-claims-service/internal/domain/user"
)

type Repos struct {
	Users  user.Repository
	Claims claim.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the user row first, then pass it in; serializes
	// admissions per lecturer
	WithinUserTx(ctx context.Context, userID uint64, fn func(r Repos, u *user.User) error) error
	// convenience: lock the claim row first, then pass it in; serializes
	// decisions per claim
	WithinClaimTx(ctx context.Context, claimID uint64, fn func(r Repos, c *claim.Claim) error) error
}
