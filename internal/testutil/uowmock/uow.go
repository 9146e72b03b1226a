package uowmock

import (
	"context"
	"errors"

	"lecturer-claims-service/internal/domain/claim"
	"lecturer-claims-service/internal/domain/uow"
	"lecturer-claims-service/internal/domain/user"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork. Fill in the
// function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn      func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinUserTxFn  func(ctx context.Context, userID uint64, fn func(r uow.Repos, u *user.User) error) error
	WithinClaimTxFn func(ctx context.Context, claimID uint64, fn func(r uow.Repos, c *claim.Claim) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough wires all tx methods to direct execution against the given
// repos, with user/claim lookups going through them. Handy for usecase tests
// that do not care about transaction mechanics.
func Passthrough(r uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(uow.Repos) error) error {
			return fn(r)
		},
		WithinUserTxFn: func(ctx context.Context, userID uint64, fn func(uow.Repos, *user.User) error) error {
			u, err := r.Users.GetByIDForUpdate(ctx, userID)
			if err != nil {
				return err
			}
			return fn(r, u)
		},
		WithinClaimTxFn: func(ctx context.Context, claimID uint64, fn func(uow.Repos, *claim.Claim) error) error {
			c, err := r.Claims.GetByIDForUpdate(ctx, claimID)
			if err != nil {
				return err
			}
			return fn(r, c)
		},
	}
}

func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinUserTx(ctx context.Context, userID uint64, fn func(r uow.Repos, u *user.User) error) error {
	if m.WithinUserTxFn != nil {
		return m.WithinUserTxFn(ctx, userID, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinClaimTx(ctx context.Context, claimID uint64, fn func(r uow.Repos, c *claim.Claim) error) error {
	if m.WithinClaimTxFn != nil {
		return m.WithinClaimTxFn(ctx, claimID, fn)
	}
	return errUnimplemented
}
