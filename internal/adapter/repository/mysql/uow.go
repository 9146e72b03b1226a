package mysql

import (
	"context"

	"lecturer-claims-service/internal/domain/claim"
	"lecturer-claims-service/internal/domain/uow"
	"lecturer-claims-service/internal/domain/user"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Users:  &UserRepository{db: tx},
		Claims: &ClaimRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinUserTx(ctx context.Context, userID uint64, fn func(r uow.Repos, usr *user.User) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the user row up-front so concurrent submissions serialize
		usr, err := r.Users.GetByIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		return fn(r, usr)
	})
}

func (u *GormUoW) WithinClaimTx(ctx context.Context, claimID uint64, fn func(r uow.Repos, c *claim.Claim) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the claim row up-front to make the pending-status guard a
		// compare-and-set
		c, err := r.Claims.GetByIDForUpdate(ctx, claimID)
		if err != nil {
			return err
		}
		return fn(r, c)
	})
}
