package claimmock

import (
	"context"
	"time"

	domain "lecturer-claims-service/internal/domain/claim"

	"gorm.io/gorm"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository. Fill in
// only the fields a test needs; unfilled getters report not-found and
// unfilled lists are empty.
type Repo struct {
	CreateFn           func(ctx context.Context, c *domain.Claim) error
	SaveFn             func(ctx context.Context, c *domain.Claim) error
	DeleteFn           func(ctx context.Context, id uint64) error
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.Claim, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*domain.Claim, error)
	ListPendingFn      func(ctx context.Context) ([]domain.Claim, error)
	ListByUserFn       func(ctx context.Context, userID uint64) ([]domain.Claim, error)
	ListDecidedFn      func(ctx context.Context) ([]domain.Claim, error)
	ListAllFn          func(ctx context.Context) ([]domain.Claim, error)
	MonthlyHoursFn     func(ctx context.Context, userID uint64, year int, month time.Month) (int, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Claim) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, c *domain.Claim) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Claim, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Claim, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) ListPending(ctx context.Context) ([]domain.Claim, error) {
	if m.ListPendingFn != nil {
		return m.ListPendingFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListByUser(ctx context.Context, userID uint64) ([]domain.Claim, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *Repo) ListDecided(ctx context.Context) ([]domain.Claim, error) {
	if m.ListDecidedFn != nil {
		return m.ListDecidedFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Claim, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, nil
}

func (m *Repo) MonthlyHours(ctx context.Context, userID uint64, year int, month time.Month) (int, error) {
	if m.MonthlyHoursFn != nil {
		return m.MonthlyHoursFn(ctx, userID, year, month)
	}
	return 0, nil
}
