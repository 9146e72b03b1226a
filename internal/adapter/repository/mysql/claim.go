package mysql

import (
	"context"
	"time"

	claimDomain "lecturer-claims-service/internal/domain/claim"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ClaimRepository struct{ db *gorm.DB }

func NewClaimRepository(db *gorm.DB) *ClaimRepository { return &ClaimRepository{db: db} }

func (r *ClaimRepository) Create(ctx context.Context, c *claimDomain.Claim) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClaimRepository) Save(ctx context.Context, c *claimDomain.Claim) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ClaimRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&claimDomain.Claim{}, id).Error
}

func (r *ClaimRepository) GetByID(ctx context.Context, id uint64) (*claimDomain.Claim, error) {
	var out claimDomain.Claim
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *ClaimRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*claimDomain.Claim, error) {
	q := r.db.WithContext(ctx)
	// sqlite has no row locks; its write transaction already serializes
	if r.db.Dialector.Name() == "mysql" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out claimDomain.Claim
	res := q.First(&out, id)
	return &out, res.Error
}

func (r *ClaimRepository) ListPending(ctx context.Context) ([]claimDomain.Claim, error) {
	var out []claimDomain.Claim
	res := r.db.WithContext(ctx).
		Where("status = ?", claimDomain.StatusPending).
		Order("submission_date ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *ClaimRepository) ListByUser(ctx context.Context, userID uint64) ([]claimDomain.Claim, error) {
	var out []claimDomain.Claim
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("submission_date DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *ClaimRepository) ListDecided(ctx context.Context) ([]claimDomain.Claim, error) {
	var out []claimDomain.Claim
	res := r.db.WithContext(ctx).
		Where("status IN ?", []claimDomain.Status{claimDomain.StatusApproved, claimDomain.StatusRejected}).
		Order("approval_date DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *ClaimRepository) ListAll(ctx context.Context) ([]claimDomain.Claim, error) {
	var out []claimDomain.Claim
	res := r.db.WithContext(ctx).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *ClaimRepository) MonthlyHours(ctx context.Context, userID uint64, year int, month time.Month) (int, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var sum float64
	res := r.db.WithContext(ctx).
		Model(&claimDomain.Claim{}).
		Where("user_id = ? AND submission_date >= ? AND submission_date < ?", userID, start, end).
		Select("COALESCE(SUM(hours_worked), 0)").
		Scan(&sum)
	// truncated, matching the cap arithmetic
	return int(sum), res.Error
}
