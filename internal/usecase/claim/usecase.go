package claim

import (
	"context"
	"errors"
	"time"

	domain "lecturer-claims-service/internal/domain/claim"
	"lecturer-claims-service/internal/domain/uow"
	userDomain "lecturer-claims-service/internal/domain/user"

	"gorm.io/gorm"
)

type Usecase struct {
	users  userDomain.Repository
	claims domain.Repository
	uow    uow.UnitOfWork
}

// NewUsecase: pass both repos and a UoW for the admission flow.
func NewUsecase(users userDomain.Repository, claims domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{users: users, claims: claims, uow: tx}
}

// Submit admits a candidate claim. Per-submission bounds are checked first,
// then the owner's eligibility and the monthly cap inside a user-locked
// transaction, so two concurrent submissions cannot jointly exceed the cap.
func (u *Usecase) Submit(ctx context.Context, in SubmitClaimInput) (*ClaimDTO, error) {
	if in.HoursWorked <= 0 || in.HoursWorked > domain.MaxClaimHours {
		return nil, domain.ErrInvalidHours
	}
	if len(in.Notes) > domain.MaxNotesLen {
		return nil, domain.ErrNotesTooLong
	}

	var out *ClaimDTO
	err := u.uow.WithinUserTx(ctx, in.UserID, func(r uow.Repos, owner *userDomain.User) error {
		if !owner.IsActive || owner.Role != userDomain.RoleLecturer {
			return userDomain.ErrIneligible
		}

		now := time.Now().UTC()
		worked, err := r.Claims.MonthlyHours(ctx, owner.ID, now.Year(), now.Month())
		if err != nil {
			return err
		}
		if float64(worked)+in.HoursWorked > domain.MaxMonthlyHours {
			return &domain.MonthlyLimitError{AlreadyWorked: worked}
		}

		c := &domain.Claim{
			UserID:         owner.ID,
			HoursWorked:    in.HoursWorked,
			HourlyRate:     owner.HourlyRate, // snapshot at submission
			Notes:          in.Notes,
			DocumentRef:    in.DocumentRef,
			Status:         domain.StatusPending,
			SubmissionDate: now,
		}
		if err := r.Claims.Create(ctx, c); err != nil {
			return err
		}
		out = toDTO(c, owner.FullName, "")
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// unknown owner
			return nil, userDomain.ErrIneligible
		}
		return nil, err
	}
	return out, nil
}

func (u *Usecase) Get(ctx context.Context, id uint64) (*ClaimDTO, error) {
	c, err := u.claims.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(c, u.displayName(ctx, c.UserID), u.approverName(ctx, c)), nil
}

func (u *Usecase) ListForUser(ctx context.Context, userID uint64) ([]ClaimDTO, error) {
	cs, err := u.claims.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]ClaimDTO, 0, len(cs))
	names := map[uint64]string{}
	for i := range cs {
		c := &cs[i]
		name, ok := names[c.UserID]
		if !ok {
			name = u.displayName(ctx, c.UserID)
			names[c.UserID] = name
		}
		out = append(out, *toDTO(c, name, u.approverName(ctx, c)))
	}
	return out, nil
}

func (u *Usecase) MonthlyHours(ctx context.Context, userID uint64, year int, month time.Month) (int, error) {
	return u.claims.MonthlyHours(ctx, userID, year, month)
}

// Delete is the administrative soft delete, outside the workflow core.
func (u *Usecase) Delete(ctx context.Context, id uint64) error {
	if _, err := u.claims.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	return u.claims.Delete(ctx, id)
}

// displayName degrades to "Unknown" when the referenced user is gone, so a
// dangling reference never fails the read.
func (u *Usecase) displayName(ctx context.Context, id uint64) string {
	usr, err := u.users.GetByID(ctx, id)
	if err != nil {
		return "Unknown"
	}
	return usr.FullName
}

func (u *Usecase) approverName(ctx context.Context, c *domain.Claim) string {
	if c.ApprovedBy == nil {
		return ""
	}
	return u.displayName(ctx, *c.ApprovedBy)
}

func toDTO(c *domain.Claim, lecturerName, approverName string) *ClaimDTO {
	return &ClaimDTO{
		ID:             c.ID,
		UserID:         c.UserID,
		LecturerName:   lecturerName,
		HoursWorked:    c.HoursWorked,
		HourlyRate:     c.HourlyRate,
		TotalAmount:    c.TotalAmount(),
		Notes:          c.Notes,
		DocumentRef:    c.DocumentRef,
		Status:         string(c.Status),
		SubmissionDate: c.SubmissionDate,
		ApprovalDate:   c.ApprovalDate,
		ApprovedBy:     c.ApprovedBy,
		ApprovedByName: approverName,
	}
}
