package approval

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	claimDomain "lecturer-claims-service/internal/domain/claim"
	"lecturer-claims-service/internal/domain/uow"
	userDomain "lecturer-claims-service/internal/domain/user"

	"gorm.io/gorm"
)

type Usecase struct {
	users  userDomain.Repository
	claims claimDomain.Repository
	uow    uow.UnitOfWork
}

// NewUsecase: pass both repos and a UoW for the decision flow.
func NewUsecase(users userDomain.Repository, claims claimDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{users: users, claims: claims, uow: tx}
}

// Decide transitions a pending claim to Approved or Rejected. The claim row
// is locked for the duration, so a decided claim can never be re-decided.
func (u *Usecase) Decide(ctx context.Context, in DecideInput) (*DecisionDTO, error) {
	var out *DecisionDTO

	err := u.uow.WithinClaimTx(ctx, in.ClaimID, func(r uow.Repos, c *claimDomain.Claim) error {
		approver, err := r.Users.GetByID(ctx, in.ApproverID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return userDomain.ErrNotApprover
			}
			return err
		}
		if !approver.IsActive || !approver.Role.CanApprove() {
			return userDomain.ErrNotApprover
		}

		if c.Decided() {
			return claimDomain.ErrAlreadyDecided
		}

		now := time.Now().UTC()
		switch in.Decision {
		case DecisionApprove:
			c.Status = claimDomain.StatusApproved
		case DecisionReject:
			if strings.TrimSpace(in.RejectionReason) == "" {
				return claimDomain.ErrMissingRejectionReason
			}
			c.Status = claimDomain.StatusRejected
			// additive: prior notes are kept
			c.Notes += fmt.Sprintf("\n\nRejection Reason: %s", in.RejectionReason)
		default:
			return fmt.Errorf("unknown decision %q", in.Decision)
		}
		c.ApprovalDate = &now
		c.ApprovedBy = &approver.ID

		if err := r.Claims.Save(ctx, c); err != nil {
			return err
		}

		out = &DecisionDTO{
			ClaimID:      c.ID,
			Status:       string(c.Status),
			ApprovedBy:   approver.ID,
			ApprovalDate: now,
			Notes:        c.Notes,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, claimDomain.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

// Pending lists undecided claims, oldest submission first.
func (u *Usecase) Pending(ctx context.Context) ([]PendingClaimDTO, error) {
	cs, err := u.claims.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	names := map[uint64]string{}
	out := make([]PendingClaimDTO, 0, len(cs))
	for i := range cs {
		c := &cs[i]
		out = append(out, PendingClaimDTO{
			ID:             c.ID,
			UserID:         c.UserID,
			LecturerName:   u.nameFor(ctx, names, c.UserID),
			HoursWorked:    c.HoursWorked,
			HourlyRate:     c.HourlyRate,
			TotalAmount:    c.TotalAmount(),
			Notes:          c.Notes,
			DocumentRef:    c.DocumentRef,
			SubmissionDate: c.SubmissionDate,
		})
	}
	return out, nil
}

// History lists decided claims with who acted and when.
func (u *Usecase) History(ctx context.Context) ([]HistoryEntry, error) {
	cs, err := u.claims.ListDecided(ctx)
	if err != nil {
		return nil, err
	}
	names := map[uint64]string{}
	out := make([]HistoryEntry, 0, len(cs))
	for i := range cs {
		c := &cs[i]
		actionBy := "Unknown"
		if c.ApprovedBy != nil {
			actionBy = u.nameFor(ctx, names, *c.ApprovedBy)
		}
		actionDate := c.SubmissionDate
		if c.ApprovalDate != nil {
			actionDate = *c.ApprovalDate
		}
		out = append(out, HistoryEntry{
			ClaimID:      c.ID,
			LecturerName: u.nameFor(ctx, names, c.UserID),
			Action:       string(c.Status),
			ActionBy:     actionBy,
			ActionDate:   actionDate,
		})
	}
	return out, nil
}

// nameFor memoizes lookups per call and degrades dangling references to
// "Unknown" instead of failing the read.
func (u *Usecase) nameFor(ctx context.Context, cache map[uint64]string, id uint64) string {
	if name, ok := cache[id]; ok {
		return name
	}
	name := "Unknown"
	if usr, err := u.users.GetByID(ctx, id); err == nil {
		name = usr.FullName
	}
	cache[id] = name
	return name
}
