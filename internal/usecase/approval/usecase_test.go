package approval

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	claimDomain "lecturer-claims-service/internal/domain/claim"
	"lecturer-claims-service/internal/domain/uow"
	userDomain "lecturer-claims-service/internal/domain/user"
	"lecturer-claims-service/internal/testutil/claimmock"
	"lecturer-claims-service/internal/testutil/uowmock"
	"lecturer-claims-service/internal/testutil/usermock"

	"gorm.io/gorm"
)

func coordinator(id uint64) *userDomain.User {
	return &userDomain.User{ID: id, FullName: "Pieter Venter", Role: userDomain.RoleCoordinator, IsActive: true}
}

func pendingClaim(id uint64) *claimDomain.Claim {
	return &claimDomain.Claim{
		ID:             id,
		UserID:         10,
		HoursWorked:    12,
		HourlyRate:     250,
		Notes:          "tutorials week 3",
		Status:         claimDomain.StatusPending,
		SubmissionDate: time.Now().UTC().Add(-24 * time.Hour),
	}
}

// stateful in-memory claim so repeated Decide calls see prior transitions
func newTestUsecase(users *usermock.Repo, stored *claimDomain.Claim) *Usecase {
	claims := &claimmock.Repo{
		GetByIDForUpdateFn: func(ctx context.Context, id uint64) (*claimDomain.Claim, error) {
			if stored == nil || stored.ID != id {
				return nil, gorm.ErrRecordNotFound
			}
			return stored, nil
		},
		SaveFn: func(ctx context.Context, c *claimDomain.Claim) error { return nil },
	}
	return NewUsecase(users, claims, uowmock.Passthrough(uow.Repos{Users: users, Claims: claims}))
}

func approverRepo(u *userDomain.User) *usermock.Repo {
	return &usermock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*userDomain.User, error) {
			if u == nil || u.ID != id {
				return nil, gorm.ErrRecordNotFound
			}
			return u, nil
		},
	}
}

func TestDecide_Approve_Success(t *testing.T) {
	c := pendingClaim(7)
	uc := newTestUsecase(approverRepo(coordinator(2)), c)

	dto, err := uc.Decide(context.Background(), DecideInput{ClaimID: 7, Decision: DecisionApprove, ApproverID: 2})
	if err != nil {
		t.Fatalf("Decide err: %v", err)
	}
	if c.Status != claimDomain.StatusApproved {
		t.Fatalf("status = %s, want Approved", c.Status)
	}
	if c.ApprovalDate == nil || c.ApprovedBy == nil {
		t.Fatal("approval date and approver must both be set")
	}
	if *c.ApprovedBy != 2 {
		t.Fatalf("approved by = %d, want 2", *c.ApprovedBy)
	}
	if c.Notes != "tutorials week 3" {
		t.Fatalf("approve must not touch notes, got %q", c.Notes)
	}
	if dto.Status != string(claimDomain.StatusApproved) || dto.ClaimID != 7 {
		t.Fatalf("unexpected dto: %+v", dto)
	}
}

func TestDecide_Reject_RequiresReason(t *testing.T) {
	c := pendingClaim(7)
	uc := newTestUsecase(approverRepo(coordinator(2)), c)

	for _, reason := range []string{"", "   ", "\n\t"} {
		_, err := uc.Decide(context.Background(), DecideInput{
			ClaimID: 7, Decision: DecisionReject, ApproverID: 2, RejectionReason: reason,
		})
		if !errors.Is(err, claimDomain.ErrMissingRejectionReason) {
			t.Fatalf("reason=%q: want ErrMissingRejectionReason, got %v", reason, err)
		}
	}
	if c.Status != claimDomain.StatusPending {
		t.Fatalf("claim must stay pending, got %s", c.Status)
	}
}

func TestDecide_Reject_AppendsReason(t *testing.T) {
	c := pendingClaim(7)
	uc := newTestUsecase(approverRepo(coordinator(2)), c)

	dto, err := uc.Decide(context.Background(), DecideInput{
		ClaimID: 7, Decision: DecisionReject, ApproverID: 2, RejectionReason: "missing timesheet",
	})
	if err != nil {
		t.Fatalf("Decide err: %v", err)
	}
	if c.Status != claimDomain.StatusRejected {
		t.Fatalf("status = %s, want Rejected", c.Status)
	}
	if !strings.HasSuffix(c.Notes, "\n\nRejection Reason: missing timesheet") {
		t.Fatalf("notes = %q, want rejection suffix", c.Notes)
	}
	if !strings.HasPrefix(c.Notes, "tutorials week 3") {
		t.Fatalf("prior notes must be preserved, got %q", c.Notes)
	}
	if dto.Notes != c.Notes {
		t.Fatalf("dto notes mismatch")
	}
}

func TestDecide_SecondDecisionFails(t *testing.T) {
	c := pendingClaim(7)
	uc := newTestUsecase(approverRepo(coordinator(2)), c)

	if _, err := uc.Decide(context.Background(), DecideInput{ClaimID: 7, Decision: DecisionApprove, ApproverID: 2}); err != nil {
		t.Fatalf("first Decide err: %v", err)
	}
	_, err := uc.Decide(context.Background(), DecideInput{
		ClaimID: 7, Decision: DecisionReject, ApproverID: 2, RejectionReason: "changed my mind",
	})
	if !errors.Is(err, claimDomain.ErrAlreadyDecided) {
		t.Fatalf("want ErrAlreadyDecided, got %v", err)
	}
	// decision metadata untouched by the failed second call
	if c.Status != claimDomain.StatusApproved {
		t.Fatalf("status = %s, want Approved", c.Status)
	}
}

func TestDecide_RejectsNonApproverRoles(t *testing.T) {
	cases := map[string]*userDomain.User{
		"lecturer": {ID: 2, Role: userDomain.RoleLecturer, IsActive: true},
		"hr":       {ID: 2, Role: userDomain.RoleHR, IsActive: true},
		"inactive coordinator": func() *userDomain.User {
			u := coordinator(2)
			u.IsActive = false
			return u
		}(),
	}
	for name, usr := range cases {
		c := pendingClaim(7)
		uc := newTestUsecase(approverRepo(usr), c)
		_, err := uc.Decide(context.Background(), DecideInput{ClaimID: 7, Decision: DecisionApprove, ApproverID: 2})
		if !errors.Is(err, userDomain.ErrNotApprover) {
			t.Fatalf("%s: want ErrNotApprover, got %v", name, err)
		}
		if c.Status != claimDomain.StatusPending {
			t.Fatalf("%s: claim must stay pending", name)
		}
	}
}

func TestDecide_UnknownApprover(t *testing.T) {
	uc := newTestUsecase(approverRepo(nil), pendingClaim(7))
	_, err := uc.Decide(context.Background(), DecideInput{ClaimID: 7, Decision: DecisionApprove, ApproverID: 5})
	if !errors.Is(err, userDomain.ErrNotApprover) {
		t.Fatalf("want ErrNotApprover, got %v", err)
	}
}

func TestDecide_ClaimNotFound(t *testing.T) {
	uc := newTestUsecase(approverRepo(coordinator(2)), nil)
	_, err := uc.Decide(context.Background(), DecideInput{ClaimID: 404, Decision: DecisionApprove, ApproverID: 2})
	if !errors.Is(err, claimDomain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestPending_KeepsStoreOrderAndDegradesNames(t *testing.T) {
	older := pendingClaim(1)
	older.SubmissionDate = time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	newer := pendingClaim(2)
	newer.UserID = 99 // dangling
	newer.SubmissionDate = time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)

	users := &usermock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*userDomain.User, error) {
			if id == 10 {
				return &userDomain.User{ID: 10, FullName: "Thandi Dlamini"}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	claims := &claimmock.Repo{
		ListPendingFn: func(ctx context.Context) ([]claimDomain.Claim, error) {
			return []claimDomain.Claim{*older, *newer}, nil
		},
	}
	uc := NewUsecase(users, claims, uowmock.New())

	got, err := uc.Pending(context.Background())
	if err != nil {
		t.Fatalf("Pending err: %v", err)
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("order not preserved: %+v", got)
	}
	if got[0].LecturerName != "Thandi Dlamini" {
		t.Fatalf("lecturer name = %q", got[0].LecturerName)
	}
	if got[1].LecturerName != "Unknown" {
		t.Fatalf("dangling owner must degrade to Unknown, got %q", got[1].LecturerName)
	}
}

func TestHistory_DanglingApproverIsUnknown(t *testing.T) {
	decidedAt := time.Date(2026, 8, 21, 10, 0, 0, 0, time.UTC)
	gone := uint64(77)
	c := pendingClaim(3)
	c.Status = claimDomain.StatusRejected
	c.ApprovalDate = &decidedAt
	c.ApprovedBy = &gone

	claims := &claimmock.Repo{
		ListDecidedFn: func(ctx context.Context) ([]claimDomain.Claim, error) {
			return []claimDomain.Claim{*c}, nil
		},
	}
	uc := NewUsecase(&usermock.Repo{}, claims, uowmock.New())

	got, err := uc.History(context.Background())
	if err != nil {
		t.Fatalf("History err: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("entries = %d, want 1", len(got))
	}
	e := got[0]
	if e.Action != string(claimDomain.StatusRejected) || e.ActionBy != "Unknown" || !e.ActionDate.Equal(decidedAt) {
		t.Fatalf("unexpected entry: %+v", e)
	}
}
