package report

import (
	"context"
	"errors"
	"testing"
	"time"

	claimDomain "lecturer-claims-service/internal/domain/claim"
	userDomain "lecturer-claims-service/internal/domain/user"
	"lecturer-claims-service/internal/testutil/claimmock"
	"lecturer-claims-service/internal/testutil/usermock"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func claimOf(id, userID uint64, status claimDomain.Status, hours, rate float64, sub time.Time) claimDomain.Claim {
	return claimDomain.Claim{
		ID:             id,
		UserID:         userID,
		HoursWorked:    hours,
		HourlyRate:     rate,
		Status:         status,
		SubmissionDate: sub,
	}
}

func TestDashboard_Lecturer_OwnClaimsOnly(t *testing.T) {
	lect := &userDomain.User{ID: 7, FullName: "Sipho Nkosi", Role: userDomain.RoleLecturer, IsActive: true}
	own := []claimDomain.Claim{
		claimOf(3, 7, claimDomain.StatusApproved, 10, 300, date(2026, time.August, 20)),
		claimOf(2, 7, claimDomain.StatusRejected, 8, 300, date(2026, time.August, 10)),
		claimOf(1, 7, claimDomain.StatusPending, 5, 300, date(2026, time.July, 30)),
	}
	uc := NewUsecase(
		&usermock.Repo{GetByIDFn: func(ctx context.Context, id uint64) (*userDomain.User, error) {
			if id == 7 {
				return lect, nil
			}
			t.Fatalf("unexpected user lookup %d", id)
			return nil, nil
		}},
		&claimmock.Repo{
			ListByUserFn: func(ctx context.Context, userID uint64) ([]claimDomain.Claim, error) { return own, nil },
			ListAllFn: func(ctx context.Context) ([]claimDomain.Claim, error) {
				t.Fatalf("lecturer dashboard must not list all claims")
				return nil, nil
			},
		},
	)

	d, err := uc.Dashboard(context.Background(), 7)
	if err != nil {
		t.Fatalf("Dashboard err: %v", err)
	}
	if d.UserName != "Sipho Nkosi" || d.UserRole != "Lecturer" {
		t.Fatalf("unexpected header: %+v", d)
	}
	if d.Stats.TotalClaims != 3 || d.Stats.PendingClaims != 1 || d.Stats.ApprovedClaims != 1 || d.Stats.RejectedClaims != 1 {
		t.Fatalf("unexpected stats: %+v", d.Stats)
	}
	if d.Stats.TotalAmountApproved != 3000 {
		t.Fatalf("approved amount = %v, want 3000", d.Stats.TotalAmountApproved)
	}
	if len(d.RecentClaims) != 3 || len(d.PendingApprovals) != 0 {
		t.Fatalf("unexpected claim lists: %+v", d)
	}
	if d.RecentClaims[0].LecturerName != "Sipho Nkosi" {
		t.Fatalf("summary name = %q", d.RecentClaims[0].LecturerName)
	}
}

func TestDashboard_HR_IncludesUserCount(t *testing.T) {
	hr := &userDomain.User{ID: 1, FullName: "Lindiwe Zulu", Role: userDomain.RoleHR, IsActive: true}
	all := []claimDomain.Claim{
		claimOf(1, 7, claimDomain.StatusPending, 4, 200, date(2026, time.August, 1)),
		claimOf(2, 8, claimDomain.StatusApproved, 6, 250, date(2026, time.August, 2)),
	}
	uc := NewUsecase(
		&usermock.Repo{
			GetByIDFn: func(ctx context.Context, id uint64) (*userDomain.User, error) {
				if id == 1 {
					return hr, nil
				}
				return &userDomain.User{ID: id, FullName: "Someone"}, nil
			},
			ListFn: func(ctx context.Context) ([]userDomain.User, error) {
				return make([]userDomain.User, 4), nil
			},
		},
		&claimmock.Repo{
			ListAllFn: func(ctx context.Context) ([]claimDomain.Claim, error) { return all, nil },
			ListPendingFn: func(ctx context.Context) ([]claimDomain.Claim, error) {
				return all[:1], nil
			},
		},
	)

	d, err := uc.Dashboard(context.Background(), 1)
	if err != nil {
		t.Fatalf("Dashboard err: %v", err)
	}
	if d.Stats.TotalUsers != 4 {
		t.Fatalf("TotalUsers = %d, want 4", d.Stats.TotalUsers)
	}
	if len(d.PendingApprovals) != 1 || d.PendingApprovals[0].ID != 1 {
		t.Fatalf("unexpected pending approvals: %+v", d.PendingApprovals)
	}
	if len(d.RecentClaims) != 0 {
		t.Fatalf("reviewer dashboard must not carry recent claims: %+v", d.RecentClaims)
	}
}

func TestDashboard_RecentClaimsCapped(t *testing.T) {
	lect := &userDomain.User{ID: 7, FullName: "Sipho Nkosi", Role: userDomain.RoleLecturer, IsActive: true}
	own := make([]claimDomain.Claim, 9)
	for i := range own {
		own[i] = claimOf(uint64(9-i), 7, claimDomain.StatusPending, 1, 100, date(2026, time.August, 9-i))
	}
	uc := NewUsecase(
		&usermock.Repo{GetByIDFn: func(ctx context.Context, id uint64) (*userDomain.User, error) { return lect, nil }},
		&claimmock.Repo{ListByUserFn: func(ctx context.Context, userID uint64) ([]claimDomain.Claim, error) { return own, nil }},
	)

	d, err := uc.Dashboard(context.Background(), 7)
	if err != nil {
		t.Fatalf("Dashboard err: %v", err)
	}
	if len(d.RecentClaims) != recentLimit {
		t.Fatalf("recent claims = %d, want %d", len(d.RecentClaims), recentLimit)
	}
	if d.Stats.TotalClaims != 9 {
		t.Fatalf("stats must cover all claims, got %d", d.Stats.TotalClaims)
	}
}

func TestDashboard_UnknownActor(t *testing.T) {
	uc := NewUsecase(&usermock.Repo{}, &claimmock.Repo{})
	if _, err := uc.Dashboard(context.Background(), 999); !errors.Is(err, userDomain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestClaimsReport_Grouping(t *testing.T) {
	claims := []claimDomain.Claim{
		claimOf(1, 7, claimDomain.StatusApproved, 10, 100, date(2026, time.July, 3)),
		claimOf(2, 7, claimDomain.StatusApproved, 5, 100, date(2026, time.August, 3)),
		claimOf(3, 8, claimDomain.StatusRejected, 8, 200, date(2026, time.August, 9)),
		claimOf(4, 8, claimDomain.StatusPending, 2, 200, date(2026, time.August, 20)),
	}
	users := []userDomain.User{
		{ID: 7, Role: userDomain.RoleLecturer},
		{ID: 8, Role: userDomain.RoleLecturer},
		{ID: 9, Role: userDomain.RoleHR},
	}
	uc := NewUsecase(
		&usermock.Repo{ListFn: func(ctx context.Context) ([]userDomain.User, error) { return users, nil }},
		&claimmock.Repo{ListAllFn: func(ctx context.Context) ([]claimDomain.Claim, error) { return claims, nil }},
	)

	r, err := uc.ClaimsReport(context.Background())
	if err != nil {
		t.Fatalf("ClaimsReport err: %v", err)
	}

	if r.TotalClaims != 4 || r.TotalUsers != 3 || r.PendingClaims != 1 {
		t.Fatalf("unexpected totals: %+v", r)
	}
	if r.TotalAmountApproved != 1500 {
		t.Fatalf("approved amount = %v, want 1500", r.TotalAmountApproved)
	}

	// status groups come in fixed Pending/Approved/Rejected order
	wantStatus := []StatusGroup{
		{Status: "Pending", Count: 1, TotalAmount: 400},
		{Status: "Approved", Count: 2, TotalAmount: 1500},
		{Status: "Rejected", Count: 1, TotalAmount: 1600},
	}
	if len(r.ClaimsByStatus) != len(wantStatus) {
		t.Fatalf("status groups = %+v", r.ClaimsByStatus)
	}
	for i, w := range wantStatus {
		if r.ClaimsByStatus[i] != w {
			t.Fatalf("status group %d = %+v, want %+v", i, r.ClaimsByStatus[i], w)
		}
	}

	// months come most recent first
	if len(r.MonthlyClaims) != 2 {
		t.Fatalf("month groups = %+v", r.MonthlyClaims)
	}
	if r.MonthlyClaims[0].Month != 8 || r.MonthlyClaims[0].Count != 3 {
		t.Fatalf("newest month first, got %+v", r.MonthlyClaims[0])
	}
	if r.MonthlyClaims[1].Month != 7 || r.MonthlyClaims[1].Count != 1 {
		t.Fatalf("older month second, got %+v", r.MonthlyClaims[1])
	}

	wantRoles := []RoleGroup{
		{Role: "Lecturer", Count: 2},
		{Role: "HR", Count: 1},
	}
	if len(r.UsersByRole) != len(wantRoles) {
		t.Fatalf("role groups = %+v", r.UsersByRole)
	}
	for i, w := range wantRoles {
		if r.UsersByRole[i] != w {
			t.Fatalf("role group %d = %+v, want %+v", i, r.UsersByRole[i], w)
		}
	}
}

func TestClaimsReport_Empty(t *testing.T) {
	uc := NewUsecase(&usermock.Repo{}, &claimmock.Repo{})
	r, err := uc.ClaimsReport(context.Background())
	if err != nil {
		t.Fatalf("ClaimsReport err: %v", err)
	}
	if r.TotalClaims != 0 || len(r.ClaimsByStatus) != 0 || len(r.MonthlyClaims) != 0 {
		t.Fatalf("empty store must yield empty report: %+v", r)
	}
}
