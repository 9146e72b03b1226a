package report

import (
	"context"
	"errors"
	"sort"

	claimDomain "lecturer-claims-service/internal/domain/claim"
	userDomain "lecturer-claims-service/internal/domain/user"

	"gorm.io/gorm"
)

const recentLimit = 5

type Usecase struct {
	users  userDomain.Repository
	claims claimDomain.Repository
}

func NewUsecase(users userDomain.Repository, claims claimDomain.Repository) *Usecase {
	return &Usecase{users: users, claims: claims}
}

// Dashboard shapes stats for the acting user's role: lecturers see their own
// claims, reviewers see the pending queue, HR sees everything plus user
// counts.
func (u *Usecase) Dashboard(ctx context.Context, actorID uint64) (*Dashboard, error) {
	actor, err := u.users.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userDomain.ErrNotFound
		}
		return nil, err
	}

	out := &Dashboard{UserName: actor.FullName, UserRole: string(actor.Role)}

	switch actor.Role {
	case userDomain.RoleLecturer:
		own, err := u.claims.ListByUser(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		out.Stats = statsFor(own)
		out.RecentClaims = u.summaries(ctx, take(own, recentLimit))

	case userDomain.RoleCoordinator, userDomain.RoleManager, userDomain.RoleHR:
		all, err := u.claims.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		pending, err := u.claims.ListPending(ctx)
		if err != nil {
			return nil, err
		}
		out.Stats = statsFor(all)
		out.PendingApprovals = u.summaries(ctx, take(pending, recentLimit))
		if actor.Role == userDomain.RoleHR {
			users, err := u.users.List(ctx)
			if err != nil {
				return nil, err
			}
			out.Stats.TotalUsers = len(users)
		}
	}
	return out, nil
}

// ClaimsReport aggregates claims by status, users by role and claims by
// submission month (most recent month first).
func (u *Usecase) ClaimsReport(ctx context.Context) (*ClaimsReport, error) {
	claims, err := u.claims.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	users, err := u.users.List(ctx)
	if err != nil {
		return nil, err
	}

	out := &ClaimsReport{
		TotalClaims: len(claims),
		TotalUsers:  len(users),
	}

	byStatus := map[claimDomain.Status]*StatusGroup{}
	type ym struct{ year, month int }
	byMonth := map[ym]*MonthGroup{}
	for i := range claims {
		c := &claims[i]
		g, ok := byStatus[c.Status]
		if !ok {
			g = &StatusGroup{Status: string(c.Status)}
			byStatus[c.Status] = g
		}
		g.Count++
		g.TotalAmount += c.TotalAmount()

		k := ym{c.SubmissionDate.Year(), int(c.SubmissionDate.Month())}
		m, ok := byMonth[k]
		if !ok {
			m = &MonthGroup{Year: k.year, Month: k.month}
			byMonth[k] = m
		}
		m.Count++
		m.TotalAmount += c.TotalAmount()

		switch c.Status {
		case claimDomain.StatusPending:
			out.PendingClaims++
		case claimDomain.StatusApproved:
			out.TotalAmountApproved += c.TotalAmount()
		}
	}
	for _, s := range []claimDomain.Status{claimDomain.StatusPending, claimDomain.StatusApproved, claimDomain.StatusRejected} {
		if g, ok := byStatus[s]; ok {
			out.ClaimsByStatus = append(out.ClaimsByStatus, *g)
		}
	}
	for _, m := range byMonth {
		out.MonthlyClaims = append(out.MonthlyClaims, *m)
	}
	sort.Slice(out.MonthlyClaims, func(i, j int) bool {
		a, b := out.MonthlyClaims[i], out.MonthlyClaims[j]
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		return a.Month > b.Month
	})

	byRole := map[userDomain.Role]int{}
	for i := range users {
		byRole[users[i].Role]++
	}
	for _, r := range []userDomain.Role{userDomain.RoleLecturer, userDomain.RoleCoordinator, userDomain.RoleManager, userDomain.RoleHR} {
		if n, ok := byRole[r]; ok {
			out.UsersByRole = append(out.UsersByRole, RoleGroup{Role: string(r), Count: n})
		}
	}
	return out, nil
}

func statsFor(claims []claimDomain.Claim) Stats {
	var s Stats
	s.TotalClaims = len(claims)
	for i := range claims {
		switch claims[i].Status {
		case claimDomain.StatusPending:
			s.PendingClaims++
		case claimDomain.StatusApproved:
			s.ApprovedClaims++
			s.TotalAmountApproved += claims[i].TotalAmount()
		case claimDomain.StatusRejected:
			s.RejectedClaims++
		}
	}
	return s
}

func (u *Usecase) summaries(ctx context.Context, claims []claimDomain.Claim) []ClaimSummary {
	names := map[uint64]string{}
	out := make([]ClaimSummary, 0, len(claims))
	for i := range claims {
		c := &claims[i]
		name, ok := names[c.UserID]
		if !ok {
			name = "Unknown"
			if usr, err := u.users.GetByID(ctx, c.UserID); err == nil {
				name = usr.FullName
			}
			names[c.UserID] = name
		}
		out = append(out, ClaimSummary{
			ID:             c.ID,
			LecturerName:   name,
			HoursWorked:    c.HoursWorked,
			HourlyRate:     c.HourlyRate,
			TotalAmount:    c.TotalAmount(),
			Status:         string(c.Status),
			SubmissionDate: c.SubmissionDate,
			HasDocument:    c.DocumentRef != "",
		})
	}
	return out
}

func take(claims []claimDomain.Claim, n int) []claimDomain.Claim {
	if len(claims) <= n {
		return claims
	}
	return claims[:n]
}
