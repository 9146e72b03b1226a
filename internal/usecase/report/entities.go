package report

import (
	"time"
)

type Stats struct {
	TotalClaims         int     `json:"total_claims"`
	PendingClaims       int     `json:"pending_claims"`
	ApprovedClaims      int     `json:"approved_claims"`
	RejectedClaims      int     `json:"rejected_claims"`
	TotalUsers          int     `json:"total_users,omitempty"`
	TotalAmountApproved float64 `json:"total_amount_approved"`
}

type ClaimSummary struct {
	ID             uint64    `json:"id"`
	LecturerName   string    `json:"lecturer_name"`
	HoursWorked    float64   `json:"hours_worked"`
	HourlyRate     float64   `json:"hourly_rate"`
	TotalAmount    float64   `json:"total_amount"`
	Status         string    `json:"status"`
	SubmissionDate time.Time `json:"submission_date"`
	HasDocument    bool      `json:"has_document"`
}

type Dashboard struct {
	UserName         string         `json:"user_name"`
	UserRole         string         `json:"user_role"`
	Stats            Stats          `json:"stats"`
	RecentClaims     []ClaimSummary `json:"recent_claims,omitempty"`
	PendingApprovals []ClaimSummary `json:"pending_approvals,omitempty"`
}

type StatusGroup struct {
	Status      string  `json:"status"`
	Count       int     `json:"count"`
	TotalAmount float64 `json:"total_amount"`
}

type RoleGroup struct {
	Role  string `json:"role"`
	Count int    `json:"count"`
}

type MonthGroup struct {
	Year        int     `json:"year"`
	Month       int     `json:"month"`
	Count       int     `json:"count"`
	TotalAmount float64 `json:"total_amount"`
}

type ClaimsReport struct {
	ClaimsByStatus      []StatusGroup `json:"claims_by_status"`
	UsersByRole         []RoleGroup   `json:"users_by_role"`
	MonthlyClaims       []MonthGroup  `json:"monthly_claims"`
	TotalClaims         int           `json:"total_claims"`
	TotalUsers          int           `json:"total_users"`
	TotalAmountApproved float64       `json:"total_amount_approved"`
	PendingClaims       int           `json:"pending_claims"`
}
