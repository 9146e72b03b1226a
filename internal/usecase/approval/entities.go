package approval

import (
	"time"
)

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

type DecideInput struct {
	ClaimID         uint64
	Decision        Decision
	ApproverID      uint64
	RejectionReason string // required for reject
}

type DecisionDTO struct {
	ClaimID      uint64    `json:"claim_id"`
	Status       string    `json:"status"`
	ApprovedBy   uint64    `json:"approved_by"`
	ApprovalDate time.Time `json:"approval_date"`
	Notes        string    `json:"notes"`
}

type PendingClaimDTO struct {
	ID             uint64    `json:"id"`
	UserID         uint64    `json:"user_id"`
	LecturerName   string    `json:"lecturer_name"`
	HoursWorked    float64   `json:"hours_worked"`
	HourlyRate     float64   `json:"hourly_rate"`
	TotalAmount    float64   `json:"total_amount"`
	Notes          string    `json:"notes"`
	DocumentRef    string    `json:"document_ref,omitempty"`
	SubmissionDate time.Time `json:"submission_date"`
}

type HistoryEntry struct {
	ClaimID      uint64    `json:"claim_id"`
	LecturerName string    `json:"lecturer_name"`
	Action       string    `json:"action"` // Approved | Rejected
	ActionBy     string    `json:"action_by"`
	ActionDate   time.Time `json:"action_date"`
}
