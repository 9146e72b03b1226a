package claim

import (
	"time"
)

type SubmitClaimInput struct {
	UserID      uint64  `json:"user_id"`
	HoursWorked float64 `json:"hours_worked"`
	Notes       string  `json:"notes"`
	DocumentRef string  `json:"document_ref"`
}

type ClaimDTO struct {
	ID             uint64     `json:"id"`
	UserID         uint64     `json:"user_id"`
	LecturerName   string     `json:"lecturer_name"`
	HoursWorked    float64    `json:"hours_worked"`
	HourlyRate     float64    `json:"hourly_rate"`
	TotalAmount    float64    `json:"total_amount"`
	Notes          string     `json:"notes"`
	DocumentRef    string     `json:"document_ref,omitempty"`
	Status         string     `json:"status"`
	SubmissionDate time.Time  `json:"submission_date"`
	ApprovalDate   *time.Time `json:"approval_date,omitempty"`
	ApprovedBy     *uint64    `json:"approved_by,omitempty"`
	ApprovedByName string     `json:"approved_by_name,omitempty"`
}
