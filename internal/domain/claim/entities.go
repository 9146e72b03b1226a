package claim

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// MaxClaimHours caps a single submission; MaxMonthlyHours caps the sum of a
// lecturer's claims submitted within one calendar month (submission date, not
// approval date).
const (
	MaxClaimHours   = 180
	MaxMonthlyHours = 180
	MaxNotesLen     = 1000
)

var (
	ErrNotFound               = errors.New("claim not found")
	ErrInvalidHours           = fmt.Errorf("hours worked must be greater than 0 and at most %d", MaxClaimHours)
	ErrNotesTooLong           = fmt.Errorf("notes must be at most %d characters", MaxNotesLen)
	ErrMissingRejectionReason = errors.New("rejection reason is required")
	ErrAlreadyDecided         = errors.New("claim has already been decided")
)

// MonthlyLimitError reports a submission that would push the lecturer past the
// monthly cap. AlreadyWorked carries the hour total already submitted this
// month so callers can render it.
type MonthlyLimitError struct {
	AlreadyWorked int
}

func (e *MonthlyLimitError) Error() string {
	return fmt.Sprintf("cannot exceed %d hours per month: already worked %d hours this month",
		MaxMonthlyHours, e.AlreadyWorked)
}

type Claim struct {
	ID     uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID uint64 `gorm:"column:user_id;not null;index:idx_claims_user" json:"user_id"`
	// HourlyRate is snapshotted from the owner at submission time and never
	// re-read, so later rate changes do not touch past claims.
	HoursWorked    float64        `gorm:"column:hours_worked;type:decimal(18,2);not null" json:"hours_worked"`
	HourlyRate     float64        `gorm:"column:hourly_rate;type:decimal(18,2);not null" json:"hourly_rate"`
	Notes          string         `gorm:"column:notes;size:1000" json:"notes"`
	DocumentRef    string         `gorm:"column:document_ref;type:text" json:"document_ref"`
	Status         Status         `gorm:"column:status;type:enum('Pending','Approved','Rejected');default:'Pending';index" json:"status"`
	SubmissionDate time.Time      `gorm:"column:submission_date;not null" json:"submission_date"`
	ApprovalDate   *time.Time     `gorm:"column:approval_date" json:"approval_date,omitempty"`
	ApprovedBy     *uint64        `gorm:"column:approved_by" json:"approved_by,omitempty"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"-"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Claim) TableName() string { return "lecturer_claims" }

// TotalAmount is derived on read and never persisted.
func (c *Claim) TotalAmount() float64 { return c.HoursWorked * c.HourlyRate }

func (c *Claim) Decided() bool { return c.Status != StatusPending }
