package user

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound    = errors.New("user not found")
	ErrIneligible  = errors.New("user is not an active lecturer")
	ErrNotApprover = errors.New("user is not a coordinator or manager")
	ErrEmailTaken  = errors.New("email is already registered")
)

type Role string

const (
	RoleLecturer    Role = "Lecturer"
	RoleCoordinator Role = "Coordinator"
	RoleManager     Role = "Manager"
	RoleHR          Role = "HR"
)

func (r Role) Valid() bool {
	switch r {
	case RoleLecturer, RoleCoordinator, RoleManager, RoleHR:
		return true
	}
	return false
}

// CanApprove reports whether the role may decide claims.
func (r Role) CanApprove() bool { return r == RoleCoordinator || r == RoleManager }

type User struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	// Compared case-insensitively; stored as entered.
	Email      string         `gorm:"column:email;size:100;not null;uniqueIndex:ux_users_email_active" json:"email"`
	FullName   string         `gorm:"column:full_name;size:100;not null" json:"full_name"`
	Role       Role           `gorm:"column:role;type:enum('Lecturer','Coordinator','Manager','HR');not null" json:"role"`
	HourlyRate float64        `gorm:"column:hourly_rate;type:decimal(18,2)" json:"hourly_rate"`
	IsActive   bool           `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"-"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (User) TableName() string { return "users" }
