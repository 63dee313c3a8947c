package domain

import "time"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// StaffUser is an employee account for the branch back office.
type StaffUser struct {
	ID           int64  `json:"id" gorm:"primaryKey"`
	Email        string `json:"email" gorm:"uniqueIndex;size:160;not null"`
	PasswordHash string `json:"-" gorm:"size:120;not null"`
	FullName     string `json:"full_name" gorm:"size:160"`
	Role         Role   `json:"role" gorm:"size:16;not null;default:'staff'"`
	BranchID     *int64 `json:"branch_id,omitempty"`
	Active       bool   `json:"active" gorm:"not null;default:true"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (StaffUser) TableName() string { return "staff_users" }
