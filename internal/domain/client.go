package domain

import "time"

// Client is a utility customer. ClientNumber is the opaque identifier used by
// the public (unauthenticated) booking and cancellation flows.
type Client struct {
	ID           int64  `json:"id" gorm:"primaryKey"`
	ClientNumber string `json:"client_number" gorm:"uniqueIndex;size:32;not null"`
	FullName     string `json:"full_name" gorm:"size:160;not null"`
	Email        string `json:"email,omitempty" gorm:"size:160"`
	Phone        string `json:"phone,omitempty" gorm:"size:32"`
	Active       bool   `json:"active" gorm:"not null;default:true"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Client) TableName() string { return "clients" }
