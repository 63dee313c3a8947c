package domain

import "time"

// TimeSlotConfig is one configured bookable time-of-day for a branch,
// optionally narrowed to a single appointment type. Deactivated rows are kept
// for history and ignored by availability.
type TimeSlotConfig struct {
	ID                int64  `json:"id" gorm:"primaryKey"`
	BranchID          int64  `json:"branch_id" gorm:"not null;index"`
	AppointmentTypeID *int64 `json:"appointment_type_id,omitempty" gorm:"index"`
	Time              string `json:"time" gorm:"size:5;not null"`
	Active            bool   `json:"active" gorm:"not null;default:true"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (TimeSlotConfig) TableName() string { return "time_slot_configs" }
