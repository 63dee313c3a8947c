package domain

import "time"

type Branch struct {
	ID      int64  `json:"id" gorm:"primaryKey"`
	Code    string `json:"code" gorm:"uniqueIndex;size:16;not null"`
	Name    string `json:"name" gorm:"size:120;not null"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty" gorm:"size:32"`
	Active  bool   `json:"active" gorm:"not null;default:true"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Branch) TableName() string { return "branches" }

type AppointmentType struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:120;not null"`
	Description string `json:"description,omitempty" gorm:"type:text"`
	Active      bool   `json:"active" gorm:"not null;default:true"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AppointmentType) TableName() string { return "appointment_types" }
