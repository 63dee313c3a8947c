package domain

import "time"

type NotificationType string

const (
	NotifAppointmentConfirmed NotificationType = "appointment_confirmed"
	NotifAppointmentCancelled NotificationType = "appointment_cancelled"
	NotifAppointmentReminder  NotificationType = "appointment_reminder"
)

// Notification is the persisted record of one delivery attempt target. Rows
// are written before the side channels (SMS, websocket) fire so the in-app
// feed survives a failed send.
type Notification struct {
	ID            int64            `json:"id" gorm:"primaryKey"`
	ClientID      int64            `json:"client_id" gorm:"not null;index"`
	AppointmentID int64            `json:"appointment_id" gorm:"not null;index"`
	Type          NotificationType `json:"type" gorm:"size:32;not null"`
	Title         string           `json:"title" gorm:"size:160;not null"`
	Message       string           `json:"message,omitempty" gorm:"type:text"`
	IsRead        bool             `json:"is_read" gorm:"not null;default:false"`

	CreatedAt time.Time `json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
