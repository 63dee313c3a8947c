package domain

import "time"

// SystemSetting is a runtime-tunable key/value pair.
type SystemSetting struct {
	Key       string    `json:"key" gorm:"primaryKey;size:64"`
	Value     string    `json:"value" gorm:"size:255;not null"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SystemSetting) TableName() string { return "system_settings" }

// SettingMaxAppointmentsPerDay caps non-terminal appointments per branch per day.
const SettingMaxAppointmentsPerDay = "MAX_APPOINTMENTS_PER_DAY"
