package domain

import "time"

// DateFormat is the wire and storage format for calendar dates.
const DateFormat = "2006-01-02"

// TimeFormat is the wire and storage format for slot times.
const TimeFormat = "15:04"

// Status is the appointment lifecycle status. The numeric ids are part of the
// stored data model and must not be redefined anywhere else.
type Status int

const (
	StatusPending    Status = 1
	StatusConfirmed  Status = 2
	StatusInProgress Status = 3
	StatusCompleted  Status = 4
	StatusCancelled  Status = 5
)

// Terminal reports whether no further transitions are allowed.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusConfirmed:
		return "confirmed"
	case StatusInProgress:
		return "in_progress"
	case StatusCompleted:
		return "completed"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// TerminalStatusIDs is used by repositories to exclude completed/cancelled
// rows from slot occupancy queries and to guard lifecycle updates. The daily
// capacity count is different: it excludes only cancelled rows.
var TerminalStatusIDs = []int{int(StatusCompleted), int(StatusCancelled)}

type Appointment struct {
	ID                 int64  `json:"id" gorm:"primaryKey"`
	AppointmentNumber  string `json:"appointment_number" gorm:"uniqueIndex;size:32;not null"`
	ClientID           int64  `json:"client_id" gorm:"not null;index"`
	BranchID           int64  `json:"branch_id" gorm:"not null;index"`
	AppointmentTypeID  int64  `json:"appointment_type_id" gorm:"not null"`
	Date               string `json:"date" gorm:"size:10;not null;index"`
	Time               string `json:"time" gorm:"size:5;not null"`
	Status             Status `json:"status_id" gorm:"column:status_id;not null"`
	Notes              string `json:"notes,omitempty" gorm:"type:text"`
	CancellationReason string `json:"cancellation_reason,omitempty" gorm:"type:text"`

	CompletedDate *time.Time `json:"completed_date,omitempty"`

	IsActive  bool `json:"is_active" gorm:"not null;default:true"`
	IsEnabled bool `json:"is_enabled" gorm:"not null;default:true"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Client *Client `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Branch *Branch `json:"branch,omitempty" gorm:"foreignKey:BranchID"`
}

func (Appointment) TableName() string { return "appointments" }

// StatusName is exposed in API payloads alongside the numeric id.
func (a *Appointment) StatusName() string { return a.Status.String() }
