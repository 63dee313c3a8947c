package domain

import "time"

type HolidayType string

const (
	HolidayNational HolidayType = "NATIONAL"
	HolidayLocal    HolidayType = "LOCAL"
	HolidayCompany  HolidayType = "COMPANY"
)

// Holiday is a non-working date. NATIONAL and COMPANY holidays apply to every
// branch; LOCAL applies only to BranchID.
type Holiday struct {
	ID       int64       `json:"id" gorm:"primaryKey"`
	Date     string      `json:"date" gorm:"size:10;not null;index"`
	Name     string      `json:"name" gorm:"size:120;not null"`
	Type     HolidayType `json:"type" gorm:"size:16;not null"`
	BranchID *int64      `json:"branch_id,omitempty"`
	Active   bool        `json:"active" gorm:"not null;default:true"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Holiday) TableName() string { return "holidays" }

func (h *Holiday) AppliesToBranch(branchID int64) bool {
	if h.Type == HolidayNational || h.Type == HolidayCompany {
		return true
	}
	return h.BranchID != nil && *h.BranchID == branchID
}
