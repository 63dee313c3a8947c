package holidays

type CreateHolidayRequest struct {
	Date     string `json:"date" binding:"required"`
	Name     string `json:"name" binding:"required"`
	BranchID *int64 `json:"branch_id"`
}

type UpdateHolidayRequest struct {
	Name *string `json:"name"`
	Date *string `json:"date"`
}
