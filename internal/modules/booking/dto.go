package booking

type ScheduleRequest struct {
	ClientID          int64  `json:"client_id" binding:"required"`
	BranchID          int64  `json:"branch_id" binding:"required"`
	AppointmentTypeID int64  `json:"appointment_type_id" binding:"required"`
	Date              string `json:"date" binding:"required"`
	Time              string `json:"time" binding:"required"`
	Notes             string `json:"notes"`
}

// PublicScheduleRequest is the unauthenticated variant: the client is
// identified by its opaque client number.
type PublicScheduleRequest struct {
	ClientNumber      string `json:"client_number" binding:"required"`
	BranchID          int64  `json:"branch_id" binding:"required"`
	AppointmentTypeID int64  `json:"appointment_type_id" binding:"required"`
	Date              string `json:"date" binding:"required"`
	Time              string `json:"time" binding:"required"`
	Notes             string `json:"notes"`
}

type CancelRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type PublicCancelRequest struct {
	ClientNumber string `json:"client_number" binding:"required"`
	Reason       string `json:"reason" binding:"required"`
}

type CompleteRequest struct {
	Notes *string `json:"notes"`
}
