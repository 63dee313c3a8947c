package slots

type AddSlotRequest struct {
	BranchID          int64  `json:"branch_id" binding:"required"`
	Time              string `json:"time" binding:"required"`
	AppointmentTypeID *int64 `json:"appointment_type_id"`
}

type BulkAddRequest struct {
	BranchID          int64    `json:"branch_id" binding:"required"`
	AppointmentTypeID *int64   `json:"appointment_type_id"`
	Times             []string `json:"times" binding:"required"`
}

type BulkEntryError struct {
	Time   string `json:"time"`
	Reason string `json:"reason"`
}

// BulkAddResult reports per-entry outcomes; a malformed entry never blocks
// the rest of the batch.
type BulkAddResult struct {
	Created int              `json:"created"`
	Skipped int              `json:"skipped"`
	Errors  []BulkEntryError `json:"errors,omitempty"`
}
