package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"utilibook/internal/domain"
	"utilibook/internal/pkg/response"
	"utilibook/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes: unauthenticated client flows keyed by client number.
func (h *Handler) RegisterPublicRoutes(public *gin.RouterGroup) {
	g := public.Group("/appointments")
	{
		g.POST("", h.SchedulePublic)
		g.GET("/verify", h.Verify)
		g.POST("/:number/cancel", h.CancelPublic)
	}
}

// RegisterStaffRoutes: branch back-office operations.
func (h *Handler) RegisterStaffRoutes(staff *gin.RouterGroup) {
	g := staff.Group("/appointments")
	{
		g.POST("", h.Schedule)
		g.GET("", h.List)
		g.GET("/:id", h.GetByID)
		g.POST("/:id/complete", h.Complete)
		g.POST("/:id/cancel", h.Cancel)
		g.DELETE("/:id", h.LogicalDelete)
	}
}

func (h *Handler) Schedule(c *gin.Context) {
	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}

	appt, err := h.service.Schedule(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, appointmentPayload(appt))
}

func (h *Handler) SchedulePublic(c *gin.Context) {
	var req PublicScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}

	appt, err := h.service.SchedulePublic(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, appointmentPayload(appt))
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}
	appt, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, appointmentPayload(appt))
}

func (h *Handler) Verify(c *gin.Context) {
	number := c.Query("number")
	clientNumber := c.Query("client_number")
	if number == "" || clientNumber == "" {
		response.Error(c, http.StatusBadRequest, "INVALID_QUERY", "number and client_number are required")
		return
	}

	appt, err := h.service.Verify(c.Request.Context(), number, clientNumber)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, appointmentPayload(appt))
}

func (h *Handler) List(c *gin.Context) {
	var f repository.AppointmentFilter

	if s := c.Query("branch_id"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil || v <= 0 {
			response.Error(c, http.StatusBadRequest, "INVALID_BRANCH", "Invalid branch_id")
			return
		}
		f.BranchID = &v
	}
	if s := c.Query("client_id"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil || v <= 0 {
			response.Error(c, http.StatusBadRequest, "INVALID_CLIENT", "Invalid client_id")
			return
		}
		f.ClientID = &v
	}
	if s := c.Query("status_id"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < int(domain.StatusPending) || v > int(domain.StatusCancelled) {
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Invalid status_id")
			return
		}
		st := domain.Status(v)
		f.Status = &st
	}
	if s := c.Query("date"); s != "" {
		f.Date = &s
	}
	if s := c.Query("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			f.Limit = v
			if f.Limit > 200 {
				f.Limit = 200
			}
		}
	}
	if s := c.Query("offset"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v >= 0 {
			f.Offset = v
		}
	}

	rows, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list appointments")
		return
	}

	out := make([]gin.H, 0, len(rows))
	for i := range rows {
		out = append(out, appointmentPayload(&rows[i]))
	}
	response.Success(c, http.StatusOK, gin.H{"appointments": out})
}

func (h *Handler) Complete(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}

	var req CompleteRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
			return
		}
	}

	appt, err := h.service.Complete(c.Request.Context(), id, req.Notes)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, appointmentPayload(appt))
}

func (h *Handler) Cancel(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}

	var req CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Cancellation reason is required")
		return
	}

	appt, err := h.service.Cancel(c.Request.Context(), id, req.Reason)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, appointmentPayload(appt))
}

func (h *Handler) CancelPublic(c *gin.Context) {
	number := c.Param("number")

	var req PublicCancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "client_number and reason are required")
		return
	}

	appt, err := h.service.CancelPublic(c.Request.Context(), number, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, appointmentPayload(appt))
}

func (h *Handler) LogicalDelete(c *gin.Context) {
	id, ok := h.idParam(c)
	if !ok {
		return
	}

	if err := h.service.LogicalDelete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid appointment ID")
		return 0, false
	}
	return id, true
}

func appointmentPayload(a *domain.Appointment) gin.H {
	return gin.H{
		"id":                  a.ID,
		"appointment_number":  a.AppointmentNumber,
		"client_id":           a.ClientID,
		"branch_id":           a.BranchID,
		"appointment_type_id": a.AppointmentTypeID,
		"date":                a.Date,
		"time":                a.Time,
		"status_id":           int(a.Status),
		"status":              a.StatusName(),
		"notes":               a.Notes,
		"cancellation_reason": a.CancellationReason,
		"completed_date":      a.CompletedDate,
		"created_at":          a.CreatedAt,
		"updated_at":          a.UpdatedAt,
	}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidDate):
		response.Error(c, http.StatusBadRequest, "INVALID_DATE", "Date must be YYYY-MM-DD")
	case errors.Is(err, ErrInvalidTimeFormat):
		response.Error(c, http.StatusBadRequest, "INVALID_TIME_FORMAT", "Time must be in HH:mm format")
	case errors.Is(err, ErrSundayNotAvailable):
		response.Error(c, http.StatusUnprocessableEntity, "SUNDAY_NOT_AVAILABLE", "Appointments are not available on Sundays")
	case errors.Is(err, ErrHolidayNotAvailable):
		response.Error(c, http.StatusUnprocessableEntity, "HOLIDAY_NOT_AVAILABLE", err.Error())
	case errors.Is(err, ErrPastDate):
		response.Error(c, http.StatusUnprocessableEntity, "PAST_DATE_NOT_AVAILABLE", "Date is in the past")
	case errors.Is(err, ErrClientNotFound):
		response.Error(c, http.StatusNotFound, "CLIENT_NOT_FOUND", "Client not found")
	case errors.Is(err, ErrBranchNotFound):
		response.Error(c, http.StatusNotFound, "BRANCH_NOT_FOUND", "Branch not found")
	case errors.Is(err, ErrTypeNotFound):
		response.Error(c, http.StatusNotFound, "TYPE_NOT_FOUND", "Appointment type not found")
	case errors.Is(err, ErrDailyCapacityExceeded):
		response.Error(c, http.StatusConflict, "DAILY_CAPACITY_EXCEEDED", "Daily capacity exceeded for this branch")
	case errors.Is(err, ErrSlotUnavailable):
		response.Error(c, http.StatusConflict, "SLOT_UNAVAILABLE", "Slot is no longer available")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Appointment not found")
	case errors.Is(err, ErrAlreadyCompleted):
		response.Error(c, http.StatusConflict, "ALREADY_COMPLETED", "Appointment already completed")
	case errors.Is(err, ErrAlreadyCancelled):
		response.Error(c, http.StatusConflict, "ALREADY_CANCELLED", "Appointment already cancelled")
	case errors.Is(err, ErrCannotCompleteCancelled):
		response.Error(c, http.StatusConflict, "CANNOT_COMPLETE_CANCELLED", "Cannot complete a cancelled appointment")
	case errors.Is(err, ErrCannotCancelCompleted):
		response.Error(c, http.StatusConflict, "CANNOT_CANCEL_COMPLETED", "Cannot cancel a completed appointment")
	case errors.Is(err, ErrAlreadyDeleted):
		response.Error(c, http.StatusConflict, "ALREADY_DELETED", "Appointment already deleted")
	case errors.Is(err, ErrVerificationFailed):
		response.Error(c, http.StatusNotFound, "VERIFICATION_FAILED", "Appointment does not match client")
	case errors.Is(err, ErrReasonRequired):
		response.Error(c, http.StatusBadRequest, "REASON_REQUIRED", "Cancellation reason is required")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
	}
}
