package slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"utilibook/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(staff *gin.RouterGroup) {
	g := staff.Group("/slots")
	{
		g.POST("", h.AddSlot)
		g.POST("/bulk", h.BulkAddSlots)
		g.GET("", h.ListSlots)
		g.DELETE("/:id", h.DeactivateSlot)
	}
}

func (h *Handler) AddSlot(c *gin.Context) {
	var req AddSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}

	slot, err := h.service.AddSlot(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, slot)
}

func (h *Handler) BulkAddSlots(c *gin.Context) {
	var req BulkAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}

	res, err := h.service.BulkAddSlots(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "BULK_ADD_FAILED", "Failed to add slots")
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) ListSlots(c *gin.Context) {
	branchID, err := strconv.ParseInt(c.Query("branch_id"), 10, 64)
	if err != nil || branchID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_BRANCH", "branch_id is required")
		return
	}

	var typeID *int64
	if s := c.Query("appointment_type_id"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil || v <= 0 {
			response.Error(c, http.StatusBadRequest, "INVALID_TYPE", "Invalid appointment_type_id")
			return
		}
		typeID = &v
	}

	rows, err := h.service.ListSlots(c.Request.Context(), branchID, typeID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list slots")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"slots": rows})
}

func (h *Handler) DeactivateSlot(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid slot ID")
		return
	}

	if err := h.service.DeactivateSlot(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deactivated": true})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidTimeFormat):
		response.Error(c, http.StatusBadRequest, "INVALID_TIME_FORMAT", "Time must be in HH:mm format")
	case errors.Is(err, ErrDuplicateSlot):
		response.Error(c, http.StatusConflict, "DUPLICATE_SLOT", "An active slot already exists for this time")
	case errors.Is(err, ErrBranchNotFound):
		response.Error(c, http.StatusNotFound, "BRANCH_NOT_FOUND", "Branch not found")
	case errors.Is(err, ErrAppointmentTypeNotFound):
		response.Error(c, http.StatusNotFound, "TYPE_NOT_FOUND", "Appointment type not found")
	case errors.Is(err, ErrAlreadyInactive):
		response.Error(c, http.StatusConflict, "ALREADY_INACTIVE", "Slot is already inactive")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Slot not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
	}
}
