package holidays

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"utilibook/internal/domain"
	"utilibook/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(staff *gin.RouterGroup) {
	g := staff.Group("/holidays")
	{
		g.POST("/national", h.CreateNational)
		g.POST("/company", h.CreateCompany)
		g.POST("/local", h.CreateLocal)
		g.GET("", h.GetInRange)
		g.PATCH("/:id", h.Update)
		g.DELETE("/:id", h.Deactivate)
	}
}

func (h *Handler) CreateNational(c *gin.Context) {
	h.create(c, h.service.CreateNationalHoliday)
}

func (h *Handler) CreateCompany(c *gin.Context) {
	h.create(c, h.service.CreateCompanyHoliday)
}

func (h *Handler) CreateLocal(c *gin.Context) {
	h.create(c, h.service.CreateLocalHoliday)
}

func (h *Handler) create(c *gin.Context, fn func(context.Context, CreateHolidayRequest) (*domain.Holiday, error)) {
	var req CreateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}

	holiday, err := fn(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, holiday)
}

func (h *Handler) GetInRange(c *gin.Context) {
	start := c.Query("start")
	end := c.Query("end")

	var branchID *int64
	if s := c.Query("branch_id"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil || v <= 0 {
			response.Error(c, http.StatusBadRequest, "INVALID_BRANCH", "Invalid branch_id")
			return
		}
		branchID = &v
	}

	rows, err := h.service.GetHolidaysInRange(c.Request.Context(), start, end, branchID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"holidays": rows})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid holiday ID")
		return
	}

	var req UpdateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}

	holiday, err := h.service.UpdateHoliday(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, holiday)
}

func (h *Handler) Deactivate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid holiday ID")
		return
	}

	if err := h.service.DeactivateHoliday(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deactivated": true})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidDate):
		response.Error(c, http.StatusBadRequest, "INVALID_DATE", "Date must be YYYY-MM-DD")
	case errors.Is(err, ErrDateInPast):
		response.Error(c, http.StatusBadRequest, "DATE_IN_PAST", "Date must not be in the past")
	case errors.Is(err, ErrDuplicateHoliday):
		response.Error(c, http.StatusConflict, "DUPLICATE_HOLIDAY", "An active holiday already covers this date")
	case errors.Is(err, ErrInvalidRange):
		response.Error(c, http.StatusBadRequest, "INVALID_RANGE", "start must not be after end")
	case errors.Is(err, ErrBranchRequired):
		response.Error(c, http.StatusBadRequest, "BRANCH_REQUIRED", "branch_id is required for local holidays")
	case errors.Is(err, ErrBranchNotFound):
		response.Error(c, http.StatusNotFound, "BRANCH_NOT_FOUND", "Branch not found")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Holiday not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
	}
}
