package availability

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

// RegisterRoutes exposes availability on the public group: clients query it
// before booking without authenticating.
func (h *Handler) RegisterRoutes(public *gin.RouterGroup) {
	public.GET("/availability", h.GetAvailableTimes)
}

func (h *Handler) GetAvailableTimes(c *gin.Context) {
	branchID, err := strconv.ParseInt(c.Query("branch_id"), 10, 64)
	if err != nil || branchID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_BRANCH", "branch_id is required")
		return
	}

	date := c.Query("date")
	if date == "" {
		response.Error(c, http.StatusBadRequest, "INVALID_DATE", "date is required")
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

	res, err := h.service.GetAvailableTimes(c.Request.Context(), branchID, date, typeID)
	if err != nil {
		if errors.Is(err, ErrInvalidDate) {
			response.Error(c, http.StatusBadRequest, "INVALID_DATE", "Date must be YYYY-MM-DD")
			return
		}
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to resolve availability")
		return
	}
	response.Success(c, http.StatusOK, res)
}
