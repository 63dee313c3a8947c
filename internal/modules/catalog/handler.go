package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"utilibook/internal/pkg/response"
	"utilibook/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes exposes the read side plus client self-registration.
func (h *Handler) RegisterPublicRoutes(public *gin.RouterGroup) {
	public.GET("/branches", h.ListBranches)
	public.GET("/appointment-types", h.ListTypes)
	public.POST("/clients", h.RegisterClient)
}

// RegisterAdminRoutes exposes the write side for back-office admins.
func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.POST("/branches", h.CreateBranch)
	admin.PATCH("/branches/:id", h.UpdateBranch)
	admin.POST("/appointment-types", h.CreateType)
}

func (h *Handler) ListBranches(c *gin.Context) {
	rows, err := h.service.ListBranches(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list branches")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"branches": rows})
}

func (h *Handler) ListTypes(c *gin.Context) {
	rows, err := h.service.ListTypes(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list appointment types")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"appointment_types": rows})
}

func (h *Handler) CreateBranch(c *gin.Context) {
	var req CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}

	b, err := h.service.CreateBranch(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrCodeTaken) {
			response.Error(c, http.StatusConflict, "CODE_TAKEN", "Branch code already in use")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create branch")
		return
	}
	response.Success(c, http.StatusCreated, b)
}

func (h *Handler) UpdateBranch(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid branch ID")
		return
	}

	var req UpdateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}

	b, err := h.service.UpdateBranch(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrBranchNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Branch not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update branch")
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) CreateType(c *gin.Context) {
	var req CreateTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}

	t, err := h.service.CreateType(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create appointment type")
		return
	}
	response.Success(c, http.StatusCreated, t)
}

func (h *Handler) RegisterClient(c *gin.Context) {
	var req RegisterClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}

	if fieldErrors := validator.Validate(&req); fieldErrors != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid client data", fieldErrors)
		return
	}

	client, created, err := h.service.RegisterClient(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to register client")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	response.Success(c, status, client)
}
