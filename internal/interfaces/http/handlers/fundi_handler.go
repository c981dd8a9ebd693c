package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fundilink.backend/internal/domain/entities"
	domainerrors "fundilink.backend/internal/domain/errors"
	"fundilink.backend/internal/interfaces/http/middleware"
	"fundilink.backend/internal/interfaces/http/response"
)

// FundiService is the fundi workflow consumed by FundiHandler
type FundiService interface {
	Apply(ctx context.Context, userID uuid.UUID, input *entities.ApplyFundiInput) (*entities.ActionResponse, error)
	Decide(ctx context.Context, rawApplicationID, rawStatus string) (*entities.ActionResponse, error)
	ListPending(ctx context.Context) ([]*entities.FundiWithRelations, error)
	ListAll(ctx context.Context) ([]*entities.FundiWithRelations, error)
	GetStatus(ctx context.Context, userID uuid.UUID) (*entities.FundiStatusResponse, error)
}

// FundiHandler handles fundi application endpoints
type FundiHandler struct {
	fundiService FundiService
}

// NewFundiHandler creates a new fundi handler
func NewFundiHandler(fundiService FundiService) *FundiHandler {
	return &FundiHandler{fundiService: fundiService}
}

// Apply submits the caller's fundi application
// POST /api/v1/fundi/apply
func (h *FundiHandler) Apply(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	var input entities.ApplyFundiInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.fundiService.Apply(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// ListPending lists applications awaiting a decision
// GET /api/v1/fundi/pending
func (h *FundiHandler) ListPending(c *gin.Context) {
	items, err := h.fundiService.ListPending(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusOK, items)
}

// ListAll lists every application
// GET /api/v1/fundi/all
func (h *FundiHandler) ListAll(c *gin.Context) {
	items, err := h.fundiService.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusOK, items)
}

// Verify records an admin decision
// PATCH /api/v1/fundi/verify/:fundiId
func (h *FundiHandler) Verify(c *gin.Context) {
	var input entities.VerifyFundiInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.fundiService.Decide(c.Request.Context(), c.Param("fundiId"), input.VerificationStatus)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// Status returns the caller's own application
// GET /api/v1/fundi/status
func (h *FundiHandler) Status(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Unauthorized"))
		return
	}

	status, err := h.fundiService.GetStatus(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusOK, status)
}
