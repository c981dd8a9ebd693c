package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fundilink.backend/internal/domain/entities"
	domainerrors "fundilink.backend/internal/domain/errors"
	"fundilink.backend/internal/interfaces/http/response"
	"fundilink.backend/pkg/utils"
)

// CatalogService manages services and locations
type CatalogService interface {
	CreateService(ctx context.Context, input *entities.CatalogNameInput) (*entities.Service, error)
	ListServices(ctx context.Context) ([]*entities.Service, error)
	GetService(ctx context.Context, id uuid.UUID) (*entities.Service, error)
	RenameService(ctx context.Context, id uuid.UUID, input *entities.CatalogNameInput) (*entities.Service, error)
	CreateLocation(ctx context.Context, input *entities.CatalogNameInput) (*entities.Location, error)
	ListLocations(ctx context.Context) ([]*entities.Location, error)
	GetLocation(ctx context.Context, id uuid.UUID) (*entities.Location, error)
}

// CatalogHandler handles the service and location catalog endpoints
type CatalogHandler struct {
	catalog CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func parsePathID(c *gin.Context, notFound string) (uuid.UUID, bool) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		response.Error(c, domainerrors.NotFound(notFound))
		return uuid.Nil, false
	}
	return id, true
}

// ListServices lists services
// GET /api/v1/services
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.catalog.ListServices(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusOK, services)
}

// GetService gets one service
// GET /api/v1/services/:id
func (h *CatalogHandler) GetService(c *gin.Context) {
	id, ok := parsePathID(c, "Service not found")
	if !ok {
		return
	}
	service, err := h.catalog.GetService(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusOK, service)
}

// CreateService adds a service
// POST /api/v1/services
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var input entities.CatalogNameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	service, err := h.catalog.CreateService(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusCreated, service)
}

// RenameService renames a service
// PATCH /api/v1/services/:id
func (h *CatalogHandler) RenameService(c *gin.Context) {
	id, ok := parsePathID(c, "Service not found")
	if !ok {
		return
	}
	var input entities.CatalogNameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	service, err := h.catalog.RenameService(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusOK, service)
}

// ListLocations lists locations
// GET /api/v1/locations
func (h *CatalogHandler) ListLocations(c *gin.Context) {
	locations, err := h.catalog.ListLocations(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusOK, locations)
}

// GetLocation gets one location
// GET /api/v1/locations/:id
func (h *CatalogHandler) GetLocation(c *gin.Context) {
	id, ok := parsePathID(c, "Location not found")
	if !ok {
		return
	}
	location, err := h.catalog.GetLocation(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusOK, location)
}

// CreateLocation adds a location
// POST /api/v1/locations
func (h *CatalogHandler) CreateLocation(c *gin.Context) {
	var input entities.CatalogNameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	location, err := h.catalog.CreateLocation(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusCreated, location)
}
