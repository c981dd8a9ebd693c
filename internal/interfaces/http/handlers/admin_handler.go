package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fundilink.backend/internal/domain/entities"
	"fundilink.backend/internal/interfaces/http/response"
	"fundilink.backend/pkg/utils"
)

// AdminService backs the admin dashboard
type AdminService interface {
	ListUsers(ctx context.Context, search string, page, limit int) ([]*entities.User, utils.PaginationMeta, error)
	Stats(ctx context.Context) (*entities.AdminStats, error)
}

// AdminHandler handles admin endpoints
type AdminHandler struct {
	admin AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(admin AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// ListUsers lists users with pagination
// GET /api/v1/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(utils.DefaultPageLimit)))

	users, meta, err := h.admin.ListUsers(c.Request.Context(), c.Query("search"), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success": true,
		"data":    users,
		"meta":    meta,
	})
}

// Stats returns dashboard counters
// GET /api/v1/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.admin.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Data(c, http.StatusOK, stats)
}
