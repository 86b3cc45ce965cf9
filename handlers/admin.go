package handlers

import (
	"net/http"

	"weddingconsole/models"
	"weddingconsole/services/admin"
	"weddingconsole/services/workflow"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the admin dashboard endpoints.
type AdminHandler struct {
	Service admin.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(svc admin.AdminService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

// Dashboard handles GET /api/admin/dashboard.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	view, err := h.Service.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Decide handles PUT /api/admin/:kind/:id/status.
func (h *AdminHandler) Decide(c *gin.Context) {
	kind, ok := models.KindFromPath(c.Param("kind"))
	if !ok {
		respondError(c, workflow.ErrUnsupportedAction)
		return
	}
	var req models.StatusChange
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	id := c.Param("id")
	status, err := h.Service.Decide(c.Request.Context(), kind, id, req.Action)
	if err != nil {
		respondError(c, err)
		return
	}
	getLogger(c).Info("Admin decision", zap.String("kind", string(kind)), zap.String("id", id), zap.String("action", string(req.Action)))
	c.JSON(http.StatusOK, gin.H{"id": id, "status": status})
}

// EditServiceProvider handles PATCH /api/admin/service-providers/:id.
func (h *AdminHandler) EditServiceProvider(c *gin.Context) {
	var req models.ServiceProviderEdit
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	provider, err := h.Service.EditServiceProvider(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, provider)
}

// EditHallManager handles PATCH /api/admin/hall-managers/:id.
func (h *AdminHandler) EditHallManager(c *gin.Context) {
	var req models.HallManagerEdit
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	manager, err := h.Service.EditHallManager(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, manager)
}

// EditBooking handles PATCH /api/admin/bookings/:id.
func (h *AdminHandler) EditBooking(c *gin.Context) {
	var req models.BookingEdit
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	booking, err := h.Service.EditBooking(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// Delete handles DELETE /api/admin/:kind/:id.
func (h *AdminHandler) Delete(c *gin.Context) {
	kind, ok := models.KindFromPath(c.Param("kind"))
	if !ok {
		respondError(c, workflow.ErrUnsupportedAction)
		return
	}
	if err := h.Service.Delete(c.Request.Context(), kind, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
