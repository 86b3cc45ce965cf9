package handlers

import (
	"net/http"

	"weddingconsole/models"
	"weddingconsole/services/provider"

	"github.com/gin-gonic/gin"
)

// ServiceProviderHandler serves the service-provider dashboard endpoints.
type ServiceProviderHandler struct {
	Service provider.ProviderService
}

func NewServiceProviderHandler(svc provider.ProviderService) *ServiceProviderHandler {
	return &ServiceProviderHandler{Service: svc}
}

// Dashboard handles GET /api/service-provider/dashboard.
func (h *ServiceProviderHandler) Dashboard(c *gin.Context) {
	view, err := h.Service.Dashboard(c.Request.Context(), accountID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdateProfile handles PATCH /api/service-provider/profile.
func (h *ServiceProviderHandler) UpdateProfile(c *gin.Context) {
	var req models.ProfileEdit
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	p, err := h.Service.UpdateProfile(c.Request.Context(), accountID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// ToggleBooking handles PUT /api/service-provider/bookings/:id/toggle.
func (h *ServiceProviderHandler) ToggleBooking(c *gin.Context) {
	b, err := h.Service.ToggleBooking(c.Request.Context(), accountID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
