package handlers

import (
	"net/http"

	"appointments/models"
	"appointments/utils"

	"github.com/gin-gonic/gin"
)

// ListAvailability handles GET /api/availability.
func (h *SchedulingHandler) ListAvailability(c *gin.Context) {
	rules, err := h.Svc.ListRules(c.Request.Context(), c.Query("service_id"))
	if err != nil {
		h.respondError(c, "ListAvailability", err)
		return
	}
	c.JSON(http.StatusOK, rules)
}

// CreateAvailability handles POST /api/availability.
func (h *SchedulingHandler) CreateAvailability(c *gin.Context) {
	var req models.CreateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid availability payload", err.Error())
		return
	}

	id, err := h.Svc.CreateRule(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, "CreateAvailability", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}
