package handlers

import (
	"net/http"
	"strconv"

	"appointments/models"
	"appointments/services/scheduling"
	"appointments/utils"

	"github.com/gin-gonic/gin"
)

// ListServices handles GET /api/services.
func (h *SchedulingHandler) ListServices(c *gin.Context) {
	services, err := h.Svc.ListServices(c.Request.Context())
	if err != nil {
		h.respondError(c, "ListServices", err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// CreateService handles POST /api/services.
func (h *SchedulingHandler) CreateService(c *gin.Context) {
	var req models.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid service payload", err.Error())
		return
	}

	id, err := h.Svc.CreateService(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, "CreateService", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GetFreeSlots handles GET /api/services/:service_id/slots.
func (h *SchedulingHandler) GetFreeSlots(c *gin.Context) {
	serviceID := c.Param("service_id")

	days, err := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(scheduling.DefaultHorizonDays)))
	if err != nil || days < 1 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid days", "days must be a positive integer")
		return
	}

	slots, err := h.Svc.FreeSlots(c.Request.Context(), serviceID, days)
	if err != nil {
		h.respondError(c, "GetFreeSlots", err)
		return
	}
	c.JSON(http.StatusOK, slots)
}
