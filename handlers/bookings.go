package handlers

import (
	"net/http"

	"appointments/models"
	"appointments/utils"

	"github.com/gin-gonic/gin"
)

// CreateBooking handles POST /api/bookings.
func (h *SchedulingHandler) CreateBooking(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking payload", err.Error())
		return
	}

	id, err := h.Svc.CreateBooking(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, "CreateBooking", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": "ok"})
}

// ListBookings handles GET /api/bookings. Results are newest-created
// first, optionally filtered by service_id.
func (h *SchedulingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Svc.ListBookings(c.Request.Context(), c.Query("service_id"))
	if err != nil {
		h.respondError(c, "ListBookings", err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
