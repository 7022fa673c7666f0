package handlers

import (
	"errors"
	"net/http"

	"appointments/models"
	"appointments/services/scheduling"
	"appointments/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SchedulingHandler exposes the scheduling service over HTTP.
type SchedulingHandler struct {
	Svc    scheduling.Service
	Logger *zap.Logger
}

func NewSchedulingHandler(svc scheduling.Service, logger *zap.Logger) *SchedulingHandler {
	return &SchedulingHandler{Svc: svc, Logger: logger}
}

// respondError translates domain errors to HTTP status codes. Every
// error is terminal for the request.
func (h *SchedulingHandler) respondError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidID):
		utils.JSONError(c, http.StatusBadRequest, "Invalid id", err.Error())
	case errors.Is(err, models.ErrServiceNotFound):
		utils.JSONError(c, http.StatusNotFound, "Service not found", err.Error())
	case errors.Is(err, models.ErrSlotTaken):
		utils.JSONError(c, http.StatusConflict, "Time slot already booked", err.Error())
	case errors.Is(err, models.ErrStorageUnavailable):
		utils.JSONError(c, http.StatusInternalServerError, "Database not configured", err.Error())
	default:
		h.Logger.Error(op+": unexpected error", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", err.Error())
	}
}
