package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"appointments/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubSchedulingService is a canned-response double for the transport
// layer tests.
type stubSchedulingService struct {
	services    []models.ServiceResponse
	servicesErr error

	rules    []models.AvailabilityResponse
	rulesErr error

	slots    []models.FreeSlot
	slotsErr error
	lastDays int

	bookingID  string
	bookingErr error

	bookings    []models.BookingResponse
	bookingsErr error
}

func (s *stubSchedulingService) ListServices(ctx context.Context) ([]models.ServiceResponse, error) {
	return s.services, s.servicesErr
}

func (s *stubSchedulingService) CreateService(ctx context.Context, req *models.CreateServiceRequest) (string, error) {
	return "65a000000000000000000010", s.servicesErr
}

func (s *stubSchedulingService) ListRules(ctx context.Context, serviceID string) ([]models.AvailabilityResponse, error) {
	return s.rules, s.rulesErr
}

func (s *stubSchedulingService) CreateRule(ctx context.Context, req *models.CreateAvailabilityRequest) (string, error) {
	return "65a000000000000000000011", s.rulesErr
}

func (s *stubSchedulingService) FreeSlots(ctx context.Context, serviceID string, days int) ([]models.FreeSlot, error) {
	s.lastDays = days
	return s.slots, s.slotsErr
}

func (s *stubSchedulingService) CreateBooking(ctx context.Context, req *models.CreateBookingRequest) (string, error) {
	return s.bookingID, s.bookingErr
}

func (s *stubSchedulingService) ListBookings(ctx context.Context, serviceID string) ([]models.BookingResponse, error) {
	return s.bookings, s.bookingsErr
}

func newTestRouter(stub *stubSchedulingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewSchedulingHandler(stub, zap.NewNop())

	r := gin.New()
	api := r.Group("/api")
	api.GET("/services", h.ListServices)
	api.POST("/services", h.CreateService)
	api.GET("/services/:service_id/slots", h.GetFreeSlots)
	api.GET("/availability", h.ListAvailability)
	api.POST("/availability", h.CreateAvailability)
	api.GET("/bookings", h.ListBookings)
	api.POST("/bookings", h.CreateBooking)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetFreeSlotsOK(t *testing.T) {
	stub := &stubSchedulingService{slots: []models.FreeSlot{
		{Date: "2024-01-08", StartTime: "09:00", EndTime: "09:30"},
		{Date: "2024-01-08", StartTime: "09:30", EndTime: "10:00"},
	}}
	r := newTestRouter(stub)

	w := doJSON(t, r, http.MethodGet, "/api/services/65a000000000000000000001/slots", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var slots []models.FreeSlot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &slots))
	assert.Len(t, slots, 2)
	assert.Equal(t, 14, stub.lastDays, "default horizon")
}

func TestGetFreeSlotsDaysParam(t *testing.T) {
	stub := &stubSchedulingService{}
	r := newTestRouter(stub)

	w := doJSON(t, r, http.MethodGet, "/api/services/65a000000000000000000001/slots?days=3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, stub.lastDays)
}

func TestGetFreeSlotsRejectsBadDays(t *testing.T) {
	r := newTestRouter(&stubSchedulingService{})

	for _, q := range []string{"days=abc", "days=0", "days=-2"} {
		w := doJSON(t, r, http.MethodGet, "/api/services/65a000000000000000000001/slots?"+q, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}

func TestGetFreeSlotsErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{models.ErrInvalidID, http.StatusBadRequest},
		{models.ErrServiceNotFound, http.StatusNotFound},
		{models.ErrStorageUnavailable, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		r := newTestRouter(&stubSchedulingService{slotsErr: tc.err})
		w := doJSON(t, r, http.MethodGet, "/api/services/whatever/slots", nil)
		assert.Equal(t, tc.code, w.Code, tc.err)
	}
}

func TestCreateBookingOK(t *testing.T) {
	stub := &stubSchedulingService{bookingID: "65a000000000000000000002"}
	r := newTestRouter(stub)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", gin.H{
		"service_id":    "65a000000000000000000001",
		"customer_name": "Ada Lovelace",
		"email":         "ada@example.com",
		"date":          "2024-01-08",
		"start_time":    "10:30",
		"end_time":      "11:00",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "65a000000000000000000002", resp["id"])
	assert.Equal(t, "ok", resp["status"])
}

func TestCreateBookingConflictMapsTo409(t *testing.T) {
	r := newTestRouter(&stubSchedulingService{bookingErr: models.ErrSlotTaken})

	w := doJSON(t, r, http.MethodPost, "/api/bookings", gin.H{
		"service_id":    "65a000000000000000000001",
		"customer_name": "Ada Lovelace",
		"email":         "ada@example.com",
		"date":          "2024-01-08",
		"start_time":    "10:15",
		"end_time":      "10:45",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateBookingRejectsMalformedPayload(t *testing.T) {
	r := newTestRouter(&stubSchedulingService{})

	// Missing required fields.
	w := doJSON(t, r, http.MethodPost, "/api/bookings", gin.H{"service_id": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Malformed time is caught before the core runs.
	w = doJSON(t, r, http.MethodPost, "/api/bookings", gin.H{
		"service_id":    "65a000000000000000000001",
		"customer_name": "Ada Lovelace",
		"email":         "ada@example.com",
		"date":          "2024-01-08",
		"start_time":    "10am",
		"end_time":      "11am",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListServicesOK(t *testing.T) {
	stub := &stubSchedulingService{services: []models.ServiceResponse{
		{ID: "65a000000000000000000001", Name: "Consultation Call", DurationMinutes: 30},
	}}
	r := newTestRouter(stub)

	w := doJSON(t, r, http.MethodGet, "/api/services", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var services []models.ServiceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &services))
	require.Len(t, services, 1)
	assert.Equal(t, "Consultation Call", services[0].Name)
}

func TestCreateAvailabilityRejectsBadWeekday(t *testing.T) {
	r := newTestRouter(&stubSchedulingService{})

	w := doJSON(t, r, http.MethodPost, "/api/availability", gin.H{
		"service_id": "65a000000000000000000001",
		"weekday":    9,
		"start_time": "09:00",
		"end_time":   "17:00",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListBookingsOK(t *testing.T) {
	stub := &stubSchedulingService{bookings: []models.BookingResponse{
		{ID: "65a000000000000000000002", CustomerName: "Ada Lovelace"},
	}}
	r := newTestRouter(stub)

	w := doJSON(t, r, http.MethodGet, "/api/bookings?service_id=65a000000000000000000001", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var bookings []models.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bookings))
	require.Len(t, bookings, 1)
}
