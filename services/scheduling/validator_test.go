package scheduling

import (
	"context"
	"testing"
	"time"

	"appointments/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func bookingRequest() *models.CreateBookingRequest {
	return &models.CreateBookingRequest{
		ServiceID:    testServiceID.Hex(),
		CustomerName: "Ada Lovelace",
		Email:        "ada@example.com",
		Date:         "2024-01-08",
		StartTime:    "10:00",
		EndTime:      "10:30",
	}
}

func TestCreateBookingSnapshotsServiceName(t *testing.T) {
	svcRepo := &mockServiceRepo{}
	bookRepo := &mockBookingRepo{}
	svcRepo.On("GetByID", mock.Anything, testServiceID).Return(testService(30), nil)

	var stored *models.Booking
	bookRepo.On("CreateIfFree", mock.Anything, mock.Anything, true).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*models.Booking)
		}).
		Return("65a000000000000000000001", nil)

	engine := newEngine(svcRepo, &mockAvailabilityRepo{}, bookRepo)

	id, err := engine.CreateBooking(context.Background(), bookingRequest())
	require.NoError(t, err)
	assert.Equal(t, "65a000000000000000000001", id)

	require.NotNil(t, stored)
	assert.Equal(t, "Consultation Call", stored.ServiceName)
	assert.Equal(t, models.BookingStatusConfirmed, stored.Status)
	assert.Equal(t, testMonday, stored.CreatedAt)
	assert.True(t, stored.ID.IsZero(), "id assignment belongs to the store")
}

func TestCreateBookingConflict(t *testing.T) {
	svcRepo := &mockServiceRepo{}
	bookRepo := &mockBookingRepo{}
	svcRepo.On("GetByID", mock.Anything, testServiceID).Return(testService(30), nil)
	bookRepo.On("CreateIfFree", mock.Anything, mock.Anything, true).Return("", models.ErrSlotTaken)

	engine := newEngine(svcRepo, &mockAvailabilityRepo{}, bookRepo)

	_, err := engine.CreateBooking(context.Background(), bookingRequest())
	assert.ErrorIs(t, err, models.ErrSlotTaken)
}

func TestCreateBookingUnknownService(t *testing.T) {
	svcRepo := &mockServiceRepo{}
	svcRepo.On("GetByID", mock.Anything, testServiceID).Return(nil, models.ErrServiceNotFound)

	engine := newEngine(svcRepo, &mockAvailabilityRepo{}, &mockBookingRepo{})

	_, err := engine.CreateBooking(context.Background(), bookingRequest())
	assert.ErrorIs(t, err, models.ErrServiceNotFound)
}

func TestCreateBookingInvalidServiceID(t *testing.T) {
	engine := newEngine(&mockServiceRepo{}, &mockAvailabilityRepo{}, &mockBookingRepo{})

	req := bookingRequest()
	req.ServiceID = "zzz"
	_, err := engine.CreateBooking(context.Background(), req)
	assert.ErrorIs(t, err, models.ErrInvalidID)
}

func TestCreateBookingKeepsRequestedStatus(t *testing.T) {
	svcRepo := &mockServiceRepo{}
	bookRepo := &mockBookingRepo{}
	svcRepo.On("GetByID", mock.Anything, testServiceID).Return(testService(30), nil)

	var stored *models.Booking
	bookRepo.On("CreateIfFree", mock.Anything, mock.Anything, true).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*models.Booking)
		}).
		Return("65a000000000000000000002", nil)

	engine := newEngine(svcRepo, &mockAvailabilityRepo{}, bookRepo)

	req := bookingRequest()
	req.Status = models.BookingStatusPending
	_, err := engine.CreateBooking(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, stored.Status)
}

func TestCreateBookingPassesCancelledPolicyToStore(t *testing.T) {
	svcRepo := &mockServiceRepo{}
	bookRepo := &mockBookingRepo{}
	svcRepo.On("GetByID", mock.Anything, testServiceID).Return(testService(30), nil)
	bookRepo.On("CreateIfFree", mock.Anything, mock.Anything, false).Return("65a000000000000000000003", nil)

	engine := newEngine(svcRepo, &mockAvailabilityRepo{}, bookRepo)
	engine.CountCancelled = false

	_, err := engine.CreateBooking(context.Background(), bookingRequest())
	require.NoError(t, err)
	bookRepo.AssertExpectations(t)
}

func TestListBookingsNewestFirstPassthrough(t *testing.T) {
	older := models.Booking{CustomerName: "First", CreatedAt: testMonday.Add(-time.Hour)}
	newer := models.Booking{CustomerName: "Second", CreatedAt: testMonday}

	bookRepo := &mockBookingRepo{}
	bookRepo.On("List", mock.Anything, "").Return([]models.Booking{newer, older}, nil)

	engine := newEngine(&mockServiceRepo{}, &mockAvailabilityRepo{}, bookRepo)

	out, err := engine.ListBookings(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Second", out[0].CustomerName)
	assert.Equal(t, "First", out[1].CustomerName)
}

func TestListBookingsInvalidFilter(t *testing.T) {
	engine := newEngine(&mockServiceRepo{}, &mockAvailabilityRepo{}, &mockBookingRepo{})

	_, err := engine.ListBookings(context.Background(), "not-hex")
	assert.ErrorIs(t, err, models.ErrInvalidID)
}

func TestBookingRequestValidate(t *testing.T) {
	valid := bookingRequest()
	assert.NoError(t, valid.Validate())

	badEmail := bookingRequest()
	badEmail.Email = "nope"
	assert.Error(t, badEmail.Validate())

	badDate := bookingRequest()
	badDate.Date = "08/01/2024"
	assert.Error(t, badDate.Validate())

	badTime := bookingRequest()
	badTime.StartTime = "10am"
	assert.Error(t, badTime.Validate())

	badStatus := bookingRequest()
	badStatus.Status = "done"
	assert.Error(t, badStatus.Validate())
}
