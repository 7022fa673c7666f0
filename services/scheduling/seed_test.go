package scheduling

import (
	"context"
	"testing"

	"appointments/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSeedPopulatesEmptyStore(t *testing.T) {
	svcRepo := &mockServiceRepo{}
	ruleRepo := &mockAvailabilityRepo{}

	svcRepo.On("Count", mock.Anything).Return(int64(0), nil)
	var seededService *models.Service
	svcRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			seededService = args.Get(1).(*models.Service)
		}).
		Return(testServiceID.Hex(), nil)
	svcRepo.On("First", mock.Anything).Return(testService(30), nil)

	ruleRepo.On("Count", mock.Anything).Return(int64(0), nil)
	var seededRules []*models.AvailabilityRule
	ruleRepo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			seededRules = append(seededRules, args.Get(1).(*models.AvailabilityRule))
		}).
		Return("rule-id", nil)

	engine := newEngine(svcRepo, ruleRepo, &mockBookingRepo{})
	require.NoError(t, engine.Seed(context.Background()))

	require.NotNil(t, seededService)
	assert.Equal(t, "Consultation Call", seededService.Name)
	assert.Equal(t, 30, seededService.DurationMinutes)
	assert.Equal(t, "consultation-call", seededService.Slug)
	require.NotNil(t, seededService.Price)
	assert.Zero(t, *seededService.Price)

	// Mon-Fri 09:00-17:00.
	require.Len(t, seededRules, 5)
	for i, rule := range seededRules {
		require.NotNil(t, rule.Weekday)
		assert.Equal(t, i, *rule.Weekday)
		assert.Equal(t, "09:00", rule.StartTime)
		assert.Equal(t, "17:00", rule.EndTime)
		assert.Equal(t, "UTC", rule.Timezone)
		assert.Equal(t, testServiceID.Hex(), rule.ServiceID)
	}
}

func TestSeedSkipsPopulatedStore(t *testing.T) {
	svcRepo := &mockServiceRepo{}
	ruleRepo := &mockAvailabilityRepo{}
	svcRepo.On("Count", mock.Anything).Return(int64(3), nil)
	ruleRepo.On("Count", mock.Anything).Return(int64(7), nil)

	engine := newEngine(svcRepo, ruleRepo, &mockBookingRepo{})
	require.NoError(t, engine.Seed(context.Background()))

	svcRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	ruleRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
