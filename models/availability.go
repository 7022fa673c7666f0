package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AvailabilityRule is the persistence record for a recurring (weekday)
// or one-off (date) availability window, stored in the "availability"
// collection. Weekday indexes are 0=Monday through 6=Sunday. The rule
// references a service by id but does not own it.
type AvailabilityRule struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	ServiceID  string             `bson:"service_id"`
	Consultant string             `bson:"consultant,omitempty"`
	Weekday    *int               `bson:"weekday,omitempty"`
	Date       string             `bson:"date,omitempty"`
	StartTime  string             `bson:"start_time"`
	EndTime    string             `bson:"end_time"`
	Timezone   string             `bson:"timezone,omitempty"`
	CreatedAt  time.Time          `bson:"created_at"`
}

// Matches reports whether the rule applies to the calendar day given
// by its ISO date and Monday-based weekday index. A day matches when
// the rule's weekday equals the day's weekday OR the rule's date
// equals the day's date; both match sources can apply to the same day
// and are deliberately not deduplicated.
func (r AvailabilityRule) Matches(date string, weekday int) bool {
	if r.Weekday != nil && *r.Weekday == weekday {
		return true
	}
	return r.Date != "" && r.Date == date
}

// AvailabilityResponse is the wire representation of a rule.
type AvailabilityResponse struct {
	ID         string `json:"id"`
	ServiceID  string `json:"service_id"`
	Consultant string `json:"consultant,omitempty"`
	Weekday    *int   `json:"weekday,omitempty"`
	Date       string `json:"date,omitempty"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Timezone   string `json:"timezone,omitempty"`
}

// Response converts the stored record to its wire representation.
func (r AvailabilityRule) Response() AvailabilityResponse {
	return AvailabilityResponse{
		ID:         r.ID.Hex(),
		ServiceID:  r.ServiceID,
		Consultant: r.Consultant,
		Weekday:    r.Weekday,
		Date:       r.Date,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Timezone:   r.Timezone,
	}
}

// CreateAvailabilityRequest is the payload for creating a rule.
type CreateAvailabilityRequest struct {
	ServiceID  string `json:"service_id" binding:"required"`
	Consultant string `json:"consultant"`
	Weekday    *int   `json:"weekday"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time" binding:"required"`
	EndTime    string `json:"end_time" binding:"required"`
	Timezone   string `json:"timezone"`
}

// Validate applies the schema constraints: weekday in [0,6], date in
// YYYY-MM-DD, times in HH:MM. Matching the schema it does NOT require
// end > start, and it permits a rule carrying both weekday and date
// (each acts as an independent match source).
func (r *CreateAvailabilityRequest) Validate() error {
	if r.Weekday != nil && (*r.Weekday < 0 || *r.Weekday > 6) {
		return errors.New("weekday must be between 0 (Monday) and 6 (Sunday)")
	}
	if r.Date != "" && !ValidDate(r.Date) {
		return errors.New("date must be YYYY-MM-DD")
	}
	if !ValidClock(r.StartTime) {
		return errors.New("start_time must be HH:MM")
	}
	if !ValidClock(r.EndTime) {
		return errors.New("end_time must be HH:MM")
	}
	return nil
}

// Record builds the persistence record for the payload.
func (r *CreateAvailabilityRequest) Record(now time.Time) *AvailabilityRule {
	consultant := r.Consultant
	if consultant == "" {
		consultant = "You"
	}
	tz := r.Timezone
	if tz == "" {
		tz = "UTC"
	}
	return &AvailabilityRule{
		ServiceID:  r.ServiceID,
		Consultant: consultant,
		Weekday:    r.Weekday,
		Date:       r.Date,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Timezone:   tz,
		CreatedAt:  now,
	}
}
