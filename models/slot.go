package models

// FreeSlot is a fixed-duration candidate appointment window, half-open
// [start_time, end_time), on a single calendar date.
type FreeSlot struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}
