package models

import "time"

// BookingRequest is the payload for booking a consultation slot.
type BookingRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Date            string `json:"date" binding:"required"` // "2006-01-02"
	Time            string `json:"time" binding:"required"` // "15:04"
	DurationMinutes int    `json:"durationMinutes" binding:"required"`
	MeetingType     string `json:"meetingType"`
	Notes           string `json:"notes"`
}

// Booking is the locally recorded copy of a calendar booking. The calendar
// itself stays the source of truth for availability.
type Booking struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email" json:"email"`
	Start       time.Time `bson:"start" json:"start"`
	End         time.Time `bson:"end" json:"end"`
	MeetingType string    `bson:"meetingType,omitempty" json:"meetingType,omitempty"`
	Notes       string    `bson:"notes,omitempty" json:"notes,omitempty"`
	EventID     string    `bson:"eventId" json:"eventId"`
	JoinLink    string    `bson:"joinLink,omitempty" json:"joinLink,omitempty"`
	HTMLLink    string    `bson:"htmlLink,omitempty" json:"htmlLink,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// ReminderPayload is the asynq task payload for booking reminders.
type ReminderPayload struct {
	BookingID string    `json:"bookingId"`
	Email     string    `json:"email"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	StartsAt  time.Time `json:"startsAt"`
}
