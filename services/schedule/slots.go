// Package schedule computes bookable consultation windows by subtracting
// busy calendar intervals from the configured business day.
package schedule

import (
	"fmt"
	"time"

	"atelier/config"
	"atelier/models"
)

// Calculator generates candidate slots on a fixed stride inside the
// business-day window. All values come from configuration.
type Calculator struct {
	DayStartMin int // minutes from midnight
	DayEndMin   int
	StrideMin   int
	Location    *time.Location
}

// NewCalculator builds a Calculator from the loaded application config.
func NewCalculator() Calculator {
	loc := time.Local
	if tz := config.AppConfig.BookingTimezone; tz != "" && tz != "Local" {
		if parsed, err := time.LoadLocation(tz); err == nil {
			loc = parsed
		}
	}
	return Calculator{
		DayStartMin: config.AppConfig.BookingDayStart,
		DayEndMin:   config.AppConfig.BookingDayEnd,
		StrideMin:   config.AppConfig.SlotStrideMin,
		Location:    loc,
	}
}

func (c Calculator) loc() *time.Location {
	if c.Location != nil {
		return c.Location
	}
	return time.Local
}

// DayWindow returns the business window [start, end) for the given date.
func (c Calculator) DayWindow(date time.Time) models.TimeSlot {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, c.loc())
	return models.TimeSlot{
		Start: midnight.Add(time.Duration(c.DayStartMin) * time.Minute),
		End:   midnight.Add(time.Duration(c.DayEndMin) * time.Minute),
	}
}

// AvailableSlots returns every open window of the requested duration within
// the business day, in chronological order. Candidates start on the stride;
// a candidate is dropped when it runs past the window end or overlaps any
// busy interval. No slot shorter than the requested duration is returned.
func (c Calculator) AvailableSlots(date time.Time, durationMinutes int, busy []models.TimeSlot) []models.TimeSlot {
	window := c.DayWindow(date)
	duration := time.Duration(durationMinutes) * time.Minute
	stride := time.Duration(c.StrideMin) * time.Minute

	var slots []models.TimeSlot
	for t := window.Start; t.Before(window.End); t = t.Add(stride) {
		candidate := models.TimeSlot{Start: t, End: t.Add(duration)}
		if candidate.End.After(window.End) {
			continue
		}
		if !c.Fits(candidate, busy) {
			continue
		}
		slots = append(slots, candidate)
	}
	return slots
}

// Fits reports whether a single candidate avoids every busy interval. Used
// at commit time to revalidate a slot picked from an earlier listing.
func (c Calculator) Fits(slot models.TimeSlot, busy []models.TimeSlot) bool {
	for _, b := range busy {
		if slot.Overlaps(b) {
			return false
		}
	}
	return true
}

// SlotAt builds the concrete interval for a date, an "HH:MM" start time and
// a duration, rejecting anything outside the business window.
func (c Calculator) SlotAt(date time.Time, startHHMM string, durationMinutes int) (models.TimeSlot, error) {
	start, err := time.ParseInLocation("15:04", startHHMM, c.loc())
	if err != nil {
		return models.TimeSlot{}, fmt.Errorf("invalid start time %q: %w", startHHMM, err)
	}
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, c.loc())
	slot := models.TimeSlot{
		Start: midnight.Add(time.Duration(start.Hour())*time.Hour + time.Duration(start.Minute())*time.Minute),
	}
	slot.End = slot.Start.Add(time.Duration(durationMinutes) * time.Minute)

	window := c.DayWindow(date)
	if slot.Start.Before(window.Start) || slot.End.After(window.End) {
		return models.TimeSlot{}, fmt.Errorf("slot %s is outside business hours", startHHMM)
	}
	return slot, nil
}

// ParseDate parses a "2006-01-02" date in the calculator's location.
func (c Calculator) ParseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, c.loc())
}
