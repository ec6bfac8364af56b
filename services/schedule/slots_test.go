package schedule

import (
	"testing"
	"time"

	"atelier/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCalculator() Calculator {
	return Calculator{
		DayStartMin: 9 * 60,
		DayEndMin:   18 * 60,
		StrideMin:   30,
		Location:    time.UTC,
	}
}

func at(day time.Time, hour, min int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, time.UTC)
}

func TestAvailableSlots_EmptyCalendar(t *testing.T) {
	calc := testCalculator()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	slots := calc.AvailableSlots(day, 30, nil)
	require.Len(t, slots, 18)

	assert.Equal(t, at(day, 9, 0), slots[0].Start)
	assert.Equal(t, at(day, 17, 30), slots[len(slots)-1].Start)
	for i, s := range slots {
		assert.Equal(t, 30*time.Minute, s.Duration(), "slot %d", i)
		if i > 0 {
			assert.Equal(t, 30*time.Minute, s.Start.Sub(slots[i-1].Start), "stride before slot %d", i)
		}
	}
}

func TestAvailableSlots_ExcludesBusyOverlap(t *testing.T) {
	calc := testCalculator()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	busy := []models.TimeSlot{{Start: at(day, 9, 0), End: at(day, 9, 30)}}

	slots := calc.AvailableSlots(day, 30, busy)
	require.Len(t, slots, 17)
	assert.Equal(t, at(day, 9, 30), slots[0].Start)
}

func TestAvailableSlots_LongDurationAroundBusyHour(t *testing.T) {
	calc := testCalculator()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	busy := []models.TimeSlot{{Start: at(day, 12, 0), End: at(day, 13, 0)}}

	slots := calc.AvailableSlots(day, 60, busy)

	starts := make(map[time.Time]bool, len(slots))
	for _, s := range slots {
		starts[s.Start] = true
	}

	// A 60-minute meeting starting 11:30, 12:00 or 12:30 would collide.
	assert.True(t, starts[at(day, 11, 0)])
	assert.True(t, starts[at(day, 13, 0)])
	assert.False(t, starts[at(day, 11, 30)])
	assert.False(t, starts[at(day, 12, 0)])
	assert.False(t, starts[at(day, 12, 30)])

	// Last start that still ends inside the window.
	assert.True(t, starts[at(day, 17, 0)])
	assert.False(t, starts[at(day, 17, 30)])
}

func TestAvailableSlots_AdjacentBusyDoesNotBlock(t *testing.T) {
	calc := testCalculator()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	busy := []models.TimeSlot{{Start: at(day, 10, 0), End: at(day, 10, 30)}}

	slots := calc.AvailableSlots(day, 30, busy)
	starts := make(map[time.Time]bool, len(slots))
	for _, s := range slots {
		starts[s.Start] = true
	}

	// Intervals are half-open, so slots touching the busy block survive.
	assert.True(t, starts[at(day, 9, 30)])
	assert.True(t, starts[at(day, 10, 30)])
	assert.False(t, starts[at(day, 10, 0)])
}

func TestAvailableSlots_EveryReturnedSlotFits(t *testing.T) {
	calc := testCalculator()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	busy := []models.TimeSlot{
		{Start: at(day, 9, 15), End: at(day, 10, 45)},
		{Start: at(day, 14, 0), End: at(day, 15, 0)},
	}

	for _, duration := range []int{30, 45, 60, 90} {
		for _, s := range calc.AvailableSlots(day, duration, busy) {
			assert.True(t, calc.Fits(s, busy), "slot %v with duration %d", s, duration)
		}
	}
}

func TestSlotAt(t *testing.T) {
	calc := testCalculator()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	slot, err := calc.SlotAt(day, "14:30", 60)
	require.NoError(t, err)
	assert.Equal(t, at(day, 14, 30), slot.Start)
	assert.Equal(t, at(day, 15, 30), slot.End)

	_, err = calc.SlotAt(day, "08:00", 30)
	assert.Error(t, err, "start before business hours")

	_, err = calc.SlotAt(day, "17:45", 30)
	assert.Error(t, err, "end past business hours")

	_, err = calc.SlotAt(day, "2pm", 30)
	assert.Error(t, err, "unparseable start time")
}

func TestParseDate(t *testing.T) {
	calc := testCalculator()

	day, err := calc.ParseDate("2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), day)

	_, err = calc.ParseDate("02/03/2026")
	assert.Error(t, err)
}
