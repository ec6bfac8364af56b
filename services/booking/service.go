package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	bookingRepo "atelier/database/repository/booking"
	"atelier/models"
	"atelier/services/schedule"
	"atelier/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingService lists open consultation slots and commits bookings.
type BookingService interface {
	ListSlots(ctx context.Context, dateStr string, durationMinutes int) ([]models.TimeSlot, error)
	IsSlotAvailable(ctx context.Context, dateStr, timeStr string, durationMinutes int) (bool, error)
	Book(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
}

// DefaultBookingService computes availability against the live calendar and
// revalidates every booking at commit time.
type DefaultBookingService struct {
	Calendar  CalendarClient
	Calc      schedule.Calculator
	Repo      bookingRepo.BookingRepository
	Reminders *ReminderScheduler

	// Serializes revalidate+insert so concurrent attempts for the same
	// slot cannot both pass the check within this process.
	commitMu sync.Mutex
}

// ListSlots returns the open windows for a day.
func (s *DefaultBookingService) ListSlots(ctx context.Context, dateStr string, durationMinutes int) ([]models.TimeSlot, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrInvalidSlot)
	}
	date, err := s.Calc.ParseDate(dateStr)
	if err != nil {
		return nil, fmt.Errorf("%w: bad date %q", ErrInvalidSlot, dateStr)
	}

	busy, err := s.listBusy(ctx, date)
	if err != nil {
		return nil, err
	}
	return s.Calc.AvailableSlots(date, durationMinutes, busy), nil
}

// IsSlotAvailable re-checks a single candidate against the live calendar.
func (s *DefaultBookingService) IsSlotAvailable(ctx context.Context, dateStr, timeStr string, durationMinutes int) (bool, error) {
	slot, date, err := s.resolveSlot(dateStr, timeStr, durationMinutes)
	if err != nil {
		return false, err
	}
	busy, err := s.listBusy(ctx, date)
	if err != nil {
		return false, err
	}
	return s.Calc.Fits(slot, busy), nil
}

// Book revalidates the requested slot against the live calendar and creates
// the event. Revalidation before commit is mandatory: the listing a visitor
// picked from may be stale by the time they submit.
func (s *DefaultBookingService) Book(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	slot, date, err := s.resolveSlot(req.Date, req.Time, req.DurationMinutes)
	if err != nil {
		return nil, err
	}

	s.commitMu.Lock()
	defer s.commitMu.Unlock()

	busy, err := s.listBusy(ctx, date)
	if err != nil {
		return nil, err
	}
	if !s.Calc.Fits(slot, busy) {
		return nil, ErrSlotTaken
	}

	booking := models.Booking{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Email:       req.Email,
		Start:       slot.Start,
		End:         slot.End,
		MeetingType: req.MeetingType,
		Notes:       req.Notes,
	}

	eventID, joinLink, htmlLink, err := s.Calendar.InsertEvent(ctx, booking)
	if err != nil {
		logger.Error("booking: event insert failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	}
	booking.EventID = eventID
	booking.JoinLink = joinLink
	booking.HTMLLink = htmlLink

	// The calendar event exists at this point; local bookkeeping failures
	// are logged, not surfaced.
	if s.Repo != nil {
		if _, err := s.Repo.Create(ctx, booking); err != nil {
			logger.Error("booking: failed to record booking", zap.String("eventId", eventID), zap.Error(err))
		}
	}
	if s.Reminders != nil {
		if err := s.Reminders.Schedule(booking); err != nil {
			logger.Error("booking: failed to schedule reminder", zap.String("bookingId", booking.ID), zap.Error(err))
		}
	}

	return &booking, nil
}

func (s *DefaultBookingService) resolveSlot(dateStr, timeStr string, durationMinutes int) (models.TimeSlot, time.Time, error) {
	if durationMinutes <= 0 {
		return models.TimeSlot{}, time.Time{}, fmt.Errorf("%w: duration must be positive", ErrInvalidSlot)
	}
	date, err := s.Calc.ParseDate(dateStr)
	if err != nil {
		return models.TimeSlot{}, time.Time{}, fmt.Errorf("%w: bad date %q", ErrInvalidSlot, dateStr)
	}
	slot, err := s.Calc.SlotAt(date, timeStr, durationMinutes)
	if err != nil {
		return models.TimeSlot{}, time.Time{}, fmt.Errorf("%w: %v", ErrInvalidSlot, err)
	}
	return slot, date, nil
}

func (s *DefaultBookingService) listBusy(ctx context.Context, date time.Time) ([]models.TimeSlot, error) {
	window := s.Calc.DayWindow(date)
	busy, err := s.Calendar.ListBusyIntervals(ctx, window.Start, window.End)
	if err != nil {
		utils.GetLogger().Error("booking: freebusy lookup failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	}
	return busy, nil
}
