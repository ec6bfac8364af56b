package handlers

import (
	"errors"
	"net/http"
	"strconv"

	bookingRepo "atelier/database/repository/booking"
	"atelier/models"
	"atelier/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// defaultSlotDuration applies when the caller omits a duration.
const defaultSlotDuration = 30

// CalendarHandler exposes slot listing and booking.
type CalendarHandler struct {
	Bookings booking.BookingService
	Repo     bookingRepo.BookingRepository
}

// NewCalendarHandler creates a CalendarHandler.
func NewCalendarHandler(svc booking.BookingService, repo bookingRepo.BookingRepository) *CalendarHandler {
	return &CalendarHandler{Bookings: svc, Repo: repo}
}

// ListSlotsHandler returns the open windows for ?date=YYYY-MM-DD&duration=N.
func (h *CalendarHandler) ListSlotsHandler(c *gin.Context) {
	logger := getLogger(c)

	dateStr := c.Query("date")
	duration := defaultSlotDuration
	if d := c.Query("duration"); d != "" {
		parsed, err := strconv.Atoi(d)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid duration"})
			return
		}
		duration = parsed
	}

	slots, err := h.Bookings.ListSlots(c.Request.Context(), dateStr, duration)
	if err != nil {
		if errors.Is(err, booking.ErrInvalidSlot) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid date or duration"})
			return
		}
		logger.Error("slot listing failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "Calendar unavailable, try again later"})
		return
	}

	if slots == nil {
		slots = []models.TimeSlot{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "date": dateStr, "slots": slots})
}

// BookHandler commits a booking after revalidating the slot.
func (h *CalendarHandler) BookHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request: " + err.Error()})
		return
	}

	booked, err := h.Bookings.Book(c.Request.Context(), req)
	switch {
	case errors.Is(err, booking.ErrSlotTaken):
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": "That slot was just taken, please pick another time"})
	case errors.Is(err, booking.ErrInvalidSlot):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid booking request"})
	case err != nil:
		logger.Error("booking failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "Could not reach the calendar, try again later"})
	default:
		c.JSON(http.StatusCreated, gin.H{"success": true, "booking": booked})
	}
}

// ListBookingsHandler returns upcoming bookings for the admin dashboard.
func (h *CalendarHandler) ListBookingsHandler(c *gin.Context) {
	logger := getLogger(c)

	bookings, err := h.Repo.ListUpcoming(c.Request.Context(), 50)
	if err != nil {
		logger.Error("failed to list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Could not list bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bookings": bookings})
}
