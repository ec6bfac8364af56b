package booking

import (
	"encoding/json"
	"fmt"
	"time"

	"atelier/config"
	"atelier/models"

	"github.com/hibiken/asynq"
)

// TypeBookingReminder is the asynq task type for booking reminders.
const TypeBookingReminder = "booking:reminder"

// reminderLead is how far ahead of the meeting the reminder fires.
const reminderLead = time.Hour

// ReminderScheduler enqueues reminder tasks on the Redis-backed queue.
type ReminderScheduler struct {
	client *asynq.Client
}

// NewReminderScheduler creates a scheduler wired to the reminder queue DB.
func NewReminderScheduler() *ReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})
	return &ReminderScheduler{client: client}
}

// Schedule enqueues a reminder an hour before the booking starts. Bookings
// closer than the lead time get no reminder.
func (r *ReminderScheduler) Schedule(b models.Booking) error {
	fireAt := b.Start.Add(-reminderLead)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(models.ReminderPayload{
		BookingID: b.ID,
		Email:     b.Email,
		Title:     "Upcoming consultation",
		Body:      fmt.Sprintf("Your consultation starts at %s.", b.Start.Format("15:04 on Jan 2")),
		StartsAt:  b.Start,
	})
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeBookingReminder, payload)
	_, err = r.client.Enqueue(task, asynq.ProcessAt(fireAt))
	return err
}

// Close releases the underlying queue client.
func (r *ReminderScheduler) Close() error {
	return r.client.Close()
}
