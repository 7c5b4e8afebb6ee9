package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"salonhq/config"
	"salonhq/models"
	"salonhq/services/availability"
	"salonhq/utils"
)

// reminderLead is how long before the appointment the reminder fires.
const reminderLead = 2 * time.Hour

// ReminderScheduler enqueues appointment reminders onto the asynq queue. It
// implements the booking service's ReminderEnqueuer.
type ReminderScheduler struct {
	client *asynq.Client
}

// NewReminderScheduler connects a scheduler to the reminder queue.
func NewReminderScheduler() *ReminderScheduler {
	return &ReminderScheduler{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

// EnqueueReminder schedules a reminder two hours before the booked time. An
// appointment already inside the lead window gets its reminder immediately.
func (s *ReminderScheduler) EnqueueReminder(ctx context.Context, b models.Booking) error {
	fireAt, err := reminderTime(b.Date, b.Time)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(ReminderPayload{
		BookingID: b.ID,
		Name:      b.Name,
		Phone:     b.Phone,
		Date:      b.Date,
		Time:      b.Time,
	})
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeReminderSend, payload)
	opts := []asynq.Option{asynq.MaxRetry(3)}
	if fireAt.After(time.Now()) {
		opts = append(opts, asynq.ProcessAt(fireAt))
	}

	info, err := s.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue reminder for booking %s: %w", b.ID, err)
	}
	utils.GetLogger().Info("scheduled booking reminder",
		zap.String("bookingID", b.ID), zap.String("taskID", info.ID), zap.Time("fireAt", fireAt))
	return nil
}

// Close releases the queue connection.
func (s *ReminderScheduler) Close() error {
	return s.client.Close()
}

func reminderTime(date, timeOfDay string) (time.Time, error) {
	day, err := time.ParseInLocation(utils.DateLayout, date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad booking date %q: %w", date, err)
	}
	minutes, ok := availability.ParseMinutes(timeOfDay)
	if !ok {
		return time.Time{}, fmt.Errorf("bad booking time %q", timeOfDay)
	}
	return day.Add(time.Duration(minutes) * time.Minute).Add(-reminderLead), nil
}
