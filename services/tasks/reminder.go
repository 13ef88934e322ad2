package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"aptiva/config"
	"aptiva/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// reminderLead is how long before the tour the reminder fires.
const reminderLead = time.Hour

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderScheduler enqueues tour reminders on the asynq queue.
type ReminderScheduler struct {
	client *asynq.Client
}

func NewReminderScheduler() *ReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &ReminderScheduler{client: client}
}

// ScheduleTourReminder enqueues a reminder one hour before the tour starts.
// Tours starting sooner than the lead time get no reminder.
func (s *ReminderScheduler) ScheduleTourReminder(rec models.TourRecord) error {
	fireAt := rec.Start.Add(-reminderLead)
	if fireAt.Before(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		TourID:   rec.ID,
		UserID:   rec.UserID,
		Title:    fmt.Sprintf("Tour reminder: %s", rec.ListingTitle),
		Body:     fmt.Sprintf("Your tour of %s at %s starts at %s.", rec.ListingTitle, rec.ListingAddress, rec.Start.Format(time.RFC1123)),
		FireDate: fireAt.Format(time.RFC3339),
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

func (s *ReminderScheduler) Close() error {
	return s.client.Close()
}
