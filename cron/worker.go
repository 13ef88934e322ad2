package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"aptiva/config"
	"aptiva/models"
	"aptiva/services/tasks"
	"aptiva/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the async worker in background.
func InitReminderWorker() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask)

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(ctx context.Context, task *asynq.Task) error {
	var p models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		utils.GetLogger().Error("reminder task has invalid payload", zap.Error(err))
		return err
	}

	// Delivery channel (email/push) is deployment-specific; the worker
	// records the reminder so whatever notifier tails the log can send it.
	utils.GetLogger().Info("tour reminder due",
		zap.String("tourId", p.TourID),
		zap.String("userId", p.UserID),
		zap.String("title", p.Title),
		zap.String("body", p.Body),
		zap.String("fireDate", p.FireDate),
	)
	return nil
}
