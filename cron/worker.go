package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"salonhq/config"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeReminderSend = "reminder:send"

// ReminderPayload is the queued task body for one appointment reminder.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}

// ReminderSender delivers one reminder to the customer.
type ReminderSender interface {
	SendReminder(ctx context.Context, p ReminderPayload) error
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(sender ReminderSender) {
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
	mux.HandleFunc(TypeReminderSend, handleReminderTask(sender))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(sender ReminderSender) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] 🔴 Invalid payload: %v", err)
			return err
		}

		log.Printf("[ReminderHandler] ⏰ Reminding %s (%s) about %s %s", p.Name, p.Phone, p.Date, p.Time)

		if err := sender.SendReminder(ctx, p); err != nil {
			log.Printf("[ReminderHandler] ❌ Failed to send reminder for booking %s: %v", p.BookingID, err)
			return err
		}
		return nil
	}
}

// LogReminderSender writes the reminder and a ready-to-send WhatsApp link to
// the application log. The front desk forwards it manually; there is no paid
// messaging gateway in this deployment.
type LogReminderSender struct{}

func (LogReminderSender) SendReminder(_ context.Context, p ReminderPayload) error {
	link := fmt.Sprintf("https://wa.me/%s", digits(p.Phone))
	log.Printf("[Reminder] %s has an appointment on %s at %s. Contact: %s", p.Name, p.Date, p.Time, link)
	return nil
}

func digits(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
