package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskWelcome is the job type name stored in Redis.
	// Asynq uses task type strings to route to handlers.
	TaskWelcome = "email:welcome"
)

// WelcomeEmailPayload is the JSON payload for the welcome email task,
// enqueued when a renter signs up.
type WelcomeEmailPayload struct {
	To   string `json:"to"`
	Name string `json:"name"`
}

// NewWelcomeEmailTask constructs an Asynq task for sending a welcome email.
//
// Task options:
//   - MaxRetry(3): retry up to 3 times on failure
//   - Queue("default"): welcome emails are not critical
//   - Timeout(30s): kill the task if the handler runs longer
func NewWelcomeEmailTask(to, name string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{
		To:   to,
		Name: name,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}
