package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/rajharit77/rental-catalog/internal/config"
	"github.com/rajharit77/rental-catalog/internal/lib/email"
)

// emailClient is shared by job handlers. InitHandlers must run before the
// worker server starts, otherwise handlers hit a nil client.
var emailClient *email.Client

// InitHandlers initializes dependencies required by job handlers.
func (j *JobService) InitHandlers(config *config.Config, logger *zerolog.Logger) {
	emailClient = email.NewClient(config, logger)
}

// handleWelcomeEmailTask processes the welcome email task: decode payload,
// send through the email client, and let asynq retry on failure.
func (j *JobService) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal welcome email payload: %w", err)
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("Processing welcome email task")

	err := emailClient.SendWelcomeEmail(p.To, p.Name)
	if err != nil {
		j.logger.Error().
			Str("type", "welcome").
			Str("to", p.To).
			Err(err).
			Msg("Failed to send welcome email")
		// Returning the error makes asynq mark the task failed and retry.
		return err
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("Successfully sent welcome email")

	return nil
}
