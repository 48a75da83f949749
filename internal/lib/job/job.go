// Package job provides background job processing using Asynq.
//
// Asynq is a Redis-backed job queue:
//   - Tasks are enqueued (producer) using asynq.Client.
//   - A server runs workers that process those tasks (consumer).
package job

import (
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/rajharit77/rental-catalog/internal/config"
)

// JobService holds the Asynq client (enqueue) and server (worker execution).
type JobService struct {
	// Client is used to enqueue tasks into Redis.
	Client *asynq.Client

	// server runs workers that pull tasks from Redis and execute handlers.
	server *asynq.Server

	logger *zerolog.Logger
}

// NewJobService creates a JobService configured to use Redis from cfg.
//
// It builds both an asynq.Client (to push jobs) and an asynq.Server
// (to process jobs), with queue weights so critical tasks get more
// worker share.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisAddr := cfg.Redis.Address

	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr: redisAddr,
	})

	// Concurrency 10 with 6:3:1 queue weights: out of 10 in-flight tasks,
	// roughly six come from critical, three from default, one from low.
	server := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	return &JobService{
		Client: client,
		server: server,
		logger: logger,
	}
}

// Start registers task handlers and starts the background worker server.
// asynq's Start is non-blocking; workers run until Stop.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskWelcome, j.handleWelcomeEmailTask)

	j.logger.Info().Msg("Starting background job server")

	if err := j.server.Start(mux); err != nil {
		return err
	}

	return nil
}

// Stop gracefully stops the job server and closes client resources.
func (j *JobService) Stop() {
	j.logger.Info().Msg("Stopping background job server")
	j.server.Shutdown()
	j.Client.Close()
}
