package service

import (
	"github.com/rajharit77/rental-catalog/internal/lib/job"
	"github.com/rajharit77/rental-catalog/internal/repository"
	"github.com/rajharit77/rental-catalog/internal/server"
)

// Services is the container for all service instances.
type Services struct {
	Renter   *RenterService
	Location *LocationService
	Job      *job.JobService
}

// NewService constructs every service on top of the shared repositories.
func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Renter:   NewRenterService(s, repos),
		Location: NewLocationService(s, repos),
		Job:      s.Job,
	}, nil
}
