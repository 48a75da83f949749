package repository

import (
	"github.com/rajharit77/rental-catalog/internal/server"
)

// Repositories is the container for all repository instances,
// wired once at startup and handed to the service layer.
type Repositories struct {
	Renter   RenterRepository
	Location LocationRepository
}

// NewRepositories constructs every repository on top of the shared pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Renter:   NewRenterRepository(s.DB.Pool),
		Location: NewLocationRepository(s.DB.Pool),
	}
}
