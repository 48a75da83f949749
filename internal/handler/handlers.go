package handler

import (
	"github.com/rajharit77/rental-catalog/internal/server"
	"github.com/rajharit77/rental-catalog/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router setup
// passes one object around instead of many.
type Handlers struct {
	Health   *HealthHandler
	Renter   *RenterHandler
	Location *LocationHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		Renter:   NewRenterHandler(s, services),
		Location: NewLocationHandler(s, services),
	}
}
