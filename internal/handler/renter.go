package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/rajharit77/rental-catalog/internal/domain"
	"github.com/rajharit77/rental-catalog/internal/server"
	"github.com/rajharit77/rental-catalog/internal/service"
	"github.com/rajharit77/rental-catalog/internal/validation"
)

// RenterHandler serves the /renters endpoints.
type RenterHandler struct {
	Handler
	renterService *service.RenterService
}

// NewRenterHandler constructs a RenterHandler.
func NewRenterHandler(s *server.Server, services *service.Services) *RenterHandler {
	return &RenterHandler{
		Handler:       NewHandler(s),
		renterService: services.Renter,
	}
}

// MessageResponse is the body for operations that only confirm an outcome.
type MessageResponse struct {
	Message string `json:"message"`
}

// --- Request payloads --------------------------------------------------------

type CreateRenterRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,e164"`
	Type    string `json:"type" validate:"required,oneof=individual company"`
	Address string `json:"address" validate:"omitempty,max=500"`
}

func (r *CreateRenterRequest) Validate() error {
	return validation.Struct(r)
}

type GetRenterRequest struct {
	ID int64 `param:"id" validate:"required,min=1"`
}

func (r *GetRenterRequest) Validate() error {
	return validation.Struct(r)
}

type ListRentersRequest struct{}

func (r *ListRentersRequest) Validate() error {
	return nil
}

// The type filter is validated at the boundary: the renter type set is
// closed, and an unknown value is a client error rather than an empty
// category.
type ListRentersByTypeRequest struct {
	Type string `param:"type" validate:"required,oneof=individual company"`
}

func (r *ListRentersByTypeRequest) Validate() error {
	return validation.Struct(r)
}

type UpdateRenterRequest struct {
	ID      int64   `param:"id" validate:"required,min=1"`
	Name    *string `json:"name" validate:"omitempty,min=2,max=255"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone" validate:"omitempty,e164"`
	Type    *string `json:"type" validate:"omitempty,oneof=individual company"`
	Address *string `json:"address" validate:"omitempty,max=500"`
}

func (r *UpdateRenterRequest) Validate() error {
	return validation.Struct(r)
}

type DeleteRenterRequest struct {
	ID int64 `param:"id" validate:"required,min=1"`
}

func (r *DeleteRenterRequest) Validate() error {
	return validation.Struct(r)
}

// --- Endpoints ---------------------------------------------------------------

// Create registers a new renter.
func (h *RenterHandler) Create(c echo.Context, req *CreateRenterRequest) (*domain.Renter, error) {
	return h.renterService.Create(c.Request().Context(), domain.NewRenter{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Type:    domain.RenterType(req.Type),
		Address: req.Address,
	})
}

// List returns every renter with their listings.
func (h *RenterHandler) List(c echo.Context, _ *ListRentersRequest) ([]domain.Renter, error) {
	return h.renterService.FindAll(c.Request().Context())
}

// Get returns a single renter by ID.
func (h *RenterHandler) Get(c echo.Context, req *GetRenterRequest) (*domain.Renter, error) {
	return h.renterService.FindByID(c.Request().Context(), req.ID)
}

// ListByType returns all renters of the given type.
func (h *RenterHandler) ListByType(c echo.Context, req *ListRentersByTypeRequest) ([]domain.Renter, error) {
	return h.renterService.FindByType(c.Request().Context(), domain.RenterType(req.Type))
}

// Update applies a partial update to a renter.
func (h *RenterHandler) Update(c echo.Context, req *UpdateRenterRequest) (*domain.Renter, error) {
	patch := domain.RenterPatch{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if req.Type != nil {
		t := domain.RenterType(*req.Type)
		patch.Type = &t
	}

	return h.renterService.Update(c.Request().Context(), req.ID, patch)
}

// Delete removes a renter. Fails with a conflict when the renter still
// owns locations.
func (h *RenterHandler) Delete(c echo.Context, req *DeleteRenterRequest) (*MessageResponse, error) {
	if err := h.renterService.Delete(c.Request().Context(), req.ID); err != nil {
		return nil, err
	}
	return &MessageResponse{Message: "Renter deleted successfully"}, nil
}
