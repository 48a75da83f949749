package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rajharit77/rental-catalog/internal/handler"
)

// registerAPIRoutes maps the catalog API onto the typed handler pipeline.
//
// Static segments ("/type/...", "/renter/...") must not collide with the
// ":id" param routes; Echo resolves static segments first, so the order
// here is just for readability.
func registerAPIRoutes(r *echo.Echo, h *handler.Handlers) {
	renters := r.Group("/renters")

	renters.POST("", handler.Handle(h.Renter.Handler, h.Renter.Create, http.StatusCreated,
		func() *handler.CreateRenterRequest { return new(handler.CreateRenterRequest) }))
	renters.GET("", handler.Handle(h.Renter.Handler, h.Renter.List, http.StatusOK,
		func() *handler.ListRentersRequest { return new(handler.ListRentersRequest) }))
	renters.GET("/type/:type", handler.Handle(h.Renter.Handler, h.Renter.ListByType, http.StatusOK,
		func() *handler.ListRentersByTypeRequest { return new(handler.ListRentersByTypeRequest) }))
	renters.GET("/:id", handler.Handle(h.Renter.Handler, h.Renter.Get, http.StatusOK,
		func() *handler.GetRenterRequest { return new(handler.GetRenterRequest) }))
	renters.PUT("/:id", handler.Handle(h.Renter.Handler, h.Renter.Update, http.StatusOK,
		func() *handler.UpdateRenterRequest { return new(handler.UpdateRenterRequest) }))
	renters.DELETE("/:id", handler.Handle(h.Renter.Handler, h.Renter.Delete, http.StatusOK,
		func() *handler.DeleteRenterRequest { return new(handler.DeleteRenterRequest) }))

	locations := r.Group("/locations")

	locations.POST("", handler.Handle(h.Location.Handler, h.Location.Create, http.StatusCreated,
		func() *handler.CreateLocationRequest { return new(handler.CreateLocationRequest) }))
	locations.GET("", handler.Handle(h.Location.Handler, h.Location.List, http.StatusOK,
		func() *handler.ListLocationsRequest { return new(handler.ListLocationsRequest) }))
	locations.GET("/renter/:renterId", handler.Handle(h.Location.Handler, h.Location.ListByRenter, http.StatusOK,
		func() *handler.ListLocationsByRenterRequest { return new(handler.ListLocationsByRenterRequest) }))
	locations.GET("/type/:type", handler.Handle(h.Location.Handler, h.Location.ListByType, http.StatusOK,
		func() *handler.ListLocationsByTypeRequest { return new(handler.ListLocationsByTypeRequest) }))
	locations.GET("/:id", handler.Handle(h.Location.Handler, h.Location.Get, http.StatusOK,
		func() *handler.GetLocationRequest { return new(handler.GetLocationRequest) }))
	locations.PUT("/:id", handler.Handle(h.Location.Handler, h.Location.Update, http.StatusOK,
		func() *handler.UpdateLocationRequest { return new(handler.UpdateLocationRequest) }))
	locations.DELETE("/:id", handler.Handle(h.Location.Handler, h.Location.Delete, http.StatusOK,
		func() *handler.DeleteLocationRequest { return new(handler.DeleteLocationRequest) }))
}
