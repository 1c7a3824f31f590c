package router

import (
	"lodge/internal/handlers/booking"
	"lodge/internal/handlers/checkout"
	"lodge/internal/handlers/guest"
	"lodge/internal/handlers/incidental"
	"lodge/internal/handlers/invoice"
	"lodge/internal/handlers/ledger"
	"lodge/internal/handlers/room"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Room       room.Handler
	Guest      guest.Handler
	Booking    booking.Handler
	Incidental incidental.Handler
	Checkout   checkout.Handler
	Invoice    invoice.Handler
	Ledger     ledger.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Incidental.Router(routerGroup)
		r.DomainHandlers.Checkout.Router(routerGroup)
		r.DomainHandlers.Invoice.Router(routerGroup)
		r.DomainHandlers.Ledger.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
