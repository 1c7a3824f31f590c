//go:build wireinject
// +build wireinject

package di

import (
	"lodge/config"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	"lodge/infras/payment"
	"lodge/infras/postgres"
	"lodge/infras/redis"
	"lodge/shared/cache"
	"lodge/transport/http"
	"lodge/transport/http/middleware"
	"lodge/transport/http/router"

	bookingRepository "lodge/internal/domains/booking/repository"
	bookingService "lodge/internal/domains/booking/service"
	checkoutService "lodge/internal/domains/checkout/service"
	guestRepository "lodge/internal/domains/guest/repository"
	guestService "lodge/internal/domains/guest/service"
	incidentalRepository "lodge/internal/domains/incidental/repository"
	incidentalService "lodge/internal/domains/incidental/service"
	invoiceRepository "lodge/internal/domains/invoice/repository"
	invoiceService "lodge/internal/domains/invoice/service"
	ledgerRepository "lodge/internal/domains/ledger/repository"
	ledgerService "lodge/internal/domains/ledger/service"
	roomRepository "lodge/internal/domains/room/repository"
	roomService "lodge/internal/domains/room/service"

	bookingHandler "lodge/internal/handlers/booking"
	checkoutHandler "lodge/internal/handlers/checkout"
	guestHandler "lodge/internal/handlers/guest"
	incidentalHandler "lodge/internal/handlers/incidental"
	invoiceHandler "lodge/internal/handlers/invoice"
	ledgerHandler "lodge/internal/handlers/ledger"
	roomHandler "lodge/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	wire.Bind(new(postgres.Transactor), new(*postgres.Connection)),
	otel.New,
	redis.New,
	kafka.New,
	payment.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var guestDomain = wire.NewSet(
	guestRepository.New,
	guestService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var incidentalDomain = wire.NewSet(
	incidentalRepository.New,
	incidentalService.New,
)

var invoiceDomain = wire.NewSet(
	invoiceRepository.New,
	invoiceService.New,
)

var ledgerDomain = wire.NewSet(
	ledgerRepository.New,
	ledgerService.New,
)

var checkoutDomain = wire.NewSet(
	checkoutService.New,
)

var domains = wire.NewSet(
	roomDomain,
	guestDomain,
	bookingDomain,
	incidentalDomain,
	invoiceDomain,
	ledgerDomain,
	checkoutDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	guestHandler.New,
	bookingHandler.New,
	incidentalHandler.New,
	invoiceHandler.New,
	ledgerHandler.New,
	checkoutHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
