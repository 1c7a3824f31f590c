// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package di

import (
	"github.com/google/wire"
	"lodge/config"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	"lodge/infras/payment"
	"lodge/infras/postgres"
	"lodge/infras/redis"
	repository3 "lodge/internal/domains/booking/repository"
	service3 "lodge/internal/domains/booking/service"
	service5 "lodge/internal/domains/checkout/service"
	repository2 "lodge/internal/domains/guest/repository"
	service2 "lodge/internal/domains/guest/service"
	repository4 "lodge/internal/domains/incidental/repository"
	service4 "lodge/internal/domains/incidental/service"
	repository5 "lodge/internal/domains/invoice/repository"
	service6 "lodge/internal/domains/invoice/service"
	repository6 "lodge/internal/domains/ledger/repository"
	service7 "lodge/internal/domains/ledger/service"
	"lodge/internal/domains/room/repository"
	"lodge/internal/domains/room/service"
	"lodge/internal/handlers/booking"
	"lodge/internal/handlers/checkout"
	"lodge/internal/handlers/guest"
	"lodge/internal/handlers/incidental"
	"lodge/internal/handlers/invoice"
	"lodge/internal/handlers/ledger"
	"lodge/internal/handlers/room"
	"lodge/shared/cache"
	"lodge/transport/http"
	"lodge/transport/http/middleware"
	"lodge/transport/http/router"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	repositoryRoom := repository.New(connection, otelOtel)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	serviceRoom := service.New(repositoryRoom, configConfig, redisCache, otelOtel)
	handler := room.New(serviceRoom, otelOtel)
	repositoryGuest := repository2.New(connection, otelOtel)
	serviceGuest := service2.New(repositoryGuest, otelOtel)
	guestHandler := guest.New(serviceGuest, otelOtel)
	repositoryBooking := repository3.New(connection, otelOtel)
	kafkaClient := kafka.New(configConfig)
	serviceBooking := service3.New(repositoryBooking, repositoryRoom, repositoryGuest, connection, kafkaClient, configConfig, redisCache, otelOtel)
	bookingHandler := booking.New(serviceBooking, otelOtel)
	charge := repository4.New(connection, otelOtel)
	serviceCharge := service4.New(charge, repositoryBooking, configConfig, redisCache, otelOtel)
	incidentalHandler := incidental.New(serviceCharge, otelOtel)
	repositoryInvoice := repository5.New(connection, otelOtel)
	repositoryLedger := repository6.New(connection, otelOtel)
	gateway := payment.New(configConfig)
	serviceCheckout := service5.New(repositoryBooking, repositoryRoom, charge, repositoryInvoice, repositoryLedger, gateway, connection, kafkaClient, configConfig, redisCache, otelOtel)
	checkoutHandler := checkout.New(serviceCheckout, otelOtel)
	serviceInvoice := service6.New(repositoryInvoice, configConfig, redisCache, otelOtel)
	invoiceHandler := invoice.New(serviceInvoice, otelOtel)
	serviceLedger := service7.New(repositoryLedger, configConfig, redisCache, otelOtel)
	ledgerHandler := ledger.New(serviceLedger, otelOtel)
	domainHandlers := router.DomainHandlers{
		Room:       handler,
		Guest:      guestHandler,
		Booking:    bookingHandler,
		Incidental: incidentalHandler,
		Checkout:   checkoutHandler,
		Invoice:    invoiceHandler,
		Ledger:     ledgerHandler,
	}
	routerRouter := router.New(domainHandlers)
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	httpHTTP := http.New(configConfig, connection, routerRouter, appMiddleware)
	return httpHTTP
}

// wire.go:

var configurations = wire.NewSet(config.Get)

var infrastructures = wire.NewSet(postgres.New, wire.Bind(new(postgres.Transactor), new(*postgres.Connection)), otel.New, redis.New, kafka.New, payment.New)

var middlewares = wire.NewSet(middleware.NewAppMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache)

var roomDomain = wire.NewSet(repository.New, service.New)

var guestDomain = wire.NewSet(repository2.New, service2.New)

var bookingDomain = wire.NewSet(repository3.New, service3.New)

var incidentalDomain = wire.NewSet(repository4.New, service4.New)

var invoiceDomain = wire.NewSet(repository5.New, service6.New)

var ledgerDomain = wire.NewSet(repository6.New, service7.New)

var checkoutDomain = wire.NewSet(service5.New)

var domains = wire.NewSet(
	roomDomain,
	guestDomain,
	bookingDomain,
	incidentalDomain,
	invoiceDomain,
	ledgerDomain,
	checkoutDomain,
)

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), room.New, guest.New, booking.New, incidental.New, invoice.New, ledger.New, checkout.New, router.New)
