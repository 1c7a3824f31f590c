package service

import (
	"context"
	"fmt"
	"lodge/config"
	"lodge/infras/otel"
	"lodge/internal/domains/invoice/model"
	"lodge/internal/domains/invoice/model/dto"
	"lodge/internal/domains/invoice/repository"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"

	"github.com/rs/zerolog/log"
)

const cacheGetInvoice = "invoice:get"

type Invoice interface {
	Get(ctx context.Context, id string) (dto.InvoiceResponse, error)
	GetByBooking(ctx context.Context, bookingID string) (dto.InvoiceResponse, error)
}

type serviceImpl struct {
	repo  repository.Invoice
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Invoice, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Invoice {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.InvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".invoice.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.get(ctx, shared.FilterByID(id, model.FieldID, model.TableName), id)
}

func (s *serviceImpl) GetByBooking(ctx context.Context, bookingID string) (res dto.InvoiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".invoice.GetByBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingID,
				Value:    bookingID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	return s.get(ctx, filter, "booking:"+bookingID)
}

// Invoices never change after checkout, so cached entries cannot go stale.
func (s *serviceImpl) get(ctx context.Context, filter gDto.FilterGroup, cacheSuffix string) (res dto.InvoiceResponse, err error) {
	cacheKey := shared.BuildCacheKey(cacheGetInvoice, cacheSuffix)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for invoice")

		return res, nil
	}

	invoice, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get invoice")

		return res, fmt.Errorf("failed to get invoice: %w", err)
	}

	if invoice.ID == constant.Empty {
		return res, failure.NotFound("invoice") //nolint:wrapcheck
	}

	lines, err := s.repo.GetLines(ctx, invoice.ID)
	if err != nil {
		log.Error().Err(err).Str("invoiceID", invoice.ID).Msg("failed to get invoice lines")

		return res, fmt.Errorf("failed to get invoice lines: %w", err)
	}

	res.FromModel(invoice, lines)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save invoice to cache")
		}
	}()

	return res, nil
}
