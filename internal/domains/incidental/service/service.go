package service

import (
	"context"
	"fmt"
	"lodge/config"
	"lodge/infras/otel"
	bookingModel "lodge/internal/domains/booking/model"
	bookingRepo "lodge/internal/domains/booking/repository"
	"lodge/internal/domains/incidental/model"
	"lodge/internal/domains/incidental/model/dto"
	"lodge/internal/domains/incidental/repository"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/timezone"

	"github.com/rs/zerolog/log"
)

const cacheGetCharges = "incidental:gets"

type Charge interface {
	Create(ctx context.Context, bookingID string, req dto.CreateChargeRequest) (dto.ChargeResponse, error)
	Cancel(ctx context.Context, id string) error
	GetForBooking(ctx context.Context, bookingID string) (dto.GetChargesResponse, error)
}

type serviceImpl struct {
	repo     repository.Charge
	bookings bookingRepo.Booking
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(repo repository.Charge, bookings bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Charge {
	return &serviceImpl{
		repo:     repo,
		bookings: bookings,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// Create accrues a charge against an occupied booking. Reserved and closed
// bookings reject charges so nothing can accrue outside the stay.
func (s *serviceImpl) Create(ctx context.Context, bookingID string, req dto.CreateChargeRequest) (res dto.ChargeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".incidental.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	booking, err := s.bookings.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking") //nolint:wrapcheck
	}

	if booking.Status != bookingModel.StatusOccupied {
		return res, failure.Conflict("charges can only accrue against an occupied booking") //nolint:wrapcheck
	}

	charge := req.ToModel(bookingID, booking.RoomID, staff)

	if err = s.repo.Insert(ctx, charge); err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to create incidental charge")

		return res, fmt.Errorf("failed to create incidental charge: %w", err)
	}

	res.FromModel(charge)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetCharges)
	}()

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".incidental.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	charge, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("chargeID", id).Msg("failed to get incidental charge")

		return fmt.Errorf("failed to get incidental charge: %w", err)
	}

	if charge.ID == constant.Empty {
		return failure.NotFound("incidental charge") //nolint:wrapcheck
	}

	if charge.Status != model.StatusPending {
		return failure.Conflict("only pending charges can be cancelled") //nolint:wrapcheck
	}

	err = s.repo.Update(ctx, map[string]any{
		model.FieldStatus:        model.StatusCancelled,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: staff,
	}, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    id,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    model.StatusPending,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
		Operator: gDto.FilterGroupOperatorAnd,
	})
	if err != nil {
		log.Error().Err(err).Str("chargeID", id).Msg("failed to cancel incidental charge")

		return fmt.Errorf("failed to cancel incidental charge: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetCharges)
	}()

	return nil
}

func (s *serviceImpl) GetForBooking(ctx context.Context, bookingID string) (res dto.GetChargesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".incidental.GetForBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetCharges, bookingID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for incidental charges")

		return res, nil
	}

	charges, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBookingID,
				Value:    bookingID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to get incidental charges")

		return res, fmt.Errorf("failed to get incidental charges: %w", err)
	}

	res.FromModels(charges)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save incidental charges to cache")
		}
	}()

	return res, nil
}
