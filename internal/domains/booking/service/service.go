package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"lodge/config"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/repository"
	guestModel "lodge/internal/domains/guest/model"
	guestRepo "lodge/internal/domains/guest/repository"
	roomModel "lodge/internal/domains/room/model"
	roomRepo "lodge/internal/domains/room/repository"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/timezone"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Reserve(ctx context.Context, req dto.ReserveBookingRequest) (dto.BookingResponse, error)
	CheckIn(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
	AddAddOn(ctx context.Context, bookingID string, req dto.AddOnRequest) error
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	CheckAvailability(ctx context.Context, roomID string, from, to time.Time) (dto.AvailabilityResponse, error)
}

type serviceImpl struct {
	repo       repository.Booking
	rooms      roomRepo.Room
	guests     guestRepo.Guest
	transactor postgres.Transactor
	producer   kafka.Client
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.Booking,
	rooms roomRepo.Room,
	guests guestRepo.Guest,
	transactor postgres.Transactor,
	producer kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:       repo,
		rooms:      rooms,
		guests:     guests,
		transactor: transactor,
		producer:   producer,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

// Reserve places a booking on the room's calendar. The room row lock makes
// reservations against the same room strictly sequential, so the overlap
// check inside the transaction sees every prior reservation.
func (s *serviceImpl) Reserve(ctx context.Context, req dto.ReserveBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Reserve")
	defer scope.End()
	defer scope.TraceIfError(err)

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	booking, err := req.ToModel(staff)
	if err != nil {
		return res, failure.BadRequestFromString("check_in and expected_check_out must be RFC3339 timestamps") //nolint:wrapcheck
	}

	if !booking.CheckIn.Before(booking.ExpectedCheckOut) {
		return res, failure.BadRequestFromString("check_in must be before expected_check_out") //nolint:wrapcheck
	}

	guestExists, err := s.guests.Exist(ctx, shared.FilterByID(booking.GuestID, guestModel.FieldID, guestModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guest exists")

		return res, fmt.Errorf("failed to check if guest exists: %w", err)
	}

	if !guestExists {
		return res, failure.NotFound("guest") //nolint:wrapcheck
	}

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		room, lockErr := s.rooms.LockTx(ctx, tx, booking.RoomID)
		if lockErr != nil {
			if errors.Is(lockErr, sql.ErrNoRows) {
				return failure.NotFound("room") //nolint:wrapcheck
			}

			return lockErr
		}

		if room.Status == roomModel.StatusMaintenance {
			return failure.Conflict("room is under maintenance") //nolint:wrapcheck
		}

		overlapping, overlapErr := s.repo.FindOverlappingTx(ctx, tx, booking.RoomID, booking.CheckIn, booking.ExpectedCheckOut)
		if overlapErr != nil {
			return overlapErr
		}

		if len(overlapping) > 0 {
			return failure.Conflict("room is already booked for the requested interval") //nolint:wrapcheck
		}

		if insertErr := s.repo.InsertTx(ctx, tx, booking); insertErr != nil {
			return insertErr
		}

		if booking.Status == model.StatusOccupied {
			return s.rooms.UpdateStatusTx(ctx, tx, booking.RoomID, roomModel.StatusOccupied)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("roomID", booking.RoomID).Msg("failed to reserve booking")

		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.producer.SendMessages(c, s.cfg.Kafka.Topics.BookingReserved, kafka.Message{Key: booking.ID, Value: res}); err != nil {
			log.Error().Err(err).Msg("failed to publish booking reserved event")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return res, nil
}

func (s *serviceImpl) CheckIn(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if !model.CanTransition(booking.Status, model.StatusOccupied) {
		return failure.Conflict("only reserved bookings can be checked in") //nolint:wrapcheck
	}

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, lockErr := s.rooms.LockTx(ctx, tx, booking.RoomID); lockErr != nil {
			return lockErr
		}

		ok, txErr := s.repo.TransitionTx(ctx, tx, id, model.StatusReserved, map[string]any{
			model.FieldStatus:        model.StatusOccupied,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: staff,
		})
		if txErr != nil {
			return txErr
		}

		if !ok {
			return failure.Conflict("booking status changed concurrently, retry the operation") //nolint:wrapcheck
		}

		return s.rooms.UpdateStatusTx(ctx, tx, booking.RoomID, roomModel.StatusOccupied)
	})
	if err != nil {
		log.Error().Err(err).Str("bookingID", id).Msg("failed to check in booking")

		return err
	}

	s.invalidateBookingCaches(ctx, id)

	return nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return err
	}

	if !model.CanTransition(booking.Status, model.StatusCancelled) {
		return failure.Conflict("only reserved bookings can be cancelled") //nolint:wrapcheck
	}

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, lockErr := s.rooms.LockTx(ctx, tx, booking.RoomID); lockErr != nil {
			return lockErr
		}

		ok, txErr := s.repo.TransitionTx(ctx, tx, id, model.StatusReserved, map[string]any{
			model.FieldStatus:        model.StatusCancelled,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: staff,
		})
		if txErr != nil {
			return txErr
		}

		if !ok {
			return failure.Conflict("booking status changed concurrently, retry the operation") //nolint:wrapcheck
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("bookingID", id).Msg("failed to cancel booking")

		return err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.producer.SendMessages(c, s.cfg.Kafka.Topics.BookingCancelled, kafka.Message{Key: id, Value: id}); err != nil {
			log.Error().Err(err).Msg("failed to publish booking cancelled event")
		}
	}()

	s.invalidateBookingCaches(ctx, id)

	return nil
}

func (s *serviceImpl) AddAddOn(ctx context.Context, bookingID string, req dto.AddOnRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.AddAddOn")
	defer scope.End()
	defer scope.TraceIfError(err)

	staff, _ := ctx.Value(constant.ContextKeyStaffID).(string)

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if booking.Status != model.StatusReserved && booking.Status != model.StatusOccupied {
		return failure.Conflict("cannot add services to a closed booking") //nolint:wrapcheck
	}

	if err = s.repo.InsertAddOn(ctx, req.ToModel(bookingID, staff)); err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to add booking service")

		return fmt.Errorf("failed to add booking service: %w", err)
	}

	s.invalidateBookingCaches(ctx, bookingID)

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.getBooking(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

// CheckAvailability answers on the read connection without taking the room
// lock. A free answer can go stale before a reservation lands; Reserve
// repeats the check authoritatively.
func (s *serviceImpl) CheckAvailability(ctx context.Context, roomID string, from, to time.Time) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !from.Before(to) {
		return res, failure.BadRequestFromString("from must be before to") //nolint:wrapcheck
	}

	roomExists, err := s.rooms.Exist(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return res, fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !roomExists {
		return res, failure.NotFound("room") //nolint:wrapcheck
	}

	free, err := s.repo.IsRoomFree(ctx, roomID, from, to)
	if err != nil {
		log.Error().Err(err).Str("roomID", roomID).Msg("failed to check room availability")

		return res, fmt.Errorf("failed to check room availability: %w", err)
	}

	return dto.NewAvailabilityResponse(roomID, from, to, free), nil
}

func (s *serviceImpl) getBooking(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("bookingID", id).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking") //nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) invalidateBookingCaches(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil && !errors.Is(err, cache.Nil) {
			log.Error().Err(err).Msg("failed to delete booking cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}
