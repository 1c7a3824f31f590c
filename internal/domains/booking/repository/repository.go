package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/booking/model"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gRepo "lodge/shared/repository"
	"lodge/shared/logger"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error

	FindOverlappingTx(ctx context.Context, tx *sqlx.Tx, roomID string, start, end time.Time) ([]model.Booking, error)
	IsRoomFree(ctx context.Context, roomID string, start, end time.Time) (bool, error)
	TransitionTx(ctx context.Context, tx *sqlx.Tx, id, fromStatus string, fields map[string]any) (bool, error)
	IncrementPaymentAttempts(ctx context.Context, id string) (int, error)
	InsertAddOn(ctx context.Context, addOn model.AddOn) error
	GetAddOns(ctx context.Context, bookingID string) ([]model.AddOn, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	addOns gRepo.Repository[model.AddOn]
	db     *postgres.Connection
	otel   otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		addOns:     gRepo.NewRepository[model.AddOn](model.AddOnEntityName, model.AddOnTableName, model.FieldAddOnID, db, otel),
		db:         db,
		otel:       otel,
	}
}

const bookingColumns = "id, room_id, guest_id, check_in, expected_check_out, actual_check_out, status, " +
	"payment_method, payment_status, deposit_cents, amount_paid_cents, payment_ref, payment_attempts, " +
	"created_at, modified_at, created_by, modified_by"

// FindOverlappingTx returns the active bookings whose half-open interval
// conflicts with [start, end). Callers hold the room row lock, so the result
// is stable until the surrounding transaction ends. Touching endpoints do
// not conflict.
func (repo *repositoryImpl) FindOverlappingTx(ctx context.Context, tx *sqlx.Tx, roomID string, start, end time.Time) ([]model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.FindOverlappingTx")
	defer scope.End()

	query := overlapQuery()
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var bookings []model.Booking

	if err := tx.SelectContext(ctx, &bookings, query, roomID, start, end); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to find overlapping bookings: %w", err)
	}

	return bookings, nil
}

// IsRoomFree answers the availability question on the read connection. It is
// advisory only; the authoritative check runs inside the reservation
// transaction.
func (repo *repositoryImpl) IsRoomFree(ctx context.Context, roomID string, start, end time.Time) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.IsRoomFree")
	defer scope.End()

	query := "SELECT NOT EXISTS(" + overlapQuery() + ")"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var free bool

	if err := repo.db.Read.GetContext(ctx, &free, query, roomID, start, end); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check room availability: %w", err)
	}

	return free, nil
}

func overlapQuery() string {
	statuses := make([]string, 0, len(model.ActiveStatuses))
	for _, status := range model.ActiveStatuses {
		statuses = append(statuses, "'"+status+"'")
	}

	return fmt.Sprintf(
		"SELECT %s FROM %s WHERE room_id = $1 AND status IN (%s) AND check_in < $3 AND $2 < expected_check_out",
		bookingColumns, model.TableName, strings.Join(statuses, ", "),
	)
}

// TransitionTx applies fields to the booking only when it is still in
// fromStatus, and reports whether a row changed. A false return means a
// concurrent writer got there first or the transition was illegal.
func (repo *repositoryImpl) TransitionTx(ctx context.Context, tx *sqlx.Tx, id, fromStatus string, fields map[string]any) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.TransitionTx")
	defer scope.End()

	setClauses := make([]string, 0, len(fields))
	args := map[string]any{
		"transition_id":          id,
		"transition_from_status": fromStatus,
	}

	for col, value := range fields {
		setClauses = append(setClauses, fmt.Sprintf("%s = :%s", col, col))
		args[col] = value
	}

	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = :transition_id AND status = :transition_from_status",
		model.TableName, strings.Join(setClauses, ", "),
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := tx.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to transition booking: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected == 1, nil
}

// IncrementPaymentAttempts bumps the attempt counter used to build payment
// idempotency keys. It runs outside the checkout transaction on purpose: a
// rolled-back checkout must not reuse an attempt number whose authorization
// may have reached the provider.
func (repo *repositoryImpl) IncrementPaymentAttempts(ctx context.Context, id string) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.IncrementPaymentAttempts")
	defer scope.End()

	query := fmt.Sprintf("UPDATE %s SET payment_attempts = payment_attempts + 1 WHERE id = $1 RETURNING payment_attempts", model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var attempts int

	if err := repo.db.Write.GetContext(ctx, &attempts, query, id); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to increment payment attempts: %w", err)
	}

	return attempts, nil
}

func (repo *repositoryImpl) InsertAddOn(ctx context.Context, addOn model.AddOn) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.InsertAddOn")
	defer scope.End()

	return repo.addOns.Insert(ctx, addOn) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetAddOns(ctx context.Context, bookingID string) ([]model.AddOn, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetAddOns")
	defer scope.End()

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldAddOnBookingID,
				Value:    bookingID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.AddOnTableName,
			},
		},
	}

	return repo.addOns.GetAll(ctx, gDto.QueryParams{}, filter) //nolint:wrapcheck
}
