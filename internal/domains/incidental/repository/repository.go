package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/incidental/model"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gRepo "lodge/shared/repository"
	"lodge/shared/logger"
	"time"

	"github.com/jmoiron/sqlx"
)

type Charge interface {
	Insert(ctx context.Context, model model.Charge) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Charge, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Charge, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error

	MarkBilledTx(ctx context.Context, tx *sqlx.Tx, bookingID, invoiceID string, chargeIDs []string, now time.Time) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Charge]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Charge {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Charge](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// MarkBilledTx stamps the given pending charges with the invoice and returns
// how many rows actually changed. The caller compares the count against the
// charge set it billed; a mismatch means a charge moved concurrently.
func (repo *repositoryImpl) MarkBilledTx(ctx context.Context, tx *sqlx.Tx, bookingID, invoiceID string, chargeIDs []string, now time.Time) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".incidental_charge.MarkBilledTx")
	defer scope.End()

	if len(chargeIDs) == 0 {
		return 0, nil
	}

	query := fmt.Sprintf(
		"UPDATE %s SET status = ?, invoice_id = ?, modified_at = ? WHERE booking_id = ? AND status = ? AND id IN (?)",
		model.TableName,
	)

	query, args, err := sqlx.In(query, model.StatusBilled, invoiceID, now, bookingID, model.StatusPending, chargeIDs)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to build mark billed query: %w", err)
	}

	query = tx.Rebind(query)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to mark charges billed: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected, nil
}
