package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/ledger/model"
	"lodge/shared/constant"
	"lodge/shared/logger"
	"time"

	"github.com/jmoiron/sqlx"
)

type Ledger interface {
	UpsertTx(ctx context.Context, tx *sqlx.Tx, entry model.Entry) error
	GetRange(ctx context.Context, roomID string, from, to time.Time) ([]model.Entry, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Ledger {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

// UpsertTx merges revenue into the (room, date) bucket additively. Two
// checkouts landing on the same bucket both count; nothing is overwritten.
func (repo *repositoryImpl) UpsertTx(ctx context.Context, tx *sqlx.Tx, entry model.Entry) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".revenue_entry.UpsertTx")
	defer scope.End()

	query := fmt.Sprintf(
		"INSERT INTO %s (room_id, entry_date, room_revenue_cents, incidental_revenue_cents, occupied_nights, modified_at) VALUES ($1, $2, $3, $4, $5, $6) "+
			"ON CONFLICT (room_id, entry_date) DO UPDATE SET "+
			"room_revenue_cents = %s.room_revenue_cents + EXCLUDED.room_revenue_cents, "+
			"incidental_revenue_cents = %s.incidental_revenue_cents + EXCLUDED.incidental_revenue_cents, "+
			"occupied_nights = %s.occupied_nights + EXCLUDED.occupied_nights, "+
			"modified_at = EXCLUDED.modified_at",
		model.TableName, model.TableName, model.TableName, model.TableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := tx.ExecContext(ctx, query, entry.RoomID, entry.EntryDate, entry.RoomRevenueCents, entry.IncidentalRevenueCents, entry.OccupiedNights, entry.ModifiedAt); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to upsert revenue entry: %w", err)
	}

	return nil
}

func (repo *repositoryImpl) GetRange(ctx context.Context, roomID string, from, to time.Time) ([]model.Entry, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".revenue_entry.GetRange")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT room_id, entry_date, room_revenue_cents, incidental_revenue_cents, occupied_nights, modified_at FROM %s WHERE room_id = $1 AND entry_date >= $2 AND entry_date <= $3 ORDER BY entry_date",
		model.TableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var entries []model.Entry

	if err := repo.db.Read.SelectContext(ctx, &entries, query, roomID, from, to); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get revenue entries: %w", err)
	}

	return entries, nil
}
