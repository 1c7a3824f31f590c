package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/room/model"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gRepo "lodge/shared/repository"
	"lodge/shared/logger"

	"github.com/jmoiron/sqlx"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	LockTx(ctx context.Context, tx *sqlx.Tx, id string) (model.Room, error)
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id, status string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// LockTx takes the per-room row lock. Every reservation and checkout against
// the same room serializes on this lock; different rooms proceed in parallel.
func (repo *repositoryImpl) LockTx(ctx context.Context, tx *sqlx.Tx, id string) (model.Room, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.LockTx")
	defer scope.End()

	query := fmt.Sprintf("SELECT id, number, category, rate_cents, status, created_at, modified_at, created_by, modified_by FROM %s WHERE id = $1 FOR UPDATE", model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var room model.Room

	if err := tx.GetContext(ctx, &room, query, id); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return room, fmt.Errorf("failed to lock room row: %w", err)
	}

	return room, nil
}

func (repo *repositoryImpl) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id, status string) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.UpdateStatusTx")
	defer scope.End()

	query := fmt.Sprintf("UPDATE %s SET status = $1, modified_at = NOW() WHERE id = $2", model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := tx.ExecContext(ctx, query, status, id); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to update room status: %w", err)
	}

	return nil
}
