package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/internal/domains/invoice/model"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	gRepo "lodge/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Invoice interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Invoice) error
	InsertLinesTx(ctx context.Context, tx *sqlx.Tx, lines []model.Line) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Invoice, error)
	GetLines(ctx context.Context, invoiceID string) ([]model.Line, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Invoice]
	lines gRepo.Repository[model.Line]
	db    *postgres.Connection
	otel  otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Invoice {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Invoice](model.EntityName, model.TableName, model.FieldID, db, otel),
		lines:      gRepo.NewRepository[model.Line](model.LineEntityName, model.LineTableName, model.FieldLineID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) InsertLinesTx(ctx context.Context, tx *sqlx.Tx, lines []model.Line) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".invoice.InsertLinesTx")
	defer scope.End()

	return repo.lines.InsertBulkTx(ctx, tx, lines) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetLines(ctx context.Context, invoiceID string) ([]model.Line, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".invoice.GetLines")
	defer scope.End()

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldLineInvoiceID,
				Value:    invoiceID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.LineTableName,
			},
		},
	}

	return repo.lines.GetAll(ctx, gDto.QueryParams{SortBy: "position", SortDir: gDto.SortDirAsc}, filter) //nolint:wrapcheck
}
