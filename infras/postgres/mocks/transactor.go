package mocks

import (
	"context"
	"lodge/infras/postgres"

	"github.com/jmoiron/sqlx"
)

type transactorImpl struct {
}

// WithinTx implements postgres.Transactor. The callback runs with a nil tx;
// repository mocks in tests accept any tx value.
func (t *transactorImpl) WithinTx(ctx context.Context, fn func(ctx context.Context, tx *sqlx.Tx) error) error {
	return fn(ctx, nil)
}

func NewTransactor() postgres.Transactor {
	return &transactorImpl{}
}
