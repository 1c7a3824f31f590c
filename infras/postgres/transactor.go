package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"lodge/shared/constant"
	"lodge/shared/failure"
	"lodge/shared/logger"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// Transactor runs a function inside a single database transaction. Every
// effect applied through the supplied tx is committed together or rolled
// back together; a panic inside fn also rolls back before re-panicking.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx *sqlx.Tx) error) error
}

func (c *Connection) WithinTx(ctx context.Context, fn func(ctx context.Context, tx *sqlx.Tx) error) error {
	tx, err := c.Write.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback transaction after panic")
			}

			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Error().Err(rbErr).Msg("failed to rollback transaction")
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		return MapConflict(err)
	}

	return nil
}

// MapConflict translates concurrent-modification database errors into a
// caller-retryable conflict failure. Anything else passes through wrapped.
func MapConflict(err error) error {
	var pqErr *pq.Error

	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case constant.PqErrorCodeUniqueViolation,
			constant.PqErrorCodeSerializationError,
			constant.PqErrorCodeDeadlockDetected:
			return failure.Conflict("concurrent modification detected, retry the operation") //nolint:wrapcheck
		}
	}

	return fmt.Errorf("transaction failed: %w", err)
}
