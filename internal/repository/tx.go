package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/tendolkarurja/IPD/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const (
	codeUniqueViolation    = "23505"
	codeSerialization      = "40001"
	codeDeadlock           = "40P01"
	codeLockNotAvailable   = "55P03"
	classConnectionFailure = "08"
)

// lockTimeout bounds how long a writer queues behind the row lock of a busy ride.
const lockTimeout = "3s"

func DefaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    100 * time.Millisecond,
		Backoff:  2,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}

func isTransient(err error) bool {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeSerialization, codeDeadlock, codeLockNotAvailable:
			return true
		}
		return pgErr.Code.Class() == classConnectionFailure
	}
	return errors.Is(err, driver.ErrBadConn)
}

// txRunner runs a function in a transaction, retrying the whole transaction
// on transient failures only. Domain errors returned by fn are never retried.
type txRunner struct {
	db       *dbpg.DB
	strategy retry.Strategy
	// attempt defaults to once.
	attempt func(ctx context.Context, fn func(tx *sql.Tx) error) error
}

func (r txRunner) run(ctx context.Context, fn func(tx *sql.Tx) error) error {
	attempt := r.attempt
	if attempt == nil {
		attempt = r.once
	}

	strategy := r.strategy
	if strategy.Attempts < 1 {
		strategy.Attempts = 1
	}

	var (
		attempts  int
		permanent error
		exhausted error
	)
	err := retry.DoContext(ctx, strategy, func() error {
		attempts++
		txErr := attempt(ctx, fn)
		switch {
		case txErr == nil:
			return nil
		case !isTransient(txErr):
			permanent = txErr
			return nil
		case attempts >= strategy.Attempts:
			// Stop here so no backoff delay follows the final attempt.
			exhausted = txErr
			return nil
		default:
			return txErr
		}
	})

	switch {
	case permanent != nil:
		return permanent
	case exhausted != nil:
		return fmt.Errorf("%w: %v", domain.ErrTransientStore, exhausted)
	case err == nil:
		return nil
	case isTransient(err):
		return fmt.Errorf("%w: %v", domain.ErrTransientStore, err)
	default:
		return err
	}
}

func (r txRunner) once(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, "SET LOCAL lock_timeout = '"+lockTimeout+"'"); err != nil {
		return fmt.Errorf("set lock timeout: %w", err)
	}

	if err = fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}
