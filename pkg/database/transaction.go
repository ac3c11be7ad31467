package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// WithTransaction function:
//     Begin transaction từ pool
//     Defer rollback - Sẽ tự động rollback nếu:
//         Function fn return error
//         Có panic xảy ra
//     Execute function fn với transaction context
//     Commit nếu không có error

// TxBeginner được implement bởi *pgxpool.Pool, *pgx.Conn và pgx.Tx (nested savepoint)
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxFunc là function type được execute trong transaction
type TxFunc func(pgx.Tx) error

// WithTransaction wraps một function trong transaction
// Auto rollback nếu có error, auto commit nếu success
func WithTransaction(ctx context.Context, db TxBeginner, fn TxFunc) (err error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Defer rollback (sẽ bị ignore nếu đã commit)
	defer func() {
		if p := recover(); p != nil {
			// Có panic → rollback
			_ = tx.Rollback(ctx)
			panic(p) // Re-throw panic
		} else if err != nil {
			// Có error → rollback
			_ = tx.Rollback(ctx)
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// LockPair lấy transaction-scoped advisory lock cho cặp (a, b).
// Lock tự release khi transaction commit/rollback; hai transaction cùng cặp key sẽ chạy tuần tự.
// Key là hash 64-bit của "a:b", collision chỉ làm serialize thêm chứ không sai kết quả.
func LockPair(ctx context.Context, tx pgx.Tx, a, b int64) error {
	if _, err := tx.Exec(ctx,
		`SELECT pg_advisory_xact_lock(hashtextextended($1::text || ':' || $2::text, 0))`,
		a, b,
	); err != nil {
		return fmt.Errorf("advisory lock (%d, %d): %w", a, b, err)
	}
	return nil
}
