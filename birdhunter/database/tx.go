package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

const DefaultTxTimeout = 10 * time.Second

type txKey struct{}

// TxManager runs multi-row game mutations in one database transaction.
// The open transaction travels in the context so repositories pick it up through Conn.
type TxManager struct {
	db      *bun.DB
	timeout time.Duration
	opts    *sql.TxOptions
}

func NewTxManager(db *DB) *TxManager {
	m := &TxManager{db: db.bunDB, timeout: DefaultTxTimeout}
	if db.driver == DriverPostgres {
		m.opts = &sql.TxOptions{Isolation: sql.LevelReadCommitted}
	}
	return m
}

// WithinTx calls fn inside a transaction. Nested calls join the outer transaction.
func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(bun.Tx); ok {
		return fn(ctx)
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	tx, err := m.db.BeginTx(timeoutCtx, m.opts)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(context.WithValue(timeoutCtx, txKey{}, tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Conn returns the transaction carried by ctx, or db when there is none.
func Conn(ctx context.Context, db bun.IDB) bun.IDB {
	if tx, ok := ctx.Value(txKey{}).(bun.Tx); ok {
		return tx
	}
	return db
}
