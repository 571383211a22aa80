package postgres

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/vfg2006/recebimentos-api/internal/config"
)

type Conn interface {
	Queryer
	Begin(context.Context) (*sql.Tx, error)
	Close() error
	Ping(context.Context) error
	RunInTransaction(context.Context, func(*sql.Tx) error) error
	RunInSerializableTransaction(context.Context, func(*sql.Tx) error) error
}

type Connection struct {
	*sql.DB
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	return &Connection{DB: db}, nil
}

func (c *Connection) Begin(ctx context.Context) (*sql.Tx, error) {
	return c.DB.BeginTx(ctx, nil)
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// RunInTransaction executa fn dentro de uma transação com isolamento padrão.
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	return c.runInTransaction(ctx, nil, fn)
}

// RunInSerializableTransaction executa fn com isolamento serializável.
// As importações e as transições de análise usam este escopo para que
// leituras-modificações-escritas concorrentes sobre as mesmas vendas não
// intercalem escritas parciais.
func (c *Connection) RunInSerializableTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	return c.runInTransaction(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

func (c *Connection) runInTransaction(ctx context.Context, opts *sql.TxOptions, fn func(*sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return rbErr
		}
		return err
	}

	return tx.Commit()
}
