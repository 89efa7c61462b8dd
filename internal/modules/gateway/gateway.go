package gateway

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/lib/pq"
)

// NoSequenceValue is returned by CurrentSequenceValue when the sequence has
// not generated a value in this session yet.
const NoSequenceValue int64 = -1

// Config holds the connection parameters for the retail database.
type Config struct {
	Host     string
	Port     string
	DBName   string
	User     string
	Password string
}

func (c Config) dsn() string {
	host := c.Host
	if host == "" {
		host = "localhost"
	}
	return fmt.Sprintf("host=%s port=%s dbname=%s user=%s password=%s sslmode=disable",
		host, c.Port, c.DBName, c.User, c.Password)
}

// DB is the database gateway: the only component that issues statements
// against the relational store. All statements are parameterized.
type DB struct {
	db     *sql.DB
	closed bool
}

// Open connects to the database and verifies the connection with a ping.
// A failure is a *ConnectionError, fatal at startup.
func Open(cfg Config) (*DB, error) {
	db, err := sql.Open("postgres", cfg.dsn())
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	// One interactive session, one connection. Sequence reads via currval are
	// session-scoped, so the pool must never hand out a second connection.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &ConnectionError{Err: err}
	}
	return &DB{db: db}, nil
}

// Exec runs a mutating statement (INSERT/UPDATE/DELETE/DDL).
func (g *DB) Exec(ctx context.Context, stmt string, args ...interface{}) error {
	if _, err := g.db.ExecContext(ctx, stmt, args...); err != nil {
		return &QueryError{Stmt: stmt, Err: err}
	}
	return nil
}

// Count runs a read query and returns only the number of rows it produced.
// Used for existence and validity probes.
func (g *DB) Count(ctx context.Context, query string, args ...interface{}) (int, error) {
	rows, err := g.db.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, &QueryError{Stmt: query, Err: err}
	}
	defer rows.Close()

	n := 0
	for rows.Next() {
		n++
	}
	if err := rows.Err(); err != nil {
		return 0, &QueryError{Stmt: query, Err: err}
	}
	return n, nil
}

// Rows runs a read query and returns every row as a record of column values
// rendered as text, in projection order. NULL renders as the empty string.
func (g *DB) Rows(ctx context.Context, query string, args ...interface{}) (*Result, error) {
	rows, err := g.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &QueryError{Stmt: query, Err: err}
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, &QueryError{Stmt: query, Err: err}
	}

	res := &Result{Columns: cols}
	for rows.Next() {
		raw := make([]sql.NullString, len(cols))
		dest := make([]interface{}, len(cols))
		for i := range raw {
			dest[i] = &raw[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, &QueryError{Stmt: query, Err: err}
		}
		record := make([]string, len(cols))
		for i, v := range raw {
			record[i] = v.String
		}
		res.Records = append(res.Records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Stmt: query, Err: err}
	}
	return res, nil
}

// PrintRows runs a read query and writes the result as a tab-separated table
// with a header row. Returns the number of data rows written.
func (g *DB) PrintRows(ctx context.Context, w io.Writer, query string, args ...interface{}) (int, error) {
	res, err := g.Rows(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.WriteTab(w), nil
}

// Query gives repositories typed row access. Repositories must not hold a
// *sql.DB of their own; every statement goes through the gateway.
func (g *DB) Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	rows, err := g.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &QueryError{Stmt: query, Err: err}
	}
	return rows, nil
}

// QueryRow gives repositories typed single-row access.
func (g *DB) QueryRow(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return g.db.QueryRowContext(ctx, query, args...)
}

// sequenceNotFired reports whether err is Postgres SQLSTATE 55000
// (object_not_in_prerequisite_state), which currval raises when the sequence
// has not generated a value in this session.
func sequenceNotFired(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "55000"
}

// CurrentSequenceValue returns the latest value generated by the named
// sequence in this session, or NoSequenceValue if it has not fired yet.
func (g *DB) CurrentSequenceValue(ctx context.Context, sequence string) (int64, error) {
	var v int64
	err := g.db.QueryRowContext(ctx, `SELECT currval($1)`, sequence).Scan(&v)
	if sequenceNotFired(err) {
		return NoSequenceValue, nil
	}
	if err != nil {
		return NoSequenceValue, &QueryError{Stmt: "currval " + sequence, Err: err}
	}
	return v, nil
}

// Close releases the connection. Idempotent: safe when never opened or
// already closed.
func (g *DB) Close() error {
	if g == nil || g.db == nil || g.closed {
		return nil
	}
	g.closed = true
	return g.db.Close()
}
