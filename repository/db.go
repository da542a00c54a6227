package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

var db *sql.DB

var (
	// ErrNotFound is returned when a mill-scoped record does not exist
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique column (invoice number) collides
	ErrDuplicate = errors.New("duplicate record")
)

const uniqueViolation = "23505"

// InitDB opens the PostgreSQL pool and verifies the connection
func InitDB(dsn string) error {
	var err error
	db, err = sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info().Msg("Successfully connected to the database")
	return nil
}

// CloseDB closes the database connection
func CloseDB() {
	if db != nil {
		db.Close()
	}
}

// GetDB returns the database instance
func GetDB() *sql.DB {
	return db
}

// EnsureSchema creates the tables and indexes the repositories rely on
func EnsureSchema(ctx context.Context, conn *sql.DB) error {
	for _, stmt := range schema {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

// translateError maps driver errors onto repository sentinels
func translateError(err error, action string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %w", action, ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", action, err)
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// whereBuilder appends numbered placeholders to a mill-scoped query
type whereBuilder struct {
	query string
	args  []interface{}
}

func (w *whereBuilder) and(clause string, value interface{}) {
	w.args = append(w.args, value)
	w.query += fmt.Sprintf(" AND "+clause, len(w.args))
}
