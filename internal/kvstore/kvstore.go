// Package kvstore is the persistence boundary of the storefront: a
// synchronous, string-keyed store of serialized values backed by a single
// SQL table. Every read decodes with a fallback so that corrupt or missing
// data surfaces as an empty collection or an absent singleton, never as an
// error.
package kvstore

import (
	"database/sql"
	"errors"
	"fmt"

	"example/storefront/internal/logger"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/multierr"
)

const schema = `CREATE TABLE IF NOT EXISTS kv_store (
	item_key VARCHAR(191) NOT NULL PRIMARY KEY,
	item_value LONGTEXT NOT NULL
)`

// Store is a namespaced key/value store. All keys passed to it are prefixed
// with the namespace, so several stores can share one database.
type Store struct {
	db        *sql.DB
	namespace string

	getStmt    *sql.Stmt
	setStmt    *sql.Stmt
	removeStmt *sql.Stmt
}

// Open connects to the database identified by driver and dsn, creates the
// backing table if needed and prepares the statements used by the store.
func Open(driver, dsn, namespace string) (*Store, error) {
	logger.Log.Debugw("Opening key/value store", "driver", driver, "namespace", namespace)

	db, err := sql.Open(driver, dsn)
	if err != nil {
		logger.Log.Errorw("Failed to open database", "driver", driver, "error", err)
		return nil, fmt.Errorf("kvstore open: %w", err)
	}

	// sqlite in-memory databases live and die with their connection
	if driver == "sqlite3" {
		db.SetMaxOpenConns(1)
	}

	s, err := New(db, namespace)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an already opened database.
func New(db *sql.DB, namespace string) (*Store, error) {
	if err := db.Ping(); err != nil {
		logger.Log.Errorw("Failed to ping database", "error", err)
		return nil, fmt.Errorf("kvstore ping: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		logger.Log.Errorw("Failed to create kv_store table", "error", err)
		return nil, fmt.Errorf("kvstore schema: %w", err)
	}

	s := &Store{db: db, namespace: namespace}

	var err error
	if s.getStmt, err = db.Prepare("SELECT item_value FROM kv_store WHERE item_key = ?"); err != nil {
		return nil, fmt.Errorf("kvstore prepare get: %w", err)
	}
	// REPLACE INTO is understood by both sqlite and mysql
	if s.setStmt, err = db.Prepare("REPLACE INTO kv_store (item_key, item_value) VALUES (?, ?)"); err != nil {
		s.getStmt.Close()
		return nil, fmt.Errorf("kvstore prepare set: %w", err)
	}
	if s.removeStmt, err = db.Prepare("DELETE FROM kv_store WHERE item_key = ?"); err != nil {
		s.getStmt.Close()
		s.setStmt.Close()
		return nil, fmt.Errorf("kvstore prepare remove: %w", err)
	}

	logger.Log.Infow("Key/value store ready", "namespace", namespace)
	return s, nil
}

// Close releases the prepared statements and the database handle
func (s *Store) Close() error {
	var err error
	err = multierr.Append(err, s.getStmt.Close())
	err = multierr.Append(err, s.setStmt.Close())
	err = multierr.Append(err, s.removeStmt.Close())
	err = multierr.Append(err, s.db.Close())
	if err != nil {
		logger.Log.Errorw("Error closing key/value store", "error", err)
	} else {
		logger.Log.Info("Key/value store closed")
	}
	return err
}

// Key returns the namespaced form of name as it is persisted.
func (s *Store) Key(name string) string {
	return s.namespace + "_" + name
}

// Get returns the raw value stored under name.
func (s *Store) Get(name string) (string, bool) {
	var value string
	err := s.getStmt.QueryRow(s.Key(name)).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false
	}
	if err != nil {
		logger.Log.Warnw("Failed to read key", "key", s.Key(name), "error", err)
		return "", false
	}
	return value, true
}

// Set overwrites the raw value stored under name.
func (s *Store) Set(name, value string) {
	if _, err := s.setStmt.Exec(s.Key(name), value); err != nil {
		logger.Log.Errorw("Failed to write key", "key", s.Key(name), "error", err)
	}
}

// Remove deletes name from the store. Removing a missing key is a no-op.
func (s *Store) Remove(name string) {
	if _, err := s.removeStmt.Exec(s.Key(name)); err != nil {
		logger.Log.Errorw("Failed to remove key", "key", s.Key(name), "error", err)
	}
}
