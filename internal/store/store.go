// Package store implements the customer store and attribute metadata on top
// of a SQLite database.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/NikitaCOEUR/prefixgender/internal/customer"
	perrors "github.com/NikitaCOEUR/prefixgender/internal/errors"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store is a SQLite-backed customer.Store and customer.AttributeSource
type Store struct {
	db   *sql.DB
	path string
}

var (
	_ customer.Store           = (*Store)(nil)
	_ customer.AttributeSource = (*Store)(nil)
)

// Open opens (creating if needed) the database at path and ensures the schema exists
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, perrors.NewStoreError("open", "failed to create database directory", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, perrors.NewStoreError("open", "failed to open database", err)
	}

	// SQLite only supports one writer at a time
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, perrors.NewStoreError("open", "failed to set pragma", err)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, perrors.NewStoreError("open", "failed to initialize schema", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close releases the database handle
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file location
func (s *Store) Path() string {
	return s.path
}

// All returns every customer ordered by id
func (s *Store) All(ctx context.Context) ([]customer.Record, error) {
	rows, err := s.db.QueryContext(ctx, selectCustomers+" ORDER BY entity_id")
	if err != nil {
		return nil, perrors.NewStoreError("all", "failed to query customers", err)
	}
	defer func() { _ = rows.Close() }()

	var records []customer.Record
	for rows.Next() {
		var r customer.Record
		if err := rows.Scan(&r.ID, &r.FirstName, &r.LastName, &r.Prefix, &r.Gender); err != nil {
			return nil, perrors.NewStoreError("all", "failed to scan customer", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, perrors.NewStoreError("all", "failed to iterate customers", err)
	}
	return records, nil
}

// Load returns a single customer
func (s *Store) Load(ctx context.Context, id int64) (*customer.Record, error) {
	var r customer.Record
	err := s.db.QueryRowContext(ctx, selectCustomers+" WHERE entity_id = ?", id).
		Scan(&r.ID, &r.FirstName, &r.LastName, &r.Prefix, &r.Gender)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, perrors.NewNotFoundError("customer", fmt.Sprintf("customer %d not found", id))
	}
	if err != nil {
		return nil, perrors.NewStoreError("load", fmt.Sprintf("failed to load customer %d", id), err)
	}
	return &r, nil
}

// Save writes back an existing customer. It never creates records.
func (s *Store) Save(ctx context.Context, r *customer.Record) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE customer_entity SET firstname = ?, lastname = ?, prefix = ?, gender = ?,
		 updated_at = CURRENT_TIMESTAMP WHERE entity_id = ?`,
		r.FirstName, r.LastName, r.Prefix, r.Gender, r.ID)
	if err != nil {
		return perrors.NewStoreError("save", fmt.Sprintf("failed to save customer %d", r.ID), err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return perrors.NewStoreError("save", "failed to read affected rows", err)
	}
	if n == 0 {
		return perrors.NewNotFoundError("customer", fmt.Sprintf("customer %d not found", r.ID))
	}
	return nil
}

// Insert adds or replaces a customer. Only used when seeding fixtures.
func (s *Store) Insert(ctx context.Context, r *customer.Record) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO customer_entity (entity_id, firstname, lastname, prefix, gender)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(entity_id) DO UPDATE SET
		   firstname = excluded.firstname,
		   lastname = excluded.lastname,
		   prefix = excluded.prefix,
		   gender = excluded.gender,
		   updated_at = CURRENT_TIMESTAMP`,
		r.ID, r.FirstName, r.LastName, r.Prefix, r.Gender)
	if err != nil {
		return perrors.NewStoreError("insert", fmt.Sprintf("failed to insert customer %d", r.ID), err)
	}
	return nil
}

// Attribute looks up attribute metadata and its options
func (s *Store) Attribute(ctx context.Context, entityType, code string) (*customer.Attribute, error) {
	var (
		id         int64
		usesSource bool
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT attribute_id, uses_source FROM eav_attribute WHERE entity_type = ? AND attribute_code = ?`,
		entityType, code).Scan(&id, &usesSource)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, perrors.NewNotFoundError("attribute", fmt.Sprintf("attribute %s/%s not found", entityType, code))
	}
	if err != nil {
		return nil, perrors.NewStoreError("attribute", "failed to query attribute", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT label, value FROM eav_attribute_option WHERE attribute_id = ? ORDER BY sort_order, option_id`, id)
	if err != nil {
		return nil, perrors.NewStoreError("attribute", "failed to query attribute options", err)
	}
	defer func() { _ = rows.Close() }()

	var options []customer.Option
	for rows.Next() {
		var o customer.Option
		if err := rows.Scan(&o.Label, &o.Value); err != nil {
			return nil, perrors.NewStoreError("attribute", "failed to scan attribute option", err)
		}
		options = append(options, o)
	}
	if err := rows.Err(); err != nil {
		return nil, perrors.NewStoreError("attribute", "failed to iterate attribute options", err)
	}

	return customer.NewAttribute(entityType, code, usesSource, options), nil
}

// PutAttribute registers an attribute, replacing any previous option list
func (s *Store) PutAttribute(ctx context.Context, a *customer.Attribute) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return perrors.NewStoreError("put_attribute", "failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	var id int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO eav_attribute (entity_type, attribute_code, uses_source) VALUES (?, ?, ?)
		 ON CONFLICT(entity_type, attribute_code) DO UPDATE SET uses_source = excluded.uses_source
		 RETURNING attribute_id`,
		a.EntityType, a.Code, a.UsesSource).Scan(&id)
	if err != nil {
		return perrors.NewStoreError("put_attribute", "failed to upsert attribute", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM eav_attribute_option WHERE attribute_id = ?`, id); err != nil {
		return perrors.NewStoreError("put_attribute", "failed to clear attribute options", err)
	}
	for i, o := range a.Options(false) {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO eav_attribute_option (attribute_id, label, value, sort_order) VALUES (?, ?, ?, ?)`,
			id, o.Label, o.Value, i); err != nil {
			return perrors.NewStoreError("put_attribute", "failed to insert attribute option", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return perrors.NewStoreError("put_attribute", "failed to commit attribute", err)
	}
	return nil
}
