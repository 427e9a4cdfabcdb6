// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

package main

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"gcalc/gaussian"
	"gcalc/identity"
)

var errNoRegistry = errors.New("no identity registry")

// Registry records which canonical value each identity was derived from.
// An identity, once recorded for a canonical string, is never reassigned.
type Registry struct {
	db *sql.DB
}

type RegistryEntry struct {
	ID        uuid.UUID
	Canonical string
	Class     string
	CreatedAt time.Time
}

// openRegistry initializes the SQLite database at path
func openRegistry(path string) (*Registry, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create registry directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open registry: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS identities (
		canonical TEXT PRIMARY KEY,
		uuid TEXT NOT NULL UNIQUE,
		class TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Registry{db: db}, nil
}

// openExistingRegistry opens the configured registry for reading. Unless
// recording is enabled, a missing database is an error rather than created.
func openExistingRegistry() (*Registry, error) {
	if !options.registry {
		if _, err := os.Stat(options.registryPath); errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w at %s: enable it with --registry", errNoRegistry, options.registryPath)
		}
	}
	return openRegistry(options.registryPath)
}

func (r *Registry) Close() error {
	return r.db.Close()
}

// slot loads the identity already recorded for canonical, if any.
func (r *Registry) slot(canonical string) (identity.Slot, error) {
	var text string
	err := r.db.QueryRow(`SELECT uuid FROM identities WHERE canonical = ?`, canonical).Scan(&text)
	if errors.Is(err, sql.ErrNoRows) {
		return identity.Slot{}, nil
	}
	if err != nil {
		return identity.Slot{}, err
	}

	id, err := uuid.Parse(text)
	if err != nil {
		return identity.Slot{}, fmt.Errorf("corrupt registry entry for %s: %w", canonical, err)
	}
	return identity.Assigned(id), nil
}

// Record derives and stores the identity of v. Recording the same value
// again is a no-op; a stored identity that differs from the derived one is
// reported rather than overwritten.
func (r *Registry) Record(v gaussian.Rational) (uuid.UUID, error) {
	canonical := v.Canonical()
	id := identity.Of(v)

	slot, err := r.slot(canonical)
	if err != nil {
		return uuid.Nil, err
	}

	assigned, err := slot.Assign(id)
	if err != nil {
		if existing, _ := slot.ID(); existing == id {
			return id, nil
		}
		return uuid.Nil, fmt.Errorf("registry entry for %s: %w", canonical, err)
	}

	stored, _ := assigned.ID()
	_, err = r.db.Exec(`INSERT INTO identities (canonical, uuid, class) VALUES (?, ?, ?)`,
		canonical, stored.String(), v.Classify().String())
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to record %s: %w", canonical, err)
	}
	return stored, nil
}

// Lookup returns the value recorded under id.
func (r *Registry) Lookup(id uuid.UUID) (gaussian.Rational, bool, error) {
	var canonical string
	err := r.db.QueryRow(`SELECT canonical FROM identities WHERE uuid = ?`, id.String()).Scan(&canonical)
	if errors.Is(err, sql.ErrNoRows) {
		return gaussian.Rational{}, false, nil
	}
	if err != nil {
		return gaussian.Rational{}, false, err
	}

	v, err := gaussian.Parse(canonical)
	if err != nil {
		return gaussian.Rational{}, false, fmt.Errorf("corrupt registry entry %s: %w", id, err)
	}
	return v, true, nil
}

// List returns every entry, oldest first.
func (r *Registry) List() ([]RegistryEntry, error) {
	rows, err := r.db.Query(`SELECT uuid, canonical, class, created_at FROM identities ORDER BY created_at, rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []RegistryEntry
	for rows.Next() {
		var entry RegistryEntry
		var text string
		if err := rows.Scan(&text, &entry.Canonical, &entry.Class, &entry.CreatedAt); err != nil {
			return nil, err
		}
		if entry.ID, err = uuid.Parse(text); err != nil {
			return nil, fmt.Errorf("corrupt registry entry for %s: %w", entry.Canonical, err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
