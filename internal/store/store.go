// Package store is the durable ledger for all entities. Every component
// receives a Store handle explicitly; there is no shared global session.
package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mdatascience375-source/SSMK-Inventory-Suite/internal/model"
)

// ErrNotFound reports a missing or archived record.
var ErrNotFound = errors.New("record not found")

// Store wraps the database handle with the queries the service needs.
type Store struct {
	db *gorm.DB
}

// New creates a Store over an open database handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for transaction scoping.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Transaction runs fn in a single atomic transaction; any returned error
// rolls back every write made inside it.
func (s *Store) Transaction(fn func(tx *gorm.DB) error) error {
	return s.db.Transaction(fn)
}

// archive flips an active record to archived. ErrNotFound when there is no
// active row with that id.
func (s *Store) archive(value interface{}, id uint) error {
	result := s.db.Model(value).
		Where("id = ? AND status = ?", id, model.StatusActive).
		Update("status", model.StatusArchived)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
