// Package store implements the persistent store for companies, news, ICPs,
// leads and the India real-estate enrichment entities. Duplicate prevention
// is by pre-insert lookup on natural keys (ticker, name, URL, registration
// id), not by relying on unique-constraint rejection.
package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/jordanlanch/bizradar/pkg/logger"
)

// ErrNotFound is returned when a lookup by natural key matches no row.
var ErrNotFound = errors.New("not found")

// Store wraps the database handle with the persistence operations the agents
// use. A single Store is shared by all components of a unit of work; callers
// own its lifecycle.
type Store struct {
	db  *gorm.DB
	log logger.Logger
}

// New creates a Store on top of an open gorm handle.
func New(db *gorm.DB, log logger.Logger) *Store {
	if log == nil {
		log = logger.Default()
	}
	return &Store{db: db, log: log}
}

// DB exposes the underlying handle for callers that need raw access (tests,
// seeding).
func (s *Store) DB() *gorm.DB {
	return s.db
}

func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
