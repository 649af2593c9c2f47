package db

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no edition has the requested id.
var ErrNotFound = errors.New("edition not found")

// Store loads and saves the whole edition collection as a single unit.
// Every mutation rewrites the full collection.
type Store interface {
	LoadAll(ctx context.Context) ([]Edition, error)
	SaveAll(ctx context.Context, editions []Edition) error
	Close() error
}

// Document is the persisted layout of the collection.
type Document struct {
	Editions []Edition `json:"editions" yaml:"editions"`
}

// NextID returns 1 + the largest id in editions, or 1 for an empty collection.
func NextID(editions []Edition) int {
	maxID := 0
	for i := range editions {
		if editions[i].ID > maxID {
			maxID = editions[i].ID
		}
	}
	return maxID + 1
}
