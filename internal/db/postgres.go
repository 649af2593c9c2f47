package db

import (
	"context"
	"fmt"

	"github.com/go-pg/pg/v10"
)

// PGStore keeps the collection in the "editions" table. The "position"
// column preserves collection order.
type PGStore struct {
	db pg.DBI
}

func NewPGStore(db pg.DBI) *PGStore {
	return &PGStore{
		db: db,
	}
}

func (s *PGStore) Ping(ctx context.Context) error {
	if db, ok := s.db.(*pg.DB); ok {
		return db.Ping(ctx)
	}
	return nil
}

func (s *PGStore) Close() error {
	if db, ok := s.db.(*pg.DB); ok {
		return db.Close()
	}
	return nil
}

func (s *PGStore) LoadAll(ctx context.Context) ([]Edition, error) {
	list := []Edition{}
	err := s.db.ModelContext(ctx, &list).
		OrderExpr(`"t"."position" ASC`).
		OrderExpr(`"t"."editionId" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query editions: %w", err)
	}
	return list, nil
}

// SaveAll replaces the table contents in one transaction.
func (s *PGStore) SaveAll(ctx context.Context, editions []Edition) error {
	rows := make([]Edition, len(editions))
	for i := range editions {
		rows[i] = editions[i]
		rows[i].Position = i
	}

	return s.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM "editions"`); err != nil {
			return fmt.Errorf("failed to clear editions: %w", err)
		}

		if len(rows) == 0 {
			return nil
		}

		if _, err := tx.ModelContext(ctx, &rows).Insert(); err != nil {
			return fmt.Errorf("failed to insert editions: %w", err)
		}
		return nil
	})
}
