package db

import (
	"context"
	"fmt"
)

// Repository implements the edition operations on top of a Store.
// Each mutation is a load, in-memory change and full save. There is no lock
// across that cycle, so concurrent writers race and the last save wins.
type Repository struct {
	store Store
}

func New(store Store) *Repository {
	return &Repository{
		store: store,
	}
}

func (r *Repository) Close() error {
	return r.store.Close()
}

// Editions returns the whole collection in stored order.
func (r *Repository) Editions(ctx context.Context) ([]Edition, error) {
	list, err := r.store.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load editions: %w", err)
	}
	return list, nil
}

func (r *Repository) EditionByID(ctx context.Context, id int) (*Edition, error) {
	list, err := r.Editions(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexByID(list, id)
	if idx == -1 {
		return nil, fmt.Errorf("edition %d: %w", id, ErrNotFound)
	}

	edition := list[idx]
	return &edition, nil
}

// InsertEdition assigns the next id to edition and appends it to the collection.
func (r *Repository) InsertEdition(ctx context.Context, edition Edition) (*Edition, error) {
	list, err := r.Editions(ctx)
	if err != nil {
		return nil, err
	}

	edition.ID = NextID(list)
	list = append(list, edition)

	if err := r.store.SaveAll(ctx, list); err != nil {
		return nil, fmt.Errorf("failed to save editions: %w", err)
	}
	return &edition, nil
}

// ReplaceEdition replaces every field of the edition with the given id except the id itself.
func (r *Repository) ReplaceEdition(ctx context.Context, id int, edition Edition) (*Edition, error) {
	list, err := r.Editions(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexByID(list, id)
	if idx == -1 {
		return nil, fmt.Errorf("edition %d: %w", id, ErrNotFound)
	}

	edition.ID = id
	list[idx] = edition

	if err := r.store.SaveAll(ctx, list); err != nil {
		return nil, fmt.Errorf("failed to save editions: %w", err)
	}
	return &edition, nil
}

// RemoveEdition deletes the edition with the given id and returns it.
func (r *Repository) RemoveEdition(ctx context.Context, id int) (*Edition, error) {
	list, err := r.Editions(ctx)
	if err != nil {
		return nil, err
	}

	idx := indexByID(list, id)
	if idx == -1 {
		return nil, fmt.Errorf("edition %d: %w", id, ErrNotFound)
	}

	removed := list[idx]
	list = append(list[:idx], list[idx+1:]...)

	if err := r.store.SaveAll(ctx, list); err != nil {
		return nil, fmt.Errorf("failed to save editions: %w", err)
	}
	return &removed, nil
}

// ReplaceAll overwrites the collection, used by imports.
func (r *Repository) ReplaceAll(ctx context.Context, editions []Edition) error {
	if err := r.store.SaveAll(ctx, editions); err != nil {
		return fmt.Errorf("failed to save editions: %w", err)
	}
	return nil
}

func indexByID(list []Edition, id int) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}
