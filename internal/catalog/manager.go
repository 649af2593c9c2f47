package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/daniilsolovey/editions/internal/db"
)

// EditionRepository is the record store used by Manager. *db.Repository implements it.
type EditionRepository interface {
	Editions(ctx context.Context) ([]db.Edition, error)
	EditionByID(ctx context.Context, id int) (*db.Edition, error)
	InsertEdition(ctx context.Context, edition db.Edition) (*db.Edition, error)
	ReplaceEdition(ctx context.Context, id int, edition db.Edition) (*db.Edition, error)
	RemoveEdition(ctx context.Context, id int) (*db.Edition, error)
	ReplaceAll(ctx context.Context, editions []db.Edition) error
}

type Manager struct {
	repo EditionRepository
	log  *slog.Logger
}

func NewManager(repo EditionRepository, logger *slog.Logger) *Manager {
	return &Manager{
		repo: repo,
		log:  logger,
	}
}

// Editions loads the collection and runs the query pipeline over it.
func (m *Manager) Editions(ctx context.Context, q Query) (*Page, error) {
	list, err := m.repo.Editions(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get editions: %w", err)
	}

	page := Apply(NewEditions(list), q)
	m.log.Debug("editions queried",
		"query", q.Query, "category", q.Category, "sortBy", q.SortBy, "order", q.Order,
		"total", page.Total, "page", page.Page)

	return &page, nil
}

func (m *Manager) EditionByID(ctx context.Context, id int) (*Edition, error) {
	dbEdition, err := m.repo.EditionByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get edition by id: %w", err)
	}

	edition := NewEdition(*dbEdition)
	return &edition, nil
}

func (m *Manager) CreateEdition(ctx context.Context, form EditionFormData) (*Edition, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	dbEdition, err := m.repo.InsertEdition(ctx, form.ToDB())
	if err != nil {
		return nil, fmt.Errorf("db insert edition: %w", err)
	}

	m.log.Info("edition created", "id", dbEdition.ID, "title", dbEdition.Title)
	edition := NewEdition(*dbEdition)
	return &edition, nil
}

// UpdateEdition replaces every field of the edition except its id.
func (m *Manager) UpdateEdition(ctx context.Context, id int, form EditionFormData) (*Edition, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	dbEdition, err := m.repo.ReplaceEdition(ctx, id, form.ToDB())
	if err != nil {
		return nil, fmt.Errorf("db replace edition: %w", err)
	}

	m.log.Info("edition updated", "id", dbEdition.ID)
	edition := NewEdition(*dbEdition)
	return &edition, nil
}

// DeleteEdition removes the edition and returns it as it was before removal.
func (m *Manager) DeleteEdition(ctx context.Context, id int) (*Edition, error) {
	dbEdition, err := m.repo.RemoveEdition(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db remove edition: %w", err)
	}

	m.log.Info("edition deleted", "id", dbEdition.ID)
	edition := NewEdition(*dbEdition)
	return &edition, nil
}

// ExportEditions returns the whole collection in stored order.
func (m *Manager) ExportEditions(ctx context.Context) ([]Edition, error) {
	list, err := m.repo.Editions(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get editions: %w", err)
	}

	return NewEditions(list), nil
}

// ImportEditions validates every edition and replaces the collection with them.
// Ids are kept as given and must be positive and unique.
func (m *Manager) ImportEditions(ctx context.Context, editions []Edition) error {
	seen := make(map[int]struct{}, len(editions))
	for i, e := range editions {
		if e.ID <= 0 {
			return fmt.Errorf("edition #%d: %w", i, ErrInvalidID())
		}
		if _, ok := seen[e.ID]; ok {
			return fmt.Errorf("edition #%d: duplicate id %d: %w", i, e.ID, ErrInvalidID())
		}
		seen[e.ID] = struct{}{}

		if err := e.Form().Validate(); err != nil {
			return fmt.Errorf("edition %d: %w", e.ID, err)
		}
	}

	if err := m.repo.ReplaceAll(ctx, Map(editions, Edition.ToDB)); err != nil {
		return fmt.Errorf("db replace editions: %w", err)
	}

	m.log.Info("editions imported", "count", len(editions))
	return nil
}
