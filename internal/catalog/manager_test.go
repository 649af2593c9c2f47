package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/daniilsolovey/editions/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noOpLogger creates a logger that discards all output for tests
func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}

// mockRepository is a manual stub implementation of EditionRepository for testing
type mockRepository struct {
	editionsFunc func(ctx context.Context) ([]db.Edition, error)
	byIDFunc     func(ctx context.Context, id int) (*db.Edition, error)
	insertFunc   func(ctx context.Context, edition db.Edition) (*db.Edition, error)
	replaceFunc  func(ctx context.Context, id int, edition db.Edition) (*db.Edition, error)
	removeFunc   func(ctx context.Context, id int) (*db.Edition, error)
	replaceAll   func(ctx context.Context, editions []db.Edition) error
}

func (m *mockRepository) Editions(ctx context.Context) ([]db.Edition, error) {
	if m.editionsFunc != nil {
		return m.editionsFunc(ctx)
	}
	return nil, nil
}

func (m *mockRepository) EditionByID(ctx context.Context, id int) (*db.Edition, error) {
	if m.byIDFunc != nil {
		return m.byIDFunc(ctx, id)
	}
	return nil, fmt.Errorf("edition %d: %w", id, db.ErrNotFound)
}

func (m *mockRepository) InsertEdition(ctx context.Context, edition db.Edition) (*db.Edition, error) {
	if m.insertFunc != nil {
		return m.insertFunc(ctx, edition)
	}
	return &edition, nil
}

func (m *mockRepository) ReplaceEdition(ctx context.Context, id int, edition db.Edition) (*db.Edition, error) {
	if m.replaceFunc != nil {
		return m.replaceFunc(ctx, id, edition)
	}
	return &edition, nil
}

func (m *mockRepository) RemoveEdition(ctx context.Context, id int) (*db.Edition, error) {
	if m.removeFunc != nil {
		return m.removeFunc(ctx, id)
	}
	return nil, fmt.Errorf("edition %d: %w", id, db.ErrNotFound)
}

func (m *mockRepository) ReplaceAll(ctx context.Context, editions []db.Edition) error {
	if m.replaceAll != nil {
		return m.replaceAll(ctx, editions)
	}
	return nil
}

func TestManager_Editions(t *testing.T) {
	ctx := context.Background()

	t.Run("RunsPipeline", func(t *testing.T) {
		repo := &mockRepository{
			editionsFunc: func(ctx context.Context) ([]db.Edition, error) {
				return []db.Edition{
					{ID: 1, Title: "Jan", Date: "2024-01-01", Category: CategoryMonthly},
					{ID: 2, Title: "Jun", Date: "2024-06-01", Category: CategorySpecial},
				}, nil
			},
		}
		m := NewManager(repo, noOpLogger())

		page, err := m.Editions(ctx, Query{SortBy: "date", Order: OrderAsc})
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, ids(page.Editions))
		assert.Equal(t, 2, page.Total)
	})

	t.Run("StoreError", func(t *testing.T) {
		repo := &mockRepository{
			editionsFunc: func(ctx context.Context) ([]db.Edition, error) {
				return nil, errors.New("connection refused")
			},
		}
		m := NewManager(repo, noOpLogger())

		_, err := m.Editions(ctx, Query{})
		assert.Error(t, err)
		assert.False(t, IsValidationError(err))
	})
}

func TestManager_EditionByID(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepository{
		byIDFunc: func(ctx context.Context, id int) (*db.Edition, error) {
			if id == 5 {
				return &db.Edition{ID: 5, Title: "Five"}, nil
			}
			return nil, fmt.Errorf("edition %d: %w", id, db.ErrNotFound)
		},
	}
	m := NewManager(repo, noOpLogger())

	edition, err := m.EditionByID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "Five", edition.Title)

	_, err = m.EditionByID(ctx, 6)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestManager_CreateEdition(t *testing.T) {
	ctx := context.Background()

	t.Run("ValidForm", func(t *testing.T) {
		var saved db.Edition
		repo := &mockRepository{
			insertFunc: func(ctx context.Context, edition db.Edition) (*db.Edition, error) {
				saved = edition
				edition.ID = 12
				return &edition, nil
			},
		}
		m := NewManager(repo, noOpLogger())

		edition, err := m.CreateEdition(ctx, validForm())
		require.NoError(t, err)
		assert.Equal(t, 12, edition.ID)
		assert.Equal(t, "Spring Edition", edition.Title)
		assert.Equal(t, 0, saved.ID)
		assert.Equal(t, 32, saved.Pages)
	})

	t.Run("ZeroPagesRejected", func(t *testing.T) {
		repo := &mockRepository{
			insertFunc: func(ctx context.Context, edition db.Edition) (*db.Edition, error) {
				t.Fatal("insert must not be called for invalid input")
				return nil, nil
			},
		}
		m := NewManager(repo, noOpLogger())

		form := validForm()
		form.Pages = 0
		_, err := m.CreateEdition(ctx, form)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
		assert.Equal(t, "All fields are required", err.Error())
	})

	t.Run("StoreError", func(t *testing.T) {
		repo := &mockRepository{
			insertFunc: func(ctx context.Context, edition db.Edition) (*db.Edition, error) {
				return nil, errors.New("disk full")
			},
		}
		m := NewManager(repo, noOpLogger())

		_, err := m.CreateEdition(ctx, validForm())
		require.Error(t, err)
		assert.False(t, IsValidationError(err))
		assert.Contains(t, err.Error(), "disk full")
	})
}

func TestManager_UpdateEdition(t *testing.T) {
	ctx := context.Background()

	var gotID int
	repo := &mockRepository{
		replaceFunc: func(ctx context.Context, id int, edition db.Edition) (*db.Edition, error) {
			gotID = id
			if id != 3 {
				return nil, fmt.Errorf("edition %d: %w", id, db.ErrNotFound)
			}
			edition.ID = id
			return &edition, nil
		},
	}
	m := NewManager(repo, noOpLogger())

	form := validForm()
	form.Category = CategoryAnnual
	edition, err := m.UpdateEdition(ctx, 3, form)
	require.NoError(t, err)
	assert.Equal(t, 3, gotID)
	assert.Equal(t, 3, edition.ID)
	assert.Equal(t, CategoryAnnual, edition.Category)

	_, err = m.UpdateEdition(ctx, 4, form)
	assert.ErrorIs(t, err, ErrNotFound)

	form.Title = ""
	_, err = m.UpdateEdition(ctx, 3, form)
	assert.True(t, IsValidationError(err))
}

func TestManager_DeleteEdition(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepository{
		removeFunc: func(ctx context.Context, id int) (*db.Edition, error) {
			return &db.Edition{ID: id, Title: "Gone"}, nil
		},
	}
	m := NewManager(repo, noOpLogger())

	edition, err := m.DeleteEdition(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, 9, edition.ID)
	assert.Equal(t, "Gone", edition.Title)
}

func TestManager_DeleteThenGet(t *testing.T) {
	ctx := context.Background()
	store := db.NewJSONStore(t.TempDir()+"/db.json", noOpLogger())
	defer store.Close()
	m := NewManager(db.New(store), noOpLogger())

	for i := 0; i < 3; i++ {
		_, err := m.CreateEdition(ctx, validForm())
		require.NoError(t, err)
	}

	_, err := m.DeleteEdition(ctx, 3)
	require.NoError(t, err)

	_, err = m.EditionByID(ctx, 3)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestManager_ImportEditions(t *testing.T) {
	ctx := context.Background()

	valid := func(id int) Edition {
		f := validForm()
		return Edition{
			ID: id, Title: f.Title, Date: f.Date, Description: f.Description,
			CoverImage: f.CoverImage, Link: f.Link, Category: f.Category, Pages: f.Pages,
		}
	}

	t.Run("ReplacesCollection", func(t *testing.T) {
		var saved []db.Edition
		repo := &mockRepository{
			replaceAll: func(ctx context.Context, editions []db.Edition) error {
				saved = editions
				return nil
			},
		}
		m := NewManager(repo, noOpLogger())

		require.NoError(t, m.ImportEditions(ctx, []Edition{valid(7), valid(3)}))
		require.Len(t, saved, 2)
		assert.Equal(t, 7, saved[0].ID)
		assert.Equal(t, 3, saved[1].ID)
	})

	t.Run("RejectsInvalid", func(t *testing.T) {
		repo := &mockRepository{
			replaceAll: func(ctx context.Context, editions []db.Edition) error {
				t.Errorf("must not save")
				return nil
			},
		}
		m := NewManager(repo, noOpLogger())

		bad := valid(2)
		bad.Category = "Weekly"

		for name, list := range map[string][]Edition{
			"zero id":      {valid(0)},
			"duplicate id": {valid(1), valid(1)},
			"bad field":    {valid(1), bad},
		} {
			t.Run(name, func(t *testing.T) {
				err := m.ImportEditions(ctx, list)
				assert.True(t, IsValidationError(err), "got %v", err)
			})
		}
	})

	t.Run("StoreError", func(t *testing.T) {
		repo := &mockRepository{
			replaceAll: func(ctx context.Context, editions []db.Edition) error {
				return errors.New("disk full")
			},
		}
		m := NewManager(repo, noOpLogger())

		err := m.ImportEditions(ctx, []Edition{valid(1)})
		require.Error(t, err)
		assert.False(t, IsValidationError(err))
	})
}

func TestManager_ExportEditions(t *testing.T) {
	repo := &mockRepository{
		editionsFunc: func(ctx context.Context) ([]db.Edition, error) {
			return []db.Edition{{ID: 5, Title: "Five"}, {ID: 2, Title: "Two"}}, nil
		},
	}
	m := NewManager(repo, noOpLogger())

	list, err := m.ExportEditions(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 5, list[0].ID)
	assert.Equal(t, "Two", list[1].Title)
}
