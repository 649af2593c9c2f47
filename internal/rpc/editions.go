package rpc

import (
	"context"
	"errors"
	"net/http"

	"github.com/daniilsolovey/editions/internal/catalog"
	"github.com/vmkteam/zenrpc/v2"
)

//go:generate zenrpc

// EditionService provides RPC methods for edition operations.
type EditionService struct {
	zenrpc.Service
	manager *catalog.Manager
}

func NewEditionService(manager *catalog.Manager) *EditionService {
	return &EditionService{manager: manager}
}

// newError converts manager errors to zenrpc errors with HTTP-like codes.
func newError(err error) error {
	var ve *catalog.ValidationError
	switch {
	case errors.As(err, &ve):
		if len(ve.Fields) > 0 {
			return zenrpc.NewStringError(http.StatusBadRequest, ve.Message+": "+ve.Details())
		}
		return zenrpc.NewStringError(http.StatusBadRequest, ve.Message)
	case errors.Is(err, catalog.ErrNotFound):
		return zenrpc.NewStringError(http.StatusNotFound, catalog.MsgNotFound)
	default:
		return zenrpc.NewStringError(http.StatusInternalServerError, "internal error")
	}
}

// List searches, filters, sorts and paginates editions.
//
//zenrpc:query list parameters
//zenrpc:return page of editions
//zenrpc:500 internal server error
func (s *EditionService) List(ctx context.Context, query Query) (*EditionsPage, error) {
	page, err := s.manager.Editions(ctx, query.ToModel())
	if err != nil {
		return nil, newError(err)
	}

	result := NewEditionsPage(*page)
	return &result, nil
}

// ByID retrieves a single edition.
//
//zenrpc:id edition numeric ID
//zenrpc:return edition
//zenrpc:400 id must be positive
//zenrpc:404 Edition not found
//zenrpc:500 internal server error
func (s *EditionService) ByID(ctx context.Context, id int) (*Edition, error) {
	if id <= 0 {
		return nil, newError(catalog.ErrInvalidID())
	}

	edition, err := s.manager.EditionByID(ctx, id)
	if err != nil {
		return nil, newError(err)
	}

	result := NewEdition(*edition)
	return &result, nil
}

// Create adds a new edition and returns it with its id.
//
//zenrpc:edition edition fields
//zenrpc:return created edition
//zenrpc:400 invalid edition data
//zenrpc:500 internal server error
func (s *EditionService) Create(ctx context.Context, edition EditionInput) (*Edition, error) {
	created, err := s.manager.CreateEdition(ctx, edition.ToModel())
	if err != nil {
		return nil, newError(err)
	}

	result := NewEdition(*created)
	return &result, nil
}

// Update replaces every field of an edition except its id.
//
//zenrpc:id edition numeric ID
//zenrpc:edition edition fields
//zenrpc:return updated edition
//zenrpc:400 invalid edition data
//zenrpc:404 Edition not found
//zenrpc:500 internal server error
func (s *EditionService) Update(ctx context.Context, id int, edition EditionInput) (*Edition, error) {
	if id <= 0 {
		return nil, newError(catalog.ErrInvalidID())
	}

	updated, err := s.manager.UpdateEdition(ctx, id, edition.ToModel())
	if err != nil {
		return nil, newError(err)
	}

	result := NewEdition(*updated)
	return &result, nil
}

// Delete removes an edition and returns it.
//
//zenrpc:id edition numeric ID
//zenrpc:return deleted edition
//zenrpc:400 id must be positive
//zenrpc:404 Edition not found
//zenrpc:500 internal server error
func (s *EditionService) Delete(ctx context.Context, id int) (*Edition, error) {
	if id <= 0 {
		return nil, newError(catalog.ErrInvalidID())
	}

	deleted, err := s.manager.DeleteEdition(ctx, id)
	if err != nil {
		return nil, newError(err)
	}

	result := NewEdition(*deleted)
	return &result, nil
}

// Categories returns the allowed edition categories.
//
//zenrpc:return list of categories
func (s *EditionService) Categories(_ context.Context) ([]string, error) {
	return catalog.Categories(), nil
}
