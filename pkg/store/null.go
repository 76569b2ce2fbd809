package store

import (
	"context"

	"github.com/AndySiamas/LayoutLens/pkg/errors"
)

// NullStore discards every record.
type NullStore struct{}

// NewNullStore creates a null store.
func NewNullStore() Store { return NullStore{} }

func (NullStore) Save(context.Context, Record) error { return nil }

func (NullStore) Get(_ context.Context, runID string) (*Record, error) {
	return nil, errors.New(errors.ErrCodeNotFound, "run %q not found", runID)
}

func (NullStore) Close() error { return nil }

var _ Store = NullStore{}
