package services

import (
	"context"

	"voicemap/internal/app/storage/signs"
)

// SignServiceImpl implements SignService
type SignServiceImpl struct {
	store signs.Store
}

// NewSignService creates a new sign service
func NewSignService(store signs.Store) SignService {
	return &SignServiceImpl{store: store}
}

// Open returns the named sign video or signs.ErrNotFound
func (s *SignServiceImpl) Open(ctx context.Context, filename string) (*signs.Object, error) {
	if !signs.ValidName(filename) {
		return nil, signs.ErrNotFound
	}
	return s.store.Open(ctx, filename)
}
