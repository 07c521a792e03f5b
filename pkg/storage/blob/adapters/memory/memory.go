// Package memory implements an in-memory blob.Store, used in tests and as
// a dependency-free fallback.
package memory

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/fareltaza35/atscore/pkg/errors"
	"github.com/fareltaza35/atscore/pkg/storage/blob"
)

// Store is a map-backed blob.Store. Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

// New creates an empty in-memory Store. cfg is accepted for interface
// symmetry with the other adapters; it has no effect.
func New(_ blob.Config) *Store {
	return &Store{objects: make(map[string][]byte)}
}

func (s *Store) Upload(_ context.Context, key string, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errors.Internal("failed to read upload payload", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return nil
}

func (s *Store) Download(_ context.Context, key string) (io.ReadCloser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.objects[key]
	if !ok {
		return nil, errors.NotFound("blob not found: "+key, nil)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.objects[key]; !ok {
		return errors.NotFound("blob not found: "+key, nil)
	}
	delete(s.objects, key)
	return nil
}
