// Package local implements a blob.Store backed by the local filesystem.
package local

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/fareltaza35/atscore/pkg/errors"
	"github.com/fareltaza35/atscore/pkg/storage/blob"
)

// Store is a blob.Store rooted at a directory on the local filesystem.
type Store struct {
	root string
}

// New creates a Store rooted at cfg.LocalDir, creating the directory if it
// does not already exist.
func New(cfg blob.Config) (*Store, error) {
	if err := os.MkdirAll(cfg.LocalDir, 0o755); err != nil {
		return nil, errors.Internal("failed to create blob root directory", err)
	}
	return &Store{root: cfg.LocalDir}, nil
}

// resolve joins key onto root, rejecting any key that would escape root.
func (s *Store) resolve(key string) (string, error) {
	path := filepath.Join(s.root, filepath.FromSlash(key))
	rel, err := filepath.Rel(s.root, path)
	if err != nil || rel == ".." || len(rel) >= 2 && rel[:2] == ".." {
		return "", errors.InvalidArgument("key escapes blob root", nil)
	}
	return path, nil
}

func (s *Store) Upload(_ context.Context, key string, r io.Reader) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Internal("failed to create blob directory", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Internal("failed to create blob file", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return errors.Internal("failed to write blob file", err)
	}
	return nil
}

func (s *Store) Download(_ context.Context, key string) (io.ReadCloser, error) {
	path, err := s.resolve(key)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("blob not found: "+key, err)
		}
		return nil, errors.Internal("failed to open blob file", err)
	}
	return f, nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return errors.NotFound("blob not found: "+key, err)
		}
		return errors.Internal("failed to delete blob file", err)
	}
	return nil
}
