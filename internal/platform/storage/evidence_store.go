package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/SvcLearn/service_learning_app/internal/utils"
)

// EvidenceStore persists evidence artifacts attached to ledger entries.
// Paths are opaque handles; callers never interpret them.
type EvidenceStore interface {
	// Store writes an artifact and returns its opaque path.
	Store(ctx context.Context, originalName string, content io.Reader) (string, error)

	// Delete removes a stored artifact. Deleting a missing artifact is not an error.
	Delete(ctx context.Context, path string) error
}

// localEvidenceStore keeps artifacts on the local filesystem under a
// configured directory.
type localEvidenceStore struct {
	dir string
}

// NewLocalEvidenceStore creates a filesystem-backed evidence store rooted at dir.
func NewLocalEvidenceStore(dir string) (EvidenceStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create evidence dir: %w", err)
	}
	return &localEvidenceStore{dir: dir}, nil
}

func (s *localEvidenceStore) Store(ctx context.Context, originalName string, content io.Reader) (string, error) {
	// Random names keep uploads from colliding or path-escaping.
	name, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return "", fmt.Errorf("generate evidence name: %w", err)
	}
	if ext := filepath.Ext(originalName); ext != "" {
		name += ext
	}

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create evidence file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		return "", fmt.Errorf("write evidence file: %w", err)
	}
	return name, nil
}

func (s *localEvidenceStore) Delete(ctx context.Context, path string) error {
	// The stored handle is a bare generated filename; reject anything else.
	if filepath.Base(path) != path {
		return fmt.Errorf("invalid evidence path %q", path)
	}
	err := os.Remove(filepath.Join(s.dir, path))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete evidence file: %w", err)
	}
	return nil
}
