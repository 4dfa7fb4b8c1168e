package gateways

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jcschwartz84/Recipes/internal/domain/entities"
)

// DestinationPreparer creates and optionally purges the extraction
// destination directory.
type DestinationPreparer struct{}

// NewDestinationPreparer creates a new destination preparer
func NewDestinationPreparer() *DestinationPreparer {
	return &DestinationPreparer{}
}

// Prepare ensures the destination directory exists, creating missing
// parents. When purge is set, every immediate child is removed first:
// directories recursively, symlinks and files unlinked as plain
// entries. Purging an already-empty directory is a no-op.
func (p *DestinationPreparer) Prepare(destination string, purge bool) error {
	if err := os.MkdirAll(destination, 0750); err != nil {
		return fmt.Errorf("failed to create destination directory %s: %w", destination, err)
	}

	if !purge {
		return nil
	}

	entries, err := os.ReadDir(destination)
	if err != nil {
		return fmt.Errorf("failed to read destination directory %s: %w", destination, err)
	}

	for _, entry := range entries {
		entryPath := filepath.Join(destination, entry.Name())

		// Symlink entries report IsDir false here (ReadDir does not
		// follow links), so they fall through to os.Remove and are
		// never recursed into.
		if entry.IsDir() {
			if err := os.RemoveAll(entryPath); err != nil {
				return entities.NewCleanupError(entryPath, err)
			}
			continue
		}

		if err := os.Remove(entryPath); err != nil {
			return entities.NewCleanupError(entryPath, err)
		}
	}

	return nil
}
