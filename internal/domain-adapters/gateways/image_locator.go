package gateways

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jcschwartz84/Recipes/internal/domain/entities"
)

// ImageLocator finds the disk image produced by extraction
type ImageLocator struct{}

// NewImageLocator creates a new image locator
func NewImageLocator() *ImageLocator {
	return &ImageLocator{}
}

// Locate scans the destination directory's immediate children for a
// disk image whose name starts with the step name. os.ReadDir returns
// entries sorted by filename, so the first match is the
// lexicographically smallest, independent of filesystem listing order.
// An empty name matches any disk image.
func (l *ImageLocator) Locate(destination, name string) (string, error) {
	entries, err := os.ReadDir(destination)
	if err != nil {
		return "", fmt.Errorf("failed to read destination directory %s: %w", destination, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		filename := entry.Name()
		if strings.HasPrefix(filename, name) && strings.HasSuffix(filename, entities.DiskImageSuffix) {
			return filepath.Join(destination, filename), nil
		}
	}

	return "", entities.NewNotFoundError(destination, name)
}
