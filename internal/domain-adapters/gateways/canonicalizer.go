// Package gateways provides filesystem adapters for the normalization step.
package gateways

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jcschwartz84/Recipes/internal/domain/services"
)

// Canonicalizer renames downloaded files to their canonical name
type Canonicalizer struct{}

// NewCanonicalizer creates a new canonicalizer
func NewCanonicalizer() *Canonicalizer {
	return &Canonicalizer{}
}

// Canonicalize renames the file at path so its name has any query
// string suffix stripped, keeping it in the same parent directory, and
// returns the canonical path. The rename is a one-way mutation; a name
// without a '?' is returned unchanged and nothing is touched.
func (c *Canonicalizer) Canonicalize(path string) (string, error) {
	dir := filepath.Dir(path)
	name := filepath.Base(path)

	canonical := services.CanonicalName(name)
	if canonical == name {
		return path, nil
	}

	newPath := filepath.Join(dir, canonical)
	if err := os.Rename(path, newPath); err != nil {
		return "", fmt.Errorf("failed to rename %s to %s: %w", path, newPath, err)
	}

	return newPath, nil
}
