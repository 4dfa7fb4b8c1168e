// Package extract provides the archive extraction collaborators: an
// in-process implementation and one backed by platform utilities.
package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/codeclysm/extract/v3"

	"github.com/jcschwartz84/Recipes/internal/domain/entities"
)

// GoExtractor unpacks archives in-process using codeclysm/extract
type GoExtractor struct{}

// NewGoExtractor creates a new in-process extractor
func NewGoExtractor() *GoExtractor {
	return &GoExtractor{}
}

// Extract unpacks the archive at src into dst
func (g *GoExtractor) Extract(ctx context.Context, format entities.ArchiveFormat, src, dst string) error {
	//nolint:gosec // G304: src is the step's canonical source artifact
	file, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer file.Close()

	switch format {
	case entities.FormatZip:
		err = extract.Zip(ctx, file, dst, nil)
	case entities.FormatTarGzip:
		err = extract.Gz(ctx, file, dst, nil)
	case entities.FormatTarBzip2:
		err = extract.Bz2(ctx, file, dst, nil)
	case entities.FormatTar:
		err = extract.Tar(ctx, file, dst, nil)
	case entities.FormatGzip:
		// A bare gzip stream decompresses to a single file named after
		// the archive, inside the destination.
		target := filepath.Join(dst, strings.TrimSuffix(filepath.Base(src), ".gzip"))
		err = extract.Gz(ctx, file, target, nil)
	default:
		return entities.NewInvalidFormatError(format)
	}

	if err != nil {
		return fmt.Errorf("failed to unpack %s archive: %w", format, err)
	}
	return nil
}
