package extract

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/jcschwartz84/Recipes/internal/domain/entities"
)

// NativeExtractor unpacks archives by calling platform utilities,
// ditto for flat formats and tar for the tar family.
type NativeExtractor struct{}

// NewNativeExtractor creates a new platform-utility extractor
func NewNativeExtractor() *NativeExtractor {
	return &NativeExtractor{}
}

// command returns the utility invocation for one format
func (n *NativeExtractor) command(format entities.ArchiveFormat, src, dst string) ([]string, error) {
	switch format {
	case entities.FormatZip:
		return []string{"/usr/bin/ditto", "--noqtn", "-x", "-k", src, dst}, nil
	case entities.FormatGzip:
		return []string{"/usr/bin/ditto", "--noqtn", "-x", src, dst}, nil
	case entities.FormatTarGzip:
		return []string{"/usr/bin/tar", "-x", "-z", "-f", src, "-C", dst}, nil
	case entities.FormatTarBzip2:
		return []string{"/usr/bin/tar", "-x", "-j", "-f", src, "-C", dst}, nil
	case entities.FormatTar:
		return []string{"/usr/bin/tar", "-x", "-f", src, "-C", dst}, nil
	default:
		return nil, entities.NewInvalidFormatError(format)
	}
}

// Extract unpacks the archive at src into dst via the matching utility
func (n *NativeExtractor) Extract(ctx context.Context, format entities.ArchiveFormat, src, dst string) error {
	argv, err := n.command(format, src, dst)
	if err != nil {
		return err
	}

	//nolint:gosec // G204: Utility and arguments come from the fixed command table
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return fmt.Errorf("%s failed: %s: %w", argv[0], detail, err)
		}
		return fmt.Errorf("%s failed: %w", argv[0], err)
	}

	return nil
}
