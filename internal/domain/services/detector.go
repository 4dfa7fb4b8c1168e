// Package services contains the pure normalization logic: filename
// canonicalization and archive format detection.
package services

import (
	"strings"

	"github.com/jcschwartz84/Recipes/internal/domain/entities"
)

// CanonicalName strips everything from the first '?' in a filename.
// Download URLs sometimes leave their query string glued onto the saved
// file; the part before the '?' is the real name. Names without a '?'
// come back unchanged.
func CanonicalName(filename string) string {
	if idx := strings.IndexByte(filename, '?'); idx >= 0 {
		return filename[:idx]
	}
	return filename
}

// FormatDetector maps canonical filenames to archive format tags
type FormatDetector struct{}

// NewFormatDetector creates a new format detector
func NewFormatDetector() *FormatDetector {
	return &FormatDetector{}
}

// IsDiskImage reports whether the filename already carries the disk
// image extension, in which case no extraction is needed.
func (d *FormatDetector) IsDiskImage(filename string) bool {
	return strings.HasSuffix(filename, entities.DiskImageSuffix)
}

// Detect matches the filename against the known suffix table. The table
// is ordered most-specific first, so .tar.gz can never be taken for a
// bare .tar. Unmatched names fail with an UnrecognizedFormatError; a
// matched tag outside the supported set (unreachable through the table)
// fails with a ConfigurationError listing the valid tags.
func (d *FormatDetector) Detect(filename string) (entities.ArchiveFormat, error) {
	for _, fs := range entities.FormatSuffixes {
		if strings.HasSuffix(filename, fs.Suffix) {
			if !fs.Format.Valid() {
				return "", entities.NewInvalidFormatError(fs.Format)
			}
			return fs.Format, nil
		}
	}
	return "", entities.NewUnrecognizedFormatError(filename)
}
