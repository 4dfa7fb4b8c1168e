package interfaces

import (
	"context"

	"github.com/jcschwartz84/Recipes/internal/domain/entities"
)

// Extractor unpacks a recognized archive into a destination directory.
// The normalizer core never extracts anything itself; it hands every
// archive to one of these.
type Extractor interface {
	Extract(ctx context.Context, format entities.ArchiveFormat, src, dst string) error
}

// Extractor modes selectable through the extractor_mode option
const (
	ExtractorModeNative = "native"
	ExtractorModeGo     = "go"
)

// DefaultExtractorMode picks the extractor for a platform when the
// extractor_mode option is unset: platform utilities on darwin, the
// in-process implementation everywhere else.
func DefaultExtractorMode(goos string) string {
	if goos == "darwin" {
		return ExtractorModeNative
	}
	return ExtractorModeGo
}
