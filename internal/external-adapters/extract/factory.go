package extract

import (
	"fmt"

	"github.com/jcschwartz84/Recipes/internal/domain/entities"
	"github.com/jcschwartz84/Recipes/internal/domain/interfaces"
)

// ForMode returns the extractor implementation for an extractor_mode
// option value.
func ForMode(mode string) (interfaces.Extractor, error) {
	switch mode {
	case interfaces.ExtractorModeNative:
		return NewNativeExtractor(), nil
	case interfaces.ExtractorModeGo:
		return NewGoExtractor(), nil
	default:
		return nil, entities.NewConfigurationError(
			entities.OptionExtractorMode,
			fmt.Sprintf("%q is not valid, must be %q or %q", mode, interfaces.ExtractorModeNative, interfaces.ExtractorModeGo),
		)
	}
}
