// Package entities defines core domain models and data structures.
package entities

import "strings"

// Option names read from the invocation environment. The host pipeline
// supplies these; they are immutable for the duration of one step run.
const (
	OptionPathname         = "pathname"
	OptionArchivePath      = "archive_path"
	OptionPurgeDestination = "purge_destination"
	OptionDestinationPath  = "destination_path"
	OptionExtractorMode    = "extractor_mode"
	OptionSignaturePath    = "signature_path"
	OptionGPGKeyPaths      = "gpg_key_paths"

	// Values the host always provides alongside step options.
	OptionName           = "NAME"
	OptionRecipeCacheDir = "RECIPE_CACHE_DIR"

	// OutputDiskImagePath is the single value this step publishes back
	// to the host pipeline.
	OutputDiskImagePath = "dmg_path"
)

// Env is the option mapping for one step invocation
type Env struct {
	values map[string]string
}

// NewEnv creates an environment from a host-supplied option mapping
func NewEnv(values map[string]string) *Env {
	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return &Env{values: copied}
}

// Get returns the value for key, or "" when unset
func (e *Env) Get(key string) string {
	return e.values[key]
}

// Lookup returns the value for key and whether it was set
func (e *Env) Lookup(key string) (string, bool) {
	v, ok := e.values[key]
	return v, ok
}

// GetBool interprets an option as a boolean. Unset, empty, "0", "false"
// and "no" are false; everything else is true.
func (e *Env) GetBool(key string) bool {
	switch strings.ToLower(e.values[key]) {
	case "", "0", "false", "no":
		return false
	default:
		return true
	}
}

// GetList splits a comma-separated option into its entries, dropping
// empty elements.
func (e *Env) GetList(key string) []string {
	raw := e.values[key]
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}
