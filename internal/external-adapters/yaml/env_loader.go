// Package yaml loads invocation environments from YAML option files.
package yaml

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jcschwartz84/Recipes/internal/domain/entities"
)

// EnvLoader reads a host-supplied YAML option mapping
type EnvLoader struct{}

// NewEnvLoader creates a new environment loader
func NewEnvLoader() *EnvLoader {
	return &EnvLoader{}
}

// LoadFile parses a YAML option file into a flat option mapping
func (l *EnvLoader) LoadFile(filePath string) (map[string]string, error) {
	//nolint:gosec // G304: filePath is the host-supplied option file
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	values, err := l.Load(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filePath, err)
	}
	return values, nil
}

// Load parses YAML bytes into a flat option mapping. Scalar values of
// any YAML type are accepted and rendered to strings; nested mappings
// and sequences are rejected.
func (l *EnvLoader) Load(data []byte) (map[string]string, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	values := make(map[string]string, len(raw))
	for key, value := range raw {
		switch value.(type) {
		case nil:
			values[key] = ""
		case map[string]interface{}, []interface{}:
			return nil, fmt.Errorf("option %q must be a scalar value", key)
		default:
			values[key] = fmt.Sprint(value)
		}
	}

	return values, nil
}

// LoadEnvFile is a convenience wrapper producing an entities.Env
func (l *EnvLoader) LoadEnvFile(filePath string) (*entities.Env, error) {
	values, err := l.LoadFile(filePath)
	if err != nil {
		return nil, err
	}
	return entities.NewEnv(values), nil
}
