package yaml

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnvLoader_Load(t *testing.T) {
	l := NewEnvLoader()

	data := []byte(`
pathname: /downloads/bundle.tar.gz?token=xyz
purge_destination: true
NAME: MyRecipeName
RECIPE_CACHE_DIR: /cache
`)

	values, err := l.Load(data)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	want := map[string]string{
		"pathname":          "/downloads/bundle.tar.gz?token=xyz",
		"purge_destination": "true",
		"NAME":              "MyRecipeName",
		"RECIPE_CACHE_DIR":  "/cache",
	}
	for key, expected := range want {
		if values[key] != expected {
			t.Errorf("values[%q] = %q, want %q", key, values[key], expected)
		}
	}
}

func TestEnvLoader_Load_RejectsNestedValues(t *testing.T) {
	l := NewEnvLoader()

	if _, err := l.Load([]byte("pathname:\n  nested: true\n")); err == nil {
		t.Error("Load() should reject nested mappings")
	}
	if _, err := l.Load([]byte("pathname: [a, b]\n")); err == nil {
		t.Error("Load() should reject sequences")
	}
}

func TestEnvLoader_Load_InvalidYAML(t *testing.T) {
	l := NewEnvLoader()

	if _, err := l.Load([]byte("pathname: [unclosed")); err == nil {
		t.Error("Load() should fail on malformed YAML")
	}
}

func TestEnvLoader_LoadEnvFile(t *testing.T) {
	l := NewEnvLoader()

	dir := t.TempDir()
	path := filepath.Join(dir, "step.yml")
	if err := os.WriteFile(path, []byte("pathname: /tmp/a.zip\npurge_destination: false\n"), 0600); err != nil {
		t.Fatalf("Failed to write option file: %v", err)
	}

	env, err := l.LoadEnvFile(path)
	if err != nil {
		t.Fatalf("LoadEnvFile() returned error: %v", err)
	}
	if got := env.Get("pathname"); got != "/tmp/a.zip" {
		t.Errorf("pathname = %q, want %q", got, "/tmp/a.zip")
	}
	if env.GetBool("purge_destination") {
		t.Error("purge_destination should be false")
	}
}

func TestEnvLoader_LoadFile_Missing(t *testing.T) {
	l := NewEnvLoader()

	if _, err := l.LoadFile("/nonexistent/step.yml"); err == nil {
		t.Error("LoadFile() should fail for a missing file")
	}
}
