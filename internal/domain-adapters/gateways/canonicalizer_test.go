package gateways

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCanonicalizer_Canonicalize(t *testing.T) {
	c := NewCanonicalizer()

	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{
			name:     "query string stripped and file renamed",
			filename: "app-installer.dmg?sig=abc123",
			want:     "app-installer.dmg",
		},
		{
			name:     "token query on tarball",
			filename: "bundle.tar.gz?token=xyz",
			want:     "bundle.tar.gz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			src := filepath.Join(dir, tt.filename)
			if err := os.WriteFile(src, []byte("payload"), 0600); err != nil {
				t.Fatalf("Failed to create source file: %v", err)
			}

			got, err := c.Canonicalize(src)
			if err != nil {
				t.Fatalf("Canonicalize() returned error: %v", err)
			}

			want := filepath.Join(dir, tt.want)
			if got != want {
				t.Errorf("Canonicalize() = %q, want %q", got, want)
			}
			if _, err := os.Stat(want); err != nil {
				t.Errorf("canonical file missing: %v", err)
			}
			if _, err := os.Stat(src); !os.IsNotExist(err) {
				t.Errorf("original file should be gone, stat err = %v", err)
			}
		})
	}
}

func TestCanonicalizer_Canonicalize_NoOp(t *testing.T) {
	c := NewCanonicalizer()

	dir := t.TempDir()
	src := filepath.Join(dir, "bundle.zip")
	if err := os.WriteFile(src, []byte("payload"), 0600); err != nil {
		t.Fatalf("Failed to create source file: %v", err)
	}

	// Running twice on an already-canonical name changes nothing.
	for i := 0; i < 2; i++ {
		got, err := c.Canonicalize(src)
		if err != nil {
			t.Fatalf("Canonicalize() returned error on pass %d: %v", i+1, err)
		}
		if got != src {
			t.Errorf("Canonicalize() = %q, want %q", got, src)
		}
	}
}
