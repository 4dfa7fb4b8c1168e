package gateways

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSignatureVerifier_ImportKeyFiles_NoPaths(t *testing.T) {
	v := NewSignatureVerifier()

	err := v.ImportKeyFiles(nil)
	if err == nil {
		t.Fatal("ImportKeyFiles(nil) should fail")
	}
	if !strings.Contains(err.Error(), "no key files provided") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSignatureVerifier_ImportKeyFiles_MissingFile(t *testing.T) {
	v := NewSignatureVerifier()

	if err := v.ImportKeyFiles([]string{"/nonexistent/key.asc"}); err == nil {
		t.Error("ImportKeyFiles should fail for a missing file")
	}
}

func TestSignatureVerifier_ImportKeyFiles_InvalidKey(t *testing.T) {
	v := NewSignatureVerifier()

	dir := t.TempDir()
	keyPath := filepath.Join(dir, "bogus.asc")
	if err := os.WriteFile(keyPath, []byte("not a gpg key"), 0600); err != nil {
		t.Fatalf("Failed to create key file: %v", err)
	}

	if err := v.ImportKeyFiles([]string{keyPath}); err == nil {
		t.Error("ImportKeyFiles should fail for an invalid key")
	}
}

func TestSignatureVerifier_VerifyDetached_EmptyKeyring(t *testing.T) {
	v := NewSignatureVerifier()

	dir := t.TempDir()
	file := filepath.Join(dir, "bundle.zip")
	if err := os.WriteFile(file, []byte("payload"), 0600); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	err := v.VerifyDetached(file, filepath.Join(dir, "bundle.zip.asc"))
	if err == nil {
		t.Fatal("VerifyDetached should fail with no keys imported")
	}
	if !strings.Contains(err.Error(), "no keys imported") {
		t.Errorf("unexpected error: %v", err)
	}
}
