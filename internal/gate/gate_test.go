package gate

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	encoded, err := HashPassword("freaks-2026")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !Verify("freaks-2026", encoded) {
		t.Error("correct password rejected")
	}
	if Verify("wrong", encoded) {
		t.Error("wrong password accepted")
	}
	if Verify("freaks-2026", "argon2id:not-base64:???") {
		t.Error("malformed hash accepted")
	}
	if Verify("freaks-2026", "") {
		t.Error("empty hash accepted")
	}
}

func TestHashesAreSalted(t *testing.T) {
	a, _ := HashPassword("same")
	b, _ := HashPassword("same")
	if a == b {
		t.Error("two hashes of the same password should differ")
	}
}

func TestLoadSecret(t *testing.T) {
	dir := t.TempDir()

	if got, err := LoadSecret(filepath.Join(dir, "missing")); err != nil || got != "" {
		t.Errorf("missing file: got %q, %v; want empty, nil", got, err)
	}

	path := filepath.Join(dir, DefaultSecretFile)
	encoded, _ := HashPassword("pw")
	if err := os.WriteFile(path, []byte(encoded+"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	got, err := LoadSecret(path)
	if err != nil {
		t.Fatalf("LoadSecret: %v", err)
	}
	if !Verify("pw", got) {
		t.Error("loaded secret does not verify")
	}

	bad := filepath.Join(dir, "bad")
	os.WriteFile(bad, []byte("plaintext-password"), 0o600)
	if _, err := LoadSecret(bad); err == nil {
		t.Error("invalid format accepted")
	}
}
