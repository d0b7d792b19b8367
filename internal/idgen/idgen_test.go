package idgen

import (
	"regexp"
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	pattern := regexp.MustCompile(`^req-[a-zA-Z0-9]+$`)

	for i := 0; i < 100; i++ {
		id, err := Generate()
		if err != nil {
			t.Fatalf("Generate() error on iteration %d: %v", i, err)
		}
		if want := len(DefaultPrefix) + Length; len(id) != want {
			t.Fatalf("Generate() length = %d, want %d (id=%q)", len(id), want, id)
		}
		if !pattern.MatchString(id) {
			t.Fatalf("Generate() = %q, want prefix %q and alphanumeric suffix", id, DefaultPrefix)
		}
	}
}

func TestGenerateWithPrefix(t *testing.T) {
	for _, prefix := range []string{"evt-", "exp-", ""} {
		id, err := GenerateWithPrefix(prefix)
		if err != nil {
			t.Fatalf("GenerateWithPrefix(%q) error: %v", prefix, err)
		}
		if !strings.HasPrefix(id, prefix) {
			t.Errorf("GenerateWithPrefix(%q) = %q, want that prefix", prefix, id)
		}
		if want := len(prefix) + Length; len(id) != want {
			t.Errorf("GenerateWithPrefix(%q) length = %d, want %d", prefix, len(id), want)
		}
	}
}

func TestGenerate_Uniqueness(t *testing.T) {
	const count = 10_000
	seen := make(map[string]struct{}, count)
	for i := 0; i < count; i++ {
		id, err := Generate()
		if err != nil {
			t.Fatalf("Generate() error on iteration %d: %v", i, err)
		}
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate ID after %d generations: %q", i, id)
		}
		seen[id] = struct{}{}
	}
}
