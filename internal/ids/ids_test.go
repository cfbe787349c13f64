package ids

import "testing"

func TestNewCarriesPrefix(t *testing.T) {
	id := New(PrefixCircle)
	if err := Validate(id, PrefixCircle); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if err := Validate(id, PrefixSquare); err == nil {
		t.Fatalf("expected prefix mismatch for %q", id)
	}
}

func TestNewIsUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := New(PrefixRectangle)
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestPrefixRejectsGarbage(t *testing.T) {
	if _, err := Prefix("not an id"); err == nil {
		t.Fatal("expected error")
	}
}
