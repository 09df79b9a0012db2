package blockvocab

import "testing"

func TestNewVocabularyHasWellKnownEntries(t *testing.T) {
	v := NewVocabulary()

	if id, ok := v.Lookup(NameConductor); !ok || id != 55 {
		t.Fatalf("conductor ID = (%d, %v), want (55, true)", id, ok)
	}
	if id, ok := v.Lookup(NameSubstrate); !ok || id != 1 {
		t.Fatalf("substrate ID = (%d, %v), want (1, true)", id, ok)
	}
	if got := v.Conductor(); got != 55 {
		t.Fatalf("Conductor() = %d, want 55", got)
	}
	if got := v.Substrate(); got != 1 {
		t.Fatalf("Substrate() = %d, want 1", got)
	}
}

func TestRegisterAndLookupRoundTrip(t *testing.T) {
	v := NewVocabulary()
	v.Register("and_cell_body", 42)

	id, ok := v.Lookup("and_cell_body")
	if !ok || id != 42 {
		t.Fatalf("Lookup(and_cell_body) = (%d, %v), want (42, true)", id, ok)
	}

	name, ok := v.Name(42)
	if !ok || name != "and_cell_body" {
		t.Fatalf("Name(42) = (%q, %v), want (and_cell_body, true)", name, ok)
	}
}

func TestMustLookupPanicsOnUnknown(t *testing.T) {
	v := NewVocabulary()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on unregistered name")
		}
	}()
	v.MustLookup("does_not_exist")
}

func TestBlockString(t *testing.T) {
	if BlockCell.String() != "Cell" {
		t.Fatalf("BlockCell.String() = %q, want Cell", BlockCell.String())
	}
	if Block(99).String() != "Block(99)" {
		t.Fatalf("unknown Block.String() = %q, want Block(99)", Block(99).String())
	}
}
