package history

import "testing"

func TestScopeDefault(t *testing.T) {
	var zero Scope
	if !zero.IsDefault() {
		t.Error("zero value should be the default scope")
	}
	if zero != Default {
		t.Error("zero value should equal Default")
	}
	if _, named := zero.Name(); named {
		t.Error("default scope should not report a name")
	}
	if zero.String() != "default" {
		t.Errorf("String() = %q, want %q", zero.String(), "default")
	}
}

func TestScopeNamed(t *testing.T) {
	a := Named("panelA")
	if a.IsDefault() {
		t.Error("named scope should not be default")
	}
	name, named := a.Name()
	if !named || name != "panelA" {
		t.Errorf("Name() = %q, %v", name, named)
	}
	if a.String() != "panelA" {
		t.Errorf("String() = %q, want %q", a.String(), "panelA")
	}
	if a != Named("panelA") {
		t.Error("same name should yield the same scope")
	}
	if a == Named("panelB") {
		t.Error("different names should differ")
	}
}

func TestScopeNamedEmptyIsNotDefault(t *testing.T) {
	if Named("") == Default {
		t.Error("Named(\"\") must not collide with the default scope")
	}
}

func TestChangeIncludes(t *testing.T) {
	c := newChange("edit", []DocumentID{"doc1", "doc2"}, Default)
	if !c.Includes("doc1") || !c.Includes("doc2") {
		t.Error("Includes should find participating ids")
	}
	if c.Includes("doc3") {
		t.Error("Includes should reject non-participants")
	}
}

func TestChangeCopiesIDs(t *testing.T) {
	ids := []DocumentID{"doc1"}
	c := newChange("edit", ids, Default)
	ids[0] = "mutated"
	if c.IDs[0] != "doc1" {
		t.Error("Change must own a copy of the id list")
	}
}
