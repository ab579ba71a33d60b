package templates

import "testing"

func TestCatalogContainsDefault(t *testing.T) {
	catalog := NewCatalog()
	if !catalog.Exists(DefaultTemplateID) {
		t.Fatalf("default template %q must exist in the catalog", DefaultTemplateID)
	}
	if catalog.Exists("nonexistent") {
		t.Fatalf("unknown template ids must not exist")
	}
}

func TestCatalogListIsCopy(t *testing.T) {
	catalog := NewCatalog()
	first := catalog.List()
	first[0].Name = "mutated"

	if catalog.List()[0].Name == "mutated" {
		t.Fatalf("List must return a copy, not the backing slice")
	}
}
