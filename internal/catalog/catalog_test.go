package catalog

import "testing"

func TestProducts_KeysUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range Products() {
		if seen[p.Key] {
			t.Errorf("duplicate product key %q", p.Key)
		}
		seen[p.Key] = true
	}
}

func TestProducts_Complete(t *testing.T) {
	products := Products()
	if len(products) == 0 {
		t.Fatal("catalog is empty")
	}
	for _, p := range products {
		if p.Key == "" || p.ConfigGlob == "" || p.VendorDir == "" {
			t.Errorf("incomplete product entry %+v", p)
		}
	}
}

func TestProducts_Order(t *testing.T) {
	// Catalog order is output order; idea leads, android-studio closes.
	products := Products()
	if products[0].Key != "idea" {
		t.Errorf("expected idea first, got %q", products[0].Key)
	}
	if last := products[len(products)-1]; last.Key != "android-studio" {
		t.Errorf("expected android-studio last, got %q", last.Key)
	}
}

func TestLookup(t *testing.T) {
	rider, ok := Lookup("rider")
	if !ok {
		t.Fatal("rider not in catalog")
	}
	if rider.VendorDir != "JetBrains" {
		t.Errorf("rider vendor dir = %q, want JetBrains", rider.VendorDir)
	}

	if _, ok := Lookup("emacs"); ok {
		t.Error("Lookup(emacs) unexpectedly succeeded")
	}
}

func TestProducts_CallerCannotMutateCatalog(t *testing.T) {
	first := Products()
	first[0].Key = "mutated"
	if Products()[0].Key != "idea" {
		t.Error("Products() exposes internal state")
	}
}
