// Package catalog holds the static table of supported IDE products.
//
// The table is data, not code: it is an embedded yaml file decoded once at
// startup, so adding a product never touches control flow.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Product describes one supported IDE product.
type Product struct {
	// Key is the stable short identifier used in output payloads and IDs.
	Key string `yaml:"key" json:"key"`
	// ConfigGlob is a shell-style glob matched against config directory names.
	ConfigGlob string `yaml:"config_glob" json:"config_glob"`
	// VendorDir is the vendor subdirectory under the user's configuration root.
	VendorDir string `yaml:"vendor_dir" json:"vendor_dir"`
}

//go:embed products.yaml
var productsYAML []byte

var products = mustLoad(productsYAML)

func mustLoad(data []byte) []Product {
	var loaded []Product
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		panic(fmt.Sprintf("catalog: bad embedded products.yaml: %v", err))
	}
	seen := make(map[string]struct{}, len(loaded))
	for _, p := range loaded {
		if p.Key == "" || p.ConfigGlob == "" || p.VendorDir == "" {
			panic(fmt.Sprintf("catalog: incomplete product entry %+v", p))
		}
		if _, dup := seen[p.Key]; dup {
			panic(fmt.Sprintf("catalog: duplicate product key %q", p.Key))
		}
		seen[p.Key] = struct{}{}
	}
	return loaded
}

// Products returns all known products in catalog order.
func Products() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// Lookup returns the product with the given key.
func Lookup(key string) (Product, bool) {
	for _, p := range products {
		if p.Key == key {
			return p, true
		}
	}
	return Product{}, false
}
