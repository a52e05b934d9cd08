// Package configdir locates the versioned configuration directory of an
// installed product and the recent-projects registry file inside it.
package configdir

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/jetscout/jetscout/internal/catalog"
	"github.com/jetscout/jetscout/internal/idever"
	"github.com/jetscout/jetscout/internal/settings"
)

// Resolver selects config directories under one configuration root.
type Resolver struct {
	// Root is the user configuration root the vendor directories live under.
	Root string
}

// NewResolver returns a resolver rooted at the JETSCOUT_CONFIG_ROOT override
// when set, else the XDG config home ($XDG_CONFIG_HOME or ~/.config).
func NewResolver() *Resolver {
	if root := settings.ConfigRoot(); root != "" {
		return &Resolver{Root: root}
	}
	return &Resolver{Root: xdg.ConfigHome}
}

// Latest returns the config directory with the highest embedded version for
// the given product. ok is false when the product has no candidate directory
// at all, or when every candidate lacks a parseable version token; neither is
// an error. When two candidates share the maximum version the
// lexicographically greatest name wins, so selection is deterministic.
func (r *Resolver) Latest(product catalog.Product) (dir string, ok bool, err error) {
	base := filepath.Join(r.Root, product.VendorDir)
	entries, err := os.ReadDir(base)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("listing %s: %w", base, err)
	}

	var (
		bestName string
		bestVer  idever.Version
		found    bool
	)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		matched, err := filepath.Match(product.ConfigGlob, entry.Name())
		if err != nil {
			return "", false, fmt.Errorf("bad glob %q for product %s: %w", product.ConfigGlob, product.Key, err)
		}
		if !matched {
			continue
		}
		ver, err := idever.Parse(entry.Name())
		if err != nil {
			// Unversioned or malformed sibling: never selected, never fatal.
			continue
		}
		switch c := ver.Compare(bestVer); {
		case !found, c > 0, c == 0 && entry.Name() > bestName:
			bestName, bestVer, found = entry.Name(), ver, true
		}
	}
	if !found {
		return "", false, nil
	}
	return filepath.Join(base, bestName), true, nil
}
