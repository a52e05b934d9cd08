package configdir

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jetscout/jetscout/internal/catalog"
)

const optionsDir = "options"

// registryFilename returns the recent-projects registry filename for a
// product. Rider records solutions rather than projects; this is a fixed
// per-product naming exception, not a general pattern.
func registryFilename(product catalog.Product) string {
	if product.Key == "rider" {
		return "recentSolutions.xml"
	}
	return "recentProjects.xml"
}

// RegistryFile returns the path of the product's recent-projects registry
// inside the selected config directory. ok is false when the file does not
// exist as a regular file — expected for an installed-but-unused product.
func RegistryFile(product catalog.Product, configDir string) (path string, ok bool, err error) {
	path = filepath.Join(configDir, optionsDir, registryFilename(product))
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return "", false, nil
	}
	return path, true, nil
}
