package recent

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// idNamespace prefixes every project ID so IDs never collide with other
// providers feeding the same launcher. Part of the integration contract.
const idNamespace = "jetbrains-search-provider"

// Resolve builds the project record for one registry entry. ok is false when
// the recorded path no longer exists on disk, which is expected and drops the
// entry silently.
func Resolve(productKey, recorded string) (p Project, ok bool, err error) {
	abs := expandHome(recorded)
	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return Project{}, false, nil
		}
		return Project{}, false, fmt.Errorf("stat %s: %w", abs, err)
	}

	// A registry entry may point at a project file rather than the project
	// directory; the project root is then the file's parent.
	root := abs
	if info.Mode().IsRegular() {
		root = filepath.Dir(abs)
	}

	name, err := projectName(root, recorded)
	if err != nil {
		return Project{}, false, err
	}

	return Project{
		ID:      fmt.Sprintf("%s-%s-%s", idNamespace, productKey, abs),
		Name:    name,
		Path:    recorded,
		AbsPath: abs,
	}, true, nil
}

// projectName reads the user-assigned display name from the project's marker
// file, falling back to the last component of the recorded path when the
// marker is absent.
func projectName(root, recorded string) (string, error) {
	data, err := os.ReadFile(filepath.Join(root, ".idea", ".name"))
	if err != nil {
		if os.IsNotExist(err) {
			return filepath.Base(recorded), nil
		}
		return "", fmt.Errorf("reading name marker: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// expandHome replaces a leading "~" with the user's home directory. The
// recorded form keeps the shorthand; only existence checks and the abspath
// field use the expansion.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
