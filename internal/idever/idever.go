// Package idever extracts the version embedded in an IDE config directory name.
package idever

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrNotVersioned indicates a directory name carrying no version token.
var ErrNotVersioned = errors.New("not a versioned config directory")

// versionToken matches the numeric version embedded in a config directory
// name, e.g. the "2023.1" in "IntelliJIdea2023.1". Surrounding text (vendor
// prefixes, product codes) is deliberately ignored.
var versionToken = regexp.MustCompile(`\d{1,4}\.\d{1,2}`)

// Version is the (epoch, major) pair embedded in a config directory name.
// Ordering is lexicographic: epoch first, then major.
type Version struct {
	Epoch int
	Major int
}

// Parse extracts the first version token from a directory name.
func Parse(name string) (Version, error) {
	token := versionToken.FindString(name)
	if token == "" {
		return Version{}, fmt.Errorf("%w: %s", ErrNotVersioned, name)
	}
	epochStr, majorStr, _ := strings.Cut(token, ".")
	epoch, err := strconv.Atoi(epochStr)
	if err != nil {
		return Version{}, fmt.Errorf("%w: %s", ErrNotVersioned, name)
	}
	major, err := strconv.Atoi(majorStr)
	if err != nil {
		return Version{}, fmt.Errorf("%w: %s", ErrNotVersioned, name)
	}
	return Version{Epoch: epoch, Major: major}, nil
}

// Compare returns -1, 0 or 1 ordering v against other.
func (v Version) Compare(other Version) int {
	if v.Epoch != other.Epoch {
		if v.Epoch < other.Epoch {
			return -1
		}
		return 1
	}
	if v.Major != other.Major {
		if v.Major < other.Major {
			return -1
		}
		return 1
	}
	return 0
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Epoch, v.Major)
}
