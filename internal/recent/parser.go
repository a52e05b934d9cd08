// Package recent parses recent-projects registry files and resolves the
// recorded paths into project records.
package recent

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// userHomeToken is the placeholder IDEs write in place of the home directory.
const userHomeToken = "$USER_HOME$"

// The registry schema changed across product generations. Rather than
// versioning the parser, each known layout is an independent extraction rule
// and the results are merged; a third layout would just be a third rule.
var schemaRules = []struct {
	query *etree.Path
	attr  string
}{
	// Legacy list layout.
	{pathOf(`//option[@name='recentPaths']/list/option`), "value"},
	// Map layout introduced with the 2020.3 generation.
	{pathOf(`//component[@name='RecentProjectsManager']/option[@name='additionalInfo']/map/entry`), "key"},
}

func pathOf(expr string) *etree.Path {
	p := etree.MustCompilePath(expr)
	return &p
}

// ParseRegistry extracts the recorded project paths from a registry file,
// merging all known schema layouts with set semantics. Paths are returned in
// first-seen document order with the home placeholder rewritten to "~".
// A document missing one or both layouts is fine; an unreadable file or
// malformed XML is not.
func ParseRegistry(file string) ([]string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(file); err != nil {
		return nil, fmt.Errorf("parsing registry %s: %w", file, err)
	}

	seen := make(map[string]struct{})
	var paths []string
	for _, rule := range schemaRules {
		for _, el := range doc.FindElementsPath(*rule.query) {
			raw := el.SelectAttrValue(rule.attr, "")
			if raw == "" {
				continue
			}
			path := strings.ReplaceAll(raw, userHomeToken, "~")
			if _, dup := seen[path]; dup {
				continue
			}
			seen[path] = struct{}{}
			paths = append(paths, path)
		}
	}
	return paths, nil
}
