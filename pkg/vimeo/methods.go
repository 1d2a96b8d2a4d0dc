package vimeo

import (
	"fmt"
	"sort"
	"strings"
)

// Namespace is the parent of all API methods.
const Namespace = "vimeo"

// knownGroups are the method groups the catalog accepts. A group prefix is
// enough to dispatch: the API itself rejects methods that do not exist
// inside a group, but an unknown group never leaves the client.
var knownGroups = map[string]struct{}{
	"activity": {},
	"albums":   {},
	"channels": {},
	"contacts": {},
	"groups":   {},
	"oauth":    {},
	"people":   {},
	"test":     {},
	"videos":   {},
}

// Catalog validates and canonicalizes API method names. It replaces
// attribute-style dynamic dispatch with an explicit lookup: unknown names
// fail with ErrUnknownMethod instead of reaching the wire.
type Catalog struct {
	groups map[string]struct{}
}

// NewCatalog returns the catalog of known method groups.
func NewCatalog() *Catalog {
	return &Catalog{groups: knownGroups}
}

// Resolve canonicalizes a method name to its wire form. Underscores are
// treated as dots ("videos_getInfo" and "videos.getInfo" are the same
// method), and the "vimeo." namespace prefix may be left off for any known
// group.
func (c *Catalog) Resolve(name string) (string, error) {
	canonical := strings.ReplaceAll(name, "_", ".")
	canonical = strings.TrimPrefix(canonical, Namespace+".")

	if canonical == "" {
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}

	group, _, _ := strings.Cut(canonical, ".")
	if _, ok := c.groups[group]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}

	return Namespace + "." + canonical, nil
}

// Groups returns the known method groups, sorted.
func (c *Catalog) Groups() []string {
	groups := make([]string, 0, len(c.groups))
	for group := range c.groups {
		groups = append(groups, group)
	}

	sort.Strings(groups)

	return groups
}
