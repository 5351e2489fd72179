package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// CatalogEntry pairs a stat name pattern with its description.
type CatalogEntry struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

type catalogFile struct {
	Stats []CatalogEntry `json:"stats" yaml:"stats"`
}

type compiledEntry struct {
	CatalogEntry
	pattern *regexp.Regexp
}

// Catalog maps generic stat names to descriptions. It is immutable once built.
type Catalog struct {
	exact   map[string]string
	entries []compiledEntry
}

// NewCatalog builds a Catalog from entries. Each name is compiled as an
// anchored pattern; names that are not valid patterns match literally. Later
// duplicates replace earlier ones.
//
// Postcondition: Returns a non-nil Catalog.
func NewCatalog(entries []CatalogEntry) *Catalog {
	exact := make(map[string]string, len(entries))
	for _, e := range entries {
		exact[e.Name] = e.Description
	}
	names := make([]string, 0, len(exact))
	for n := range exact {
		names = append(names, n)
	}
	sort.Strings(names)

	compiled := make([]compiledEntry, 0, len(names))
	for _, n := range names {
		re, err := regexp.Compile("^(?:" + n + ")$")
		if err != nil {
			re = regexp.MustCompile("^" + regexp.QuoteMeta(n) + "$")
		}
		compiled = append(compiled, compiledEntry{
			CatalogEntry: CatalogEntry{Name: n, Description: exact[n]},
			pattern:      re,
		})
	}
	return &Catalog{exact: exact, entries: compiled}
}

// EmptyCatalog returns a catalog that resolves nothing.
func EmptyCatalog() *Catalog { return NewCatalog(nil) }

// Len returns the number of distinct entries.
func (c *Catalog) Len() int { return len(c.entries) }

// Lookup returns the description stored under exactly name.
func (c *Catalog) Lookup(name string) (string, bool) {
	d, ok := c.exact[name]
	return d, ok
}

// Match returns the description of the first entry, in ascending name order,
// whose pattern matches key. An exact name hit is preferred.
func (c *Catalog) Match(key string) (string, bool) {
	if d, ok := c.exact[key]; ok {
		return d, true
	}
	for _, e := range c.entries {
		if e.pattern.MatchString(key) {
			return e.Description, true
		}
	}
	return "", false
}

// ParseCatalogJSON decodes a {"stats":[{"name","description"}]} document.
func ParseCatalogJSON(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog json: %w", err)
	}
	return NewCatalog(f.Stats), nil
}

// ParseCatalogYAML decodes the YAML form of the catalog document.
func ParseCatalogYAML(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog yaml: %w", err)
	}
	return NewCatalog(f.Stats), nil
}

// LoadCatalog reads the catalog file at path. Files ending in .yaml or .yml
// are decoded as YAML, anything else as JSON.
//
// Postcondition: Returns a non-nil Catalog or a non-nil error. A missing file
// yields an error satisfying errors.Is(err, fs.ErrNotExist).
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseCatalogYAML(data)
	default:
		return ParseCatalogJSON(data)
	}
}
