package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/SanderGeraedts/InkoopPlanner/internal/enum"
	"github.com/SanderGeraedts/InkoopPlanner/internal/planner"
	"gopkg.in/yaml.v3"
)

//go:embed default-products.yaml
var defaultProducts []byte

// SeedProduct is a catalog entry before it is persisted.
type SeedProduct struct {
	Name     string
	Category enum.Category
}

// Catalog is the parsed product file: the products to seed and, per
// category, the reference sequence used for display ordering.
type Catalog struct {
	Products   []SeedProduct
	References planner.ReferenceTable
}

// entry is one item of a category list: either a plain name or a
// single-key mapping of a main name to its sub-items.
type entry struct {
	Name     string
	SubItems []string
}

func (e *entry) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		e.Name = strings.TrimSpace(n.Value)
		return nil
	case yaml.MappingNode:
		if len(n.Content) != 2 {
			return fmt.Errorf("line %d: expected a single main item with sub-items", n.Line)
		}
		e.Name = strings.TrimSpace(n.Content[0].Value)
		return n.Content[1].Decode(&e.SubItems)
	default:
		return fmt.Errorf("line %d: unexpected node kind %v", n.Line, n.Kind)
	}
}

// names expands sub-items into "Main (Sub)".
func (e entry) names() []string {
	if len(e.SubItems) == 0 {
		return []string{e.Name}
	}
	out := make([]string, 0, len(e.SubItems))
	for _, sub := range e.SubItems {
		out = append(out, fmt.Sprintf("%s (%s)", e.Name, strings.TrimSpace(sub)))
	}
	return out
}

// Parse reads a catalog file. Every category of the closed set must appear,
// possibly with an empty list.
func Parse(r io.Reader) (*Catalog, error) {
	var raw map[string][]entry
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	seqs := make(map[enum.Category][]string, len(raw))
	for key, entries := range raw {
		cat, ok := enum.ParseCategory(key)
		if !ok {
			return nil, fmt.Errorf("catalog: unknown category %q", key)
		}
		if _, dup := seqs[cat]; dup {
			return nil, fmt.Errorf("catalog: category %q listed twice", key)
		}
		seq := []string{}
		for _, e := range entries {
			if e.Name == "" {
				return nil, fmt.Errorf("catalog: empty product name in %q", key)
			}
			seq = append(seq, e.names()...)
		}
		seqs[cat] = seq
	}

	table, err := planner.NewReferenceTable(seqs)
	if err != nil {
		return nil, err
	}

	c := &Catalog{References: table}
	for _, cat := range enum.Categories() {
		for _, name := range table.Sequence(cat) {
			c.Products = append(c.Products, SeedProduct{Name: name, Category: cat})
		}
	}
	return c, nil
}

// Default parses the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Parse(bytes.NewReader(defaultProducts))
}

// LoadFile parses a catalog file from disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Parse(f)
}
