package planner

import (
	"fmt"
	"slices"

	"github.com/SanderGeraedts/InkoopPlanner/internal/enum"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Unordered is the bucket for items whose category is not in the closed set.
const Unordered enum.Category = "Unordered"

// ReferenceTable maps every category to its curated display sequence of
// product names. It is total over enum.Categories(); a category may map to an
// empty sequence (Extras always does in the default catalog).
type ReferenceTable struct {
	seqs map[enum.Category][]string
}

// NewReferenceTable validates that seqs covers every category exactly and
// nothing else.
func NewReferenceTable(seqs map[enum.Category][]string) (ReferenceTable, error) {
	for cat := range seqs {
		if !cat.Valid() {
			return ReferenceTable{}, fmt.Errorf("reference table: unknown category %q", cat)
		}
	}
	t := ReferenceTable{seqs: make(map[enum.Category][]string, len(seqs))}
	for _, cat := range enum.Categories() {
		seq, ok := seqs[cat]
		if !ok {
			return ReferenceTable{}, fmt.Errorf("reference table: missing category %q", cat)
		}
		t.seqs[cat] = slices.Clone(seq)
	}
	return t, nil
}

// Sequence returns the reference sequence for cat; nil for unknown categories.
func (t ReferenceTable) Sequence(cat enum.Category) []string {
	return t.seqs[cat]
}

// NewComparator returns a three-way comparison over product names:
// names present in ref sort by their position in ref and before any name that
// is absent; absent names sort alphabetically using Dutch collation.
//
// The returned function is not safe for concurrent use.
func NewComparator(ref []string) func(a, b string) int {
	pos := make(map[string]int, len(ref))
	for i, name := range ref {
		if _, dup := pos[name]; !dup {
			pos[name] = i
		}
	}
	col := collate.New(language.Dutch)

	return func(a, b string) int {
		ia, okA := pos[a]
		ib, okB := pos[b]
		switch {
		case okA && okB:
			return ia - ib
		case okA:
			return -1
		case okB:
			return 1
		}
		return col.CompareString(a, b)
	}
}

// SortWithinCategory returns a stably sorted copy of items ordered by
// NewComparator(ref) applied to name(item).
func SortWithinCategory[T any](items []T, name func(T) string, ref []string) []T {
	out := slices.Clone(items)
	cmp := NewComparator(ref)
	slices.SortStableFunc(out, func(a, b T) int {
		return cmp(name(a), name(b))
	})
	return out
}

// CategoryGroup is one display section.
type CategoryGroup[T any] struct {
	Category enum.Category
	Items    []T
}

// GroupByCategory buckets items by category in canonical category order and
// sorts each bucket against the table. Items with an unrecognized category go
// to a trailing Unordered group sorted alphabetically. Empty groups are
// omitted unless listed in keepEmpty.
func GroupByCategory[T any](
	items []T,
	category func(T) enum.Category,
	name func(T) string,
	table ReferenceTable,
	keepEmpty ...enum.Category,
) []CategoryGroup[T] {
	buckets := make(map[enum.Category][]T)
	for _, it := range items {
		cat := category(it)
		if !cat.Valid() {
			cat = Unordered
		}
		buckets[cat] = append(buckets[cat], it)
	}

	var groups []CategoryGroup[T]
	for _, cat := range append(enum.Categories(), Unordered) {
		bucket := buckets[cat]
		if len(bucket) == 0 && !slices.Contains(keepEmpty, cat) {
			continue
		}
		groups = append(groups, CategoryGroup[T]{
			Category: cat,
			Items:    SortWithinCategory(bucket, name, table.Sequence(cat)),
		})
	}
	return groups
}
