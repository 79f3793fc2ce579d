package enum

import "strings"

// ── Product categories (CHECK constrained in DB via product_category enum) ──

// Category is a product category tag drawn from a closed set.
type Category string

const (
	CategoryDrinken           Category = "Drinken"
	CategoryBroodEnBeleg      Category = "BroodEnBeleg"
	CategoryTussendoor        Category = "Tussendoor"
	CategoryAanvullendBeperkt Category = "AanvullendBeperkt"
	CategoryGroentenEnFruit   Category = "GroentenEnFruit"
	CategoryOverigenProducten Category = "OverigenProducten"
	CategoryExtras            Category = "Extras"
)

var categoryOrder = []Category{
	CategoryDrinken,
	CategoryBroodEnBeleg,
	CategoryTussendoor,
	CategoryAanvullendBeperkt,
	CategoryGroentenEnFruit,
	CategoryOverigenProducten,
	CategoryExtras,
}

var categoryDisplayNames = map[Category]string{
	CategoryDrinken:           "Drinken",
	CategoryBroodEnBeleg:      "Brood en Beleg",
	CategoryTussendoor:        "Tussendoor",
	CategoryAanvullendBeperkt: "Aanvullend Beperkt",
	CategoryGroentenEnFruit:   "Groenten en Fruit",
	CategoryOverigenProducten: "Overige Producten",
	CategoryExtras:            "Extra's",
}

// Categories returns every category in display order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Valid reports whether c is part of the closed category set.
func (c Category) Valid() bool {
	_, ok := categoryDisplayNames[c]
	return ok
}

// DisplayName returns the human-readable name, or the raw tag for unknown categories.
func (c Category) DisplayName() string {
	if name, ok := categoryDisplayNames[c]; ok {
		return name
	}
	return string(c)
}

// ParseCategory accepts a tag ("BroodEnBeleg") or a display name ("Brood en beleg"),
// case-insensitively.
func ParseCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	for _, c := range categoryOrder {
		if strings.EqualFold(string(c), s) || strings.EqualFold(categoryDisplayNames[c], s) {
			return c, true
		}
	}
	switch strings.ToLower(s) {
	case "extras", "extra's":
		return CategoryExtras, true
	case "overigen producten":
		return CategoryOverigenProducten, true
	}
	return "", false
}

// ── Order list types (free-form label, no DB constraint) ──

const (
	ListTypeDemand  = ""
	ListTypeInStock = "IN_STOCK"
)
