package model

import (
	"fmt"
	"strings"
)

const (
	// CatalogSize is the number of orderable products. The bundled catalog,
	// the PDF templates and the fallback maps all agree on it.
	CatalogSize = 24

	// SentinelMax bounds quantities when no catalog-derived maximum exists.
	SentinelMax = 999

	codePrefix = "a"
)

// OrderItem is one orderable product from the bundled catalog.
type OrderItem struct {
	// Product code a1..a24, also the name of the matching PDF field.
	Code string `json:"code"`
	// French display name.
	NameFR string `json:"name_fr"`
	// Dutch display name.
	NameNL string `json:"name_nl"`
	// Maximum orderable quantity.
	Max int `json:"max"`
	// Units per package, display-only (e.g. 1000 staples per box).
	Per int `json:"per"`
}

// NameFor returns the display name for a BCP-47-ish language tag.
// Anything that is not Dutch renders the French name.
func (it OrderItem) NameFor(lang string) string {
	if strings.HasPrefix(strings.ToLower(lang), "nl") {
		return it.NameNL
	}
	return it.NameFR
}

// Codes returns the canonical product code sequence a1..a24.
func Codes() []string {
	out := make([]string, 0, CatalogSize)
	for i := 1; i <= CatalogSize; i++ {
		out = append(out, fmt.Sprintf("%s%d", codePrefix, i))
	}
	return out
}

type SortMode string

const (
	SortRelevance SortMode = "relevance"
	SortName      SortMode = "name"
	SortMax       SortMode = "max"
)

func ParseSortMode(s string) (SortMode, error) {
	switch SortMode(strings.ToLower(strings.TrimSpace(s))) {
	case SortRelevance, "":
		return SortRelevance, nil
	case SortName:
		return SortName, nil
	case SortMax, "maximum":
		return SortMax, nil
	default:
		return SortRelevance, fmt.Errorf("%w: %q", ErrUnknownSortMode, s)
	}
}
