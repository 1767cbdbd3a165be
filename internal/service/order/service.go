package service

import (
	"slices"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/proxionix/unit-tools/internal/model"
)

// State owns the in-memory order session: the technician's name, the
// quantity per product and the view-filter settings. It is mutated from a
// single goroutine (the interactive loop) and is not safe for concurrent use.
//
// Every quantity write clamps to the catalog maximum, so the invariant
// 0 <= quantity <= max holds at all times; no operation returns an error.
type State struct {
	catalog   []model.OrderItem
	maxByCode map[string]int

	firstName  string
	lastName   string
	quantities map[string]int

	query       string
	sortMode    model.SortMode
	inStockOnly bool
}

func NewState(catalog []model.OrderItem) *State {
	return &State{
		catalog: catalog,
		maxByCode: lo.SliceToMap(catalog, func(it model.OrderItem) (string, int) {
			return it.Code, it.Max
		}),
		quantities: make(map[string]int, len(catalog)),
		sortMode:   model.SortRelevance,
	}
}

// SetQuantity stores a clamped quantity for a catalog code. Unknown codes are
// silently ignored.
func (s *State) SetQuantity(code string, value int) {
	max, ok := s.maxByCode[code]
	if !ok {
		return
	}
	s.quantities[code] = clamp(value, 0, max)
}

func (s *State) QuantityOf(code string) int {
	return s.quantities[code]
}

func (s *State) SetFirstName(value string) { s.firstName = value }
func (s *State) SetLastName(value string)  { s.lastName = value }

// FullName joins the trimmed name fields, keeping whichever is non-empty.
func (s *State) FullName() string {
	first := strings.TrimSpace(s.firstName)
	last := strings.TrimSpace(s.lastName)
	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	default:
		return last
	}
}

func (s *State) SetQuery(value string)       { s.query = value }
func (s *State) SetSort(mode model.SortMode) { s.sortMode = mode }
func (s *State) ToggleInStockOnly()          { s.inStockOnly = !s.inStockOnly }
func (s *State) InStockOnly() bool           { return s.inStockOnly }

// VisibleItems derives the filtered, sorted catalog view. It is a pure
// function of the current state and never mutates the catalog order.
func (s *State) VisibleItems() []model.OrderItem {
	items := s.catalog

	if q := strings.ToLower(strings.TrimSpace(s.query)); q != "" {
		items = lo.Filter(items, func(it model.OrderItem, _ int) bool {
			return strings.Contains(strings.ToLower(it.Code), q) ||
				strings.Contains(strings.ToLower(it.NameFR), q) ||
				strings.Contains(strings.ToLower(it.NameNL), q)
		})
	}

	if s.inStockOnly {
		items = lo.Filter(items, func(it model.OrderItem, _ int) bool {
			return it.Max > 0
		})
	}

	switch s.sortMode {
	case model.SortName:
		sorted := slices.Clone(items)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].NameFR < sorted[j].NameFR
		})
		return sorted
	case model.SortMax:
		sorted := slices.Clone(items)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Max > sorted[j].Max
		})
		return sorted
	default:
		return items
	}
}

// Maxima maps each product code to its orderable maximum. With no catalog
// loaded yet it falls back to the synthetic a1..a24 set bounded by the
// sentinel maximum, so downstream clamping always has something to work with.
func (s *State) Maxima() map[string]int {
	if len(s.catalog) == 0 {
		return lo.SliceToMap(model.Codes(), func(code string) (string, int) {
			return code, model.SentinelMax
		})
	}
	return lo.SliceToMap(s.catalog, func(it model.OrderItem) (string, int) {
		return it.Code, it.Max
	})
}

// QuantitiesClamped re-validates every stored quantity against the current
// maxima at call time, independent of the per-write clamping.
func (s *State) QuantitiesClamped() map[string]int {
	if len(s.catalog) == 0 {
		return lo.SliceToMap(model.Codes(), func(code string) (string, int) {
			return code, clamp(s.quantities[code], 0, model.SentinelMax)
		})
	}
	return lo.SliceToMap(s.catalog, func(it model.OrderItem) (string, int) {
		return it.Code, clamp(s.quantities[it.Code], 0, it.Max)
	})
}

func clamp(v, floor, ceil int) int {
	if v < floor {
		return floor
	}
	if v > ceil {
		return ceil
	}
	return v
}
