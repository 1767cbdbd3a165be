package service

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proxionix/unit-tools/internal/model"
)

func testCatalog() []model.OrderItem {
	return []model.OrderItem{
		{Code: "a1", NameFR: "Gants", NameNL: "Handschoenen", Max: 10, Per: 1},
		{Code: "a2", NameFR: "Agrafes", NameNL: "Nietjes", Max: 15, Per: 1000},
		{Code: "a3", NameFR: "Ruban", NameNL: "Tape", Max: 0, Per: 1},
		{Code: "a4", NameFR: "Colliers", NameNL: "Kabelbinders", Max: 20, Per: 100},
	}
}

func TestSetQuantityClamping(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name  string
		code  string
		value int
		want  int
	}

	tests := []testCase{
		{name: "within range", code: "a1", value: 5, want: 5},
		{name: "above max clamps to max", code: "a1", value: 15, want: 10},
		{name: "negative clamps to zero", code: "a1", value: -3, want: 0},
		{name: "exactly max", code: "a2", value: 15, want: 15},
		{name: "zero max clamps everything to zero", code: "a3", value: 7, want: 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			st := NewState(testCatalog())
			st.SetQuantity(tc.code, tc.value)

			assert.Equal(t, tc.want, st.QuantityOf(tc.code))
		})
	}
}

func TestSetQuantityUnknownCodeIsNoOp(t *testing.T) {
	t.Parallel()

	st := NewState(testCatalog())
	st.SetQuantity("a1", 4)

	st.SetQuantity("zz", 99)
	st.SetQuantity("a99", 1)

	assert.Equal(t, 0, st.QuantityOf("zz"))
	assert.Equal(t, 0, st.QuantityOf("a99"))
	// Other keys are untouched.
	assert.Equal(t, 4, st.QuantityOf("a1"))
	assert.Equal(t, map[string]int{"a1": 4, "a2": 0, "a3": 0, "a4": 0}, st.QuantitiesClamped())
}

func TestFullName(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name  string
		first string
		last  string
		want  string
	}

	tests := []testCase{
		{name: "both trimmed and joined", first: " Jan ", last: " Peeters ", want: "Jan Peeters"},
		{name: "first only", first: "Jan", last: "   ", want: "Jan"},
		{name: "last only", first: "", last: "Peeters", want: "Peeters"},
		{name: "both empty", first: " ", last: "", want: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			st := NewState(testCatalog())
			st.SetFirstName(tc.first)
			st.SetLastName(tc.last)

			assert.Equal(t, tc.want, st.FullName())
		})
	}
}

func TestVisibleItems(t *testing.T) {
	t.Parallel()

	codesOf := func(items []model.OrderItem) []string {
		out := make([]string, 0, len(items))
		for _, it := range items {
			out = append(out, it.Code)
		}
		return out
	}

	type testCase struct {
		name  string
		setup func(st *State)
		want  []string
	}

	tests := []testCase{
		{
			name:  "defaults return full catalog in original order",
			setup: func(st *State) {},
			want:  []string{"a1", "a2", "a3", "a4"},
		},
		{
			name:  "query matches french name case-insensitively",
			setup: func(st *State) { st.SetQuery("  GANTS ") },
			want:  []string{"a1"},
		},
		{
			name:  "query matches dutch name",
			setup: func(st *State) { st.SetQuery("tape") },
			want:  []string{"a3"},
		},
		{
			name:  "query matches code substring",
			setup: func(st *State) { st.SetQuery("a2") },
			want:  []string{"a2"},
		},
		{
			name:  "in-stock filter drops zero-max items",
			setup: func(st *State) { st.ToggleInStockOnly() },
			want:  []string{"a1", "a2", "a4"},
		},
		{
			name:  "sort by name ascending",
			setup: func(st *State) { st.SetSort(model.SortName) },
			want:  []string{"a2", "a4", "a1", "a3"},
		},
		{
			name:  "sort by max descending",
			setup: func(st *State) { st.SetSort(model.SortMax) },
			want:  []string{"a4", "a2", "a1", "a3"},
		},
		{
			name: "filter and sort combine",
			setup: func(st *State) {
				st.SetQuery("a")
				st.ToggleInStockOnly()
				st.SetSort(model.SortMax)
			},
			want: []string{"a4", "a2", "a1"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			st := NewState(testCatalog())
			tc.setup(st)

			assert.Equal(t, tc.want, codesOf(st.VisibleItems()))
		})
	}
}

func TestVisibleItemsIsPure(t *testing.T) {
	t.Parallel()

	st := NewState(testCatalog())
	st.SetSort(model.SortMax)

	first := st.VisibleItems()
	second := st.VisibleItems()
	assert.Equal(t, first, second)

	// Sorting the view must not reorder the underlying catalog.
	st.SetSort(model.SortRelevance)
	assert.Equal(t, "a1", st.VisibleItems()[0].Code)
}

func TestMaxima(t *testing.T) {
	t.Parallel()

	t.Run("derived from catalog", func(t *testing.T) {
		t.Parallel()

		st := NewState(testCatalog())
		maxima := st.Maxima()

		require.Len(t, maxima, 4)
		assert.Equal(t, 10, maxima["a1"])
		assert.Equal(t, 0, maxima["a3"])
	})

	t.Run("empty catalog falls back to sentinel for a1..a24", func(t *testing.T) {
		t.Parallel()

		st := NewState(nil)
		maxima := st.Maxima()

		require.Len(t, maxima, model.CatalogSize)
		for _, code := range model.Codes() {
			assert.Equal(t, model.SentinelMax, maxima[code])
		}
	})
}

func TestQuantitiesClamped(t *testing.T) {
	t.Parallel()

	t.Run("re-clamps against catalog maxima", func(t *testing.T) {
		t.Parallel()

		st := NewState(testCatalog())
		st.SetQuantity("a1", 7)
		st.SetQuantity("a4", 20)

		got := st.QuantitiesClamped()
		assert.Equal(t, map[string]int{"a1": 7, "a2": 0, "a3": 0, "a4": 20}, got)
	})

	t.Run("idempotent without intervening mutation", func(t *testing.T) {
		t.Parallel()

		st := NewState(testCatalog())
		st.SetQuantity("a2", gofakeit.Number(0, 15))

		assert.Equal(t, st.QuantitiesClamped(), st.QuantitiesClamped())
	})

	t.Run("empty catalog clamps against sentinel", func(t *testing.T) {
		t.Parallel()

		st := NewState(nil)
		got := st.QuantitiesClamped()

		require.Len(t, got, model.CatalogSize)
		for _, code := range model.Codes() {
			assert.Equal(t, 0, got[code])
		}
	})
}

func TestScenarioClampAgainstMaxTen(t *testing.T) {
	t.Parallel()

	catalog := make([]model.OrderItem, 0, model.CatalogSize)
	for _, code := range model.Codes() {
		catalog = append(catalog, model.OrderItem{
			Code:   code,
			NameFR: gofakeit.ProductName(),
			NameNL: gofakeit.ProductName(),
			Max:    10,
			Per:    1,
		})
	}

	st := NewState(catalog)
	st.SetQuantity("a5", 15)

	assert.Equal(t, 10, st.QuantityOf("a5"))
}
