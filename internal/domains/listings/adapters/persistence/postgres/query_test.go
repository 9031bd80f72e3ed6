package postgres

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/groomer-directory/internal/catalog"
	"github.com/Apurer/groomer-directory/internal/domains/listings/domain"
)

func TestBuildConditions(t *testing.T) {
	cats := false
	rating := 4.0
	conds, ok := buildConditions(domain.Filter{
		Search:      " mobile spa ",
		State:       "TX",
		City:        "austin",
		AcceptsCats: &cats,
		BreedSize:   catalog.BreedLarge,
		MinRating:   &rating,
		Services:    []string{catalog.SvcNailTrim, "", catalog.SvcDematting},
	})
	require.True(t, ok)

	want := []condition{
		{query: "fts @@ websearch_to_tsquery('simple', ?)", args: []any{"mobile spa"}},
		{query: "state = ?", args: []any{"TX"}},
		{query: "lower(city) = lower(?)", args: []any{"austin"}},
		{query: "accepts_cats = ?", args: []any{false}},
		{query: "breed_sizes @> ARRAY[?]::text[]", args: []any{catalog.BreedLarge}},
		{query: "rating >= ?", args: []any{4.0}},
		{query: "svc_nail_trim = true"},
		{query: "svc_dematting = true"},
	}
	if diff := cmp.Diff(want, conds, cmp.AllowUnexported(condition{})); diff != "" {
		t.Fatalf("conditions mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildConditions_EmptyFilter(t *testing.T) {
	conds, ok := buildConditions(domain.Filter{})
	require.True(t, ok)
	require.Empty(t, conds)
}

func TestBuildConditions_RejectsUnknownService(t *testing.T) {
	_, ok := buildConditions(domain.Filter{Services: []string{"svc_nail_trim; DROP TABLE listings"}})
	require.False(t, ok)
}

func TestBuildConditions_RejectsUnknownBreedSize(t *testing.T) {
	_, ok := buildConditions(domain.Filter{BreedSize: "teacup"})
	require.False(t, ok)
}
