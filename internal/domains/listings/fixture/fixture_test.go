package fixture

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/groomer-directory/internal/catalog"
)

func TestSeededRandRange(t *testing.T) {
	for seed := 0; seed < 10_000; seed++ {
		v := SeededRand(seed)
		require.GreaterOrEqual(t, v, 0.0, "seed %d", seed)
		require.Less(t, v, 1.0, "seed %d", seed)
	}
	require.Equal(t, SeededRand(4242), SeededRand(4242))
}

func TestRandIntBounds(t *testing.T) {
	for seed := 0; seed < 2_000; seed++ {
		v := randInt(10, 30, seed)
		require.GreaterOrEqual(t, v, 10)
		require.LessOrEqual(t, v, 30)
	}
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Bark & Shine Mobile Spa-Austin": "bark-shine-mobile-spa-austin",
		"  Grooming Co.-St. Louis ":      "grooming-co-st-louis",
		"Door-to-Door Grooming":          "door-to-door-grooming",
		"!!!":                            "",
		"VIP Pet on Wheels-San Jose":     "vip-pet-on-wheels-san-jose",
	}
	for in, want := range tests {
		assert.Equal(t, want, Slugify(in), in)
	}
}

func TestSlugIndexClaim(t *testing.T) {
	idx := NewSlugIndex()

	name, slug := idx.Claim("Royal Pet Spa", "Austin", 0)
	require.Equal(t, "Royal Pet Spa", name)
	require.Equal(t, "royal-pet-spa-austin", slug)

	name, slug = idx.Claim("Royal Pet Spa", "Austin", 40)
	require.Equal(t, "Austin Royal Pet Spa", name)
	require.Equal(t, "austin-royal-pet-spa-austin", slug)

	name, slug = idx.Claim("Royal Pet Spa", "Austin", 80)
	require.Equal(t, "Austin Royal Pet Spa", name)
	require.Equal(t, "austin-royal-pet-spa-austin-80", slug)

	_, slug = idx.Claim("Royal Pet Spa", "Austin", 80)
	require.Equal(t, "austin-royal-pet-spa-austin-80-2", slug)
	require.Equal(t, 4, idx.Len())
}

func TestGenerate_UniqueSlugsAndIDs(t *testing.T) {
	for _, n := range []int{DefaultSize, 500} {
		listings := Generate(n)
		require.Len(t, listings, n)

		slugs := map[string]struct{}{}
		for i, l := range listings {
			require.Equal(t, int64(i+1), l.ID)
			require.NotEmpty(t, l.Slug)
			_, dup := slugs[l.Slug]
			require.False(t, dup, "duplicate slug %s", l.Slug)
			slugs[l.Slug] = struct{}{}
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	first := Generate(DefaultSize)
	second := Generate(DefaultSize)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("generation is not deterministic (-first +second):\n%s", diff)
	}
}

func TestGenerate_FieldInvariants(t *testing.T) {
	for _, l := range Generate(DefaultSize) {
		require.True(t, l.AcceptsDogs)
		require.Contains(t, l.BreedSizes, catalog.BreedSmall)
		require.NotNil(t, l.Rating)
		require.GreaterOrEqual(t, *l.Rating, 3.0)
		require.LessOrEqual(t, *l.Rating, 5.0)
		require.NotNil(t, l.Price)
		require.Greater(t, l.Price.High, l.Price.Low)
		require.Equal(t, l.City, l.ServiceArea.PrimaryCity)
		require.Equal(t, l.City, l.ServiceArea.Cities[0])
		require.GreaterOrEqual(t, len(l.ServiceArea.Cities), 2)
		require.Regexp(t, `^\(\d{3}\) 555-\d{4}$`, l.Phone)
		require.Equal(t, classification, l.Classification)
	}
}

func TestGenerate_ServiceDeserts(t *testing.T) {
	byState := map[string]int{}
	for _, l := range Generate(DefaultSize) {
		byState[l.State]++
		switch l.State {
		case "GA":
			require.False(t, l.Services.FleaTreatment)
			require.False(t, l.AcceptsCats)
			require.False(t, l.Features.FearFree)
			require.False(t, l.Services.TeethBrushing)
		case "WA":
			require.False(t, l.Services.SeniorGroom)
			require.False(t, l.AcceptsCats)
		case "CO":
			require.LessOrEqual(t, *l.Rating, 3.8)
			require.False(t, l.AcceptsCats)
		case "IN":
			require.LessOrEqual(t, *l.Rating, 3.6)
			require.False(t, l.Features.OnlineBooking)
		case "OH":
			require.False(t, l.Services.Dematting)
			require.False(t, l.Services.Deshedding)
		case "MN":
			require.False(t, l.Services.PuppyGroom)
			require.False(t, l.Services.BreedCuts)
		}
	}
	for _, state := range []string{"GA", "WA", "CO", "IN", "OH", "MN"} {
		require.Positive(t, byState[state], state)
	}
}
