package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/groomer-directory/internal/catalog"
)

func rated(v float64) *float64 { return &v }

func coverageFor(t *testing.T, insights MarketInsights, key string) ServiceCoverage {
	t.Helper()
	for _, svc := range insights.Services {
		if svc.Key == key {
			return svc
		}
	}
	t.Fatalf("service %s missing from insights", key)
	return ServiceCoverage{}
}

func TestComputeInsights_ServiceCoverage(t *testing.T) {
	listings := make([]*Listing, 0, 10)
	for i := 0; i < 10; i++ {
		l := &Listing{ID: int64(i + 1), Rating: rated(4.0)}
		l.Services.FullGroom = true
		l.Services.NailTrim = i < 3
		listings = append(listings, l)
	}

	insights := ComputeInsights(listings, "Austin, TX")

	nail := coverageFor(t, insights, catalog.SvcNailTrim)
	require.Equal(t, ServiceCoverage{Key: catalog.SvcNailTrim, Label: "Nail Trim", Count: 3, Total: 10, Pct: 30}, nail)
	require.NotContains(t, insights.Gaps, "Nail Trim")
	require.NotContains(t, insights.WeakSpots, "Nail Trim")
	require.Equal(t, 100, coverageFor(t, insights, catalog.SvcFullGroom).Pct)
	require.Contains(t, insights.Gaps, "Bath Only")
	require.Len(t, insights.Services, len(catalog.Services()))
}

func TestComputeInsights_IgnoresNilListings(t *testing.T) {
	cat := &Listing{ID: 1, AcceptsCats: true, Rating: rated(5)}
	cat.Services.NailTrim = true
	plain := &Listing{ID: 2}

	insights := ComputeInsights([]*Listing{nil, cat, nil, plain}, "Austin, TX")

	require.Equal(t, 2, insights.TotalInArea)
	require.Equal(t, 50, insights.CatPct)
	require.Equal(t, ServiceCoverage{Key: catalog.SvcNailTrim, Label: "Nail Trim", Count: 1, Total: 2, Pct: 50}, coverageFor(t, insights, catalog.SvcNailTrim))
	require.Equal(t, 5.0, insights.AvgRating)
}

func TestComputeInsights_GapsAndWeakSpots(t *testing.T) {
	listings := make([]*Listing, 0, 10)
	for i := 0; i < 10; i++ {
		l := &Listing{ID: int64(i + 1)}
		l.Services = Services{
			FullGroom: true, BathOnly: true, NailTrim: true, Deshedding: true,
			TeethBrushing: true, EarCleaning: true, FleaTreatment: true, PuppyGroom: true,
			SeniorGroom: true, Dematting: true, BreedCuts: i == 0,
		}
		l.AcceptsCats = i < 5
		listings = append(listings, l)
	}
	listings[0].Rating = rated(4.8)
	listings[1].Rating = rated(3.2)

	insights := ComputeInsights(listings, "GA")

	require.Equal(t, []string{catalog.LabelFearFree}, insights.Gaps)
	require.Equal(t, []string{"Breed Cuts"}, insights.WeakSpots)
	require.Equal(t, 5, insights.CatCount)
	require.Equal(t, 50, insights.CatPct)
	require.Zero(t, insights.FearFreeCount)
	require.Equal(t, 4.0, insights.AvgRating, "unrated listings are excluded from the mean")
}

func TestComputeInsights_AverageRatingRounding(t *testing.T) {
	listings := []*Listing{
		{ID: 1, Rating: rated(4.4)},
		{ID: 2, Rating: rated(4.5)},
		{ID: 3, Rating: rated(4.7)},
		{ID: 4},
	}
	require.Equal(t, 4.5, ComputeInsights(listings, "x").AvgRating)
}

func TestComputeInsights_EmptySet(t *testing.T) {
	insights := ComputeInsights(nil, "Nowhere")

	require.Equal(t, "Nowhere", insights.AreaLabel)
	require.Zero(t, insights.TotalInArea)
	require.Zero(t, insights.AvgRating)
	require.Empty(t, insights.Gaps)
	require.Empty(t, insights.WeakSpots)
	require.Len(t, insights.Services, len(catalog.Services()))
	for _, svc := range insights.Services {
		require.Zero(t, svc.Count, svc.Key)
		require.Zero(t, svc.Pct, svc.Key)
		require.Zero(t, svc.Total, svc.Key)
	}
}

func TestAreaLabel(t *testing.T) {
	tests := []struct {
		state, city, want string
	}{
		{"TX", "Austin", "Austin, TX"},
		{"TX", "", "TX"},
		{"", "", AllStatesLabel},
		{"", "Austin", AllStatesLabel},
		{" CA ", " San Diego ", "San Diego, CA"},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, AreaLabel(tt.state, tt.city)); diff != "" {
			t.Errorf("AreaLabel(%q, %q) mismatch (-want +got):\n%s", tt.state, tt.city, diff)
		}
	}
}
