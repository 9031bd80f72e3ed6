package domain

import (
	"math"
	"strings"

	"github.com/Apurer/groomer-directory/internal/catalog"
)

// AllStatesLabel is the area label used when no state is selected.
const AllStatesLabel = "All States"

// ServiceCoverage is how many listings in an area offer one service.
type ServiceCoverage struct {
	Key   string
	Label string
	Count int
	Total int
	Pct   int
}

// MarketInsights is derived on every request from the full set of listings in an area.
type MarketInsights struct {
	AreaLabel     string
	TotalInArea   int
	Services      []ServiceCoverage
	CatCount      int
	CatPct        int
	FearFreeCount int
	FearFreePct   int
	AvgRating     float64
	Gaps          []string
	WeakSpots     []string
}

// AreaLabel renders "City, ST", "ST" or "All States".
func AreaLabel(state, city string) string {
	state = strings.TrimSpace(state)
	city = strings.TrimSpace(city)
	switch {
	case state != "" && city != "":
		return city + ", " + state
	case state != "":
		return state
	default:
		return AllStatesLabel
	}
}

// ComputeInsights reduces an area's listings into coverage, gap and rating statistics.
// An empty input yields a zeroed, well-formed result.
func ComputeInsights(listings []*Listing, areaLabel string) MarketInsights {
	listings = dropNil(listings)
	total := len(listings)
	insights := MarketInsights{
		AreaLabel:   areaLabel,
		TotalInArea: total,
		Services:    make([]ServiceCoverage, 0, len(catalog.Services())),
		Gaps:        []string{},
		WeakSpots:   []string{},
	}

	var ratingSum float64
	var rated int
	for _, l := range listings {
		if l.AcceptsCats {
			insights.CatCount++
		}
		if l.Features.FearFree {
			insights.FearFreeCount++
		}
		if l.Rating != nil {
			ratingSum += *l.Rating
			rated++
		}
	}
	if rated > 0 {
		insights.AvgRating = math.Round(ratingSum/float64(rated)*10) / 10
	}
	insights.CatPct = percentage(insights.CatCount, total)
	insights.FearFreePct = percentage(insights.FearFreeCount, total)

	for _, svc := range catalog.Services() {
		count := 0
		for _, l := range listings {
			if l.HasService(svc.Key) {
				count++
			}
		}
		coverage := ServiceCoverage{
			Key:   svc.Key,
			Label: svc.Label,
			Count: count,
			Total: total,
			Pct:   percentage(count, total),
		}
		insights.Services = append(insights.Services, coverage)
		insights.classify(coverage.Label, coverage.Count, coverage.Pct)
	}
	insights.classify(catalog.LabelCatGrooming, insights.CatCount, insights.CatPct)
	insights.classify(catalog.LabelFearFree, insights.FearFreeCount, insights.FearFreePct)
	return insights
}

func dropNil(listings []*Listing) []*Listing {
	kept := make([]*Listing, 0, len(listings))
	for _, l := range listings {
		if l != nil {
			kept = append(kept, l)
		}
	}
	return kept
}

// classify files a label under gaps or weak spots. Gaps only carry signal
// when the area has listings.
func (m *MarketInsights) classify(label string, count, pct int) {
	if m.TotalInArea == 0 {
		return
	}
	switch {
	case count == 0:
		m.Gaps = append(m.Gaps, label)
	case pct > 0 && pct < catalog.WeakSpotThreshold:
		m.WeakSpots = append(m.WeakSpots, label)
	}
}

func percentage(count, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}
