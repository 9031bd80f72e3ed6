package mapper

import "github.com/Apurer/groomer-directory/internal/domains/listings/domain"

type ServiceCoverage struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Count int    `json:"count"`
	Total int    `json:"total"`
	Pct   int    `json:"pct"`
}

// MarketInsights is the transport shape of an area's coverage report.
type MarketInsights struct {
	AreaLabel     string            `json:"areaLabel"`
	TotalInArea   int               `json:"totalInArea"`
	Services      []ServiceCoverage `json:"services"`
	CatCount      int               `json:"catCount"`
	CatPct        int               `json:"catPct"`
	FearFreeCount int               `json:"fearFreeCount"`
	FearFreePct   int               `json:"fearFreePct"`
	AvgRating     float64           `json:"avgRating"`
	Gaps          []string          `json:"gaps"`
	WeakSpots     []string          `json:"weakSpots"`
}

// Stats summarises the directory for the landing page.
type Stats struct {
	Listings int64 `json:"listings"`
	States   int64 `json:"states"`
}

func FromInsights(in domain.MarketInsights) MarketInsights {
	services := make([]ServiceCoverage, 0, len(in.Services))
	for _, svc := range in.Services {
		services = append(services, ServiceCoverage(svc))
	}
	return MarketInsights{
		AreaLabel:     in.AreaLabel,
		TotalInArea:   in.TotalInArea,
		Services:      services,
		CatCount:      in.CatCount,
		CatPct:        in.CatPct,
		FearFreeCount: in.FearFreeCount,
		FearFreePct:   in.FearFreePct,
		AvgRating:     in.AvgRating,
		Gaps:          nonNil(in.Gaps),
		WeakSpots:     nonNil(in.WeakSpots),
	}
}
