package mapper

import (
	"time"

	"github.com/Apurer/groomer-directory/internal/catalog"
	"github.com/Apurer/groomer-directory/internal/domains/listings/domain"
)

// Service is an offered grooming service.
type Service struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Features mirrors the licensing and operational flags.
type Features struct {
	Licensed        bool `json:"isLicensed"`
	Insured         bool `json:"isInsured"`
	FearFree        bool `json:"fearFreeCertified"`
	NaturalProducts bool `json:"usesNaturalProducts"`
	CageFree        bool `json:"cageFree"`
	OneOnOne        bool `json:"oneOnOneAttention"`
	OnlineBooking   bool `json:"onlineBooking"`
}

type PriceRange struct {
	Low  int `json:"low"`
	High int `json:"high"`
}

type ServiceArea struct {
	PrimaryCity string   `json:"primaryCity,omitempty"`
	Cities      []string `json:"cities"`
	RadiusMiles *int     `json:"radiusMiles,omitempty"`
}

// Listing is the HTTP representation of a groomer listing.
type Listing struct {
	ID                     int64       `json:"id"`
	Slug                   string      `json:"slug"`
	Name                   string      `json:"name"`
	FullAddress            string      `json:"fullAddress,omitempty"`
	City                   string      `json:"city"`
	State                  string      `json:"state"`
	Zip                    string      `json:"zip,omitempty"`
	Phone                  string      `json:"phone,omitempty"`
	Website                string      `json:"website,omitempty"`
	GoogleMapsURL          string      `json:"googleMapsUrl,omitempty"`
	Rating                 *float64    `json:"rating"`
	ReviewsCount           *int        `json:"reviewsCount"`
	Classification         string      `json:"classification,omitempty"`
	VerificationConfidence *float64    `json:"verificationConfidence,omitempty"`
	Services               []Service   `json:"services"`
	AcceptsDogs            bool        `json:"acceptsDogs"`
	AcceptsCats            bool        `json:"acceptsCats"`
	BreedSizes             []string    `json:"breedSizes"`
	Price                  *PriceRange `json:"priceRange,omitempty"`
	Features               Features    `json:"features"`
	FeatureLabels          []string    `json:"featureLabels"`
	YearsExperience        *int        `json:"yearsExperience,omitempty"`
	ImageURL               string      `json:"imageUrl,omitempty"`
	ImageDescription       string      `json:"imageDescription,omitempty"`
	ServiceArea            ServiceArea `json:"serviceArea"`
	CreatedAt              time.Time   `json:"createdAt"`
	UpdatedAt              time.Time   `json:"updatedAt"`
}

// ListingPage is one page of search results.
type ListingPage struct {
	Items      []Listing `json:"items"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	TotalPages int       `json:"totalPages"`
}

// FromDomain maps a listing into its transport shape.
func FromDomain(l *domain.Listing) Listing {
	out := Listing{
		ID:                     l.ID,
		Slug:                   l.Slug,
		Name:                   l.Name,
		FullAddress:            l.FullAddress,
		City:                   l.City,
		State:                  l.State,
		Zip:                    l.Zip,
		Phone:                  l.Phone,
		Website:                l.Website,
		GoogleMapsURL:          l.GoogleMapsURL,
		Rating:                 l.Rating,
		ReviewsCount:           l.ReviewsCount,
		Classification:         l.Classification,
		VerificationConfidence: l.VerificationConfidence,
		Services:               []Service{},
		AcceptsDogs:            l.AcceptsDogs,
		AcceptsCats:            l.AcceptsCats,
		BreedSizes:             []string{},
		Features: Features{
			Licensed:        l.Features.Licensed,
			Insured:         l.Features.Insured,
			FearFree:        l.Features.FearFree,
			NaturalProducts: l.Features.NaturalProducts,
			CageFree:        l.Features.CageFree,
			OneOnOne:        l.Features.OneOnOne,
			OnlineBooking:   l.Features.OnlineBooking,
		},
		FeatureLabels:    nonNil(l.ActiveFeatures()),
		YearsExperience:  l.YearsExperience,
		ImageURL:         l.ImageURL,
		ImageDescription: l.ImageDescription,
		ServiceArea: ServiceArea{
			PrimaryCity: l.ServiceArea.PrimaryCity,
			Cities:      nonNil(l.ServiceArea.Cities),
			RadiusMiles: l.ServiceArea.RadiusMiles,
		},
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
	for _, svc := range catalog.Services() {
		if l.HasService(svc.Key) {
			out.Services = append(out.Services, Service{Key: svc.Key, Label: svc.Label})
		}
	}
	for _, size := range catalog.BreedSizes() {
		if l.HasBreedSize(size) {
			out.BreedSizes = append(out.BreedSizes, size)
		}
	}
	if l.Price != nil {
		out.Price = &PriceRange{Low: l.Price.Low, High: l.Price.High}
	}
	return out
}

// FromPage maps a page of listings.
func FromPage(page domain.Page) ListingPage {
	items := make([]Listing, 0, len(page.Items))
	for _, l := range page.Items {
		items = append(items, FromDomain(l))
	}
	return ListingPage{
		Items:      items,
		Total:      page.Total,
		Page:       page.Number,
		PageSize:   page.Size,
		TotalPages: page.TotalPages(),
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
