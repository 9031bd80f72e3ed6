package domain

import (
	"time"

	"github.com/Apurer/groomer-directory/internal/catalog"
)

// Services holds the eleven independent grooming service flags.
type Services struct {
	FullGroom     bool
	BathOnly      bool
	NailTrim      bool
	Deshedding    bool
	TeethBrushing bool
	EarCleaning   bool
	FleaTreatment bool
	PuppyGroom    bool
	SeniorGroom   bool
	Dematting     bool
	BreedCuts     bool
}

// Has reports whether the flag named by a catalog service key is set.
// Unknown keys are never set.
func (s Services) Has(key string) bool {
	switch key {
	case catalog.SvcFullGroom:
		return s.FullGroom
	case catalog.SvcBathOnly:
		return s.BathOnly
	case catalog.SvcNailTrim:
		return s.NailTrim
	case catalog.SvcDeshedding:
		return s.Deshedding
	case catalog.SvcTeethBrushing:
		return s.TeethBrushing
	case catalog.SvcEarCleaning:
		return s.EarCleaning
	case catalog.SvcFleaTreatment:
		return s.FleaTreatment
	case catalog.SvcPuppyGroom:
		return s.PuppyGroom
	case catalog.SvcSeniorGroom:
		return s.SeniorGroom
	case catalog.SvcDematting:
		return s.Dematting
	case catalog.SvcBreedCuts:
		return s.BreedCuts
	default:
		return false
	}
}

// Features holds the seven licensing and operational flags.
type Features struct {
	Licensed        bool
	Insured         bool
	FearFree        bool
	NaturalProducts bool
	CageFree        bool
	OneOnOne        bool
	OnlineBooking   bool
}

// Has reports whether the flag named by a catalog feature key is set.
func (f Features) Has(key string) bool {
	switch key {
	case catalog.FeatureLicensed:
		return f.Licensed
	case catalog.FeatureInsured:
		return f.Insured
	case catalog.FeatureFearFree:
		return f.FearFree
	case catalog.FeatureNaturalProducts:
		return f.NaturalProducts
	case catalog.FeatureCageFree:
		return f.CageFree
	case catalog.FeatureOneOnOne:
		return f.OneOnOne
	case catalog.FeatureOnlineBooking:
		return f.OnlineBooking
	default:
		return false
	}
}

// PriceRange is the advertised price band in whole dollars.
type PriceRange struct {
	Low  int
	High int
}

// ServiceArea describes where a mobile groomer travels.
type ServiceArea struct {
	PrimaryCity string
	Cities      []string
	RadiusMiles *int
}

// Listing is a mobile pet-grooming business record. Listings are curated
// externally and never mutated by this service.
type Listing struct {
	ID                     int64
	Slug                   string
	Name                   string
	FullAddress            string
	City                   string
	State                  string
	Zip                    string
	Phone                  string
	Website                string
	GoogleMapsURL          string
	Rating                 *float64
	ReviewsCount           *int
	Classification         string
	VerificationConfidence *float64

	Services    Services
	AcceptsDogs bool
	AcceptsCats bool
	BreedSizes  []string
	Price       *PriceRange
	Features    Features

	YearsExperience  *int
	ImageURL         string
	ImageDescription string
	ServiceArea      ServiceArea

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasService reports whether the listing offers the service named by key.
func (l *Listing) HasService(key string) bool {
	if l == nil {
		return false
	}
	return l.Services.Has(key)
}

// HasBreedSize reports whether size is one of the accepted breed sizes.
func (l *Listing) HasBreedSize(size string) bool {
	if l == nil {
		return false
	}
	for _, s := range l.BreedSizes {
		if s == size {
			return true
		}
	}
	return false
}

// ActiveServices returns the labels of offered services in catalog order.
func (l *Listing) ActiveServices() []string {
	var labels []string
	for _, svc := range catalog.Services() {
		if l.HasService(svc.Key) {
			labels = append(labels, svc.Label)
		}
	}
	return labels
}

// ActiveFeatures returns the labels of set feature flags in catalog order.
func (l *Listing) ActiveFeatures() []string {
	if l == nil {
		return nil
	}
	var labels []string
	for _, feat := range catalog.Features() {
		if l.Features.Has(feat.Key) {
			labels = append(labels, feat.Label)
		}
	}
	return labels
}

// ReviewsOrZero returns the review count, treating an absent count as zero.
func (l *Listing) ReviewsOrZero() int {
	if l == nil || l.ReviewsCount == nil {
		return 0
	}
	return *l.ReviewsCount
}

// Clone returns a deep copy so callers cannot mutate shared fixture data.
func (l *Listing) Clone() *Listing {
	if l == nil {
		return nil
	}
	clone := *l
	clone.Rating = cloneFloat(l.Rating)
	clone.ReviewsCount = cloneInt(l.ReviewsCount)
	clone.VerificationConfidence = cloneFloat(l.VerificationConfidence)
	clone.YearsExperience = cloneInt(l.YearsExperience)
	clone.ServiceArea.RadiusMiles = cloneInt(l.ServiceArea.RadiusMiles)
	if l.Price != nil {
		price := *l.Price
		clone.Price = &price
	}
	if len(l.BreedSizes) > 0 {
		clone.BreedSizes = append([]string{}, l.BreedSizes...)
	}
	if len(l.ServiceArea.Cities) > 0 {
		clone.ServiceArea.Cities = append([]string{}, l.ServiceArea.Cities...)
	}
	return &clone
}

func cloneFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	value := *v
	return &value
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	value := *v
	return &value
}
