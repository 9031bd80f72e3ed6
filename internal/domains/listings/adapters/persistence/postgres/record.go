package postgres

import (
	"time"

	"github.com/lib/pq"

	"github.com/Apurer/groomer-directory/internal/domains/listings/domain"
)

// listingRecord maps the listings table. The generated fts column is
// maintained by Postgres and not mapped.
type listingRecord struct {
	ID                     int64    `gorm:"primaryKey;column:id"`
	Slug                   string   `gorm:"column:slug"`
	Name                   string   `gorm:"column:name"`
	FullAddress            *string  `gorm:"column:full_address"`
	City                   string   `gorm:"column:city"`
	State                  string   `gorm:"column:state"`
	Zip                    *string  `gorm:"column:zip"`
	Phone                  *string  `gorm:"column:phone"`
	Website                *string  `gorm:"column:website"`
	GoogleMapsURL          *string  `gorm:"column:google_maps_url"`
	Rating                 *float64 `gorm:"column:rating"`
	ReviewsCount           *int     `gorm:"column:reviews_count"`
	Classification         *string  `gorm:"column:classification"`
	VerificationConfidence *float64 `gorm:"column:verification_confidence"`

	SvcFullGroom     bool `gorm:"column:svc_full_groom"`
	SvcBathOnly      bool `gorm:"column:svc_bath_only"`
	SvcNailTrim      bool `gorm:"column:svc_nail_trim"`
	SvcDeshedding    bool `gorm:"column:svc_deshedding"`
	SvcTeethBrushing bool `gorm:"column:svc_teeth_brushing"`
	SvcEarCleaning   bool `gorm:"column:svc_ear_cleaning"`
	SvcFleaTreatment bool `gorm:"column:svc_flea_treatment"`
	SvcPuppyGroom    bool `gorm:"column:svc_puppy_groom"`
	SvcSeniorGroom   bool `gorm:"column:svc_senior_groom"`
	SvcDematting     bool `gorm:"column:svc_dematting"`
	SvcBreedCuts     bool `gorm:"column:svc_breed_cuts"`

	AcceptsDogs    bool           `gorm:"column:accepts_dogs"`
	AcceptsCats    bool           `gorm:"column:accepts_cats"`
	BreedSizes     pq.StringArray `gorm:"column:breed_sizes;type:text[]"`
	PriceRangeLow  *int           `gorm:"column:price_range_low"`
	PriceRangeHigh *int           `gorm:"column:price_range_high"`

	IsLicensed          bool `gorm:"column:is_licensed"`
	IsInsured           bool `gorm:"column:is_insured"`
	FearFreeCertified   bool `gorm:"column:fear_free_certified"`
	UsesNaturalProducts bool `gorm:"column:uses_natural_products"`
	CageFree            bool `gorm:"column:cage_free"`
	OneOnOneAttention   bool `gorm:"column:one_on_one_attention"`
	OnlineBooking       bool `gorm:"column:online_booking"`

	YearsExperience    *int           `gorm:"column:years_experience"`
	ImageURL           *string        `gorm:"column:image_url"`
	ImageDescription   *string        `gorm:"column:image_description"`
	PrimaryCity        *string        `gorm:"column:primary_city"`
	ServiceCities      pq.StringArray `gorm:"column:service_cities;type:text[]"`
	ServiceRadiusMiles *int           `gorm:"column:service_radius_miles"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (listingRecord) TableName() string { return "listings" }

func toRecord(l *domain.Listing) listingRecord {
	rec := listingRecord{
		ID:                     l.ID,
		Slug:                   l.Slug,
		Name:                   l.Name,
		FullAddress:            optional(l.FullAddress),
		City:                   l.City,
		State:                  l.State,
		Zip:                    optional(l.Zip),
		Phone:                  optional(l.Phone),
		Website:                optional(l.Website),
		GoogleMapsURL:          optional(l.GoogleMapsURL),
		Rating:                 l.Rating,
		ReviewsCount:           l.ReviewsCount,
		Classification:         optional(l.Classification),
		VerificationConfidence: l.VerificationConfidence,

		SvcFullGroom:     l.Services.FullGroom,
		SvcBathOnly:      l.Services.BathOnly,
		SvcNailTrim:      l.Services.NailTrim,
		SvcDeshedding:    l.Services.Deshedding,
		SvcTeethBrushing: l.Services.TeethBrushing,
		SvcEarCleaning:   l.Services.EarCleaning,
		SvcFleaTreatment: l.Services.FleaTreatment,
		SvcPuppyGroom:    l.Services.PuppyGroom,
		SvcSeniorGroom:   l.Services.SeniorGroom,
		SvcDematting:     l.Services.Dematting,
		SvcBreedCuts:     l.Services.BreedCuts,

		AcceptsDogs: l.AcceptsDogs,
		AcceptsCats: l.AcceptsCats,
		BreedSizes:  pq.StringArray(l.BreedSizes),

		IsLicensed:          l.Features.Licensed,
		IsInsured:           l.Features.Insured,
		FearFreeCertified:   l.Features.FearFree,
		UsesNaturalProducts: l.Features.NaturalProducts,
		CageFree:            l.Features.CageFree,
		OneOnOneAttention:   l.Features.OneOnOne,
		OnlineBooking:       l.Features.OnlineBooking,

		YearsExperience:    l.YearsExperience,
		ImageURL:           optional(l.ImageURL),
		ImageDescription:   optional(l.ImageDescription),
		PrimaryCity:        optional(l.ServiceArea.PrimaryCity),
		ServiceCities:      pq.StringArray(l.ServiceArea.Cities),
		ServiceRadiusMiles: l.ServiceArea.RadiusMiles,

		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
	if l.Price != nil {
		low, high := l.Price.Low, l.Price.High
		rec.PriceRangeLow = &low
		rec.PriceRangeHigh = &high
	}
	if rec.BreedSizes == nil {
		rec.BreedSizes = pq.StringArray{}
	}
	if rec.ServiceCities == nil {
		rec.ServiceCities = pq.StringArray{}
	}
	return rec
}

func (r listingRecord) toDomain() *domain.Listing {
	l := &domain.Listing{
		ID:                     r.ID,
		Slug:                   r.Slug,
		Name:                   r.Name,
		FullAddress:            deref(r.FullAddress),
		City:                   r.City,
		State:                  r.State,
		Zip:                    deref(r.Zip),
		Phone:                  deref(r.Phone),
		Website:                deref(r.Website),
		GoogleMapsURL:          deref(r.GoogleMapsURL),
		Rating:                 r.Rating,
		ReviewsCount:           r.ReviewsCount,
		Classification:         deref(r.Classification),
		VerificationConfidence: r.VerificationConfidence,
		Services: domain.Services{
			FullGroom:     r.SvcFullGroom,
			BathOnly:      r.SvcBathOnly,
			NailTrim:      r.SvcNailTrim,
			Deshedding:    r.SvcDeshedding,
			TeethBrushing: r.SvcTeethBrushing,
			EarCleaning:   r.SvcEarCleaning,
			FleaTreatment: r.SvcFleaTreatment,
			PuppyGroom:    r.SvcPuppyGroom,
			SeniorGroom:   r.SvcSeniorGroom,
			Dematting:     r.SvcDematting,
			BreedCuts:     r.SvcBreedCuts,
		},
		AcceptsDogs: r.AcceptsDogs,
		AcceptsCats: r.AcceptsCats,
		BreedSizes:  []string(r.BreedSizes),
		Features: domain.Features{
			Licensed:        r.IsLicensed,
			Insured:         r.IsInsured,
			FearFree:        r.FearFreeCertified,
			NaturalProducts: r.UsesNaturalProducts,
			CageFree:        r.CageFree,
			OneOnOne:        r.OneOnOneAttention,
			OnlineBooking:   r.OnlineBooking,
		},
		YearsExperience:  r.YearsExperience,
		ImageURL:         deref(r.ImageURL),
		ImageDescription: deref(r.ImageDescription),
		ServiceArea: domain.ServiceArea{
			PrimaryCity: deref(r.PrimaryCity),
			Cities:      []string(r.ServiceCities),
			RadiusMiles: r.ServiceRadiusMiles,
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.PriceRangeLow != nil && r.PriceRangeHigh != nil {
		l.Price = &domain.PriceRange{Low: *r.PriceRangeLow, High: *r.PriceRangeHigh}
	}
	return l
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
