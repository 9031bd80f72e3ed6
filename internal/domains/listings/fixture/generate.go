// Package fixture builds the deterministic listing data set served by the
// in-memory backend and loaded into Postgres by the seeder.
package fixture

import (
	"fmt"
	"math"
	"time"

	"github.com/Apurer/groomer-directory/internal/catalog"
	"github.com/Apurer/groomer-directory/internal/domains/listings/domain"
)

// DefaultSize is the number of listings in the standard data set.
const DefaultSize = 100

// GeneratedAt stamps every generated listing so repeated runs are identical.
var GeneratedAt = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

const classification = "mobile_pet_grooming"

// Generate produces n listings. Listing i (0-based) is placed in
// metros[i%len(metros)] and gets ID i+1; every field draws from its own seed
// so the output depends only on n.
func Generate(n int) []*domain.Listing {
	if n < 0 {
		n = 0
	}
	slugs := NewSlugIndex()
	listings := make([]*domain.Listing, 0, n)
	for i := 0; i < n; i++ {
		listings = append(listings, generateOne(i, slugs))
	}
	for _, l := range listings {
		applyDesert(l)
	}
	return listings
}

func generateOne(i int, slugs *SlugIndex) *domain.Listing {
	m := metros[i%len(metros)]
	s := func(n int) int { return i*100 + n }

	prefix := pick(namePrefixes, s(1))
	suffix := pick(nameSuffixes, s(2))
	name, slug := slugs.Claim(prefix+" "+suffix, m.city, i)

	priceLow := m.tier.base() + randInt(0, 20, s(10))
	priceHigh := priceLow + randInt(30, 70, s(11))

	ratingBase := 4.0
	if randBool(0.15, s(20)) {
		ratingBase = 3.0
	}
	rating := math.Min(math.Round((ratingBase+SeededRand(s(21)))*10)/10, 5.0)

	reviewBase := 15
	switch {
	case rating >= 4.5:
		reviewBase = 80
	case rating >= 4.0:
		reviewBase = 40
	}
	reviews := reviewBase + randInt(0, 250, s(22))
	years := randInt(1, 20, s(30))
	confidence := math.Round((0.80+SeededRand(s(31))*0.18)*100) / 100

	var website string
	if randBool(0.80, s(40)) {
		website = fmt.Sprintf("https://%s.example.com", Slugify(name))
	}

	breedSizes := []string{catalog.BreedSmall}
	if randBool(0.95, s(72)) {
		breedSizes = append(breedSizes, catalog.BreedMedium)
	}
	if randBool(0.80, s(73)) {
		breedSizes = append(breedSizes, catalog.BreedLarge)
	}
	if randBool(0.40, s(74)) {
		breedSizes = append(breedSizes, catalog.BreedGiant)
	}

	radius := randInt(10, 30, s(90))
	cities := append([]string{m.city}, m.nearby[:randInt(1, len(m.nearby), s(91))]...)

	return &domain.Listing{
		ID:                     int64(i + 1),
		Slug:                   slug,
		Name:                   name,
		FullAddress:            fmt.Sprintf("%s, %s, %s %s", m.address, m.city, m.state, m.zip),
		City:                   m.city,
		State:                  m.state,
		Zip:                    m.zip,
		Phone:                  fmt.Sprintf("(%s) 555-%04d", m.areaCode, randInt(1000, 9999, s(41))),
		Website:                website,
		Rating:                 &rating,
		ReviewsCount:           &reviews,
		Classification:         classification,
		VerificationConfidence: &confidence,
		Services: domain.Services{
			FullGroom:     randBool(0.92, s(50)),
			BathOnly:      randBool(0.88, s(51)),
			NailTrim:      randBool(0.90, s(52)),
			Deshedding:    randBool(0.65, s(53)),
			TeethBrushing: randBool(0.50, s(54)),
			EarCleaning:   randBool(0.70, s(55)),
			FleaTreatment: randBool(0.45, s(56)),
			PuppyGroom:    randBool(0.60, s(57)),
			SeniorGroom:   randBool(0.55, s(58)),
			Dematting:     randBool(0.50, s(59)),
			BreedCuts:     randBool(0.60, s(60)),
		},
		AcceptsDogs: true,
		AcceptsCats: randBool(0.55, s(70)),
		BreedSizes:  breedSizes,
		Price:       &domain.PriceRange{Low: priceLow, High: priceHigh},
		Features: domain.Features{
			Licensed:        randBool(0.75, s(80)),
			Insured:         randBool(0.70, s(81)),
			FearFree:        randBool(0.25, s(82)),
			NaturalProducts: randBool(0.45, s(83)),
			CageFree:        randBool(0.55, s(84)),
			OneOnOne:        randBool(0.65, s(85)),
			OnlineBooking:   randBool(0.60, s(86)),
		},
		YearsExperience: &years,
		ServiceArea: domain.ServiceArea{
			PrimaryCity: m.city,
			Cities:      cities,
			RadiusMiles: &radius,
		},
		CreatedAt: GeneratedAt,
		UpdatedAt: GeneratedAt,
	}
}

// applyDesert removes services from a few states so the insights view has
// real gaps to show.
func applyDesert(l *domain.Listing) {
	switch l.State {
	case "GA":
		l.AcceptsCats = false
		l.Services.FleaTreatment = false
		l.Features.FearFree = false
		l.Services.TeethBrushing = false
	case "WA":
		l.Features.FearFree = false
		l.Services.SeniorGroom = false
		l.Services.TeethBrushing = false
		l.AcceptsCats = false
	case "CO":
		l.AcceptsCats = false
		l.Services.TeethBrushing = false
		l.Features.FearFree = false
		capRating(l, 3.8)
	case "IN":
		l.Features.FearFree = false
		l.Features.OnlineBooking = false
		l.Services.FleaTreatment = false
		capRating(l, 3.6)
	case "OH":
		l.Services.FleaTreatment = false
		l.Services.Dematting = false
		l.Services.Deshedding = false
	case "MN":
		l.Services.PuppyGroom = false
		l.Services.BreedCuts = false
		l.Features.FearFree = false
	}
}

func capRating(l *domain.Listing, ceiling float64) {
	if l.Rating == nil {
		v := 3.5
		l.Rating = &v
	}
	if *l.Rating > ceiling {
		v := ceiling
		l.Rating = &v
	}
}
