package domain

import (
	"math"
	"strings"

	"github.com/Apurer/groomer-directory/internal/catalog"
)

// MaxPage is the largest page whose offset fits in an int.
const MaxPage = math.MaxInt/catalog.PageSize + 1

// Filter describes the subset and page of listings a visitor asked for.
// Zero values mean "no constraint"; the pointer fields distinguish an
// explicit false/0 from an unset gate.
type Filter struct {
	Search      string
	State       string
	City        string
	AcceptsCats *bool
	FearFree    *bool
	BreedSize   string
	MinRating   *float64
	Services    []string
	Page        int
}

// Normalize trims free-form input, drops blank service keys and clamps the page to 1.
func (f Filter) Normalize() Filter {
	f.Search = strings.TrimSpace(f.Search)
	f.State = strings.TrimSpace(f.State)
	f.City = strings.TrimSpace(f.City)
	f.BreedSize = strings.TrimSpace(f.BreedSize)
	if len(f.Services) > 0 {
		services := make([]string, 0, len(f.Services))
		for _, svc := range f.Services {
			if svc = strings.TrimSpace(svc); svc != "" {
				services = append(services, svc)
			}
		}
		f.Services = services
	}
	if f.Page < 1 {
		f.Page = 1
	}
	return f
}

// Offset is the index of the first listing on the requested page.
func (f Filter) Offset() int {
	page := f.Page
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		return math.MaxInt
	}
	return (page - 1) * catalog.PageSize
}

// HasUnknownBreedSize reports whether a breed size was requested that no listing can carry.
func (f Filter) HasUnknownBreedSize() bool {
	return f.BreedSize != "" && !catalog.IsBreedSize(f.BreedSize)
}

// HasUnknownService reports whether a requested service key is outside the catalog.
// Such a filter can never match because missing flags are never true.
func (f Filter) HasUnknownService() bool {
	for _, svc := range f.Services {
		if !catalog.IsService(svc) {
			return true
		}
	}
	return false
}

// Area returns a filter that selects every listing in the state/city pair, unpaginated.
func Area(state, city string) Filter {
	return Filter{State: state, City: city}.Normalize()
}

// Matches applies every active constraint conjunctively to a single listing.
func (f Filter) Matches(l *Listing) bool {
	if l == nil {
		return false
	}
	if f.Search != "" && !matchesSearch(l, f.Search) {
		return false
	}
	if f.State != "" && l.State != f.State {
		return false
	}
	if f.City != "" && !strings.EqualFold(l.City, f.City) {
		return false
	}
	if f.AcceptsCats != nil && l.AcceptsCats != *f.AcceptsCats {
		return false
	}
	if f.FearFree != nil && l.Features.FearFree != *f.FearFree {
		return false
	}
	if f.BreedSize != "" && !l.HasBreedSize(f.BreedSize) {
		return false
	}
	if f.MinRating != nil && (l.Rating == nil || *l.Rating < *f.MinRating) {
		return false
	}
	for _, svc := range f.Services {
		if !l.HasService(svc) {
			return false
		}
	}
	return true
}

func matchesSearch(l *Listing, search string) bool {
	needle := strings.ToLower(search)
	for _, field := range []string{l.Name, l.City, l.State} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// Less orders listings by descending rating (unrated last), then descending
// review count (absent counts as zero), then ascending id.
func Less(a, b *Listing) bool {
	switch {
	case a.Rating != nil && b.Rating == nil:
		return true
	case a.Rating == nil && b.Rating != nil:
		return false
	case a.Rating != nil && b.Rating != nil && *a.Rating != *b.Rating:
		return *a.Rating > *b.Rating
	}
	if ra, rb := a.ReviewsOrZero(), b.ReviewsOrZero(); ra != rb {
		return ra > rb
	}
	return a.ID < b.ID
}
