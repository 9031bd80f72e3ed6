package mapper

import (
	"fmt"
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/Apurer/groomer-directory/internal/domains/listings/domain"
)

// Query parameter names accepted by the listings search.
const (
	ParamSearch      = "search"
	ParamState       = "state"
	ParamCity        = "city"
	ParamAcceptsCats = "accepts_cats"
	ParamFearFree    = "fear_free"
	ParamBreedSize   = "breed_size"
	ParamMinRating   = "min_rating"
	ParamServices    = "services"
	ParamPage        = "page"
)

// FieldErrors collects malformed query parameters keyed by name.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e[k]))
	}
	return "invalid query parameters: " + strings.Join(parts, "; ")
}

// ToFilter parses search query parameters. Only syntactically malformed
// values are rejected; unknown service keys and breed sizes pass through and
// simply match nothing.
func ToFilter(values url.Values) (domain.Filter, error) {
	errs := FieldErrors{}
	f := domain.Filter{
		Search:    values.Get(ParamSearch),
		State:     values.Get(ParamState),
		City:      values.Get(ParamCity),
		BreedSize: values.Get(ParamBreedSize),
	}
	f.AcceptsCats = parseGate(values, ParamAcceptsCats, errs)
	f.FearFree = parseGate(values, ParamFearFree, errs)

	if raw := strings.TrimSpace(values.Get(ParamMinRating)); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		switch {
		case err != nil, math.IsNaN(rating), math.IsInf(rating, 0):
			errs[ParamMinRating] = "must be a number"
		case rating < 0 || rating > 5:
			errs[ParamMinRating] = "must be between 0 and 5"
		default:
			f.MinRating = &rating
		}
	}

	for _, raw := range values[ParamServices] {
		for _, svc := range strings.Split(raw, ",") {
			if svc = strings.TrimSpace(svc); svc != "" {
				f.Services = append(f.Services, svc)
			}
		}
	}

	if raw := strings.TrimSpace(values.Get(ParamPage)); raw != "" {
		page, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			errs[ParamPage] = "must be an integer"
		case page > domain.MaxPage:
			errs[ParamPage] = fmt.Sprintf("must be at most %d", domain.MaxPage)
		default:
			f.Page = page
		}
	}

	if len(errs) > 0 {
		return domain.Filter{}, errs
	}
	return f.Normalize(), nil
}

func parseGate(values url.Values, name string, errs FieldErrors) *bool {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		errs[name] = "must be true or false"
		return nil
	}
	return &v
}
