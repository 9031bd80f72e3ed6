package fixture

import (
	"fmt"
	"strings"
)

// Slugify lower-cases text, collapses every run of characters outside
// [a-z0-9] into a single dash and trims leading and trailing dashes.
func Slugify(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	dash := false
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// SlugIndex tracks slugs already handed out so that every listing gets a
// distinct one. It is not safe for concurrent use.
type SlugIndex struct {
	used map[string]struct{}
}

func NewSlugIndex() *SlugIndex {
	return &SlugIndex{used: map[string]struct{}{}}
}

// Has reports whether slug has been claimed.
func (x *SlugIndex) Has(slug string) bool {
	_, ok := x.used[slug]
	return ok
}

// Len is the number of claimed slugs.
func (x *SlugIndex) Len() int { return len(x.used) }

// Claim reserves a slug for a business in city and returns the display name
// and slug to use. On a collision the city is prefixed to the name; if that
// also collides the record index is appended. Records are never dropped.
func (x *SlugIndex) Claim(name, city string, index int) (string, string) {
	slug := Slugify(name + "-" + city)
	if x.Has(slug) {
		name = city + " " + name
		slug = Slugify(name + "-" + city)
	}
	if x.Has(slug) {
		base := fmt.Sprintf("%s-%d", slug, index)
		slug = base
		for n := 2; x.Has(slug); n++ {
			slug = fmt.Sprintf("%s-%d", base, n)
		}
	}
	x.used[slug] = struct{}{}
	return name, slug
}
