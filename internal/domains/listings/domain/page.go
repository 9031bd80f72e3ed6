package domain

import (
	"github.com/Apurer/groomer-directory/internal/catalog"
	"github.com/Apurer/groomer-directory/internal/shared/projection"
)

// Page is a page of listings together with the pre-pagination match count.
type Page = projection.Page[*Listing]

// NewPage wraps listings for the filter's page number.
func NewPage(listings []*Listing, total int64, f Filter) Page {
	return projection.NewPage(listings, total, f.Page, catalog.PageSize)
}

// EmptyPage is the renderable result for a failed or impossible query.
func EmptyPage(f Filter) Page {
	return projection.EmptyPage[*Listing](f.Page, catalog.PageSize)
}
