package directoryserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	listinghttpmapper "github.com/Apurer/groomer-directory/internal/domains/listings/adapters/http/mapper"
	listingsports "github.com/Apurer/groomer-directory/internal/domains/listings/ports"
	apierrors "github.com/Apurer/groomer-directory/internal/shared/errors"
)

// DirectoryAPI exposes the read side of the listings bounded context.
type DirectoryAPI struct {
	service listingsports.Service
}

// NewDirectoryAPI creates a DirectoryAPI backed by the provided service.
func NewDirectoryAPI(service listingsports.Service) DirectoryAPI {
	return DirectoryAPI{service: service}
}

// Get /healthz
func (api *DirectoryAPI) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Get /v1/listings
// Search listings with optional filters, one page at a time
func (api *DirectoryAPI) SearchListings(c *gin.Context) {
	filter, err := listinghttpmapper.ToFilter(c.Request.URL.Query())
	if err != nil {
		respondError(c, err)
		return
	}
	page := api.service.Query(c.Request.Context(), filter)
	c.JSON(http.StatusOK, listinghttpmapper.FromPage(page))
}

// Get /v1/listings/:slug
// Find a listing by its slug
func (api *DirectoryAPI) GetListingBySlug(c *gin.Context) {
	slug := c.Param("slug")
	listing, ok := api.service.GetBySlug(c.Request.Context(), slug)
	if !ok {
		respondProblem(c, apierrors.NewNotFoundProblem("listing", slug))
		return
	}
	c.JSON(http.StatusOK, listinghttpmapper.FromDomain(listing))
}

// Get /v1/slugs
func (api *DirectoryAPI) ListSlugs(c *gin.Context) {
	c.JSON(http.StatusOK, api.service.ListAllSlugs(c.Request.Context()))
}

// Get /v1/states
func (api *DirectoryAPI) ListStates(c *gin.Context) {
	c.JSON(http.StatusOK, api.service.ListDistinctStates(c.Request.Context()))
}

// Get /v1/states/:state/cities
func (api *DirectoryAPI) ListCities(c *gin.Context) {
	c.JSON(http.StatusOK, api.service.ListDistinctCities(c.Request.Context(), c.Param("state")))
}

// Get /v1/stats
// Listing and state counts for the landing page
func (api *DirectoryAPI) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, api.stats(c.Request.Context()))
}

// stats reads both counts concurrently. The service degrades failed reads to
// zero, so neither goroutine reports an error.
func (api *DirectoryAPI) stats(ctx context.Context) listinghttpmapper.Stats {
	var stats listinghttpmapper.Stats
	var g errgroup.Group
	g.Go(func() error {
		stats.Listings = api.service.Count(ctx)
		return nil
	})
	g.Go(func() error {
		stats.States = api.service.CountDistinctStates(ctx)
		return nil
	})
	_ = g.Wait()
	return stats
}

// Get /v1/insights
// Service coverage, gaps and weak spots for an area
func (api *DirectoryAPI) GetMarketInsights(c *gin.Context) {
	insights := api.service.GetMarketInsights(c.Request.Context(), c.Query("state"), c.Query("city"))
	c.JSON(http.StatusOK, listinghttpmapper.FromInsights(insights))
}
