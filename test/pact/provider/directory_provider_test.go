//go:build pact
// +build pact

package provider_test

import (
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	pacttest "github.com/Apurer/groomer-directory/test/pact"

	directoryserver "github.com/Apurer/groomer-directory/go"
	leadsmemory "github.com/Apurer/groomer-directory/internal/domains/leads/adapters/memory"
	leadsobs "github.com/Apurer/groomer-directory/internal/domains/leads/adapters/observability"
	leadsapp "github.com/Apurer/groomer-directory/internal/domains/leads/application"
	listingsmemory "github.com/Apurer/groomer-directory/internal/domains/listings/adapters/memory"
	listingsobs "github.com/Apurer/groomer-directory/internal/domains/listings/adapters/observability"
	listingsapp "github.com/Apurer/groomer-directory/internal/domains/listings/application"
	listingdomain "github.com/Apurer/groomer-directory/internal/domains/listings/domain"
	"github.com/Apurer/groomer-directory/internal/domains/listings/fixture"

	"github.com/gin-gonic/gin"
	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/stretchr/testify/require"
)

func TestDirectoryProviderPact(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := newContractProviderApp(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	noop := func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
		return nil, nil
	}
	verifier := pactprovider.NewVerifier()
	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers: models.StateHandlers{
			pacttest.StateDirectorySeeded: noop,
			pacttest.StateListingExists:   noop,
			pacttest.StateListingMissing:  noop,
			pacttest.StateLeadSinkUp:      noop,
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, app.leads.Leads())
}

type contractProviderApp struct {
	leads  *leadsmemory.Sink
	server *httptest.Server
}

// newContractProviderApp serves the generated fixture plus one listing with a
// slug the consumer can name.
func newContractProviderApp(t testing.TB) *contractProviderApp {
	t.Helper()

	listings := append(fixture.Generate(fixture.DefaultSize), pactListing())
	listingService := listingsobs.New(listingsapp.NewService(listingsmemory.NewRepository(listings)))
	sink := leadsmemory.NewSink()
	leadService := leadsobs.New(leadsapp.NewService(sink))

	handlers := directoryserver.ApiHandleFunctions{
		DirectoryAPI: directoryserver.NewDirectoryAPI(listingService),
		LeadAPI:      directoryserver.NewLeadAPI(leadService),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router = directoryserver.NewRouterWithGinEngine(router, handlers)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &contractProviderApp{leads: sink, server: server}
}

func pactListing() *listingdomain.Listing {
	rating := 4.9
	reviews := 87
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return &listingdomain.Listing{
		ID:           pacttest.ExistingListingID,
		Slug:         pacttest.ExistingSlug,
		Name:         "Happy Paws Pact Grooming",
		City:         "Austin",
		State:        "TX",
		Zip:          "78701",
		Rating:       &rating,
		ReviewsCount: &reviews,
		Services:     listingdomain.Services{FullGroom: true, NailTrim: true},
		AcceptsDogs:  true,
		CreatedAt:    created,
		UpdatedAt:    created,
	}
}
