//go:build pact
// +build pact

package consumer_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	pacttest "github.com/Apurer/groomer-directory/test/pact"

	pactconsumer "github.com/pact-foundation/pact-go/v2/consumer"
	pactlog "github.com/pact-foundation/pact-go/v2/log"
	"github.com/pact-foundation/pact-go/v2/matchers"
	"github.com/stretchr/testify/require"
)

type listingPayload struct {
	ID    int64  `json:"id"`
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	City  string `json:"city"`
	State string `json:"state"`
}

type pagePayload struct {
	Items      []listingPayload `json:"items"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
}

type insightsPayload struct {
	AreaLabel   string   `json:"areaLabel"`
	TotalInArea int      `json:"totalInArea"`
	Gaps        []string `json:"gaps"`
}

type problemDetail struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

type apiError struct {
	status int
	title  string
	detail string
}

func (e apiError) Error() string {
	msg := e.title
	if msg == "" {
		msg = "api error"
	}
	if e.detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.detail)
	}
	return fmt.Sprintf("%s (status %d)", msg, e.status)
}

func (e apiError) Status() int {
	return e.status
}

func TestDirectoryWebContract(t *testing.T) {
	t.Helper()
	pactlog.SetLogLevel("INFO")

	pact, err := pactconsumer.NewV2Pact(pactconsumer.MockHTTPProviderConfig{
		Consumer: pacttest.ConsumerName,
		Provider: pacttest.ProviderName,
		PactDir:  pacttest.PactDir(t),
		LogDir:   pacttest.LogDir(t),
	})
	require.NoError(t, err)

	jsonContentType := matchers.Regex("application/json; charset=utf-8", "application\\/json(?:;\\s?charset=utf-8)?")
	listingMatcher := matchers.Map{
		"id":    matchers.Like(pacttest.ExistingListingID),
		"slug":  matchers.Like(pacttest.ExistingSlug),
		"name":  matchers.Like("Happy Paws Pact Grooming"),
		"city":  matchers.Like("Austin"),
		"state": matchers.Term("TX", "^[A-Z]{2}$"),
	}

	pact.AddInteraction().
		Given(pacttest.StateDirectorySeeded).
		UponReceiving("a search for Texas groomers").
		WithRequest("GET", "/v1/listings", func(b *pactconsumer.V2RequestBuilder) {
			b.Query("state", matchers.S("TX"))
		}).
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.Map{
				"items":      matchers.ArrayMinLike(listingMatcher, 1),
				"total":      matchers.Like(12),
				"page":       matchers.Like(1),
				"pageSize":   matchers.Like(20),
				"totalPages": matchers.Like(1),
			})
		})

	pact.AddInteraction().
		Given(pacttest.StateListingExists).
		UponReceiving("a request for a listing detail page").
		WithRequest("GET", "/v1/listings/"+pacttest.ExistingSlug).
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.Map{
				"id":    matchers.Like(pacttest.ExistingListingID),
				"slug":  matchers.S(pacttest.ExistingSlug),
				"name":  matchers.Like("Happy Paws Pact Grooming"),
				"city":  matchers.Like("Austin"),
				"state": matchers.Like("TX"),
			})
		})

	pact.AddInteraction().
		Given(pacttest.StateListingMissing).
		UponReceiving("a request for a missing listing").
		WithRequest("GET", "/v1/listings/"+pacttest.MissingSlug).
		WillRespondWith(http.StatusNotFound, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", matchers.S("application/problem+json"))
			b.JSONBody(matchers.Map{
				"type":   matchers.S("/problems/not-found"),
				"title":  matchers.S("Resource Not Found"),
				"status": matchers.Like(http.StatusNotFound),
			})
		})

	pact.AddInteraction().
		Given(pacttest.StateDirectorySeeded).
		UponReceiving("a search with a malformed minimum rating").
		WithRequest("GET", "/v1/listings", func(b *pactconsumer.V2RequestBuilder) {
			b.Query("min_rating", matchers.S("lots"))
		}).
		WillRespondWith(http.StatusBadRequest, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", matchers.S("application/problem+json"))
			b.JSONBody(matchers.Map{
				"type":   matchers.S("/problems/validation-error"),
				"status": matchers.Like(http.StatusBadRequest),
			})
		})

	pact.AddInteraction().
		Given(pacttest.StateDirectorySeeded).
		UponReceiving("a request for Georgia market insights").
		WithRequest("GET", "/v1/insights", func(b *pactconsumer.V2RequestBuilder) {
			b.Query("state", matchers.S("GA"))
		}).
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.Map{
				"areaLabel":   matchers.S("GA"),
				"totalInArea": matchers.Like(3),
				"gaps":        matchers.ArrayMinLike("Flea Treatment", 1),
			})
		})

	pact.AddInteraction().
		Given(pacttest.StateLeadSinkUp).
		UponReceiving("a contact request for a listing").
		WithRequest("POST", "/v1/leads", func(b *pactconsumer.V2RequestBuilder) {
			b.Header("Content-Type", matchers.S("application/json"))
			b.JSONBody(pacttest.ExampleLeadPayload())
		}).
		WillRespondWith(http.StatusCreated, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.Map{"status": matchers.S("received")})
		})

	err = pact.ExecuteTest(t, func(config pactconsumer.MockServerConfig) error {
		client := newDirectoryClient(config)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var page pagePayload
		if err := client.getJSON(ctx, "/v1/listings", url.Values{"state": {"TX"}}, &page); err != nil {
			return fmt.Errorf("search listings: %w", err)
		}
		if len(page.Items) == 0 || page.Items[0].State != "TX" {
			return fmt.Errorf("expected Texas listings, got %+v", page.Items)
		}

		var listing listingPayload
		if err := client.getJSON(ctx, "/v1/listings/"+pacttest.ExistingSlug, nil, &listing); err != nil {
			return fmt.Errorf("get listing: %w", err)
		}
		if listing.Slug != pacttest.ExistingSlug {
			return fmt.Errorf("expected slug %s, got %s", pacttest.ExistingSlug, listing.Slug)
		}

		err := client.getJSON(ctx, "/v1/listings/"+pacttest.MissingSlug, nil, &listing)
		if apiErr, ok := err.(apiError); !ok || apiErr.Status() != http.StatusNotFound {
			return fmt.Errorf("expected 404 for %s, got %v", pacttest.MissingSlug, err)
		}

		err = client.getJSON(ctx, "/v1/listings", url.Values{"min_rating": {"lots"}}, &page)
		if apiErr, ok := err.(apiError); !ok || apiErr.Status() != http.StatusBadRequest {
			return fmt.Errorf("expected 400 for malformed rating, got %v", err)
		}

		var insights insightsPayload
		if err := client.getJSON(ctx, "/v1/insights", url.Values{"state": {"GA"}}, &insights); err != nil {
			return fmt.Errorf("get insights: %w", err)
		}
		if insights.AreaLabel != "GA" {
			return fmt.Errorf("expected GA insights, got %q", insights.AreaLabel)
		}

		if err := client.submitLead(ctx, pacttest.ExampleLeadPayload()); err != nil {
			return fmt.Errorf("submit lead: %w", err)
		}
		return nil
	})
	require.NoError(t, err)
}

type directoryClient struct {
	baseURL    string
	httpClient *http.Client
}

func newDirectoryClient(config pactconsumer.MockServerConfig) *directoryClient {
	host := config.Host
	if host == "" {
		host = "localhost"
	}
	transport := &http.Transport{TLSClientConfig: config.TLSConfig}
	client := &http.Client{Transport: transport, Timeout: 10 * time.Second}
	return &directoryClient{
		baseURL:    fmt.Sprintf("http://%s:%d", host, config.Port),
		httpClient: client,
	}
}

func (c *directoryClient) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(res)
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func (c *directoryClient) submitLead(ctx context.Context, lead map[string]any) error {
	body, err := json.Marshal(lead)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/leads", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusCreated {
		return decodeAPIError(res)
	}
	return nil
}

func decodeAPIError(res *http.Response) error {
	var problem problemDetail
	_ = json.NewDecoder(res.Body).Decode(&problem)
	status := problem.Status
	if status == 0 {
		status = res.StatusCode
	}
	return apiError{
		status: status,
		title:  problem.Title,
		detail: problem.Detail,
	}
}
