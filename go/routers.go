package directoryserver

import (
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerFieldNames sync.Once

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

// ApiHandleFunctions groups the handlers served by the directory API.
type ApiHandleFunctions struct {
	DirectoryAPI DirectoryAPI
	LeadAPI      LeadAPI
}

// NewRouter returns a new gin engine with recovery and request logging.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine adds the directory routes to an existing gin engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	registerFieldNames.Do(useJSONFieldNames)
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = DefaultHandleFunc
		}
		router.Handle(route.Method, route.Pattern, route.HandlerFunc)
	}
	return router
}

// DefaultHandleFunc answers routes whose handler is not wired.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	return []Route{
		{"Healthz", http.MethodGet, "/healthz", handleFunctions.DirectoryAPI.Healthz},
		{"SearchListings", http.MethodGet, "/v1/listings", handleFunctions.DirectoryAPI.SearchListings},
		{"GetListingBySlug", http.MethodGet, "/v1/listings/:slug", handleFunctions.DirectoryAPI.GetListingBySlug},
		{"ListSlugs", http.MethodGet, "/v1/slugs", handleFunctions.DirectoryAPI.ListSlugs},
		{"ListStates", http.MethodGet, "/v1/states", handleFunctions.DirectoryAPI.ListStates},
		{"ListCities", http.MethodGet, "/v1/states/:state/cities", handleFunctions.DirectoryAPI.ListCities},
		{"GetStats", http.MethodGet, "/v1/stats", handleFunctions.DirectoryAPI.GetStats},
		{"GetMarketInsights", http.MethodGet, "/v1/insights", handleFunctions.DirectoryAPI.GetMarketInsights},
		{"SubmitLead", http.MethodPost, "/v1/leads", handleFunctions.LeadAPI.SubmitLead},
	}
}

// useJSONFieldNames makes binding errors report fields by their JSON name.
func useJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}
