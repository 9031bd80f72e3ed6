package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type contactForm struct {
	ListingID int64  `json:"listingId" binding:"required,gt=0"`
	Email     string `json:"email" binding:"required,email"`
}

func perform(t *testing.T, path string, handler gin.HandlerFunc, body string) (*httptest.ResponseRecorder, ProblemDetail) {
	t.Helper()
	router := gin.New()
	router.POST(path, handler)
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	var problem ProblemDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problem))
	return w, problem
}

func TestRespond_SetsInstanceAndContentType(t *testing.T) {
	w, problem := perform(t, "/v1/listings/x", func(c *gin.Context) {
		Respond(c, NewNotFoundProblem("listing", "x"))
	}, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, ContentTypeProblemJSON, w.Header().Get("Content-Type"))
	assert.Equal(t, "/v1/listings/x", problem.Instance)
	assert.Equal(t, "listing", problem.Extensions["resourceType"])
}

func TestRespondError_BindingFailuresBecomeValidationProblems(t *testing.T) {
	w, problem := perform(t, "/v1/leads", func(c *gin.Context) {
		var form contactForm
		if err := c.ShouldBindJSON(&form); err != nil {
			RespondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}, `{"listingId":0,"email":"nope"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, TypeValidation, problem.Type)
	fields, ok := problem.Extensions["fields"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "is required", fields["listingID"])
	assert.Equal(t, "must be a valid email address", fields["email"])
}

func TestRespondError_MalformedJSON(t *testing.T) {
	w, problem := perform(t, "/v1/leads", func(c *gin.Context) {
		var form contactForm
		if err := c.ShouldBindJSON(&form); err != nil {
			RespondError(c, err)
		}
	}, `{"listingId":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, TypeBadRequest, problem.Type)
}

func TestRespondError_UnknownErrorIsInternal(t *testing.T) {
	w, problem := perform(t, "/boom", func(c *gin.Context) {
		RespondError(c, errors.New("kaput"))
	}, "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "kaput", problem.Detail)
}

func TestResponder_CustomMapperAndBaseURI(t *testing.T) {
	sentinel := errors.New("sink down")
	responder := NewResponder("https://groomers.example/", func(err error) (ProblemDetail, bool) {
		if errors.Is(err, sentinel) {
			return ErrBadGateway, true
		}
		return ProblemDetail{}, false
	})
	w, problem := perform(t, "/v1/leads", func(c *gin.Context) {
		responder.RespondError(c, sentinel)
	}, "")

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "https://groomers.example/problems/bad-gateway", problem.Type)
}

func TestWithExtension_DoesNotMutateTemplate(t *testing.T) {
	_ = ErrValidation.WithExtension("fields", map[string]string{"a": "b"})
	assert.Nil(t, ErrValidation.Extensions)
}
