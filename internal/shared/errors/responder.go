package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ContentTypeProblemJSON is the media type for Problem Details responses.
const ContentTypeProblemJSON = "application/problem+json"

// ErrorMapper translates an error into a problem when it recognizes it.
type ErrorMapper func(err error) (ProblemDetail, bool)

// Responder writes problems, consulting its mappers before falling back to a 500.
type Responder struct {
	// BaseURI is prepended to relative problem type URIs.
	BaseURI string
	mappers []ErrorMapper
}

func NewResponder(baseURI string, mappers ...ErrorMapper) *Responder {
	return &Responder{BaseURI: baseURI, mappers: mappers}
}

// DefaultResponder uses relative type URIs and understands binding errors.
var DefaultResponder = NewResponder("", BindingErrorMapper)

// Respond sends problem with the problem+json content type.
func (r *Responder) Respond(c *gin.Context, problem ProblemDetail) {
	if r.BaseURI != "" && strings.HasPrefix(problem.Type, "/") {
		problem.Type = strings.TrimSuffix(r.BaseURI, "/") + problem.Type
	}
	if problem.Instance == "" {
		problem.Instance = c.Request.URL.Path
	}
	c.Header("Content-Type", ContentTypeProblemJSON)
	c.AbortWithStatusJSON(problem.Status, problem)
}

// RespondError maps err to a problem and sends it.
func (r *Responder) RespondError(c *gin.Context, err error) {
	var problem ProblemDetail
	if errors.As(err, &problem) {
		r.Respond(c, problem)
		return
	}
	for _, mapper := range r.mappers {
		if p, ok := mapper(err); ok {
			r.Respond(c, p)
			return
		}
	}
	r.Respond(c, ErrInternal.WithDetail(err.Error()))
}

// Respond is a convenience function using the default responder.
func Respond(c *gin.Context, problem ProblemDetail) {
	DefaultResponder.Respond(c, problem)
}

// RespondError is a convenience function using the default responder.
func RespondError(c *gin.Context, err error) {
	DefaultResponder.RespondError(c, err)
}

// BindingErrorMapper turns gin binding failures into validation or bad request problems.
func BindingErrorMapper(err error) (ProblemDetail, bool) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[jsonFieldName(fe)] = describe(fe)
		}
		return NewValidationProblem(fields), true
	}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) ||
		errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrBadRequest.WithDetail("request body is not valid JSON for this resource"), true
	}
	return ProblemDetail{}, false
}

func jsonFieldName(fe validator.FieldError) string {
	name := fe.Field()
	if name == "" {
		return fe.Namespace()
	}
	return strings.ToLower(name[:1]) + name[1:]
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gt":
		return "must be greater than " + fe.Param()
	default:
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("failed %q validation", fe.Tag())
		}
		return fmt.Sprintf("failed %q validation (%v)", fe.Tag(), fe.Value())
	}
}
