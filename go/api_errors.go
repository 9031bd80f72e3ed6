package directoryserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	listinghttpmapper "github.com/Apurer/groomer-directory/internal/domains/listings/adapters/http/mapper"
	apierrors "github.com/Apurer/groomer-directory/internal/shared/errors"
)

var responder = newResponder("")

func newResponder(baseURI string) *apierrors.Responder {
	return apierrors.NewResponder(baseURI, queryErrorMapper, apierrors.BindingErrorMapper)
}

// SetProblemBaseURI makes problem type URIs absolute. Call before serving.
func SetProblemBaseURI(baseURI string) {
	responder = newResponder(baseURI)
}

// respondProblem maps a ProblemDetail through the shared responder.
func respondProblem(c *gin.Context, problem apierrors.ProblemDetail) {
	responder.Respond(c, problem)
}

// respondError renders err as an RFC 7807 response.
func respondError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	responder.RespondError(c, err)
}

func queryErrorMapper(err error) (apierrors.ProblemDetail, bool) {
	var fields listinghttpmapper.FieldErrors
	if errors.As(err, &fields) {
		return apierrors.NewValidationProblem(fields), true
	}
	return apierrors.ProblemDetail{}, false
}
