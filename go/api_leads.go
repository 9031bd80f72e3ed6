package directoryserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	leadhttpmapper "github.com/Apurer/groomer-directory/internal/domains/leads/adapters/http/mapper"
	leadsports "github.com/Apurer/groomer-directory/internal/domains/leads/ports"
	apierrors "github.com/Apurer/groomer-directory/internal/shared/errors"
)

// IdempotencyKeyHeader lets a client safely retry a lead submission.
const IdempotencyKeyHeader = "Idempotency-Key"

// LeadAPI accepts contact requests for listings.
type LeadAPI struct {
	service leadsports.Service
}

// NewLeadAPI creates a LeadAPI backed by the provided service.
func NewLeadAPI(service leadsports.Service) LeadAPI {
	return LeadAPI{service: service}
}

// Post /v1/leads
// Submit a contact request for a listing
func (api *LeadAPI) SubmitLead(c *gin.Context) {
	var payload leadhttpmapper.LeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, err)
		return
	}
	input := leadhttpmapper.ToSubmitInput(payload, c.GetHeader(IdempotencyKeyHeader))
	if !api.service.Submit(c.Request.Context(), input) {
		respondProblem(c, apierrors.ErrBadGateway.WithDetail("lead could not be recorded, try again later"))
		return
	}
	c.JSON(http.StatusCreated, leadhttpmapper.LeadAccepted{Status: "received"})
}
