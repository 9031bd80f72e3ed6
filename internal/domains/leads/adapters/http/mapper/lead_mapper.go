package mapper

import (
	"strings"

	"github.com/Apurer/groomer-directory/internal/domains/leads/ports"
)

// LeadRequest is the JSON body of the contact form. Binding tags reject
// obviously malformed input before the domain invariants run.
type LeadRequest struct {
	ListingID int64  `json:"listingId" binding:"required,gt=0"`
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone,omitempty"`
	PetType   string `json:"petType,omitempty" binding:"omitempty,oneof=Dog Cat Other"`
	Message   string `json:"message,omitempty"`
}

// LeadAccepted acknowledges a recorded lead.
type LeadAccepted struct {
	Status string `json:"status"`
}

// ToSubmitInput converts the request body into the service input.
func ToSubmitInput(req LeadRequest, submissionKey string) ports.SubmitLeadInput {
	return ports.SubmitLeadInput{
		ListingID:     req.ListingID,
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		PetType:       req.PetType,
		Message:       req.Message,
		SubmissionKey: strings.TrimSpace(submissionKey),
	}
}
