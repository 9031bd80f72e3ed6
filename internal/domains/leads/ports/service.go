package ports

import "context"

// SubmitLeadInput is the raw contact form.
type SubmitLeadInput struct {
	ListingID     int64
	Name          string
	Email         string
	Phone         string
	PetType       string
	Message       string
	SubmissionKey string
}

// Service defines the lead capture use case (inbound/driving port).
type Service interface {
	// Submit reports whether the lead was recorded. Failures are logged, not returned.
	Submit(ctx context.Context, input SubmitLeadInput) bool
}
