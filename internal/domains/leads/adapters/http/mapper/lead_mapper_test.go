package mapper

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Apurer/groomer-directory/internal/domains/leads/ports"
)

func TestToSubmitInput(t *testing.T) {
	req := LeadRequest{ListingID: 3, Name: "Dana", Email: "dana@example.com", PetType: "Dog", Message: "hi"}
	got := ToSubmitInput(req, "  key-1 ")
	require.Equal(t, ports.SubmitLeadInput{
		ListingID:     3,
		Name:          "Dana",
		Email:         "dana@example.com",
		PetType:       "Dog",
		Message:       "hi",
		SubmissionKey: "key-1",
	}, got)
}
