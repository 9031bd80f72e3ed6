package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/mail"
	"strings"
	"time"
)

// PetType is the optional kind of animal a prospect wants groomed.
type PetType string

const (
	PetDog   PetType = "Dog"
	PetCat   PetType = "Cat"
	PetOther PetType = "Other"
)

var (
	ErrInvalidListing = errors.New("lead must reference a listing")
	ErrEmptyName      = errors.New("lead name is required")
	ErrInvalidEmail   = errors.New("lead email is invalid")
	ErrInvalidPetType = errors.New("lead pet type is invalid")
)

// Lead is a prospect's contact request for one listing. Leads are append-only.
type Lead struct {
	ID        int64
	ListingID int64
	Name      string
	Email     string
	Phone     string
	PetType   PetType
	Message   string
	CreatedAt time.Time

	// SubmissionKey is an optional client key used to deduplicate retries.
	// Only its hash is persisted.
	SubmissionKey string
}

// HashSubmissionKey returns the hex SHA-256 of a trimmed submission key, or
// "" when the key is blank.
func HashSubmissionKey(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

// SameSubmission reports whether other carries the same contact request.
func (l *Lead) SameSubmission(other *Lead) bool {
	return other != nil && l.ListingID == other.ListingID && strings.EqualFold(l.Email, other.Email)
}

// NewLead trims free-form input and enforces the minimal contact invariants.
func NewLead(listingID int64, name, email, phone string, petType PetType, message string) (*Lead, error) {
	lead := &Lead{
		ListingID: listingID,
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Phone:     strings.TrimSpace(phone),
		PetType:   PetType(strings.TrimSpace(string(petType))),
		Message:   strings.TrimSpace(message),
	}
	if err := lead.Validate(); err != nil {
		return nil, err
	}
	return lead, nil
}

// Validate reports the first violated invariant.
func (l *Lead) Validate() error {
	if l.ListingID <= 0 {
		return ErrInvalidListing
	}
	if l.Name == "" {
		return ErrEmptyName
	}
	if addr, err := mail.ParseAddress(l.Email); err != nil || addr.Address != l.Email {
		return ErrInvalidEmail
	}
	switch l.PetType {
	case "", PetDog, PetCat, PetOther:
	default:
		return ErrInvalidPetType
	}
	return nil
}
