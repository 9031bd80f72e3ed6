package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Apurer/groomer-directory/internal/domains/leads/domain"
	"github.com/Apurer/groomer-directory/internal/domains/leads/ports"
)

var _ ports.Sink = (*Sink)(nil)

type leadRecord struct {
	ID                int64  `gorm:"primaryKey;autoIncrement"`
	ListingID         int64  `gorm:"not null;index"`
	Name              string `gorm:"not null"`
	Email             string `gorm:"not null"`
	Phone             *string
	PetType           *string
	Message           *string
	SubmissionKeyHash *string `gorm:"column:submission_key_hash"`
	CreatedAt         time.Time
}

func (leadRecord) TableName() string { return "leads" }

// Sink appends leads to the leads table. Submission keys are stored hashed so
// client retries are replayed instead of duplicated.
type Sink struct {
	db *gorm.DB
}

// NewSink wires a PostgreSQL-backed sink. Caller manages DB lifecycle; the DB
// must be opened with TranslateError so unique violations surface as gorm.ErrDuplicatedKey.
func NewSink(db *gorm.DB) *Sink {
	return &Sink{db: db}
}

// Append inserts lead and returns it with the database-assigned id.
func (s *Sink) Append(ctx context.Context, lead *domain.Lead) (*domain.Lead, error) {
	if err := s.ensureDB(); err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, errors.New("cannot append nil lead")
	}
	record := toRecord(lead)
	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) && record.SubmissionKeyHash != nil {
			return s.replay(ctx, lead, *record.SubmissionKeyHash)
		}
		return nil, err
	}
	return toDomain(&record, lead.SubmissionKey), nil
}

func (s *Sink) replay(ctx context.Context, lead *domain.Lead, keyHash string) (*domain.Lead, error) {
	var existing leadRecord
	if err := s.db.WithContext(ctx).First(&existing, "submission_key_hash = ?", keyHash).Error; err != nil {
		return nil, err
	}
	stored := toDomain(&existing, lead.SubmissionKey)
	if !lead.SameSubmission(stored) {
		return stored, ports.ErrSubmissionConflict
	}
	return stored, nil
}

func (s *Sink) ensureDB() error {
	if s == nil || s.db == nil {
		return errors.New("postgres lead sink not initialized")
	}
	return nil
}

func toRecord(lead *domain.Lead) leadRecord {
	return leadRecord{
		ListingID:         lead.ListingID,
		Name:              lead.Name,
		Email:             lead.Email,
		Phone:             optional(lead.Phone),
		PetType:           optional(string(lead.PetType)),
		Message:           optional(lead.Message),
		SubmissionKeyHash: optional(domain.HashSubmissionKey(lead.SubmissionKey)),
		CreatedAt:         lead.CreatedAt,
	}
}

func toDomain(rec *leadRecord, submissionKey string) *domain.Lead {
	return &domain.Lead{
		ID:            rec.ID,
		ListingID:     rec.ListingID,
		Name:          rec.Name,
		Email:         rec.Email,
		Phone:         deref(rec.Phone),
		PetType:       domain.PetType(deref(rec.PetType)),
		Message:       deref(rec.Message),
		CreatedAt:     rec.CreatedAt,
		SubmissionKey: submissionKey,
	}
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
