package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Apurer/groomer-directory/internal/catalog"
	"github.com/Apurer/groomer-directory/internal/domains/listings/domain"
	"github.com/Apurer/groomer-directory/internal/domains/listings/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository reads listings from PostgreSQL using GORM. The schema is owned
// by platform/migrations.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Query returns one page of matches plus the total match count.
func (r *Repository) Query(ctx context.Context, filter domain.Filter) (domain.Page, error) {
	filter = filter.Normalize()
	if err := r.ensureDB(); err != nil {
		return domain.EmptyPage(filter), err
	}
	conds, ok := buildConditions(filter)
	if !ok {
		return domain.EmptyPage(filter), nil
	}

	var total int64
	if err := r.filtered(ctx, conds).Count(&total).Error; err != nil {
		return domain.EmptyPage(filter), err
	}
	if total == 0 || int64(filter.Offset()) >= total {
		return domain.NewPage(nil, total, filter), nil
	}

	var records []listingRecord
	if err := r.filtered(ctx, conds).
		Order(displayOrder).
		Offset(filter.Offset()).
		Limit(catalog.PageSize).
		Find(&records).Error; err != nil {
		return domain.EmptyPage(filter), err
	}
	return domain.NewPage(toDomainList(records), total, filter), nil
}

// QueryAll returns every match in display order.
func (r *Repository) QueryAll(ctx context.Context, filter domain.Filter) ([]*domain.Listing, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	conds, ok := buildConditions(filter)
	if !ok {
		return []*domain.Listing{}, nil
	}
	var records []listingRecord
	if err := r.filtered(ctx, conds).Order(displayOrder).Find(&records).Error; err != nil {
		return nil, err
	}
	return toDomainList(records), nil
}

// GetBySlug fetches a listing by its URL identifier.
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.Listing, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record listingRecord
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).Take(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// ListSlugs returns every slug in display order.
func (r *Repository) ListSlugs(ctx context.Context) ([]string, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	slugs := []string{}
	if err := r.db.WithContext(ctx).Model(&listingRecord{}).Order(displayOrder).Pluck("slug", &slugs).Error; err != nil {
		return nil, err
	}
	return slugs, nil
}

// DistinctStates returns the sorted set of states with at least one listing.
func (r *Repository) DistinctStates(ctx context.Context) ([]string, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	states := []string{}
	if err := r.db.WithContext(ctx).Model(&listingRecord{}).
		Distinct().
		Order("state ASC").
		Pluck("state", &states).Error; err != nil {
		return nil, err
	}
	return states, nil
}

// DistinctCities returns the sorted cities within state.
func (r *Repository) DistinctCities(ctx context.Context, state string) ([]string, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	cities := []string{}
	if err := r.db.WithContext(ctx).Model(&listingRecord{}).
		Where("state = ?", state).
		Distinct().
		Order("city ASC").
		Pluck("city", &cities).Error; err != nil {
		return nil, err
	}
	return cities, nil
}

// Count is the total number of listings.
func (r *Repository) Count(ctx context.Context) (int64, error) {
	if err := r.ensureDB(); err != nil {
		return 0, err
	}
	var total int64
	if err := r.db.WithContext(ctx).Model(&listingRecord{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// CountDistinctStates is the number of states with at least one listing.
func (r *Repository) CountDistinctStates(ctx context.Context) (int64, error) {
	if err := r.ensureDB(); err != nil {
		return 0, err
	}
	var total int64
	if err := r.db.WithContext(ctx).Model(&listingRecord{}).Distinct("state").Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// Upsert writes listings keyed by id. Only the seeder uses it; the directory
// itself never mutates listings.
func (r *Repository) Upsert(ctx context.Context, listings []*domain.Listing) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	if len(listings) == 0 {
		return nil
	}
	records := make([]listingRecord, 0, len(listings))
	for _, l := range listings {
		if l == nil {
			continue
		}
		records = append(records, toRecord(l))
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		CreateInBatches(records, 50).Error
}

func (r *Repository) filtered(ctx context.Context, conds []condition) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&listingRecord{})
	for _, c := range conds {
		q = q.Where(c.query, c.args...)
	}
	return q
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres listing repository not configured")
	}
	return nil
}

func toDomainList(records []listingRecord) []*domain.Listing {
	listings := make([]*domain.Listing, 0, len(records))
	for i := range records {
		listings = append(listings, records[i].toDomain())
	}
	return listings
}
