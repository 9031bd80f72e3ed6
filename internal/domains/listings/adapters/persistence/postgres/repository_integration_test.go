//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Apurer/groomer-directory/internal/catalog"
	"github.com/Apurer/groomer-directory/internal/domains/listings/adapters/memory"
	"github.com/Apurer/groomer-directory/internal/domains/listings/domain"
	"github.com/Apurer/groomer-directory/internal/domains/listings/fixture"
	"github.com/Apurer/groomer-directory/internal/domains/listings/ports"
	"github.com/Apurer/groomer-directory/internal/platform/migrations"
)

func setupListingsPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("directory_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, migrations.Run(ctx, db))

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func seededRepos(t *testing.T) (*Repository, *memory.Repository, func()) {
	db, cleanup := setupListingsPostgresContainer(t)
	listings := fixture.Generate(fixture.DefaultSize)
	repo := NewRepository(db)
	require.NoError(t, repo.Upsert(context.Background(), listings))
	return repo, memory.NewRepository(listings), cleanup
}

func pageIDs(page domain.Page) []int64 {
	ids := make([]int64, 0, len(page.Items))
	for _, l := range page.Items {
		ids = append(ids, l.ID)
	}
	return ids
}

func TestRepository_UpsertAndGetBySlug(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	repo, mock, cleanup := seededRepos(t)
	defer cleanup()
	ctx := context.Background()

	slugs, err := mock.ListSlugs(ctx)
	require.NoError(t, err)

	want, err := mock.GetBySlug(ctx, slugs[0])
	require.NoError(t, err)
	got, err := repo.GetBySlug(ctx, slugs[0])
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, want.Services, got.Services)
	assert.Equal(t, want.BreedSizes, got.BreedSizes)
	assert.Equal(t, want.ServiceArea.Cities, got.ServiceArea.Cities)

	_, err = repo.GetBySlug(ctx, "missing-groomer")
	assert.ErrorIs(t, err, ports.ErrNotFound)

	require.NoError(t, repo.Upsert(ctx, fixture.Generate(fixture.DefaultSize)))
	total, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(fixture.DefaultSize), total)
}

func TestRepository_MatchesMemoryBackend(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	repo, mock, cleanup := seededRepos(t)
	defer cleanup()
	ctx := context.Background()

	yes := true
	rating := 4.5
	filters := []domain.Filter{
		{},
		{Page: 3},
		{State: "TX"},
		{State: "CA", City: "san diego"},
		{AcceptsCats: &yes},
		{FearFree: &yes, MinRating: &rating},
		{BreedSize: catalog.BreedGiant},
		{Services: []string{catalog.SvcNailTrim, catalog.SvcDematting}},
		{State: "GA", Services: []string{catalog.SvcFleaTreatment}},
		{Services: []string{"svc_unknown"}},
	}
	for _, f := range filters {
		want, err := mock.Query(ctx, f)
		require.NoError(t, err)
		got, err := repo.Query(ctx, f)
		require.NoError(t, err)
		assert.Equal(t, want.Total, got.Total, "%+v", f)
		assert.Equal(t, pageIDs(want), pageIDs(got), "%+v", f)
	}
}

func TestRepository_FullTextSearch(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	repo, _, cleanup := seededRepos(t)
	defer cleanup()

	page, err := repo.Query(context.Background(), domain.Filter{Search: "Houston"})
	require.NoError(t, err)
	require.NotZero(t, page.Total)
	for _, l := range page.Items {
		assert.Equal(t, "Houston", l.City)
	}

	stateCode, err := repo.Query(context.Background(), domain.Filter{Search: "IN"})
	require.NoError(t, err)
	assert.NotZero(t, stateCode.Total)
}

func TestRepository_DistinctAndCounts(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	repo, mock, cleanup := seededRepos(t)
	defer cleanup()
	ctx := context.Background()

	wantStates, err := mock.DistinctStates(ctx)
	require.NoError(t, err)
	gotStates, err := repo.DistinctStates(ctx)
	require.NoError(t, err)
	assert.Equal(t, wantStates, gotStates)

	cities, err := repo.DistinctCities(ctx, "TX")
	require.NoError(t, err)
	assert.Equal(t, []string{"Austin", "Dallas", "Fort Worth", "Houston", "San Antonio"}, cities)

	states, err := repo.CountDistinctStates(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(wantStates)), states)

	wantSlugs, err := mock.ListSlugs(ctx)
	require.NoError(t, err)
	gotSlugs, err := repo.ListSlugs(ctx)
	require.NoError(t, err)
	assert.Equal(t, wantSlugs, gotSlugs)
}
