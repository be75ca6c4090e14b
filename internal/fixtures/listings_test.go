package fixtures

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/cmlabs-hris/company-profiles/internal/domain/listing"
	"github.com/cmlabs-hris/company-profiles/internal/pkg/database"
	"github.com/cmlabs-hris/company-profiles/internal/repository/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultListings(t *testing.T) {
	listings := DefaultListings(time.Now())
	require.NotEmpty(t, listings)
	for _, l := range listings {
		assert.NotEmpty(t, l.CompanyName, l.Title)
		assert.Empty(t, l.CompanySlug, l.Title)
		assert.False(t, l.CreatedAt.IsZero(), l.Title)
	}
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	db, err := database.NewSQLiteDB(filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.MigrateSQLite(ctx, db))
	repo := sqlite.NewListingRepository(db)

	created, err := Seed(ctx, repo)
	require.NoError(t, err)
	assert.Equal(t, len(DefaultListings(time.Now())), created)

	again, err := Seed(ctx, repo)
	require.NoError(t, err)
	assert.Zero(t, again)

	all, err := repo.Find(ctx, listing.ListingFilter{})
	require.NoError(t, err)
	assert.Len(t, all, created)
}
