package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/cmlabs-hris/company-profiles/internal/domain/listing"
	"github.com/cmlabs-hris/company-profiles/internal/pkg/database"
	"github.com/cmlabs-hris/company-profiles/internal/repository/repotest"
	"github.com/cmlabs-hris/company-profiles/internal/repository/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) listing.ListingRepository {
	t.Helper()

	db, err := database.NewSQLiteDB(filepath.Join(t.TempDir(), "listings.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.MigrateSQLite(context.Background(), db))
	return sqlite.NewListingRepository(db)
}

func TestListingRepository(t *testing.T) {
	repotest.RunListingRepositoryTests(t, newTestRepository)
}
