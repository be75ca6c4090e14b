// Package repotest holds the behaviour every listing.ListingRepository
// implementation must share. Each store runs it against its own backend.
package repotest

import (
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/company-profiles/internal/domain/listing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

// RunListingRepositoryTests runs the shared contract. newRepo must return a
// repository backed by an empty job_listings table.
func RunListingRepositoryTests(t *testing.T, newRepo func(t *testing.T) listing.ListingRepository) {
	t.Run("Create applies defaults", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Create(ctx, listing.JobListing{CompanyName: "Acme", Title: "Engineer"})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, listing.StatusPublish, created.Status)
		assert.False(t, created.CreatedAt.IsZero())

		_, err = repo.Create(ctx, listing.JobListing{Title: "Orphan"})
		assert.ErrorIs(t, err, listing.ErrCompanyNameRequired)
	})

	t.Run("Find by identifier matches name or slug", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		mustCreate(t, repo, listing.JobListing{CompanyName: "Acme Corp", CompanySlug: "acme-corp"}, 0)
		mustCreate(t, repo, listing.JobListing{CompanyName: "acme-corp"}, 1)
		mustCreate(t, repo, listing.JobListing{CompanyName: "Globex", CompanySlug: "globex"}, 2)

		got, err := repo.Find(ctx, listing.ListingFilter{Identifier: "acme-corp"})
		require.NoError(t, err)
		assert.Len(t, got, 2)

		got, err = repo.Find(ctx, listing.ListingFilter{Identifier: "Acme Corp"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "acme-corp", got[0].CompanySlug)

		got, err = repo.Find(ctx, listing.ListingFilter{Identifier: "nobody"})
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("Find filters by status and filled", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		mustCreate(t, repo, listing.JobListing{CompanyName: "Acme", Status: listing.StatusPublish}, 0)
		mustCreate(t, repo, listing.JobListing{CompanyName: "Acme", Status: listing.StatusPublish, Filled: true}, 1)
		mustCreate(t, repo, listing.JobListing{CompanyName: "Acme", Status: listing.StatusDraft}, 2)

		all, err := repo.Find(ctx, listing.ListingFilter{CompanyName: "Acme"})
		require.NoError(t, err)
		assert.Len(t, all, 3)

		published, err := repo.Find(ctx, listing.ListingFilter{CompanyName: "Acme", Status: listing.StatusPublish})
		require.NoError(t, err)
		assert.Len(t, published, 2)

		open, err := repo.Find(ctx, listing.ListingFilter{
			CompanyName:   "Acme",
			Status:        listing.StatusPublish,
			ExcludeFilled: true,
		})
		require.NoError(t, err)
		require.Len(t, open, 1)
		assert.False(t, open[0].Filled)
	})

	t.Run("Find contains filters are case insensitive and literal", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		mustCreate(t, repo, listing.JobListing{CompanyName: "Acme", CompanyLocation: "Berlin", CompanyIndustry: "Software"}, 0)
		mustCreate(t, repo, listing.JobListing{CompanyName: "100% Juice", CompanyLocation: "Paris", CompanyIndustry: "Food"}, 1)
		mustCreate(t, repo, listing.JobListing{CompanyName: "1000 Juices", CompanyLocation: "berlin", CompanyIndustry: "Food"}, 2)

		got, err := repo.Find(ctx, listing.ListingFilter{NameContains: "ACME"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Acme", got[0].CompanyName)

		got, err = repo.Find(ctx, listing.ListingFilter{NameContains: "100%"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "100% Juice", got[0].CompanyName)

		got, err = repo.Find(ctx, listing.ListingFilter{LocationContains: "BERL", IndustryContains: "food"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "1000 Juices", got[0].CompanyName)
	})

	t.Run("Find contains filters fold non-ASCII case", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		mustCreate(t, repo, listing.JobListing{CompanyName: "Acme", CompanyLocation: "Zürich", CompanyIndustry: "Software"}, 0)
		mustCreate(t, repo, listing.JobListing{CompanyName: "Électricité SA", CompanyLocation: "Lyon", CompanyIndustry: "Énergie"}, 1)

		got, err := repo.Find(ctx, listing.ListingFilter{LocationContains: "ZÜRICH"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Acme", got[0].CompanyName)

		got, err = repo.Find(ctx, listing.ListingFilter{NameContains: "électricité"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Électricité SA", got[0].CompanyName)

		got, err = repo.Find(ctx, listing.ListingFilter{IndustryContains: "éNERG"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Électricité SA", got[0].CompanyName)
	})

	t.Run("Find orders newest first and honours limit", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		older := mustCreate(t, repo, listing.JobListing{CompanyName: "Acme", Title: "older"}, 0)
		newer := mustCreate(t, repo, listing.JobListing{CompanyName: "Acme", Title: "newer"}, 5)
		middle := mustCreate(t, repo, listing.JobListing{CompanyName: "Acme", Title: "middle"}, 2)

		got, err := repo.Find(ctx, listing.ListingFilter{CompanyName: "Acme"})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, []string{newer.ID, middle.ID, older.ID}, []string{got[0].ID, got[1].ID, got[2].ID})

		got, err = repo.Find(ctx, listing.ListingFilter{CompanyName: "Acme", Limit: 1})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, newer.ID, got[0].ID)
		assert.True(t, got[0].CreatedAt.Equal(newer.CreatedAt))
	})

	t.Run("SetCompanySlugIfEmpty only writes empty slugs", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		blank := mustCreate(t, repo, listing.JobListing{CompanyName: "Acme Corp"}, 0)
		fixed := mustCreate(t, repo, listing.JobListing{CompanyName: "Globex", CompanySlug: "globex-original"}, 1)

		updated, err := repo.SetCompanySlugIfEmpty(ctx, blank.ID, "acme-corp")
		require.NoError(t, err)
		assert.True(t, updated)

		updated, err = repo.SetCompanySlugIfEmpty(ctx, blank.ID, "something-else")
		require.NoError(t, err)
		assert.False(t, updated)

		updated, err = repo.SetCompanySlugIfEmpty(ctx, fixed.ID, "globex")
		require.NoError(t, err)
		assert.False(t, updated)

		updated, err = repo.SetCompanySlugIfEmpty(ctx, uuid.NewString(), "ghost")
		require.NoError(t, err)
		assert.False(t, updated)

		got, err := repo.Find(ctx, listing.ListingFilter{Identifier: "acme-corp"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, blank.ID, got[0].ID)

		got, err = repo.Find(ctx, listing.ListingFilter{Identifier: "globex-original"})
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

// mustCreate stores l with a creation time offset minutes after baseTime.
func mustCreate(t *testing.T, repo listing.ListingRepository, l listing.JobListing, offset int) listing.JobListing {
	t.Helper()
	l.CreatedAt = baseTime.Add(time.Duration(offset) * time.Minute)
	created, err := repo.Create(context.Background(), l)
	require.NoError(t, err)
	return created
}
