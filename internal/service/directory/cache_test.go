package directory

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/cmlabs-hris/company-profiles/internal/domain/company"
	"github.com/cmlabs-hris/company-profiles/internal/domain/listing"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingRepository records how often the store is queried.
type countingRepository struct {
	listing.ListingRepository
	finds atomic.Int32
}

func (r *countingRepository) Find(ctx context.Context, filter listing.ListingFilter) ([]listing.JobListing, error) {
	r.finds.Add(1)
	return r.ListingRepository.Find(ctx, filter)
}

func TestSearchCacheKey(t *testing.T) {
	assert.Equal(t, `companies:search:["","",""]`, searchCacheKey(company.CompanySearch{}))
	assert.Equal(t,
		searchCacheKey(company.CompanySearch{Keyword: "ACME", Location: "Berlin"}),
		searchCacheKey(company.CompanySearch{Keyword: "acme", Location: "berlin"}),
	)
	assert.Equal(t,
		searchCacheKey(company.CompanySearch{Location: "ZÜRICH"}),
		searchCacheKey(company.CompanySearch{Location: "zürich"}),
	)

	t.Run("separators inside a filter do not collide", func(t *testing.T) {
		assert.NotEqual(t,
			searchCacheKey(company.CompanySearch{Keyword: "a|b", Industry: "c"}),
			searchCacheKey(company.CompanySearch{Keyword: "a", Location: "b|", Industry: "c"}),
		)
		assert.NotEqual(t,
			searchCacheKey(company.CompanySearch{Keyword: `a","b`}),
			searchCacheKey(company.CompanySearch{Keyword: "a", Location: "b"}),
		)
	})
}

func TestDirectoryService_Cache(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (company.DirectoryService, *countingRepository, redismock.ClientMock) {
		repo := &countingRepository{ListingRepository: newTestRepository(t)}
		seedListings(t, repo,
			listing.JobListing{CompanyName: "Acme", CompanyIndustry: "Software"},
			listing.JobListing{CompanyName: "Globex", CompanyIndustry: "Energy"},
		)
		rdb, mock := redismock.NewClientMock()
		t.Cleanup(func() { _ = rdb.Close() })
		return NewDirectoryService(repo, testConfig, rdb), repo, mock
	}

	t.Run("hit skips the store", func(t *testing.T) {
		svc, repo, mock := setup(t)
		cached, _ := json.Marshal([]string{"Cached Co"})
		mock.ExpectGet(industriesCacheKey).SetVal(string(cached))

		got, err := svc.ListIndustries(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Cached Co"}, got)
		assert.Zero(t, repo.finds.Load())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("miss loads and stores", func(t *testing.T) {
		svc, repo, mock := setup(t)
		key := searchCacheKey(company.CompanySearch{Keyword: "acme"})
		want, _ := json.Marshal([]string{"Acme"})

		mock.ExpectGet(key).RedisNil()
		mock.ExpectSet(key, string(want), testConfig.CacheTTL).SetVal("OK")

		got, err := svc.SearchCompanies(ctx, company.CompanySearch{Keyword: "acme"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Acme"}, got)
		assert.Equal(t, int32(1), repo.finds.Load())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis failure falls through", func(t *testing.T) {
		svc, repo, mock := setup(t)
		want, _ := json.Marshal([]string{"Energy", "Software"})

		mock.ExpectGet(industriesCacheKey).SetErr(errors.New("redis down"))
		mock.ExpectSet(industriesCacheKey, string(want), testConfig.CacheTTL).SetErr(errors.New("redis down"))

		got, err := svc.ListIndustries(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Energy", "Software"}, got)
		assert.Equal(t, int32(1), repo.finds.Load())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("corrupt entry is reloaded", func(t *testing.T) {
		svc, repo, mock := setup(t)
		want, _ := json.Marshal([]string{"Energy", "Software"})

		mock.ExpectGet(industriesCacheKey).SetVal("not json")
		mock.ExpectSet(industriesCacheKey, string(want), testConfig.CacheTTL).SetVal("OK")

		got, err := svc.ListIndustries(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, int32(1), repo.finds.Load())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
