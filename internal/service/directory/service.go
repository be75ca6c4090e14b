package directory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/cmlabs-hris/company-profiles/internal/domain/company"
	"github.com/cmlabs-hris/company-profiles/internal/domain/listing"
	"github.com/cmlabs-hris/company-profiles/internal/pkg/slug"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// Config carries the site settings the directory depends on.
type Config struct {
	BaseURL              string
	RouteSegment         string
	HideFilledPositions  bool
	PrettyPermalinks     bool
	IncludeEmptyIndustry bool

	SiteName        string
	SiteDescription string
	TitleSeparator  string

	CacheTTL time.Duration
}

type DirectoryServiceImpl struct {
	listingRepo listing.ListingRepository
	cfg         Config
	rdb         *redis.Client
	sf          *singleflight.Group
}

// NewDirectoryService builds the directory over listingRepo. rdb may be nil,
// in which case lookups always go to the store.
func NewDirectoryService(listingRepo listing.ListingRepository, cfg Config, rdb *redis.Client) company.DirectoryService {
	if cfg.TitleSeparator == "" {
		cfg.TitleSeparator = "-"
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 10 * time.Minute
	}
	return &DirectoryServiceImpl{
		listingRepo: listingRepo,
		cfg:         cfg,
		rdb:         rdb,
		sf:          &singleflight.Group{},
	}
}

// ResolveCompanyListings implements company.DirectoryService.
func (s *DirectoryServiceImpl) ResolveCompanyListings(ctx context.Context, identifier string, hideFilled bool) ([]listing.JobListing, error) {
	if identifier == "" {
		return nil, company.ErrInvalidIdentifier
	}

	listings, err := s.listingRepo.Find(ctx, listing.ListingFilter{
		Status:        listing.StatusPublish,
		Identifier:    identifier,
		ExcludeFilled: hideFilled,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve listings for company %q: %w", identifier, err)
	}
	return listings, nil
}

// SearchCompanies implements company.DirectoryService.
func (s *DirectoryServiceImpl) SearchCompanies(ctx context.Context, search company.CompanySearch) ([]string, error) {
	return s.cachedStrings(ctx, searchCacheKey(search), func(ctx context.Context) ([]string, error) {
		listings, err := s.listingRepo.Find(ctx, listing.ListingFilter{
			Status:           listing.StatusPublish,
			NameContains:     search.Keyword,
			LocationContains: search.Location,
			IndustryContains: search.Industry,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to search companies: %w", err)
		}

		names := make([]string, 0, len(listings))
		for _, l := range listings {
			names = append(names, l.CompanyName)
		}
		return uniqueSorted(names, true), nil
	})
}

// ListIndustries implements company.DirectoryService.
func (s *DirectoryServiceImpl) ListIndustries(ctx context.Context) ([]string, error) {
	return s.cachedStrings(ctx, industriesCacheKey, func(ctx context.Context) ([]string, error) {
		listings, err := s.listingRepo.Find(ctx, listing.ListingFilter{Status: listing.StatusPublish})
		if err != nil {
			return nil, fmt.Errorf("failed to list industries: %w", err)
		}

		industries := make([]string, 0, len(listings))
		for _, l := range listings {
			industries = append(industries, l.CompanyIndustry)
		}
		return uniqueSorted(industries, s.cfg.IncludeEmptyIndustry), nil
	})
}

// AggregateCompany implements company.DirectoryService.
func (s *DirectoryServiceImpl) AggregateCompany(ctx context.Context, companyName string) (company.CompanyAggregate, error) {
	if companyName == "" {
		return company.CompanyAggregate{}, company.ErrEmptyCompanyName
	}

	listings, err := s.listingRepo.Find(ctx, listing.ListingFilter{CompanyName: companyName})
	if err != nil {
		return company.CompanyAggregate{}, fmt.Errorf("failed to aggregate company %q: %w", companyName, err)
	}
	return company.CompanyAggregate{Count: len(listings), Listings: listings}, nil
}

// PositionCount implements company.DirectoryService.
func (s *DirectoryServiceImpl) PositionCount(ctx context.Context, companyName string) (int, error) {
	aggregate, err := s.AggregateCompany(ctx, companyName)
	if err != nil {
		return 0, err
	}
	return aggregate.Count, nil
}

// LatestCompanyProfile implements company.DirectoryService.
func (s *DirectoryServiceImpl) LatestCompanyProfile(ctx context.Context, companyName string) (company.CompanyProfile, error) {
	if companyName == "" {
		return company.CompanyProfile{}, company.ErrEmptyCompanyName
	}

	listings, err := s.listingRepo.Find(ctx, listing.ListingFilter{CompanyName: companyName, Limit: 1})
	if err != nil {
		return company.CompanyProfile{}, fmt.Errorf("failed to get latest profile of %q: %w", companyName, err)
	}
	if len(listings) == 0 {
		return company.CompanyProfile{}, company.ErrCompanyNotFound
	}
	return profileFromListing(listings[0]), nil
}

// DescribeCompany implements company.DirectoryService. The newest listing of
// the aggregate doubles as the profile source.
func (s *DirectoryServiceImpl) DescribeCompany(ctx context.Context, companyName string) (company.CompanySummary, error) {
	aggregate, err := s.AggregateCompany(ctx, companyName)
	if err != nil {
		return company.CompanySummary{}, err
	}
	if aggregate.Count == 0 {
		return company.CompanySummary{}, company.ErrCompanyNotFound
	}

	return company.CompanySummary{
		CompanyProfile: profileFromListing(aggregate.Listings[0]),
		PositionCount:  aggregate.Count,
		Listings:       aggregate.Listings,
	}, nil
}

// BuildDirectory implements company.DirectoryService.
func (s *DirectoryServiceImpl) BuildDirectory(ctx context.Context, search company.CompanySearch) ([]company.CompanyCardResponse, error) {
	names, err := s.SearchCompanies(ctx, search)
	if err != nil {
		return nil, err
	}

	cards := make([]company.CompanyCardResponse, 0, len(names))
	for _, name := range names {
		summary, err := s.DescribeCompany(ctx, name)
		if err != nil {
			// the name came from a cached search and its listings are gone
			if errors.Is(err, company.ErrCompanyNotFound) || errors.Is(err, company.ErrEmptyCompanyName) {
				continue
			}
			return nil, err
		}

		profileURL, err := s.ProfileURL(summary.Slug, summary.Name, s.DefaultURLScheme())
		if err != nil {
			return nil, err
		}

		cards = append(cards, company.CompanyCardResponse{
			CompanyProfileResponse: company.NewCompanyProfileResponse(summary.CompanyProfile),
			PositionCount:          summary.PositionCount,
			ProfileURL:             profileURL,
		})
	}
	return cards, nil
}

// EnsureCompanySlugs implements company.DirectoryService. Each write is
// conditional on the stored slug still being empty, so concurrent or repeated
// passes never overwrite a slug.
func (s *DirectoryServiceImpl) EnsureCompanySlugs(ctx context.Context) (company.SlugBackfillResult, error) {
	var result company.SlugBackfillResult

	listings, err := s.listingRepo.Find(ctx, listing.ListingFilter{})
	if err != nil {
		return result, fmt.Errorf("failed to load listings for slug backfill: %w", err)
	}

	for _, l := range listings {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result.Scanned++
		if l.CompanySlug != "" {
			continue
		}

		companySlug := slug.Make(l.CompanyName)
		if companySlug == "" {
			result.Skipped++
			slog.Warn("Company name has no slug characters", "listing_id", l.ID, "company_name", l.CompanyName)
			continue
		}

		updated, err := s.listingRepo.SetCompanySlugIfEmpty(ctx, l.ID, companySlug)
		if err != nil {
			return result, fmt.Errorf("failed to backfill company slug: %w", err)
		}
		if updated {
			result.Updated++
		}
	}

	slog.Info("Company slug backfill finished",
		"scanned", result.Scanned,
		"updated", result.Updated,
		"skipped", result.Skipped,
	)
	return result, nil
}

func profileFromListing(l listing.JobListing) company.CompanyProfile {
	return company.CompanyProfile{
		Name:     l.CompanyName,
		Slug:     l.CompanySlug,
		LogoURL:  l.LogoURL,
		Info:     l.Info(),
		Location: l.CompanyLocation,
		Size:     l.CompanySize,
	}
}

// uniqueSorted deduplicates values. The empty string is kept only when keepEmpty is set.
func uniqueSorted(values []string, keepEmpty bool) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" && !keepEmpty {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
