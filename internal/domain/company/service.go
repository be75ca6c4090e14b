package company

import (
	"context"

	"github.com/cmlabs-hris/company-profiles/internal/domain/listing"
)

type DirectoryService interface {
	ResolveCompanyListings(ctx context.Context, identifier string, hideFilled bool) ([]listing.JobListing, error)
	SearchCompanies(ctx context.Context, search CompanySearch) ([]string, error)
	ListIndustries(ctx context.Context) ([]string, error)
	AggregateCompany(ctx context.Context, companyName string) (CompanyAggregate, error)
	PositionCount(ctx context.Context, companyName string) (int, error)
	LatestCompanyProfile(ctx context.Context, companyName string) (CompanyProfile, error)
	DescribeCompany(ctx context.Context, companyName string) (CompanySummary, error)
	BuildDirectory(ctx context.Context, search CompanySearch) ([]CompanyCardResponse, error)
	EnsureCompanySlugs(ctx context.Context) (SlugBackfillResult, error)
	ProfileURL(companySlug, companyName string, scheme URLScheme) (string, error)
	DefaultURLScheme() URLScheme
	PageTitle(companyName string, frontPage bool) string
	CompanyPage(ctx context.Context, identifier string) (CompanyPage, error)
}
