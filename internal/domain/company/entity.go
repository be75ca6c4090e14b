package company

import "github.com/cmlabs-hris/company-profiles/internal/domain/listing"

// URLScheme selects how profile URLs are built.
type URLScheme string

const (
	// URLSchemePretty builds /{segment}/{slug}/.
	URLSchemePretty URLScheme = "pretty"
	// URLSchemeQuery builds /?{segment}={slug}.
	URLSchemeQuery URLScheme = "query"
)

func (s URLScheme) Valid() bool {
	return s == URLSchemePretty || s == URLSchemeQuery
}

// CompanyProfile is built from the most recent listing of a company.
type CompanyProfile struct {
	Name     string
	Slug     string
	LogoURL  string
	Info     string
	Location string
	Size     string
}

// CompanyAggregate holds every listing of a company regardless of status.
type CompanyAggregate struct {
	Count    int
	Listings []listing.JobListing
}

// CompanySummary combines the latest profile with the aggregate. Computed on
// demand, never stored.
type CompanySummary struct {
	CompanyProfile
	PositionCount int
	Listings      []listing.JobListing
}

// SlugBackfillResult reports one pass of EnsureCompanySlugs.
type SlugBackfillResult struct {
	Scanned int
	Updated int
	Skipped int
}

const (
	TemplateSingleCompany = "single-company"
	TemplateNotFound      = "404"
)

// CompanyPage is what a renderer needs for the /{segment}/{identifier}/ route.
type CompanyPage struct {
	Identifier string
	Title      string
	Template   string
	Listings   []listing.JobListing
}

func (p CompanyPage) Found() bool {
	return len(p.Listings) > 0
}
