package company

import (
	"github.com/cmlabs-hris/company-profiles/internal/domain/listing"
	"github.com/cmlabs-hris/company-profiles/internal/pkg/validator"
)

const maxFilterLength = 255

// CompanySearch holds the optional directory filters. Empty fields are ignored.
type CompanySearch struct {
	Keyword  string `json:"keyword,omitempty"`
	Location string `json:"location,omitempty"`
	Industry string `json:"industry,omitempty"`
}

func (s CompanySearch) Validate() error {
	var errs validator.ValidationErrors

	if validator.ExceedsLength(s.Keyword, maxFilterLength) {
		errs = append(errs, validator.ValidationError{
			Field:   "keyword",
			Message: "keyword must not exceed 255 characters",
		})
	}
	if validator.ExceedsLength(s.Location, maxFilterLength) {
		errs = append(errs, validator.ValidationError{
			Field:   "location",
			Message: "location must not exceed 255 characters",
		})
	}
	if validator.ExceedsLength(s.Industry, maxFilterLength) {
		errs = append(errs, validator.ValidationError{
			Field:   "industry",
			Message: "industry must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (s CompanySearch) IsZero() bool {
	return s.Keyword == "" && s.Location == "" && s.Industry == ""
}

type ProfileURLRequest struct {
	CompanySlug string
	CompanyName string
	Scheme      URLScheme
}

func (r *ProfileURLRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CompanyName == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if r.Scheme != "" && !r.Scheme.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "scheme",
			Message: "scheme must be one of: pretty, query",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProfileURLResponse struct {
	URL    string    `json:"url"`
	Scheme URLScheme `json:"scheme"`
}

type CompanyProfileResponse struct {
	Name     string `json:"company_name"`
	Slug     string `json:"company_slug"`
	LogoURL  string `json:"company_logo,omitempty"`
	Info     string `json:"company_info,omitempty"`
	Location string `json:"company_location,omitempty"`
	Size     string `json:"company_size,omitempty"`
}

func NewCompanyProfileResponse(p CompanyProfile) CompanyProfileResponse {
	return CompanyProfileResponse{
		Name:     p.Name,
		Slug:     p.Slug,
		LogoURL:  p.LogoURL,
		Info:     p.Info,
		Location: p.Location,
		Size:     p.Size,
	}
}

type CompanySummaryResponse struct {
	CompanyProfileResponse
	PositionCount int                       `json:"position_count"`
	Listings      []listing.ListingResponse `json:"listings"`
}

func NewCompanySummaryResponse(s CompanySummary) CompanySummaryResponse {
	return CompanySummaryResponse{
		CompanyProfileResponse: NewCompanyProfileResponse(s.CompanyProfile),
		PositionCount:          s.PositionCount,
		Listings:               listing.NewListingResponses(s.Listings),
	}
}

type CompanyAggregateResponse struct {
	Count    int                       `json:"count"`
	Listings []listing.ListingResponse `json:"company_posts"`
}

func NewCompanyAggregateResponse(a CompanyAggregate) CompanyAggregateResponse {
	return CompanyAggregateResponse{
		Count:    a.Count,
		Listings: listing.NewListingResponses(a.Listings),
	}
}

// CompanyCardResponse is one entry of the company directory.
type CompanyCardResponse struct {
	CompanyProfileResponse
	PositionCount int    `json:"position_count"`
	ProfileURL    string `json:"profile_url"`
}

type CompanyPageResponse struct {
	Identifier string                    `json:"company"`
	Title      string                    `json:"title"`
	Template   string                    `json:"template"`
	Listings   []listing.ListingResponse `json:"listings"`
}

func NewCompanyPageResponse(p CompanyPage) CompanyPageResponse {
	return CompanyPageResponse{
		Identifier: p.Identifier,
		Title:      p.Title,
		Template:   p.Template,
		Listings:   listing.NewListingResponses(p.Listings),
	}
}

type SlugBackfillResponse struct {
	Scanned int `json:"scanned"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}
