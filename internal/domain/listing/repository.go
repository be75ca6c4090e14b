package listing

import "context"

// ListingFilter narrows a Find call. Zero values mean "no constraint".
type ListingFilter struct {
	Status Status

	// Identifier matches company_name OR company_slug.
	Identifier string
	// CompanyName matches company_name exactly.
	CompanyName   string
	ExcludeFilled bool

	// Case-insensitive substring matches.
	NameContains     string
	LocationContains string
	IndustryContains string

	Limit int
}

// ListingRepository is the listing store. Find returns rows newest first.
type ListingRepository interface {
	Find(ctx context.Context, filter ListingFilter) ([]JobListing, error)
	// SetCompanySlugIfEmpty writes slug only while the stored slug is still empty
	// and reports whether the row changed.
	SetCompanySlugIfEmpty(ctx context.Context, id string, slug string) (bool, error)
	Create(ctx context.Context, newListing JobListing) (JobListing, error)
}
