package listing

import "time"

type ListingResponse struct {
	ID                 string    `json:"id"`
	Title              string    `json:"title"`
	CompanyName        string    `json:"company_name"`
	CompanySlug        string    `json:"company_slug"`
	CompanyLocation    string    `json:"company_location,omitempty"`
	CompanyIndustry    string    `json:"company_industry,omitempty"`
	CompanySize        string    `json:"company_size,omitempty"`
	CompanyDescription string    `json:"company_description,omitempty"`
	CompanyTagline     string    `json:"company_tagline,omitempty"`
	LogoURL            string    `json:"logo_url,omitempty"`
	Filled             bool      `json:"filled"`
	Status             Status    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}

func NewListingResponse(l JobListing) ListingResponse {
	return ListingResponse{
		ID:                 l.ID,
		Title:              l.Title,
		CompanyName:        l.CompanyName,
		CompanySlug:        l.CompanySlug,
		CompanyLocation:    l.CompanyLocation,
		CompanyIndustry:    l.CompanyIndustry,
		CompanySize:        l.CompanySize,
		CompanyDescription: l.CompanyDescription,
		CompanyTagline:     l.CompanyTagline,
		LogoURL:            l.LogoURL,
		Filled:             l.Filled,
		Status:             l.Status,
		CreatedAt:          l.CreatedAt,
	}
}

func NewListingResponses(listings []JobListing) []ListingResponse {
	out := make([]ListingResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, NewListingResponse(l))
	}
	return out
}
