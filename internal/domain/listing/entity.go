package listing

import "time"

type Status string

const (
	StatusPublish Status = "publish"
	StatusDraft   Status = "draft"
	StatusPending Status = "pending"
	StatusExpired Status = "expired"
)

// JobListing is a single job posting with the company metadata attached to it.
// CompanySlug is derived from CompanyName once and never rewritten afterwards.
type JobListing struct {
	ID                 string
	Title              string
	CompanyName        string
	CompanySlug        string
	CompanyLocation    string
	CompanyIndustry    string
	CompanySize        string
	CompanyDescription string
	CompanyTagline     string
	LogoURL            string
	Filled             bool
	Status             Status
	CreatedAt          time.Time
}

// Info returns the description, falling back to the tagline.
func (l JobListing) Info() string {
	if l.CompanyDescription != "" {
		return l.CompanyDescription
	}
	return l.CompanyTagline
}
