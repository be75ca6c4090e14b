package directory

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/company-profiles/internal/domain/company"
)

// PageTitle implements company.DirectoryService.
func (s *DirectoryServiceImpl) PageTitle(companyName string, frontPage bool) string {
	title := fmt.Sprintf("Jobs at %s", companyName)
	if s.cfg.SiteName == "" {
		return title
	}

	site := s.cfg.SiteName
	if frontPage && s.cfg.SiteDescription != "" {
		site = fmt.Sprintf("%s %s %s", site, s.cfg.TitleSeparator, s.cfg.SiteDescription)
	}
	return fmt.Sprintf("%s %s %s", title, s.cfg.TitleSeparator, site)
}

// CompanyPage implements company.DirectoryService. An identifier with no
// published listings yields the not-found template rather than an error.
func (s *DirectoryServiceImpl) CompanyPage(ctx context.Context, identifier string) (company.CompanyPage, error) {
	listings, err := s.ResolveCompanyListings(ctx, identifier, s.cfg.HideFilledPositions)
	if err != nil {
		return company.CompanyPage{}, err
	}

	page := company.CompanyPage{
		Identifier: identifier,
		Title:      s.PageTitle(identifier, false),
		Template:   company.TemplateNotFound,
		Listings:   listings,
	}
	if page.Found() {
		page.Template = company.TemplateSingleCompany
	}
	return page, nil
}
