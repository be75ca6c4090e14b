package directory

import (
	"net/url"
	"strings"

	"github.com/cmlabs-hris/company-profiles/internal/domain/company"
)

// ProfileURL implements company.DirectoryService. The company name stands in
// for a missing slug.
func (s *DirectoryServiceImpl) ProfileURL(companySlug, companyName string, scheme company.URLScheme) (string, error) {
	if companyName == "" {
		return "", company.ErrEmptyCompanyName
	}
	if scheme == "" {
		scheme = s.DefaultURLScheme()
	}
	if !scheme.Valid() {
		return "", company.ErrInvalidURLScheme
	}

	identifier := companySlug
	if identifier == "" {
		identifier = companyName
	}
	identifier = rawURLEncode(identifier)

	base := strings.TrimRight(s.cfg.BaseURL, "/")
	if scheme == company.URLSchemeQuery {
		return base + "/?" + s.cfg.RouteSegment + "=" + identifier, nil
	}
	return base + "/" + s.cfg.RouteSegment + "/" + identifier + "/", nil
}

// DefaultURLScheme implements company.DirectoryService.
func (s *DirectoryServiceImpl) DefaultURLScheme() company.URLScheme {
	if s.cfg.PrettyPermalinks {
		return company.URLSchemePretty
	}
	return company.URLSchemeQuery
}

// rawURLEncode percent-encodes everything outside [A-Za-z0-9_.~-], spaces included.
func rawURLEncode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
