package http

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/cmlabs-hris/company-profiles/internal/domain/company"
	"github.com/cmlabs-hris/company-profiles/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CompanyHandler interface {
	// Public pages
	ShowByPath(w http.ResponseWriter, r *http.Request)
	ShowByQuery(w http.ResponseWriter, r *http.Request)

	// JSON API
	Search(w http.ResponseWriter, r *http.Request)
	Directory(w http.ResponseWriter, r *http.Request)
	Industries(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)
	Listings(w http.ResponseWriter, r *http.Request)
	PositionCount(w http.ResponseWriter, r *http.Request)
	ProfileURL(w http.ResponseWriter, r *http.Request)

	// Admin
	BackfillSlugs(w http.ResponseWriter, r *http.Request)
}

type CompanyHandlerImpl struct {
	directoryService company.DirectoryService
	routeSegment     string
}

type positionCountResponse struct {
	CompanyName   string `json:"company_name"`
	PositionCount int    `json:"position_count"`
}

// ShowByPath implements CompanyHandler for /{segment}/{identifier}/.
func (h *CompanyHandlerImpl) ShowByPath(w http.ResponseWriter, r *http.Request) {
	identifier := strings.Trim(chi.URLParam(r, "*"), "/")
	h.renderCompanyPage(w, r, decodeRawParam(r, identifier))
}

// ShowByQuery implements CompanyHandler for /?{segment}={identifier}.
func (h *CompanyHandlerImpl) ShowByQuery(w http.ResponseWriter, r *http.Request) {
	identifier := r.URL.Query().Get(h.routeSegment)
	if identifier == "" {
		response.NotFound(w, "Page not found")
		return
	}
	h.renderCompanyPage(w, r, identifier)
}

func (h *CompanyHandlerImpl) renderCompanyPage(w http.ResponseWriter, r *http.Request, identifier string) {
	page, err := h.directoryService.CompanyPage(r.Context(), identifier)
	if err != nil {
		slog.Error("Failed to resolve company page", "identifier", identifier, "error", err)
		response.HandleError(w, err)
		return
	}

	if !page.Found() {
		response.NotFoundWithData(w, "Company not found", company.NewCompanyPageResponse(page))
		return
	}
	response.Success(w, company.NewCompanyPageResponse(page))
}

// Search implements CompanyHandler.
func (h *CompanyHandlerImpl) Search(w http.ResponseWriter, r *http.Request) {
	search := searchFromQuery(r)
	if err := search.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	names, err := h.directoryService.SearchCompanies(r.Context(), search)
	if err != nil {
		slog.Error("Failed to search companies", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, names, &response.Meta{TotalItems: int64(len(names))})
}

// Directory implements CompanyHandler.
func (h *CompanyHandlerImpl) Directory(w http.ResponseWriter, r *http.Request) {
	search := searchFromQuery(r)
	if err := search.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	cards, err := h.directoryService.BuildDirectory(r.Context(), search)
	if err != nil {
		slog.Error("Failed to build company directory", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, cards, &response.Meta{TotalItems: int64(len(cards))})
}

// Industries implements CompanyHandler.
func (h *CompanyHandlerImpl) Industries(w http.ResponseWriter, r *http.Request) {
	industries, err := h.directoryService.ListIndustries(r.Context())
	if err != nil {
		slog.Error("Failed to list industries", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, industries)
}

// Profile implements CompanyHandler.
func (h *CompanyHandlerImpl) Profile(w http.ResponseWriter, r *http.Request) {
	name := decodeRawParam(r, chi.URLParam(r, "name"))

	summary, err := h.directoryService.DescribeCompany(r.Context(), name)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, company.NewCompanySummaryResponse(summary))
}

// Listings implements CompanyHandler.
func (h *CompanyHandlerImpl) Listings(w http.ResponseWriter, r *http.Request) {
	name := decodeRawParam(r, chi.URLParam(r, "name"))

	aggregate, err := h.directoryService.AggregateCompany(r.Context(), name)
	if err != nil {
		slog.Error("Failed to aggregate company listings", "company_name", name, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, company.NewCompanyAggregateResponse(aggregate))
}

// PositionCount implements CompanyHandler.
func (h *CompanyHandlerImpl) PositionCount(w http.ResponseWriter, r *http.Request) {
	name := decodeRawParam(r, chi.URLParam(r, "name"))

	count, err := h.directoryService.PositionCount(r.Context(), name)
	if err != nil {
		slog.Error("Failed to count positions", "company_name", name, "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, positionCountResponse{CompanyName: name, PositionCount: count})
}

// ProfileURL implements CompanyHandler.
func (h *CompanyHandlerImpl) ProfileURL(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := company.ProfileURLRequest{
		CompanySlug: query.Get("slug"),
		CompanyName: query.Get("name"),
		Scheme:      company.URLScheme(query.Get("scheme")),
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}
	if req.Scheme == "" {
		req.Scheme = h.directoryService.DefaultURLScheme()
	}

	profileURL, err := h.directoryService.ProfileURL(req.CompanySlug, req.CompanyName, req.Scheme)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, company.ProfileURLResponse{URL: profileURL, Scheme: req.Scheme})
}

// BackfillSlugs implements CompanyHandler.
func (h *CompanyHandlerImpl) BackfillSlugs(w http.ResponseWriter, r *http.Request) {
	result, err := h.directoryService.EnsureCompanySlugs(r.Context())
	if err != nil {
		slog.Error("Failed to backfill company slugs", "error", err, "updated", result.Updated)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Company slugs backfilled", company.SlugBackfillResponse{
		Scanned: result.Scanned,
		Updated: result.Updated,
		Skipped: result.Skipped,
	})
}

func searchFromQuery(r *http.Request) company.CompanySearch {
	query := r.URL.Query()
	return company.CompanySearch{
		Keyword:  strings.TrimSpace(query.Get("keyword")),
		Location: strings.TrimSpace(query.Get("location")),
		Industry: strings.TrimSpace(query.Get("industry")),
	}
}

// decodeRawParam unescapes a route parameter when chi matched against the raw
// (still escaped) path. Otherwise the value is already decoded.
func decodeRawParam(r *http.Request, value string) string {
	if r.URL.RawPath == "" {
		return value
	}
	decoded, err := url.PathUnescape(value)
	if err != nil {
		return value
	}
	return decoded
}

func NewCompanyHandler(directoryService company.DirectoryService, routeSegment string) CompanyHandler {
	return &CompanyHandlerImpl{
		directoryService: directoryService,
		routeSegment:     routeSegment,
	}
}
