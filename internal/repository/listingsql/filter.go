// Package listingsql turns a listing.ListingFilter into SQL shared by the
// Postgres and SQLite repositories.
package listingsql

import (
	"fmt"
	"strings"

	"github.com/cmlabs-hris/company-profiles/internal/domain/listing"
	"github.com/cmlabs-hris/company-profiles/internal/pkg/database"
)

const Columns = `id, title, company_name, company_slug, company_location, company_industry,
	company_size, company_description, company_tagline, logo_url, filled, status, created_at`

const OrderBy = ` ORDER BY created_at DESC, id DESC`

// Dialect covers the syntax differences between the supported drivers.
type Dialect struct {
	// Placeholder renders the n-th (1-based) bind parameter.
	Placeholder func(n int) string
	// Like is the LIKE operator used for contains filters.
	Like string
	// Fold wraps both sides of a contains filter when Like alone does not
	// fold non-ASCII case. Nil leaves them untouched.
	Fold func(expr string) string
	// FilledFalse is the literal for an unfilled listing.
	FilledFalse string
}

var Postgres = Dialect{
	Placeholder: func(n int) string { return fmt.Sprintf("$%d", n) },
	Like:        "ILIKE",
	FilledFalse: "FALSE",
}

var SQLite = Dialect{
	Placeholder: func(int) string { return "?" },
	Like:        "LIKE",
	Fold:        func(expr string) string { return database.SQLiteLowerFunc + "(" + expr + ")" },
	FilledFalse: "0",
}

// BuildSelect returns the full SELECT for filter along with its bind arguments.
func BuildSelect(d Dialect, filter listing.ListingFilter) (string, []interface{}) {
	var (
		clauses []string
		args    []interface{}
	)
	bind := func(v interface{}) string {
		args = append(args, v)
		return d.Placeholder(len(args))
	}

	if filter.Status != "" {
		clauses = append(clauses, "status = "+bind(string(filter.Status)))
	}
	if filter.Identifier != "" {
		clauses = append(clauses, fmt.Sprintf("(company_name = %s OR company_slug = %s)",
			bind(filter.Identifier), bind(filter.Identifier)))
	}
	if filter.CompanyName != "" {
		clauses = append(clauses, "company_name = "+bind(filter.CompanyName))
	}
	if filter.ExcludeFilled {
		clauses = append(clauses, "filled = "+d.FilledFalse)
	}
	if filter.NameContains != "" {
		clauses = append(clauses, likeClause(d, "company_name", bind(ContainsPattern(filter.NameContains))))
	}
	if filter.LocationContains != "" {
		clauses = append(clauses, likeClause(d, "company_location", bind(ContainsPattern(filter.LocationContains))))
	}
	if filter.IndustryContains != "" {
		clauses = append(clauses, likeClause(d, "company_industry", bind(ContainsPattern(filter.IndustryContains))))
	}

	query := "SELECT " + Columns + " FROM job_listings"
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += OrderBy
	if filter.Limit > 0 {
		query += " LIMIT " + bind(filter.Limit)
	}

	return query, args
}

func likeClause(d Dialect, column, placeholder string) string {
	if d.Fold != nil {
		column, placeholder = d.Fold(column), d.Fold(placeholder)
	}
	return fmt.Sprintf(`%s %s %s ESCAPE '\'`, column, d.Like, placeholder)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern wraps s for a substring LIKE match with metacharacters escaped.
func ContainsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
