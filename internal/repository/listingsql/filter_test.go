package listingsql

import (
	"testing"

	"github.com/cmlabs-hris/company-profiles/internal/domain/listing"
	"github.com/stretchr/testify/assert"
)

func TestBuildSelect_NoFilter(t *testing.T) {
	query, args := BuildSelect(Postgres, listing.ListingFilter{})

	assert.NotContains(t, query, "WHERE")
	assert.NotContains(t, query, "LIMIT")
	assert.Contains(t, query, "ORDER BY created_at DESC, id DESC")
	assert.Empty(t, args)
}

func TestBuildSelect_Postgres(t *testing.T) {
	query, args := BuildSelect(Postgres, listing.ListingFilter{
		Status:        listing.StatusPublish,
		Identifier:    "acme",
		ExcludeFilled: true,
		NameContains:  "ac",
		Limit:         1,
	})

	assert.Contains(t, query, "status = $1")
	assert.Contains(t, query, "(company_name = $2 OR company_slug = $3)")
	assert.Contains(t, query, "filled = FALSE")
	assert.Contains(t, query, `company_name ILIKE $4 ESCAPE '\'`)
	assert.NotContains(t, query, "unicode_lower")
	assert.Contains(t, query, "LIMIT $5")
	assert.Equal(t, []interface{}{"publish", "acme", "acme", "%ac%", 1}, args)
}

func TestBuildSelect_SQLite(t *testing.T) {
	query, args := BuildSelect(SQLite, listing.ListingFilter{
		CompanyName:      "Acme",
		LocationContains: "berlin",
		IndustryContains: "tech",
		ExcludeFilled:    true,
	})

	assert.Contains(t, query, "company_name = ?")
	assert.Contains(t, query, "filled = 0")
	assert.Contains(t, query, `unicode_lower(company_location) LIKE unicode_lower(?) ESCAPE '\'`)
	assert.Contains(t, query, `unicode_lower(company_industry) LIKE unicode_lower(?) ESCAPE '\'`)
	assert.NotContains(t, query, "$")
	assert.Equal(t, []interface{}{"Acme", "%berlin%", "%tech%"}, args)
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%acme%", ContainsPattern("acme"))
	assert.Equal(t, `%100\%%`, ContainsPattern("100%"))
	assert.Equal(t, `%a\_b%`, ContainsPattern("a_b"))
	assert.Equal(t, `%c:\\x%`, ContainsPattern(`c:\x`))
}
