package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cmlabs-hris/company-profiles/internal/domain/listing"
	"github.com/cmlabs-hris/company-profiles/internal/repository/listingsql"
	"github.com/google/uuid"
)

// timeLayout is fixed width so that TEXT ordering matches time ordering.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

type listingRepositoryImpl struct {
	db *sql.DB
}

func NewListingRepository(db *sql.DB) listing.ListingRepository {
	return &listingRepositoryImpl{db: db}
}

// Find implements listing.ListingRepository.
func (r *listingRepositoryImpl) Find(ctx context.Context, filter listing.ListingFilter) ([]listing.JobListing, error) {
	query, args := listingsql.BuildSelect(listingsql.SQLite, filter)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query job listings: %w", err)
	}
	defer rows.Close()

	listings := make([]listing.JobListing, 0)
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job listing: %w", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate job listings: %w", err)
	}
	return listings, nil
}

// SetCompanySlugIfEmpty implements listing.ListingRepository.
func (r *listingRepositoryImpl) SetCompanySlugIfEmpty(ctx context.Context, id string, slug string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
UPDATE job_listings
SET company_slug = ?
WHERE id = ? AND company_slug = '';`, slug, id)
	if err != nil {
		return false, fmt.Errorf("failed to set company slug for listing %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n == 1, nil
}

// Create implements listing.ListingRepository.
func (r *listingRepositoryImpl) Create(ctx context.Context, newListing listing.JobListing) (listing.JobListing, error) {
	if newListing.CompanyName == "" {
		return listing.JobListing{}, listing.ErrCompanyNameRequired
	}
	if newListing.ID == "" {
		newListing.ID = uuid.NewString()
	}
	if newListing.Status == "" {
		newListing.Status = listing.StatusPublish
	}
	if newListing.CreatedAt.IsZero() {
		newListing.CreatedAt = time.Now()
	}
	newListing.CreatedAt = newListing.CreatedAt.UTC()

	_, err := r.db.ExecContext(ctx, `
INSERT INTO job_listings (`+listingsql.Columns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		newListing.ID,
		newListing.Title,
		newListing.CompanyName,
		newListing.CompanySlug,
		newListing.CompanyLocation,
		newListing.CompanyIndustry,
		newListing.CompanySize,
		newListing.CompanyDescription,
		newListing.CompanyTagline,
		newListing.LogoURL,
		newListing.Filled,
		string(newListing.Status),
		newListing.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return listing.JobListing{}, fmt.Errorf("failed to create job listing: %w", err)
	}

	// round-trip through the stored representation
	created, err := time.Parse(timeLayout, newListing.CreatedAt.Format(timeLayout))
	if err == nil {
		newListing.CreatedAt = created
	}
	return newListing, nil
}

func scanListing(rows *sql.Rows) (listing.JobListing, error) {
	var (
		l         listing.JobListing
		status    string
		createdAt string
	)
	err := rows.Scan(
		&l.ID,
		&l.Title,
		&l.CompanyName,
		&l.CompanySlug,
		&l.CompanyLocation,
		&l.CompanyIndustry,
		&l.CompanySize,
		&l.CompanyDescription,
		&l.CompanyTagline,
		&l.LogoURL,
		&l.Filled,
		&status,
		&createdAt,
	)
	if err != nil {
		return listing.JobListing{}, err
	}
	l.Status = listing.Status(status)
	l.CreatedAt, err = time.Parse(timeLayout, createdAt)
	if err != nil {
		return listing.JobListing{}, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	return l, nil
}
