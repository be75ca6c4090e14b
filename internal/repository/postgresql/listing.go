package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/company-profiles/internal/domain/listing"
	"github.com/cmlabs-hris/company-profiles/internal/pkg/database"
	"github.com/cmlabs-hris/company-profiles/internal/repository/listingsql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type listingRepositoryImpl struct {
	db *database.DB
}

func NewListingRepository(db *database.DB) listing.ListingRepository {
	return &listingRepositoryImpl{db: db}
}

// Find implements listing.ListingRepository.
func (r *listingRepositoryImpl) Find(ctx context.Context, filter listing.ListingFilter) ([]listing.JobListing, error) {
	q := GetQuerier(ctx, r.db)

	query, args := listingsql.BuildSelect(listingsql.Postgres, filter)
	rows, err := q.Query(ctx, query, args...)
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
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE job_listings
		SET company_slug = $1
		WHERE id = $2 AND company_slug = ''
	`
	tag, err := q.Exec(ctx, query, slug, id)
	if err != nil {
		return false, fmt.Errorf("failed to set company slug for listing %s: %w", id, err)
	}
	return tag.RowsAffected() == 1, nil
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
		newListing.CreatedAt = time.Now().UTC()
	}

	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO job_listings (` + listingsql.Columns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + listingsql.Columns

	row := q.QueryRow(ctx, query,
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
		newListing.CreatedAt,
	)
	created, err := scanListing(row)
	if err != nil {
		return listing.JobListing{}, fmt.Errorf("failed to create job listing: %w", err)
	}
	return created, nil
}

func scanListing(row pgx.Row) (listing.JobListing, error) {
	var (
		l      listing.JobListing
		status string
	)
	err := row.Scan(
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
		&l.CreatedAt,
	)
	if err != nil {
		return listing.JobListing{}, err
	}
	l.Status = listing.Status(status)
	l.CreatedAt = l.CreatedAt.UTC()
	return l, nil
}
