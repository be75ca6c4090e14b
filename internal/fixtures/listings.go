package fixtures

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/company-profiles/internal/domain/listing"
)

// ==========================================
// SAMPLE LISTINGS
// ==========================================

// DefaultListings returns a small job board with several companies. Slugs are
// left empty so that the startup backfill has work to do.
func DefaultListings(now time.Time) []listing.JobListing {
	at := func(daysAgo int) time.Time { return now.AddDate(0, 0, -daysAgo).UTC() }

	return []listing.JobListing{
		{
			Title:              "Backend Engineer",
			CompanyName:        "Acme Corp",
			CompanyLocation:    "Berlin",
			CompanyIndustry:    "Software",
			CompanySize:        "51-200",
			CompanyDescription: "Acme builds tooling for warehouses and the people who run them.",
			CompanyTagline:     "Everything, delivered",
			LogoURL:            "https://cdn.example.com/logos/acme.png",
			Status:             listing.StatusPublish,
			CreatedAt:          at(12),
		},
		{
			Title:           "Product Designer",
			CompanyName:     "Acme Corp",
			CompanyLocation: "Berlin",
			CompanyIndustry: "Software",
			CompanySize:     "51-200",
			CompanyTagline:  "Everything, delivered",
			LogoURL:         "https://cdn.example.com/logos/acme.png",
			Filled:          true,
			Status:          listing.StatusPublish,
			CreatedAt:       at(5),
		},
		{
			Title:           "Site Reliability Engineer",
			CompanyName:     "Acme Corp",
			CompanyLocation: "Remote",
			CompanyIndustry: "Software",
			Status:          listing.StatusDraft,
			CreatedAt:       at(1),
		},
		{
			Title:           "Plant Operator",
			CompanyName:     "Globex",
			CompanyLocation: "Springfield",
			CompanyIndustry: "Energy",
			CompanySize:     "1000+",
			CompanyTagline:  "Power for the people",
			Status:          listing.StatusPublish,
			CreatedAt:       at(20),
		},
		{
			Title:              "Pastry Chef",
			CompanyName:        "Café Société & Fils",
			CompanyLocation:    "Lyon",
			CompanyIndustry:    "Hospitality",
			CompanySize:        "11-50",
			CompanyDescription: "A family bakery since 1921.",
			Status:             listing.StatusPublish,
			CreatedAt:          at(3),
		},
		{
			Title:           "Office Manager",
			CompanyName:     "Initech",
			CompanyLocation: "Austin",
			Status:          listing.StatusPublish,
			CreatedAt:       at(30),
		},
		{
			Title:           "Sales Lead",
			CompanyName:     "Initech",
			CompanyLocation: "Austin",
			Status:          listing.StatusExpired,
			CreatedAt:       at(90),
		},
	}
}

// Seed stores DefaultListings unless the store already holds listings. It
// returns how many listings were created.
func Seed(ctx context.Context, repo listing.ListingRepository) (int, error) {
	existing, err := repo.Find(ctx, listing.ListingFilter{Limit: 1})
	if err != nil {
		return 0, fmt.Errorf("failed to check existing listings: %w", err)
	}
	if len(existing) > 0 {
		slog.Info("Store already has listings, skipping seed")
		return 0, nil
	}

	created := 0
	for _, l := range DefaultListings(time.Now()) {
		if _, err := repo.Create(ctx, l); err != nil {
			return created, fmt.Errorf("failed to seed listing %q: %w", l.Title, err)
		}
		created++
	}

	slog.Info("Seeded sample listings", "count", created)
	return created, nil
}
