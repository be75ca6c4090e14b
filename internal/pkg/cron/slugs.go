package cron

import (
	"context"
	"time"

	"github.com/cmlabs-hris/company-profiles/internal/domain/company"
)

// SlugJobs keeps company slugs filled in for listings created after startup.
type SlugJobs struct {
	directoryService company.DirectoryService
}

func NewSlugJobs(directoryService company.DirectoryService) *SlugJobs {
	return &SlugJobs{directoryService: directoryService}
}

// RegisterJobs adds the backfill job. A zero interval registers nothing.
func (j *SlugJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) error {
	if interval == 0 {
		return nil
	}
	return scheduler.AddJob(Job{
		Name:     "backfill_company_slugs",
		Interval: interval,
		Fn:       j.BackfillCompanySlugs,
	})
}

func (j *SlugJobs) BackfillCompanySlugs(ctx context.Context) error {
	_, err := j.directoryService.EnsureCompanySlugs(ctx)
	return err
}
