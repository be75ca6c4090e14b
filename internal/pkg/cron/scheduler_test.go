package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cmlabs-hris/company-profiles/internal/domain/company"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_AddJobValidation(t *testing.T) {
	s := NewScheduler()
	noop := func(context.Context) error { return nil }

	assert.Error(t, s.AddJob(Job{Name: "zero", Fn: noop}))
	assert.Error(t, s.AddJob(Job{Name: "nil fn", Interval: time.Second}))
	assert.NoError(t, s.AddJob(Job{Name: "ok", Interval: time.Second, Fn: noop}))
}

func TestScheduler_RunsUntilStopped(t *testing.T) {
	s := NewScheduler()
	var runs atomic.Int32
	require.NoError(t, s.AddJob(Job{
		Name:     "tick",
		Interval: 10 * time.Millisecond,
		Fn: func(context.Context) error {
			runs.Add(1)
			return errors.New("failures are logged, not fatal")
		},
	}))

	s.Start(context.Background())
	assert.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, 5*time.Millisecond)
	s.Stop()

	stopped := runs.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, runs.Load())
}

func TestScheduler_RunOnStart(t *testing.T) {
	s := NewScheduler()
	ran := make(chan struct{}, 1)
	require.NoError(t, s.AddJob(Job{
		Name:       "startup",
		Interval:   time.Hour,
		RunOnStart: true,
		Fn: func(context.Context) error {
			ran <- struct{}{}
			return nil
		},
	}))

	s.Start(context.Background())
	defer s.Stop()

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("job did not run on start")
	}
}

func TestScheduler_StopWithoutStart(t *testing.T) {
	assert.NotPanics(t, func() { NewScheduler().Stop() })
}

type stubDirectoryService struct {
	company.DirectoryService
	calls atomic.Int32
	err   error
}

func (s *stubDirectoryService) EnsureCompanySlugs(context.Context) (company.SlugBackfillResult, error) {
	s.calls.Add(1)
	return company.SlugBackfillResult{}, s.err
}

func TestSlugJobs(t *testing.T) {
	t.Run("zero interval registers nothing", func(t *testing.T) {
		s := NewScheduler()
		require.NoError(t, NewSlugJobs(&stubDirectoryService{}).RegisterJobs(s, 0))
		assert.Empty(t, s.jobs)
	})

	t.Run("backfill delegates to the directory", func(t *testing.T) {
		errStore := errors.New("store down")
		svc := &stubDirectoryService{err: errStore}
		jobs := NewSlugJobs(svc)

		err := jobs.BackfillCompanySlugs(context.Background())
		assert.ErrorIs(t, err, errStore)
		assert.Equal(t, int32(1), svc.calls.Load())
	})

	t.Run("registered job runs on schedule", func(t *testing.T) {
		svc := &stubDirectoryService{}
		s := NewScheduler()
		require.NoError(t, NewSlugJobs(svc).RegisterJobs(s, 10*time.Millisecond))
		require.Len(t, s.jobs, 1)

		s.Start(context.Background())
		assert.Eventually(t, func() bool { return svc.calls.Load() >= 1 }, time.Second, 5*time.Millisecond)
		s.Stop()
	})
}
