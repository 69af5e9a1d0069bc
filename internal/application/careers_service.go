package application

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/arsicorp/zenith-lab-robotics/internal/domain"
	"github.com/arsicorp/zenith-lab-robotics/internal/ports"
)

const jobsListKey = "jobs:list"

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// CareersService serves job postings and accepts applications.
type CareersService struct {
	jobs         ports.JobStore
	applications ports.JobApplicationStore
	cache        ports.Cache
	now          func() time.Time
}

func NewCareersService(jobs ports.JobStore, applications ports.JobApplicationStore, cache ports.Cache) *CareersService {
	return &CareersService{
		jobs:         jobs,
		applications: applications,
		cache:        cache,
		now:          time.Now,
	}
}

func (s *CareersService) ListJobs(ctx context.Context) ([]domain.Job, error) {
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, jobsListKey); err == nil && data != nil {
			var jobs []domain.Job
			if err := json.Unmarshal(data, &jobs); err == nil {
				return jobs, nil
			}
		}
	}

	jobs, err := s.jobs.ListOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, jobsListKey, jobs); err != nil {
			slog.Warn("cache set failed", "key", jobsListKey, "error", err)
		}
	}
	return jobs, nil
}

func (s *CareersService) GetJob(ctx context.Context, jobID int64) (*domain.Job, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("load job: %w", err)
	}
	if job == nil {
		return nil, ErrNotFound
	}
	return job, nil
}

// Apply records a job application against an existing posting.
func (s *CareersService) Apply(ctx context.Context, application domain.JobApplication) (*domain.JobApplication, error) {
	application.Name = strings.TrimSpace(application.Name)
	application.Email = strings.TrimSpace(application.Email)
	if application.Name == "" || !emailPattern.MatchString(application.Email) {
		return nil, ErrInvalidInput
	}

	job, err := s.jobs.GetByID(ctx, application.JobID)
	if err != nil {
		return nil, fmt.Errorf("load job: %w", err)
	}
	if job == nil {
		return nil, ErrNotFound
	}

	application.SubmittedAt = s.now()
	if err := s.applications.Create(ctx, &application); err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}
	return &application, nil
}

// ListApplications returns all applications. Admin only; enforced at the
// transport layer.
func (s *CareersService) ListApplications(ctx context.Context) ([]domain.JobApplication, error) {
	applications, err := s.applications.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return applications, nil
}
