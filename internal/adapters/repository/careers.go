package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/arsicorp/zenith-lab-robotics/internal/domain"
)

type JobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) ListOpen(ctx context.Context) ([]domain.Job, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT job_id, title, department, location, employment_type, description, posted_date, open
		 FROM jobs WHERE open ORDER BY posted_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("select jobs: %w", err)
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		err := rows.Scan(&job.JobID, &job.Title, &job.Department, &job.Location,
			&job.EmploymentType, &job.Description, &job.PostedDate, &job.Open)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select jobs: %w", err)
	}
	return jobs, nil
}

func (r *JobRepository) GetByID(ctx context.Context, jobID int64) (*domain.Job, error) {
	job := &domain.Job{}
	err := r.db.QueryRowContext(ctx,
		`SELECT job_id, title, department, location, employment_type, description, posted_date, open
		 FROM jobs WHERE job_id = $1`,
		jobID,
	).Scan(&job.JobID, &job.Title, &job.Department, &job.Location,
		&job.EmploymentType, &job.Description, &job.PostedDate, &job.Open)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select job: %w", err)
	}
	return job, nil
}

type JobApplicationRepository struct {
	db *sql.DB
}

func NewJobApplicationRepository(db *sql.DB) *JobApplicationRepository {
	return &JobApplicationRepository{db: db}
}

func (r *JobApplicationRepository) Create(ctx context.Context, application *domain.JobApplication) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO job_applications (job_id, name, email, phone, resume_url, cover_letter, submitted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING application_id`,
		application.JobID, application.Name, application.Email, application.Phone,
		application.ResumeURL, application.CoverLetter, application.SubmittedAt,
	).Scan(&application.ApplicationID)
	if err != nil {
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

func (r *JobApplicationRepository) ListAll(ctx context.Context) ([]domain.JobApplication, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT application_id, job_id, name, email, phone, resume_url, cover_letter, submitted_at
		 FROM job_applications ORDER BY submitted_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("select applications: %w", err)
	}
	defer rows.Close()

	var applications []domain.JobApplication
	for rows.Next() {
		var a domain.JobApplication
		err := rows.Scan(&a.ApplicationID, &a.JobID, &a.Name, &a.Email, &a.Phone,
			&a.ResumeURL, &a.CoverLetter, &a.SubmittedAt)
		if err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		applications = append(applications, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select applications: %w", err)
	}
	return applications, nil
}
