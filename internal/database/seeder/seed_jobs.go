package seeder

import (
	"context"
	"errors"
	"fmt"

	"internhub/internal/database"
	"internhub/internal/domain/application"
	"internhub/internal/domain/job"
	"internhub/internal/domain/page"
	"internhub/internal/repository"
)

type demoJob struct {
	Title    string
	Location string
	Status   job.Status
}

var demoJobs = []demoJob{
	{Title: "Backend Intern (Go)", Location: "Remote", Status: job.StatusOpen},
	{Title: "Data Engineering Intern", Location: "Lisbon", Status: job.StatusOpen},
	{Title: "Frontend Intern", Location: "Berlin", Status: job.StatusOpen},
	{Title: "Platform Intern", Location: "Remote", Status: job.StatusOpen},
	{Title: "QA Intern", Location: "Madrid", Status: job.StatusOpen},
	{Title: "Summer 2025 Intern", Location: "Paris", Status: job.StatusClosed},
}

// JobsSeeder posts the demo jobs for the demo recruiter and files one
// application from the demo candidate. It does nothing if the recruiter
// already has postings.
type JobsSeeder struct{}

func (JobsSeeder) Name() string { return "jobs" }

func (JobsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "jobs", "id", "recruiter_id", "title", "description", "requirements", "location", "status", "created_at"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "applications", "id", "job_id", "candidate_id", "status", "applied_at"); err != nil {
		return err
	}

	users := repository.NewPostgresUserRepository(db)
	jobs := repository.NewPostgresJobRepository(db)
	apps := repository.NewPostgresApplicationRepository(db)

	recruiter, found, err := users.FindByEmail(ctx, DemoRecruiterEmail)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("demo recruiter %s missing, run the users seeder first", DemoRecruiterEmail)
	}

	posted, err := jobs.FindByRecruiter(ctx, recruiter.ID, page.Request{Page: 0, Size: 1})
	if err != nil {
		return err
	}
	if posted.Total > 0 {
		return nil
	}

	var first job.Job
	for i, dj := range demoJobs {
		loc := dj.Location
		reqs := "Comfortable with git and SQL."
		j, err := jobs.Create(ctx, job.Job{
			RecruiterID:  recruiter.ID,
			Title:        dj.Title,
			Description:  dj.Title + " working with the product team.",
			Requirements: &reqs,
			Location:     &loc,
		})
		if err != nil {
			return fmt.Errorf("create job %q: %w", dj.Title, err)
		}
		if dj.Status != j.Status {
			j.Status = dj.Status
			if j, err = jobs.Update(ctx, j); err != nil {
				return fmt.Errorf("update job %q: %w", dj.Title, err)
			}
		}
		if i == 0 {
			first = j
		}
	}

	candidate, found, err := users.FindByEmail(ctx, DemoCandidateEmail)
	if err != nil || !found {
		return err
	}
	_, err = apps.Create(ctx, application.Application{JobID: first.ID, CandidateID: candidate.ID})
	if errors.Is(err, repository.ErrDuplicate) {
		return nil
	}
	return err
}
