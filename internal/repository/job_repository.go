package repository

import (
	"context"
	"strings"

	"internhub/internal/database"
	"internhub/internal/domain/job"
	"internhub/internal/domain/page"

	"github.com/google/uuid"
)

const jobColumns = `id, recruiter_id, title, description, requirements, location, status, created_at`

var jobSort = sortColumns{
	columns: map[string]string{
		"created_at": "created_at",
		"title":      "title",
		"id":         "id",
	},
	idColumn: "id",
	def:      page.Sort{Field: "created_at", Direction: page.Desc},
}

type PostgresJobRepository struct {
	db database.DB
}

var _ job.Repository = (*PostgresJobRepository)(nil)

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

// Create stores a new posting. An empty status means OPEN.
func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) (job.Job, error) {
	const op = "create job"
	if j.Status == "" {
		j.Status = job.StatusOpen
	}
	if err := validateJob(op, j); err != nil {
		return job.Job{}, err
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO jobs (recruiter_id, title, description, requirements, location, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+jobColumns,
		j.RecruiterID, j.Title, j.Description, j.Requirements, j.Location, string(j.Status),
	)
	created, err := scanJob(row)
	if err != nil {
		return job.Job{}, translate(op, err)
	}
	return created, nil
}

func (r *PostgresJobRepository) FindByID(ctx context.Context, id uuid.UUID) (job.Job, bool, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	return findOne("find job", row, scanJob)
}

func (r *PostgresJobRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return existsQuery(ctx, r.db, "job exists", `SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1)`, id)
}

// Update persists a status change. Everything else on a job is fixed once
// posted, and a CLOSED job cannot be reopened.
func (r *PostgresJobRepository) Update(ctx context.Context, j job.Job) (job.Job, error) {
	const op = "update job"
	if !j.Status.Valid() {
		return job.Job{}, validationError(op, "unknown job status "+string(j.Status), nil)
	}

	row := r.db.QueryRow(ctx,
		`UPDATE jobs SET status = $1
		 WHERE id = $2 AND (status = $1 OR status = $3)
		 RETURNING `+jobColumns,
		string(j.Status), j.ID, string(job.StatusOpen),
	)
	updated, err := scanJob(row)
	if err == nil {
		return updated, nil
	}
	if !isNoRows(err) {
		return job.Job{}, translate(op, err)
	}

	current, found, err := r.FindByID(ctx, j.ID)
	if err != nil {
		return job.Job{}, err
	}
	if !found {
		return job.Job{}, notFoundError(op, "job not found")
	}
	if !current.Status.CanTransition(j.Status) {
		return job.Job{}, validationError(op, "cannot move job from "+string(current.Status)+" to "+string(j.Status), nil)
	}
	// status changed underneath us between the two statements
	return job.Job{}, notFoundError(op, "job not found")
}

func (r *PostgresJobRepository) FindByStatus(ctx context.Context, status job.Status, req page.Request) (page.Page[job.Job], error) {
	const op = "find jobs by status"
	if !status.Valid() {
		return page.Page[job.Job]{}, validationError(op, "unknown job status "+string(status), nil)
	}
	return pageQuery[job.Job]{
		op:     op,
		count:  `SELECT COUNT(1) FROM jobs`,
		list:   `SELECT ` + jobColumns + ` FROM jobs`,
		filter: `WHERE status = $1`,
		args:   []any{string(status)},
		order:  jobSort,
		scan:   scanJob,
		req:    req,
	}.run(ctx, r.db)
}

func (r *PostgresJobRepository) FindByRecruiter(ctx context.Context, recruiterID uuid.UUID, req page.Request) (page.Page[job.Job], error) {
	return pageQuery[job.Job]{
		op:     "find jobs by recruiter",
		count:  `SELECT COUNT(1) FROM jobs`,
		list:   `SELECT ` + jobColumns + ` FROM jobs`,
		filter: `WHERE recruiter_id = $1`,
		args:   []any{recruiterID},
		order:  jobSort,
		scan:   scanJob,
		req:    req,
	}.run(ctx, r.db)
}

func validateJob(op string, j job.Job) error {
	if j.RecruiterID == uuid.Nil {
		return &Error{Kind: ErrReferentialIntegrity, Op: op, Message: "recruiter is required"}
	}
	if strings.TrimSpace(j.Title) == "" {
		return validationError(op, "title is required", nil)
	}
	if strings.TrimSpace(j.Description) == "" {
		return validationError(op, "description is required", nil)
	}
	if !j.Status.Valid() {
		return validationError(op, "unknown job status "+string(j.Status), nil)
	}
	return nil
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	var status string
	if err := row.Scan(&j.ID, &j.RecruiterID, &j.Title, &j.Description, &j.Requirements, &j.Location, &status, &j.CreatedAt); err != nil {
		return job.Job{}, err
	}
	j.Status = job.Status(status)
	return j, nil
}
