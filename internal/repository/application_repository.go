package repository

import (
	"context"

	"internhub/internal/database"
	"internhub/internal/domain/application"
	"internhub/internal/domain/page"

	"github.com/google/uuid"
)

const applicationColumns = `id, job_id, candidate_id, status, applied_at`

var applicationSort = sortColumns{
	columns: map[string]string{
		"created_at": "applied_at",
		"applied_at": "applied_at",
		"status":     "status",
		"id":         "id",
	},
	idColumn: "id",
	def:      page.Sort{Field: "applied_at", Direction: page.Desc},
}

type PostgresApplicationRepository struct {
	db database.DB
}

var _ application.Repository = (*PostgresApplicationRepository)(nil)

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

// Create records that a candidate applied to a job. A second application
// for the same pair fails with ErrDuplicate ("already applied") no matter
// what ExistsByJobAndCandidate said beforehand.
func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) (application.Application, error) {
	const op = "create application"
	if a.Status == "" {
		a.Status = application.StatusApplied
	}
	if !a.Status.Valid() {
		return application.Application{}, validationError(op, "unknown application status "+string(a.Status), nil)
	}
	if a.JobID == uuid.Nil || a.CandidateID == uuid.Nil {
		return application.Application{}, &Error{Kind: ErrReferentialIntegrity, Op: op, Message: "job and candidate are required"}
	}

	row := r.db.QueryRow(ctx,
		`INSERT INTO applications (job_id, candidate_id, status)
		 VALUES ($1, $2, $3)
		 RETURNING `+applicationColumns,
		a.JobID, a.CandidateID, string(a.Status),
	)
	created, err := scanApplication(row)
	if err != nil {
		return application.Application{}, translate(op, err)
	}
	return created, nil
}

func (r *PostgresApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (application.Application, bool, error) {
	row := r.db.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
	return findOne("find application", row, scanApplication)
}

func (r *PostgresApplicationRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	return existsQuery(ctx, r.db, "application exists", `SELECT EXISTS(SELECT 1 FROM applications WHERE id = $1)`, id)
}

func (r *PostgresApplicationRepository) ExistsByJobAndCandidate(ctx context.Context, jobID, candidateID uuid.UUID) (bool, error) {
	return existsQuery(ctx, r.db, "application exists by job and candidate",
		`SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND candidate_id = $2)`,
		jobID, candidateID,
	)
}

// Update writes the status. Job, candidate and applied_at never change.
func (r *PostgresApplicationRepository) Update(ctx context.Context, a application.Application) (application.Application, error) {
	const op = "update application"
	if !a.Status.Valid() {
		return application.Application{}, validationError(op, "unknown application status "+string(a.Status), nil)
	}
	row := r.db.QueryRow(ctx,
		`UPDATE applications SET status = $1 WHERE id = $2 RETURNING `+applicationColumns,
		string(a.Status), a.ID,
	)
	return updateOne(op, "application not found", row, scanApplication)
}

func (r *PostgresApplicationRepository) FindByJob(ctx context.Context, jobID uuid.UUID, req page.Request) (page.Page[application.Application], error) {
	return pageQuery[application.Application]{
		op:     "find applications by job",
		count:  `SELECT COUNT(1) FROM applications`,
		list:   `SELECT ` + applicationColumns + ` FROM applications`,
		filter: `WHERE job_id = $1`,
		args:   []any{jobID},
		order:  applicationSort,
		scan:   scanApplication,
		req:    req,
	}.run(ctx, r.db)
}

func (r *PostgresApplicationRepository) FindByCandidate(ctx context.Context, candidateID uuid.UUID, req page.Request) (page.Page[application.Application], error) {
	return pageQuery[application.Application]{
		op:     "find applications by candidate",
		count:  `SELECT COUNT(1) FROM applications`,
		list:   `SELECT ` + applicationColumns + ` FROM applications`,
		filter: `WHERE candidate_id = $1`,
		args:   []any{candidateID},
		order:  applicationSort,
		scan:   scanApplication,
		req:    req,
	}.run(ctx, r.db)
}

func scanApplication(row database.Row) (application.Application, error) {
	var a application.Application
	var status string
	if err := row.Scan(&a.ID, &a.JobID, &a.CandidateID, &status, &a.CreatedAt); err != nil {
		return application.Application{}, err
	}
	a.Status = application.Status(status)
	return a, nil
}
