package application

import (
	"context"

	"internhub/internal/domain/page"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, a Application) (Application, error)
	FindByID(ctx context.Context, id uuid.UUID) (Application, bool, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsByJobAndCandidate(ctx context.Context, jobID, candidateID uuid.UUID) (bool, error)
	Update(ctx context.Context, a Application) (Application, error)
	FindByJob(ctx context.Context, jobID uuid.UUID, req page.Request) (page.Page[Application], error)
	FindByCandidate(ctx context.Context, candidateID uuid.UUID, req page.Request) (page.Page[Application], error)
}
