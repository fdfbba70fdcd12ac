package job

import (
	"context"

	"internhub/internal/domain/page"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, j Job) (Job, error)
	FindByID(ctx context.Context, id uuid.UUID) (Job, bool, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	Update(ctx context.Context, j Job) (Job, error)
	FindByStatus(ctx context.Context, status Status, req page.Request) (page.Page[Job], error)
	FindByRecruiter(ctx context.Context, recruiterID uuid.UUID, req page.Request) (page.Page[Job], error)
}
