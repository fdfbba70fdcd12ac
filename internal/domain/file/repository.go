package file

import (
	"context"

	"internhub/internal/domain/page"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, f StoredFile) (StoredFile, error)
	FindByID(ctx context.Context, id uuid.UUID) (StoredFile, bool, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	// FindByOwner lists a user's files. An empty fileType lists every type.
	FindByOwner(ctx context.Context, ownerID uuid.UUID, fileType Type, req page.Request) (page.Page[StoredFile], error)
}
