package user

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	FindByID(ctx context.Context, id uuid.UUID) (User, bool, error)
	FindByEmail(ctx context.Context, email string) (User, bool, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, u User) (User, error)
	SetCVFile(ctx context.Context, userID uuid.UUID, fileID *uuid.UUID) (User, error)
}
