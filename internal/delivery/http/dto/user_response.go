package dto

import (
	"time"

	"internhub/internal/domain/user"

	"github.com/google/uuid"
)

// UserResponse never carries the password hash.
type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	FullName  string     `json:"full_name"`
	CVFileID  *uuid.UUID `json:"cv_file_id"`
	CreatedAt time.Time  `json:"created_at"`
}

func NewUserResponse(u user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      string(u.Role),
		FullName:  u.FullName,
		CVFileID:  u.CVFileID,
		CreatedAt: u.CreatedAt.UTC(),
	}
}

type ApplicationExistsResponse struct {
	JobID       uuid.UUID `json:"job_id"`
	CandidateID uuid.UUID `json:"candidate_id"`
	Applied     bool      `json:"applied"`
}
