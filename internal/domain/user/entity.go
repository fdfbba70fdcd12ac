package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleCandidate Role = "CANDIDATE"
	RoleRecruiter Role = "RECRUITER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCandidate, RoleRecruiter:
		return true
	}
	return false
}

func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	return r, r.Valid()
}

// User is a row of the users table. CVFileID points at a stored file the
// user uploaded; the file itself is loaded through the file repository.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         Role
	FullName     string
	CVFileID     *uuid.UUID
	CreatedAt    time.Time
}
