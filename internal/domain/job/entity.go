package job

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusOpen   Status = "OPEN"
	StatusClosed Status = "CLOSED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusClosed:
		return true
	}
	return false
}

func ParseStatus(s string) (Status, bool) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	return st, st.Valid()
}

// CanTransition reports whether a job may move from s to next. A closed
// job stays closed.
func (s Status) CanTransition(next Status) bool {
	if s == next {
		return true
	}
	return s == StatusOpen && next == StatusClosed
}

type Job struct {
	ID           uuid.UUID
	RecruiterID  uuid.UUID
	Title        string
	Description  string
	Requirements *string
	Location     *string
	Status       Status
	CreatedAt    time.Time
}
