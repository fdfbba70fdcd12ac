package file

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeCV          Type = "CV"
	TypeCoverLetter Type = "COVER_LETTER"
)

func (t Type) Valid() bool {
	switch t {
	case TypeCV, TypeCoverLetter:
		return true
	}
	return false
}

func ParseType(s string) (Type, bool) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	return t, t.Valid()
}

// StoredFile is the metadata of an uploaded document. The bytes live in
// an external store addressed by StorageKey. Rows are never modified.
type StoredFile struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Type        Type
	FileName    string
	ContentType string
	Size        int64
	StorageKey  string
	CreatedAt   time.Time
}
