package page

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// Sort names a whitelisted column and a direction. Repositories always add
// the primary key as the last ordering term so equal sort values still come
// back in the same order on every call.
type Sort struct {
	Field     string
	Direction Direction
}

type Request struct {
	Page int
	Size int
	Sort Sort
}

var (
	ErrInvalidSize      = errors.New("page size must be positive")
	ErrInvalidPage      = errors.New("page index must not be negative")
	ErrPageOutOfRange   = errors.New("page index too large")
	ErrInvalidSortField = errors.New("unsupported sort field")
	ErrInvalidDirection = errors.New("unsupported sort direction")
)

func (r Request) Validate() error {
	if r.Size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, r.Size)
	}
	if r.Page < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPage, r.Page)
	}
	// Offset must fit in an int.
	if r.Page > math.MaxInt/r.Size {
		return fmt.Errorf("%w: %d", ErrPageOutOfRange, r.Page)
	}
	return nil
}

func (r Request) Offset() int {
	return r.Page * r.Size
}

// ParseDirection accepts asc/desc in any case; empty means the caller's
// default.
func ParseDirection(s string, def Direction) (Direction, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	switch Direction(s) {
	case "":
		return def, nil
	case Asc, Desc:
		return Direction(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

type Page[T any] struct {
	Items   []T   `json:"items"`
	Page    int   `json:"page"`
	Size    int   `json:"size"`
	Total   int64 `json:"total"`
	HasNext bool  `json:"has_next"`
}

func New[T any](items []T, req Request, total int64) Page[T] {
	if items == nil {
		items = make([]T, 0)
	}
	return Page[T]{
		Items:   items,
		Page:    req.Page,
		Size:    req.Size,
		Total:   total,
		HasNext: int64(req.Offset()+len(items)) < total,
	}
}

// TotalPages is zero when nothing matched.
func (p Page[T]) TotalPages() int {
	if p.Size <= 0 || p.Total <= 0 {
		return 0
	}
	return int((p.Total + int64(p.Size) - 1) / int64(p.Size))
}
