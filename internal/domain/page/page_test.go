package page

import (
	"errors"
	"math"
	"testing"
)

func TestRequestValidate(t *testing.T) {
	cases := []struct {
		name string
		req  Request
		want error
	}{
		{"ok", Request{Page: 0, Size: 10}, nil},
		{"zero size", Request{Page: 0, Size: 0}, ErrInvalidSize},
		{"negative size", Request{Page: 1, Size: -3}, ErrInvalidSize},
		{"negative page", Request{Page: -1, Size: 5}, ErrInvalidPage},
		{"offset overflow", Request{Page: math.MaxInt/2 + 1, Size: 2}, ErrPageOutOfRange},
		{"largest offset", Request{Page: math.MaxInt / 2, Size: 2}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.want == nil {
				if err != nil {
					t.Fatalf("unexpected err: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestNewPage_HasNext(t *testing.T) {
	p := New([]int{1, 2}, Request{Page: 0, Size: 2}, 5)
	if !p.HasNext {
		t.Fatalf("expected has_next on first page")
	}
	if p.TotalPages() != 3 {
		t.Fatalf("expected 3 pages, got %d", p.TotalPages())
	}

	last := New([]int{5}, Request{Page: 2, Size: 2}, 5)
	if last.HasNext {
		t.Fatalf("expected no next page after the last one")
	}

	empty := New[int](nil, Request{Page: 0, Size: 2}, 0)
	if empty.Items == nil || len(empty.Items) != 0 {
		t.Fatalf("expected empty non-nil items")
	}
	if empty.TotalPages() != 0 {
		t.Fatalf("expected 0 pages, got %d", empty.TotalPages())
	}
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection("", Desc)
	if err != nil || d != Desc {
		t.Fatalf("expected default Desc, got %v %v", d, err)
	}
	d, err = ParseDirection(" asc ", Desc)
	if err != nil || d != Asc {
		t.Fatalf("expected Asc, got %v %v", d, err)
	}
	if _, err := ParseDirection("sideways", Asc); !errors.Is(err, ErrInvalidDirection) {
		t.Fatalf("expected ErrInvalidDirection, got %v", err)
	}
}
