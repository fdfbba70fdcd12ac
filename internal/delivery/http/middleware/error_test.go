package middleware

import (
	"errors"
	"fmt"
	"testing"

	"internhub/internal/pkg/response"
	"internhub/internal/repository"

	"github.com/gofiber/fiber/v3"
)

func TestNormalizeError_RepositoryKinds(t *testing.T) {
	cases := []struct {
		err    error
		status int
		msg    string
	}{
		{&repository.Error{Kind: repository.ErrDuplicate, Message: "already applied"}, fiber.StatusConflict, "already applied"},
		{&repository.Error{Kind: repository.ErrReferentialIntegrity, Message: "recruiter does not exist"}, fiber.StatusUnprocessableEntity, "recruiter does not exist"},
		{&repository.Error{Kind: repository.ErrValidation}, fiber.StatusBadRequest, response.MessageBadRequest},
		{fmt.Errorf("outer: %w", &repository.Error{Kind: repository.ErrNotFound, Message: "job not found"}), fiber.StatusNotFound, "job not found"},
		{&repository.Error{Kind: repository.ErrStorageUnavailable, Message: "secret host detail"}, fiber.StatusServiceUnavailable, response.MessageServiceUnavailable},
	}
	for _, tc := range cases {
		status, msg, _ := normalizeError(tc.err)
		if status != tc.status || msg != tc.msg {
			t.Fatalf("%v: expected %d %q, got %d %q", tc.err, tc.status, tc.msg, status, msg)
		}
	}
}

func TestNormalizeError_HidesInternalDetails(t *testing.T) {
	status, msg, _ := normalizeError(errors.New("pq: relation does not exist"))
	if status != fiber.StatusInternalServerError || msg != response.MessageInternalServerError {
		t.Fatalf("unexpected %d %q", status, msg)
	}
	status, msg, _ = normalizeError(NewAppError(fiber.StatusBadGateway, "upstream", nil, nil))
	if status != fiber.StatusInternalServerError || msg != response.MessageInternalServerError {
		t.Fatalf("unexpected %d %q", status, msg)
	}
}

func TestNormalizeError_AppError(t *testing.T) {
	status, msg, _ := normalizeError(NewAppError(fiber.StatusBadRequest, "", nil, nil))
	if status != fiber.StatusBadRequest || msg != response.MessageBadRequest {
		t.Fatalf("unexpected %d %q", status, msg)
	}
}
