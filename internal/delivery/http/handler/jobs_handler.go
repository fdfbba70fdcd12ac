package handler

import (
	"internhub/internal/delivery/http/dto"
	"internhub/internal/delivery/http/middleware"
	"internhub/internal/domain/application"
	"internhub/internal/domain/job"
	"internhub/internal/domain/page"
	"internhub/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	jobs job.Repository
	apps application.Repository
}

func NewJobsHandler(jobs job.Repository, apps application.Repository) *JobsHandler {
	return &JobsHandler{jobs: jobs, apps: apps}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.HandleListJobs)
	r.Get("/:id", h.HandleGetJob)
	r.Get("/:id/applications/exists", h.HandleApplicationExists)
}

// HandleListJobs serves GET /jobs?status=OPEN&page=0&size=20&sort=created_at&dir=desc.
func (h *JobsHandler) HandleListJobs(c fiber.Ctx) error {
	status := job.StatusOpen
	if raw := c.Query("status"); raw != "" {
		st, ok := job.ParseStatus(raw)
		if !ok {
			return middleware.NewAppError(fiber.StatusBadRequest, "invalid status", nil, nil)
		}
		status = st
	}

	pageIdx, err := parseQueryIntStrict(c, "page", 0)
	if err != nil {
		return err
	}
	size, err := parseQueryIntStrict(c, "size", defaultPageSize)
	if err != nil {
		return err
	}
	if size > maxPageSize {
		return middleware.NewAppError(fiber.StatusBadRequest, "size too large", nil, nil)
	}

	p, err := h.jobs.FindByStatus(c.Context(), status, page.Request{
		Page: pageIdx,
		Size: size,
		Sort: page.Sort{Field: c.Query("sort"), Direction: page.Direction(c.Query("dir"))},
	})
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobPageResponse(p))
}

func (h *JobsHandler) HandleGetJob(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	j, found, err := h.jobs.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	if !found {
		return middleware.NewAppError(fiber.StatusNotFound, "job not found", nil, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(j))
}

func (h *JobsHandler) HandleApplicationExists(c fiber.Ctx) error {
	jobID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	candidateID, err := parseUUIDQuery(c, "candidate_id")
	if err != nil {
		return err
	}
	applied, err := h.apps.ExistsByJobAndCandidate(c.Context(), jobID, candidateID)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ApplicationExistsResponse{
		JobID:       jobID,
		CandidateID: candidateID,
		Applied:     applied,
	})
}
