package dto

import (
	"time"

	"internhub/internal/domain/job"
	"internhub/internal/domain/page"

	"github.com/google/uuid"
)

type JobResponse struct {
	ID           uuid.UUID `json:"id"`
	RecruiterID  uuid.UUID `json:"recruiter_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Requirements *string   `json:"requirements"`
	Location     *string   `json:"location"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type JobPageResponse struct {
	Items   []JobResponse `json:"items"`
	Page    int           `json:"page"`
	Size    int           `json:"size"`
	Total   int64         `json:"total"`
	HasNext bool          `json:"has_next"`
}

func NewJobResponse(j job.Job) JobResponse {
	return JobResponse{
		ID:           j.ID,
		RecruiterID:  j.RecruiterID,
		Title:        j.Title,
		Description:  j.Description,
		Requirements: j.Requirements,
		Location:     j.Location,
		Status:       string(j.Status),
		CreatedAt:    j.CreatedAt.UTC(),
	}
}

func NewJobPageResponse(p page.Page[job.Job]) JobPageResponse {
	items := make([]JobResponse, 0, len(p.Items))
	for _, j := range p.Items {
		items = append(items, NewJobResponse(j))
	}
	return JobPageResponse{Items: items, Page: p.Page, Size: p.Size, Total: p.Total, HasNext: p.HasNext}
}
