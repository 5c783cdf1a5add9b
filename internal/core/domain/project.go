package domain

import "time"

// ProjectStatus is the lifecycle state of a project posting.
type ProjectStatus string

const (
	ProjectDraft      ProjectStatus = "draft"
	ProjectOpen       ProjectStatus = "open"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectCancelled  ProjectStatus = "cancelled"
)

// Project is a client's work posting. ClientID is the ownership reference for
// all mutations; FreelancerID is set once a bid is accepted.
type Project struct {
	ID           string        `json:"id"`
	ClientID     string        `json:"client_id"`
	FreelancerID string        `json:"freelancer_id,omitempty"`
	Title        string        `json:"title"`
	Description  string        `json:"description,omitempty"`
	Budget       float64       `json:"budget,omitempty"`
	Status       ProjectStatus `json:"status"`
	Deadline     time.Time     `json:"deadline"`
	CreatedAt    time.Time     `json:"created_at"`
}
