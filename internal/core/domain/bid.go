package domain

import "time"

// BidStatus is the lifecycle state of a bid on a project.
type BidStatus string

const (
	BidSubmitted BidStatus = "submitted"
	BidAccepted  BidStatus = "accepted"
	BidRejected  BidStatus = "rejected"
	BidWithdrawn BidStatus = "withdrawn"
)

// Bid is a freelancer's offer on a project. FreelancerID is the ownership
// reference for all mutations.
type Bid struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"project_id"`
	FreelancerID string    `json:"freelancer_id"`
	BidAmount    float64   `json:"bid_amount"`
	Proposal     string    `json:"proposal"`
	Status       BidStatus `json:"status"`
	SubmittedAt  time.Time `json:"submitted_at"`
}
