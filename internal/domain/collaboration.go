package domain

import (
	"context"
	"time"
)

const (
	CollaborationPending  = "pending"
	CollaborationAccepted = "accepted"
	CollaborationRejected = "rejected"
)

// CollaborationRequest is a directed edge between two profiles. It is
// created pending and moves to accepted or rejected exactly once, by
// an action of the receiving profile.
type CollaborationRequest struct {
	ID            string    `json:"id"`
	FromProfileID string    `json:"from_profile_id"`
	ToProfileID   string    `json:"to_profile_id"`
	Message       string    `json:"message"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// ReceivedRequest is a pending request with the sender attached, as
// the inbox listing renders it.
type ReceivedRequest struct {
	CollaborationRequest
	FromProfile *Profile `json:"from_profile,omitempty"`
}

type CollaborationRepository interface {
	Create(ctx context.Context, request *CollaborationRequest) error
	GetByID(ctx context.Context, id string) (*CollaborationRequest, error)
	ListSent(ctx context.Context, fromProfileID string) ([]CollaborationRequest, error)
	ListReceivedPending(ctx context.Context, toProfileID string) ([]ReceivedRequest, error)
	// UpdateStatus moves the request out of pending. It only matches a
	// row that is still pending and addressed to toProfileID; callers
	// inspect the returned count to distinguish a lost race or an
	// unauthorized caller from success.
	UpdateStatus(ctx context.Context, id, toProfileID, status string) (int64, error)
}

type CollaborationUsecase interface {
	Send(ctx context.Context, toProfileID, message string) (*CollaborationRequest, error)
	Respond(ctx context.Context, requestID, status string) error
	Sent(ctx context.Context) ([]CollaborationRequest, error)
	Received(ctx context.Context) ([]ReceivedRequest, error)
}
