package model

import (
	"strings"

	"yourfuture/internal/serrors"
)

// ModerationStatus is the review state of a submitted entity.
type ModerationStatus string

const (
	StatusPending  ModerationStatus = "pending"
	StatusApproved ModerationStatus = "approved"
	StatusRejected ModerationStatus = "rejected"
)

// Moderation is embedded by every entity that goes through admin review.
// RejectionReason is non-nil iff Status is StatusRejected.
type Moderation struct {
	Status          ModerationStatus `json:"status"`
	RejectionReason *string          `json:"rejection_reason"`
}

// NewModeration returns the state every submission starts in.
func NewModeration() Moderation {
	return Moderation{Status: StatusPending}
}

// Approve moves a pending entity to approved. Approved and rejected are
// terminal, so approving twice is a conflict rather than a no-op.
func (m *Moderation) Approve() error {
	if m.Status != StatusPending {
		return serrors.New(serrors.ErrConflict, "only pending entities can be approved (current status: %s)", m.Status)
	}
	m.Status = StatusApproved
	m.RejectionReason = nil

	return nil
}

// Reject moves a pending entity to rejected with a non-empty reason.
func (m *Moderation) Reject(reason string) error {
	if m.Status != StatusPending {
		return serrors.New(serrors.ErrConflict, "only pending entities can be rejected (current status: %s)", m.Status)
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return serrors.New(serrors.ErrBadRequest, "rejection reason is required")
	}
	m.Status = StatusRejected
	m.RejectionReason = &reason

	return nil
}

// ModerationRequest is the optional body of the approve/reject endpoints.
type ModerationRequest struct {
	Reason string `json:"reason"`
}
