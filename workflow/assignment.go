package workflow

import (
	"strings"
	"time"
)

// AssignmentStatus is the candidate's response state for one offered job
// slot. PENDING is initial; ACCEPTED and REJECTED are terminal.
type AssignmentStatus string

const (
	AssignmentPending  AssignmentStatus = "PENDING"
	AssignmentAccepted AssignmentStatus = "ACCEPTED"
	AssignmentRejected AssignmentStatus = "REJECTED"
)

// AssignmentDecision is the candidate's accept/reject choice.
type AssignmentDecision string

const (
	DecisionAccept AssignmentDecision = "ACCEPT"
	DecisionReject AssignmentDecision = "REJECT"
)

// MinRejectReasonLen is the minimum length of the free-text reason required
// when rejecting an offered slot.
const MinRejectReasonLen = 10

// AssignmentResponse is the computed outcome of a candidate responding to an
// assignment; the caller persists it.
type AssignmentResponse struct {
	Status      AssignmentStatus
	Reason      string
	RespondedAt time.Time
}

// RespondToAssignment validates and computes the accept/reject transition.
// Assignments are immutable once responded; rejecting requires a reason of
// at least MinRejectReasonLen characters, checked before any mutation.
func RespondToAssignment(current AssignmentStatus, decision AssignmentDecision, reason string, now time.Time) (AssignmentResponse, error) {
	if current != AssignmentPending {
		return AssignmentResponse{}, ErrInvalidTransition
	}

	switch decision {
	case DecisionAccept:
		return AssignmentResponse{Status: AssignmentAccepted, RespondedAt: now}, nil

	case DecisionReject:
		reason = strings.TrimSpace(reason)
		if len(reason) < MinRejectReasonLen {
			return AssignmentResponse{}, &InputError{
				Field:   "reason",
				Message: "rejection reason must be at least 10 characters long",
			}
		}
		return AssignmentResponse{Status: AssignmentRejected, Reason: reason, RespondedAt: now}, nil

	default:
		return AssignmentResponse{}, &InputError{Field: "decision", Message: "decision must be ACCEPT or REJECT"}
	}
}

// AssignmentCounts are the aggregate totals shown on the candidate's
// assignment list. Always recomputed from the full collection after any
// response, never maintained incrementally.
type AssignmentCounts struct {
	Pending  int `json:"pending"`
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
}

// CountAssignments recomputes the aggregate totals from scratch.
func CountAssignments(statuses []AssignmentStatus) AssignmentCounts {
	counts := AssignmentCounts{}
	for _, s := range statuses {
		switch s {
		case AssignmentAccepted:
			counts.Accepted++
		case AssignmentRejected:
			counts.Rejected++
		default:
			counts.Pending++
		}
	}
	return counts
}
