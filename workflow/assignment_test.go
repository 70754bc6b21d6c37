package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondToAssignmentAccept(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	resp, err := RespondToAssignment(AssignmentPending, DecisionAccept, "", now)
	require.NoError(t, err)
	assert.Equal(t, AssignmentAccepted, resp.Status)
	assert.Equal(t, now, resp.RespondedAt)
	assert.Empty(t, resp.Reason)
}

func TestRespondToAssignmentRejectReasonTooShort(t *testing.T) {
	// 8 characters: refused before any state mutation.
	_, err := RespondToAssignment(AssignmentPending, DecisionReject, "too busy", time.Now())

	var ierr *InputError
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, "reason", ierr.Field)
}

func TestRespondToAssignmentRejectReasonPaddingDoesNotCount(t *testing.T) {
	_, err := RespondToAssignment(AssignmentPending, DecisionReject, "  short    ", time.Now())

	var ierr *InputError
	require.ErrorAs(t, err, &ierr)
}

func TestRespondToAssignmentReject(t *testing.T) {
	now := time.Now()

	resp, err := RespondToAssignment(AssignmentPending, DecisionReject, "shift overlaps my studies", now)
	require.NoError(t, err)
	assert.Equal(t, AssignmentRejected, resp.Status)
	assert.Equal(t, "shift overlaps my studies", resp.Reason)
	assert.Equal(t, now, resp.RespondedAt)
}

func TestRespondToAssignmentImmutableOnceResponded(t *testing.T) {
	for _, current := range []AssignmentStatus{AssignmentAccepted, AssignmentRejected} {
		_, err := RespondToAssignment(current, DecisionAccept, "", time.Now())
		assert.ErrorIs(t, err, ErrInvalidTransition)
	}
}

func TestRespondToAssignmentUnknownDecision(t *testing.T) {
	_, err := RespondToAssignment(AssignmentPending, AssignmentDecision("DEFER"), "", time.Now())

	var ierr *InputError
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, "decision", ierr.Field)
}

func TestCountAssignments(t *testing.T) {
	counts := CountAssignments([]AssignmentStatus{
		AssignmentPending,
		AssignmentAccepted,
		AssignmentAccepted,
		AssignmentRejected,
		AssignmentPending,
	})

	assert.Equal(t, AssignmentCounts{Pending: 2, Accepted: 2, Rejected: 1}, counts)
	assert.Equal(t, AssignmentCounts{}, CountAssignments(nil))
}
