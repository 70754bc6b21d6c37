package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSubmitMissingKind(t *testing.T) {
	required := []DocKind{DocIDCard, DocDrivingLicence}
	states := map[DocKind]BundleStatus{
		DocIDCard: BundleApproved,
		// driving licence never uploaded
	}

	check := CheckSubmit(StatusNewApplication, required, states)
	assert.False(t, check.OK)
	assert.Equal(t, []DocKind{DocDrivingLicence}, check.Missing)
	assert.Empty(t, check.Rejected)
}

func TestCheckSubmitPendingCountsAsReady(t *testing.T) {
	required := []DocKind{DocIDCard, DocDrivingLicence}
	states := map[DocKind]BundleStatus{
		DocIDCard:         BundleApproved,
		DocDrivingLicence: BundlePending,
	}

	check := CheckSubmit(StatusNewApplication, required, states)
	assert.True(t, check.OK)
}

func TestCheckSubmitIncompleteBundleBlocks(t *testing.T) {
	required := []DocKind{DocIDCard, DocContract}
	states := map[DocKind]BundleStatus{
		DocIDCard:   BundleApproved,
		DocContract: BundleIncomplete,
	}

	check := CheckSubmit(StatusNewApplication, required, states)
	assert.False(t, check.OK)
	assert.Equal(t, []DocKind{DocContract}, check.Missing)
}

func TestCheckSubmitUpdateRequiredChecksRejectedOnly(t *testing.T) {
	required := []DocKind{DocIDCard, DocDrivingLicence, DocCriminalRecord}

	// Criminal record was rejected and re-uploaded (now pending); the
	// approved kinds are frozen and excluded from the recheck.
	states := map[DocKind]BundleStatus{
		DocIDCard:         BundleApproved,
		DocDrivingLicence: BundleApproved,
		DocCriminalRecord: BundlePending,
	}
	check := CheckSubmit(StatusUpdateRequired, required, states)
	assert.True(t, check.OK)

	// Still rejected: blocked, and named.
	states[DocCriminalRecord] = BundleRejected
	check = CheckSubmit(StatusUpdateRequired, required, states)
	assert.False(t, check.OK)
	assert.Equal(t, []DocKind{DocCriminalRecord}, check.Rejected)
}

func TestSubmitTransitions(t *testing.T) {
	ok := SubmitCheck{OK: true}

	next, err := Submit(StatusNewApplication, ok)
	require.NoError(t, err)
	assert.Equal(t, StatusEvaluation, next)

	next, err = Submit(StatusUpdateRequired, ok)
	require.NoError(t, err)
	assert.Equal(t, StatusEvaluation, next)

	// Terminal and in-review statuses refuse submission outright.
	for _, status := range []AppStatus{StatusEvaluation, StatusApproved, StatusRejected} {
		next, err = Submit(status, ok)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, status, next)
	}
}

func TestSubmitBlockedNamesTheKinds(t *testing.T) {
	check := SubmitCheck{Missing: []DocKind{DocDrivingLicence}}

	next, err := Submit(StatusNewApplication, check)
	assert.Equal(t, StatusNewApplication, next, "status must stay unchanged")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []DocKind{DocDrivingLicence}, verr.Missing)
	assert.Contains(t, verr.Error(), "driving_licence")
}

func TestDecide(t *testing.T) {
	tests := []struct {
		decision ReviewDecision
		want     AppStatus
	}{
		{DecideApprove, StatusApproved},
		{DecideReject, StatusRejected},
		{DecideRequestUpdates, StatusUpdateRequired},
	}

	for _, tt := range tests {
		next, err := Decide(StatusEvaluation, tt.decision)
		require.NoError(t, err)
		assert.Equal(t, tt.want, next)
	}

	// Only applications under evaluation can be decided.
	_, err := Decide(StatusNewApplication, DecideApprove)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Unknown verdicts are refused.
	_, err = Decide(StatusEvaluation, ReviewDecision("MAYBE"))
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestReopenOnRejection(t *testing.T) {
	next, reopened := ReopenOnRejection(StatusApproved)
	assert.True(t, reopened)
	assert.Equal(t, StatusUpdateRequired, next)

	for _, status := range []AppStatus{StatusNewApplication, StatusEvaluation, StatusRejected, StatusUpdateRequired} {
		next, reopened = ReopenOnRejection(status)
		assert.False(t, reopened)
		assert.Equal(t, status, next)
	}
}
