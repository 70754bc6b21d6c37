package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanEdit(t *testing.T) {
	tests := []struct {
		app   AppStatus
		state BundleStatus
		want  bool
	}{
		// Fresh submissions: everything editable.
		{StatusNewApplication, BundleNotStarted, true},
		{StatusNewApplication, BundlePending, true},
		{StatusNewApplication, BundleApproved, true},
		{StatusNewApplication, BundleRejected, true},

		// Update required: only rejected kinds open up again.
		{StatusUpdateRequired, BundleRejected, true},
		{StatusUpdateRequired, BundleApproved, false},
		{StatusUpdateRequired, BundlePending, false},
		{StatusUpdateRequired, BundleNotStarted, false},

		// Under review or closed: frozen.
		{StatusEvaluation, BundleRejected, false},
		{StatusEvaluation, BundleNotStarted, false},
		{StatusApproved, BundleRejected, false},
		{StatusRejected, BundleRejected, false},
	}

	for _, tt := range tests {
		got := CanEdit(tt.app, tt.state)
		assert.Equal(t, tt.want, got, "CanEdit(%s, %s)", tt.app, tt.state)
	}
}
