package workflow

// CanEdit decides whether the candidate may upload or replace a document of
// the given derived status right now. This is the single gate consulted
// before every upload; it must be re-evaluated after every status or
// document change, never cached beyond one decision.
//
// During UPDATE_REQUIRED only rejected kinds open up again: material a
// consultant already accepted stays frozen so it cannot be silently swapped.
func CanEdit(app AppStatus, kindState BundleStatus) bool {
	switch app {
	case StatusNewApplication:
		return true
	case StatusUpdateRequired:
		return kindState == BundleRejected
	default:
		// EVALUATION, APPROVED, REJECTED: under review or closed.
		return false
	}
}
