package workflow

// AppStatus is the candidate's overall onboarding stage, distinct from any
// individual document's status. Exactly one is current per candidate.
type AppStatus string

const (
	StatusNewApplication AppStatus = "NEW_APPLICATION"
	StatusEvaluation     AppStatus = "EVALUATION"
	StatusApproved       AppStatus = "APPROVED"
	StatusRejected       AppStatus = "REJECTED"
	StatusUpdateRequired AppStatus = "UPDATE_REQUIRED"
)

// ReviewDecision is the consultant's verdict on an application under
// evaluation.
type ReviewDecision string

const (
	DecideApprove        ReviewDecision = "APPROVE"
	DecideReject         ReviewDecision = "REJECT"
	DecideRequestUpdates ReviewDecision = "REQUEST_UPDATES"
)

// SubmitCheck reports whether the submit precondition holds and, when it
// does not, exactly which required kinds are in the way.
type SubmitCheck struct {
	OK       bool      `json:"ok"`
	Missing  []DocKind `json:"missing,omitempty"`
	Rejected []DocKind `json:"rejected,omitempty"`
}

// CheckSubmit evaluates the submit precondition: every required kind must
// derive to APPROVED or fully-populated PENDING: nothing missing, nothing
// rejected.
//
// From UPDATE_REQUIRED only the kinds the consultant rejected are
// re-checked; approved and still-pending kinds are frozen (see CanEdit) and
// excluded so the candidate only has to fix what was actually rejected.
func CheckSubmit(current AppStatus, required []DocKind, states map[DocKind]BundleStatus) SubmitCheck {
	check := SubmitCheck{}

	for _, kind := range required {
		state := states[kind]
		if state == "" {
			state = BundleNotStarted
		}

		if current == StatusUpdateRequired && state != BundleRejected {
			continue
		}

		switch state {
		case BundleApproved, BundlePending:
			// satisfies the precondition
		case BundleRejected:
			check.Rejected = append(check.Rejected, kind)
		default:
			check.Missing = append(check.Missing, kind)
		}
	}

	check.OK = len(check.Missing) == 0 && len(check.Rejected) == 0
	return check
}

// Submit computes the candidate-initiated transition into EVALUATION.
// Allowed from NEW_APPLICATION and UPDATE_REQUIRED only; the caller supplies
// the SubmitCheck evaluated against a consistent snapshot of the candidate's
// documents.
func Submit(current AppStatus, check SubmitCheck) (AppStatus, error) {
	if current != StatusNewApplication && current != StatusUpdateRequired {
		return current, ErrInvalidTransition
	}
	if !check.OK {
		return current, &ValidationError{Missing: check.Missing, Rejected: check.Rejected}
	}
	return StatusEvaluation, nil
}

// Decide computes the consultant-initiated transition out of EVALUATION.
// REQUEST_UPDATES is the verdict when at least one document was rejected
// rather than the whole application.
func Decide(current AppStatus, decision ReviewDecision) (AppStatus, error) {
	if current != StatusEvaluation {
		return current, ErrInvalidTransition
	}
	switch decision {
	case DecideApprove:
		return StatusApproved, nil
	case DecideReject:
		return StatusRejected, nil
	case DecideRequestUpdates:
		return StatusUpdateRequired, nil
	default:
		return current, ErrInvalidTransition
	}
}

// ReopenOnRejection handles a consultant rejecting a document of an already
// APPROVED application: the application reopens to UPDATE_REQUIRED so the
// candidate can replace the revoked document. Any other status is left
// untouched (under EVALUATION the consultant's verdict settles it).
func ReopenOnRejection(current AppStatus) (AppStatus, bool) {
	if current == StatusApproved {
		return StatusUpdateRequired, true
	}
	return current, false
}
