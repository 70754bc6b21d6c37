package workflow

// DocStatus is the review status of one stored document page.
type DocStatus string

const (
	DocStatusPending  DocStatus = "PENDING"
	DocStatusApproved DocStatus = "APPROVED"
	DocStatusRejected DocStatus = "REJECTED"
)

// BundleStatus is the derived status of a whole requirement: for bundles it
// aggregates all page records, for single-page documents it reduces to the
// page's own status (or NOT_STARTED when nothing was uploaded). It is always
// recomputed from the underlying records and never persisted.
type BundleStatus string

const (
	BundleNotStarted BundleStatus = "NOT_STARTED"
	BundleIncomplete BundleStatus = "INCOMPLETE"
	BundlePending    BundleStatus = "PENDING"
	BundleApproved   BundleStatus = "APPROVED"
	BundleRejected   BundleStatus = "REJECTED"
)

// BundleState aggregates the uploaded pages of one requirement into a single
// status. pages maps page number (1..N) to the current record's status; a
// missing key means that page has not been uploaded yet.
//
// A contract or safety dossier is legally atomic: one rejected page fails
// the whole bundle even when every other page is approved, so REJECTED wins
// over PENDING on fully populated bundles.
func BundleState(kind DocKind, pages map[int]DocStatus) BundleStatus {
	total := Describe(kind).Pages

	present := 0
	for page := 1; page <= total; page++ {
		if _, ok := pages[page]; ok {
			present++
		}
	}

	if present == 0 {
		return BundleNotStarted
	}
	if present < total {
		return BundleIncomplete
	}

	rejected := false
	pending := false
	for page := 1; page <= total; page++ {
		switch pages[page] {
		case DocStatusRejected:
			rejected = true
		case DocStatusApproved:
			// counts toward full approval
		default:
			pending = true
		}
	}

	if rejected {
		return BundleRejected
	}
	if pending {
		return BundlePending
	}
	return BundleApproved
}

// PageBadge projects one page's state into the badge shown next to it on
// the candidate dashboard. A projection only: the stored status stays the
// single source of truth.
func PageBadge(status DocStatus, present bool) string {
	if !present {
		return "missing"
	}
	switch status {
	case DocStatusApproved:
		return "approved"
	case DocStatusRejected:
		return "rejected"
	default:
		return "pending"
	}
}
