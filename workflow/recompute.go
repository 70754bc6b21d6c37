package workflow

// DocRecord is the slice of a stored document the engine needs: its storage
// key and review status. Controllers map their database rows into this.
type DocRecord struct {
	DocType string
	Status  DocStatus
}

// Projection is everything the dashboard and the upload/submit gates need
// about one candidate, derived in one place. Recomputed after every
// mutation instead of being re-derived ad hoc at each call site.
type Projection struct {
	Requirements []DocKind                `json:"requirements"`
	States       map[DocKind]BundleStatus `json:"states"`
	Submit       SubmitCheck              `json:"submit"`
	Editable     map[DocKind]bool         `json:"editable"`
}

// Recompute derives the full candidate projection from a fresh snapshot of
// profile attributes and document rows. Returns ErrProfileIncomplete while
// requirements cannot be resolved yet.
func Recompute(app AppStatus, in RequirementInput, docs []DocRecord) (Projection, error) {
	required, err := ResolveRequirements(in)
	if err != nil {
		return Projection{}, err
	}

	// Group rows by catalog kind. Rows whose key maps to no catalog entry
	// are ignored; rows for kinds outside the current requirement set still
	// aggregate (the set can shrink when the profile changes).
	pagesByKind := map[DocKind]map[int]DocStatus{}
	for _, doc := range docs {
		kind, page, ok := ParseDocKey(doc.DocType)
		if !ok {
			continue
		}
		if pagesByKind[kind] == nil {
			pagesByKind[kind] = map[int]DocStatus{}
		}
		pagesByKind[kind][page] = doc.Status
	}

	states := make(map[DocKind]BundleStatus, len(required))
	editable := make(map[DocKind]bool, len(required))
	for _, kind := range required {
		state := BundleState(kind, pagesByKind[kind])
		states[kind] = state
		editable[kind] = CanEdit(app, state)
	}

	return Projection{
		Requirements: required,
		States:       states,
		Submit:       CheckSubmit(app, required, states),
		Editable:     editable,
	}, nil
}
