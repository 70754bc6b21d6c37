package workflow

// TriState is a three-valued flag for profile attributes the candidate may
// not have answered yet. UNKNOWN must never collapse to NO: an unanswered
// company question blocks requirement resolution entirely.
type TriState string

const (
	TriUnknown TriState = "UNKNOWN"
	TriYes     TriState = "YES"
	TriNo      TriState = "NO"
)

// RequirementInput is the slice of the vehicle profile the resolver needs.
type RequirementInput struct {
	HasCompany          TriState
	HasExtraCertificate TriState
	DocumentsEnabled    bool
}

// ResolveRequirements computes the ordered set of document kinds the
// candidate must supply. Couriers operating through their own registered
// company carry a different legal burden than individual couriers, and the
// consultant-controlled DocumentsEnabled gate holds back the heavyweight
// second wave until the application has been triaged.
//
// Returns ErrProfileIncomplete while HasCompany is still UNKNOWN.
func ResolveRequirements(in RequirementInput) ([]DocKind, error) {
	switch in.HasCompany {
	case TriNo:
		required := []DocKind{DocIDCard, DocDrivingLicence}
		if in.DocumentsEnabled {
			required = append(required,
				DocConsentForm,
				DocIDFront,
				DocVehicleRegistration,
				DocCriminalRecord,
				DocPaymentReceipt,
				DocResidenceCertificate,
				DocContract,
				DocSafetyDossier,
			)
		}
		return required, nil

	case TriYes:
		required := []DocKind{DocTaxPlate, DocProfessionalCertificate, DocIDCard, DocDrivingLicence}
		if in.DocumentsEnabled {
			required = append(required, DocCriminalRecord, DocAccountingIntegration)
		}
		return required, nil

	default:
		return nil, ErrProfileIncomplete
	}
}
