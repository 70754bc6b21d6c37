package workflow

import (
	"fmt"
	"strconv"
	"strings"
)

// DocKind identifies one document requirement from the catalog. Multi-page
// bundles are stored as one Document row per page with keys "<kind>_<n>".
type DocKind string

const (
	DocIDCard                  DocKind = "id_card"
	DocDrivingLicence          DocKind = "driving_licence"
	DocConsentForm             DocKind = "consent_form"
	DocIDFront                 DocKind = "id_front"
	DocVehicleRegistration     DocKind = "vehicle_registration"
	DocCriminalRecord          DocKind = "criminal_record"
	DocPaymentReceipt          DocKind = "payment_receipt"
	DocResidenceCertificate    DocKind = "residence_certificate"
	DocContract                DocKind = "contract"
	DocSafetyDossier           DocKind = "safety_dossier"
	DocTaxPlate                DocKind = "tax_plate"
	DocProfessionalCertificate DocKind = "professional_certificate"
	DocAccountingIntegration   DocKind = "accounting_integration"
)

// DocSpec describes a catalog entry: the label shown to candidates, how many
// pages the requirement covers (1 for simple documents) and the category it
// is grouped under on the dashboard.
type DocSpec struct {
	Label    string
	Pages    int
	Category string
}

var catalog = map[DocKind]DocSpec{
	DocIDCard:                  {Label: "ID Card", Pages: 1, Category: "PERSONAL"},
	DocDrivingLicence:          {Label: "Driving Licence", Pages: 1, Category: "PERSONAL"},
	DocConsentForm:             {Label: "Consent Form", Pages: 1, Category: "LEGAL"},
	DocIDFront:                 {Label: "ID Card Front Scan", Pages: 1, Category: "PERSONAL"},
	DocVehicleRegistration:     {Label: "Vehicle Registration Photo", Pages: 1, Category: "VEHICLE"},
	DocCriminalRecord:          {Label: "Criminal Record Certificate", Pages: 1, Category: "LEGAL"},
	DocPaymentReceipt:          {Label: "Payment Receipt", Pages: 1, Category: "FINANCIAL"},
	DocResidenceCertificate:    {Label: "Residence Certificate", Pages: 1, Category: "PERSONAL"},
	DocContract:                {Label: "Courier Contract", Pages: 7, Category: "LEGAL"},
	DocSafetyDossier:           {Label: "Safety Dossier", Pages: 5, Category: "LEGAL"},
	DocTaxPlate:                {Label: "Tax Plate", Pages: 1, Category: "COMPANY"},
	DocProfessionalCertificate: {Label: "Professional Certificate", Pages: 1, Category: "COMPANY"},
	DocAccountingIntegration:   {Label: "Accounting Integration Form", Pages: 1, Category: "COMPANY"},
}

// Describe returns the catalog entry for a kind. Calling it with a kind that
// is not in the catalog is a programming error, not a runtime condition.
func Describe(kind DocKind) DocSpec {
	spec, ok := catalog[kind]
	if !ok {
		panic(fmt.Sprintf("workflow: unknown document kind %q", kind))
	}
	return spec
}

// IsBundle reports whether a kind is tracked as a multi-page bundle.
func IsBundle(kind DocKind) bool {
	return Describe(kind).Pages > 1
}

// PageKey builds the storage key for one page of a bundle. For single-page
// documents the key is the kind itself.
func PageKey(kind DocKind, page int) string {
	if !IsBundle(kind) {
		return string(kind)
	}
	return fmt.Sprintf("%s_%d", kind, page)
}

// ParseDocKey maps a stored doc_type key back to its catalog kind and page
// number. Returns false for keys that match no catalog entry.
func ParseDocKey(key string) (DocKind, int, bool) {
	// Exact match covers every single-page document.
	if _, ok := catalog[DocKind(key)]; ok {
		return DocKind(key), 1, true
	}

	// Bundle pages are "<kind>_<n>". Kinds themselves contain underscores,
	// so split on the last one only.
	idx := strings.LastIndex(key, "_")
	if idx <= 0 {
		return "", 0, false
	}

	kind := DocKind(key[:idx])
	spec, ok := catalog[kind]
	if !ok || spec.Pages == 1 {
		return "", 0, false
	}

	page, err := strconv.Atoi(key[idx+1:])
	if err != nil || page < 1 || page > spec.Pages {
		return "", 0, false
	}

	return kind, page, true
}
