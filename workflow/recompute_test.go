package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecomputeProfileIncomplete(t *testing.T) {
	_, err := Recompute(StatusNewApplication, RequirementInput{HasCompany: TriUnknown}, nil)
	assert.ErrorIs(t, err, ErrProfileIncomplete)
}

// Full first-wave happy path: individual courier uploads both always-required
// documents, both get approved, submission opens up.
func TestRecomputeFirstWaveApprovedScenario(t *testing.T) {
	in := RequirementInput{HasCompany: TriNo}
	docs := []DocRecord{
		{DocType: "id_card", Status: DocStatusApproved},
		{DocType: "driving_licence", Status: DocStatusApproved},
	}

	proj, err := Recompute(StatusNewApplication, in, docs)
	require.NoError(t, err)

	assert.ElementsMatch(t, []DocKind{DocIDCard, DocDrivingLicence}, proj.Requirements)
	assert.Equal(t, BundleApproved, proj.States[DocIDCard])
	assert.Equal(t, BundleApproved, proj.States[DocDrivingLicence])
	assert.True(t, proj.Submit.OK)
	assert.True(t, proj.Editable[DocIDCard])

	next, err := Submit(StatusNewApplication, proj.Submit)
	require.NoError(t, err)
	assert.Equal(t, StatusEvaluation, next)
}

func TestRecomputeAggregatesBundlePages(t *testing.T) {
	in := RequirementInput{HasCompany: TriNo, DocumentsEnabled: true}
	docs := []DocRecord{
		{DocType: "id_card", Status: DocStatusApproved},
		{DocType: "contract_1", Status: DocStatusApproved},
		{DocType: "contract_2", Status: DocStatusPending},
	}

	proj, err := Recompute(StatusNewApplication, in, docs)
	require.NoError(t, err)

	assert.Equal(t, BundleIncomplete, proj.States[DocContract])
	assert.Equal(t, BundleNotStarted, proj.States[DocSafetyDossier])
	assert.False(t, proj.Submit.OK)
	assert.Contains(t, proj.Submit.Missing, DocContract)
	assert.Contains(t, proj.Submit.Missing, DocSafetyDossier)
}

func TestRecomputeEditabilityDuringUpdateRequired(t *testing.T) {
	in := RequirementInput{HasCompany: TriYes}
	docs := []DocRecord{
		{DocType: "tax_plate", Status: DocStatusApproved},
		{DocType: "professional_certificate", Status: DocStatusRejected},
		{DocType: "id_card", Status: DocStatusApproved},
		{DocType: "driving_licence", Status: DocStatusApproved},
	}

	proj, err := Recompute(StatusUpdateRequired, in, docs)
	require.NoError(t, err)

	assert.False(t, proj.Editable[DocTaxPlate], "approved kinds stay frozen")
	assert.True(t, proj.Editable[DocProfessionalCertificate], "rejected kinds open up")
	assert.False(t, proj.Submit.OK)
	assert.Equal(t, []DocKind{DocProfessionalCertificate}, proj.Submit.Rejected)
}

func TestRecomputeIgnoresUnknownKeys(t *testing.T) {
	in := RequirementInput{HasCompany: TriNo}
	docs := []DocRecord{
		{DocType: "id_card", Status: DocStatusApproved},
		{DocType: "driving_licence", Status: DocStatusApproved},
		{DocType: "legacy_upload", Status: DocStatusApproved},
	}

	proj, err := Recompute(StatusNewApplication, in, docs)
	require.NoError(t, err)
	assert.True(t, proj.Submit.OK)
	assert.Len(t, proj.States, 2)
}
