package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRequirementsUnknownCompany(t *testing.T) {
	// Undetermined regardless of every other field.
	inputs := []RequirementInput{
		{HasCompany: TriUnknown},
		{HasCompany: TriUnknown, DocumentsEnabled: true},
		{HasCompany: TriUnknown, HasExtraCertificate: TriYes, DocumentsEnabled: true},
		{}, // zero value, nothing answered yet
	}

	for _, in := range inputs {
		kinds, err := ResolveRequirements(in)
		assert.ErrorIs(t, err, ErrProfileIncomplete)
		assert.Nil(t, kinds)
	}
}

func TestResolveRequirementsIndividualFirstWave(t *testing.T) {
	kinds, err := ResolveRequirements(RequirementInput{HasCompany: TriNo})
	require.NoError(t, err)

	assert.ElementsMatch(t, []DocKind{DocIDCard, DocDrivingLicence}, kinds)
}

func TestResolveRequirementsIndividualFullSet(t *testing.T) {
	kinds, err := ResolveRequirements(RequirementInput{HasCompany: TriNo, DocumentsEnabled: true})
	require.NoError(t, err)

	assert.Len(t, kinds, 10)
	assert.Contains(t, kinds, DocIDCard)
	assert.Contains(t, kinds, DocDrivingLicence)
	assert.Contains(t, kinds, DocConsentForm)
	assert.Contains(t, kinds, DocContract)
	assert.Contains(t, kinds, DocSafetyDossier)
	assert.NotContains(t, kinds, DocTaxPlate)
	assert.NotContains(t, kinds, DocAccountingIntegration)
}

func TestResolveRequirementsCompanyFullSet(t *testing.T) {
	kinds, err := ResolveRequirements(RequirementInput{HasCompany: TriYes, DocumentsEnabled: true})
	require.NoError(t, err)

	assert.Len(t, kinds, 6)
	assert.Contains(t, kinds, DocAccountingIntegration)
	assert.Contains(t, kinds, DocCriminalRecord)
	assert.Contains(t, kinds, DocTaxPlate)
	assert.Contains(t, kinds, DocProfessionalCertificate)
}

func TestResolveRequirementsCompanyFirstWave(t *testing.T) {
	kinds, err := ResolveRequirements(RequirementInput{HasCompany: TriYes})
	require.NoError(t, err)

	assert.ElementsMatch(t, []DocKind{DocTaxPlate, DocProfessionalCertificate, DocIDCard, DocDrivingLicence}, kinds)
}

func TestResolveRequirementsNoDuplicates(t *testing.T) {
	for _, in := range []RequirementInput{
		{HasCompany: TriNo, DocumentsEnabled: true},
		{HasCompany: TriYes, DocumentsEnabled: true},
	} {
		kinds, err := ResolveRequirements(in)
		require.NoError(t, err)

		seen := map[DocKind]bool{}
		for _, k := range kinds {
			assert.False(t, seen[k], "duplicate kind %s", k)
			seen[k] = true
		}
	}
}
