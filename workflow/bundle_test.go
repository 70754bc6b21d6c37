package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBundleStateContract(t *testing.T) {
	tests := []struct {
		name  string
		pages map[int]DocStatus
		want  BundleStatus
	}{
		{
			name:  "no pages uploaded",
			pages: map[int]DocStatus{},
			want:  BundleNotStarted,
		},
		{
			name:  "one page uploaded",
			pages: map[int]DocStatus{1: DocStatusApproved},
			want:  BundleIncomplete,
		},
		{
			name: "six of seven pages even when all approved",
			pages: map[int]DocStatus{
				1: DocStatusApproved, 2: DocStatusApproved, 3: DocStatusApproved,
				4: DocStatusApproved, 5: DocStatusApproved, 6: DocStatusApproved,
			},
			want: BundleIncomplete,
		},
		{
			name: "all pages approved",
			pages: map[int]DocStatus{
				1: DocStatusApproved, 2: DocStatusApproved, 3: DocStatusApproved,
				4: DocStatusApproved, 5: DocStatusApproved, 6: DocStatusApproved,
				7: DocStatusApproved,
			},
			want: BundleApproved,
		},
		{
			name: "one rejected page fails the bundle despite six approvals",
			pages: map[int]DocStatus{
				1: DocStatusApproved, 2: DocStatusApproved, 3: DocStatusApproved,
				4: DocStatusRejected, 5: DocStatusApproved, 6: DocStatusApproved,
				7: DocStatusApproved,
			},
			want: BundleRejected,
		},
		{
			name: "rejected wins over pending on a full bundle",
			pages: map[int]DocStatus{
				1: DocStatusPending, 2: DocStatusApproved, 3: DocStatusApproved,
				4: DocStatusRejected, 5: DocStatusApproved, 6: DocStatusApproved,
				7: DocStatusPending,
			},
			want: BundleRejected,
		},
		{
			name: "full bundle with an unreviewed page stays pending",
			pages: map[int]DocStatus{
				1: DocStatusApproved, 2: DocStatusApproved, 3: DocStatusPending,
				4: DocStatusApproved, 5: DocStatusApproved, 6: DocStatusApproved,
				7: DocStatusApproved,
			},
			want: BundlePending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BundleState(DocContract, tt.pages))
		})
	}
}

func TestBundleStateSinglePageDocument(t *testing.T) {
	assert.Equal(t, BundleNotStarted, BundleState(DocIDCard, nil))
	assert.Equal(t, BundlePending, BundleState(DocIDCard, map[int]DocStatus{1: DocStatusPending}))
	assert.Equal(t, BundleApproved, BundleState(DocIDCard, map[int]DocStatus{1: DocStatusApproved}))
	assert.Equal(t, BundleRejected, BundleState(DocIDCard, map[int]DocStatus{1: DocStatusRejected}))
}

func TestBundleStateIdempotent(t *testing.T) {
	pages := map[int]DocStatus{
		1: DocStatusApproved, 2: DocStatusPending, 3: DocStatusApproved,
		4: DocStatusApproved, 5: DocStatusApproved,
	}

	first := BundleState(DocSafetyDossier, pages)
	second := BundleState(DocSafetyDossier, pages)
	assert.Equal(t, first, second)
	assert.Equal(t, BundlePending, first)
}

func TestPageBadge(t *testing.T) {
	assert.Equal(t, "missing", PageBadge("", false))
	assert.Equal(t, "pending", PageBadge(DocStatusPending, true))
	assert.Equal(t, "approved", PageBadge(DocStatusApproved, true))
	assert.Equal(t, "rejected", PageBadge(DocStatusRejected, true))
}

func TestParseDocKey(t *testing.T) {
	kind, page, ok := ParseDocKey("id_card")
	assert.True(t, ok)
	assert.Equal(t, DocIDCard, kind)
	assert.Equal(t, 1, page)

	kind, page, ok = ParseDocKey("contract_3")
	assert.True(t, ok)
	assert.Equal(t, DocContract, kind)
	assert.Equal(t, 3, page)

	kind, page, ok = ParseDocKey("safety_dossier_5")
	assert.True(t, ok)
	assert.Equal(t, DocSafetyDossier, kind)
	assert.Equal(t, 5, page)

	// Out-of-range page and unknown keys are rejected.
	_, _, ok = ParseDocKey("contract_8")
	assert.False(t, ok)
	_, _, ok = ParseDocKey("contract_0")
	assert.False(t, ok)
	_, _, ok = ParseDocKey("mystery_doc")
	assert.False(t, ok)
	// Single-page kinds never carry page suffixes.
	_, _, ok = ParseDocKey("id_card_2")
	assert.False(t, ok)
}

func TestPageKey(t *testing.T) {
	assert.Equal(t, "id_card", PageKey(DocIDCard, 1))
	assert.Equal(t, "contract_7", PageKey(DocContract, 7))
}

func TestIsBundle(t *testing.T) {
	assert.True(t, IsBundle(DocContract))
	assert.True(t, IsBundle(DocSafetyDossier))
	assert.False(t, IsBundle(DocIDCard))
	assert.False(t, IsBundle(DocAccountingIntegration))
}
