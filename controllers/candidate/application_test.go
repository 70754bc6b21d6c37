package candidateController

import (
	"testing"

	"courierhub/database"
	"courierhub/models"
	"courierhub/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDb(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.VehicleProfile{}, &models.Document{}))
	database.Database = database.DbInstance{Db: db}
	return db
}

// seedReadyCandidate creates a NEW_APPLICATION candidate without a company
// whose two required documents are already approved.
func seedReadyCandidate(t *testing.T, db *gorm.DB) models.User {
	user := models.User{
		Name:              "Test Candidate",
		Email:             "candidate@example.com",
		Password:          "hashed",
		ApplicationStatus: workflow.StatusNewApplication,
	}
	require.NoError(t, db.Create(&user).Error)

	profile := models.VehicleProfile{
		UserID:          user.ID,
		VehicleCategory: "TWO_WHEELER",
		HasCompany:      workflow.TriNo,
	}
	require.NoError(t, db.Create(&profile).Error)

	for _, docType := range []string{"id_card", "driving_licence"} {
		doc := models.Document{
			UserID:   user.ID,
			DocType:  docType,
			FilePath: "documents/" + docType,
			Status:   workflow.DocStatusApproved,
		}
		require.NoError(t, db.Create(&doc).Error)
	}

	return user
}

func TestCommitSubmissionFlipsStatus(t *testing.T) {
	db := setupTestDb(t)
	user := seedReadyCandidate(t, db)

	_, _, docs, err := loadSnapshotWithin(db, user.ID)
	require.NoError(t, err)
	snap := fingerprintDocs(docs)

	err = db.Transaction(func(tx *gorm.DB) error {
		return commitSubmission(tx, user.ID, workflow.StatusNewApplication, workflow.StatusEvaluation, snap)
	})
	require.NoError(t, err)

	var updated models.User
	require.NoError(t, db.First(&updated, user.ID).Error)
	assert.Equal(t, workflow.StatusEvaluation, updated.ApplicationStatus)
}

func TestCommitSubmissionConflictsAfterReview(t *testing.T) {
	db := setupTestDb(t)
	user := seedReadyCandidate(t, db)

	_, _, docs, err := loadSnapshotWithin(db, user.ID)
	require.NoError(t, err)
	snap := fingerprintDocs(docs)

	// A consultant rejects a document after the snapshot was taken but
	// before the flip commits.
	err = db.Model(&models.Document{}).
		Where("user_id = ? AND doc_type = ?", user.ID, "driving_licence").
		Updates(map[string]interface{}{
			"status":      workflow.DocStatusRejected,
			"review_note": "Licence expired",
		}).Error
	require.NoError(t, err)

	err = db.Transaction(func(tx *gorm.DB) error {
		return commitSubmission(tx, user.ID, workflow.StatusNewApplication, workflow.StatusEvaluation, snap)
	})
	require.ErrorIs(t, err, workflow.ErrStateChanged)

	// The rolled-back flip must leave the application where it was.
	var updated models.User
	require.NoError(t, db.First(&updated, user.ID).Error)
	assert.Equal(t, workflow.StatusNewApplication, updated.ApplicationStatus)
}

func TestCommitSubmissionConflictsOnStaleStatus(t *testing.T) {
	db := setupTestDb(t)
	user := seedReadyCandidate(t, db)

	_, _, docs, err := loadSnapshotWithin(db, user.ID)
	require.NoError(t, err)
	snap := fingerprintDocs(docs)

	require.NoError(t, db.Model(&models.User{}).
		Where("id = ?", user.ID).
		Update("application_status", workflow.StatusEvaluation).Error)

	err = db.Transaction(func(tx *gorm.DB) error {
		return commitSubmission(tx, user.ID, workflow.StatusNewApplication, workflow.StatusEvaluation, snap)
	})
	require.ErrorIs(t, err, workflow.ErrStateChanged)
}

func TestFingerprintDetectsNewDocument(t *testing.T) {
	db := setupTestDb(t)
	user := seedReadyCandidate(t, db)

	_, _, docs, err := loadSnapshotWithin(db, user.ID)
	require.NoError(t, err)
	snap := fingerprintDocs(docs)

	doc := models.Document{
		UserID:   user.ID,
		DocType:  "consent_form",
		FilePath: "documents/consent_form",
		Status:   workflow.DocStatusPending,
	}
	require.NoError(t, db.Create(&doc).Error)

	_, _, docs, err = loadSnapshotWithin(db, user.ID)
	require.NoError(t, err)
	assert.False(t, snap.matches(fingerprintDocs(docs)))
}
