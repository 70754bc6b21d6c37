package candidateController

import (
	"courierhub/database"
	"courierhub/infra/queue"
	"courierhub/middleware"
	"courierhub/models"
	"courierhub/utils"
	"courierhub/workflow"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CanSubmit reports whether the submit precondition currently holds, naming
// the exact kinds in the way when it does not.
func CanSubmit(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	user, profile, docs, err := loadSnapshot(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Candidate not found!", nil)
	}

	proj, err := workflow.Recompute(user.ApplicationStatus, profile.RequirementInput(user.DocumentsEnabled), toDocRecords(docs))
	if errors.Is(err, workflow.ErrProfileIncomplete) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, workflow.ErrProfileIncomplete.Error(), nil)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to evaluate submission!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submission check evaluated.", proj.Submit)
}

// docFingerprint summarises a candidate's document rows at snapshot time.
// Two equal fingerprints mean no row was added, reviewed or re-uploaded in
// between: every one of those bumps updated_at or the row count.
type docFingerprint struct {
	count       int
	lastUpdated time.Time
}

func fingerprintDocs(docs []models.Document) docFingerprint {
	fp := docFingerprint{count: len(docs)}
	for _, d := range docs {
		if d.UpdatedAt.After(fp.lastUpdated) {
			fp.lastUpdated = d.UpdatedAt
		}
	}
	return fp
}

func (fp docFingerprint) matches(other docFingerprint) bool {
	return fp.count == other.count && fp.lastUpdated.Equal(other.lastUpdated)
}

// commitSubmission flips the application status inside tx, guarded on the
// status the precondition was evaluated against, then re-reads the document
// rows and rejects the commit if they no longer match the snapshot. Either
// guard failing returns ErrStateChanged and rolls the flip back.
func commitSubmission(tx *gorm.DB, userID uint, from, to workflow.AppStatus, snap docFingerprint) error {
	result := tx.Model(&models.User{}).
		Where("id = ? AND application_status = ?", userID, from).
		Update("application_status", to)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return workflow.ErrStateChanged
	}

	var docs []models.Document
	if err := tx.Where("user_id = ? AND is_deleted = ?", userID, false).Find(&docs).Error; err != nil {
		return err
	}
	if !snap.matches(fingerprintDocs(docs)) {
		return workflow.ErrStateChanged
	}
	return nil
}

// SubmitApplication moves the application into EVALUATION when every
// required document is in place. Snapshot, precondition and status flip run
// in one transaction, and the commit re-validates both the application
// status and the document rows, so a concurrent consultant action surfaces
// as a retryable conflict instead of silently overwriting.
func SubmitApplication(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var (
		user       models.User
		fromStatus workflow.AppStatus
		newStatus  workflow.AppStatus
	)

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		var profile models.VehicleProfile
		var docs []models.Document
		var err error

		user, profile, docs, err = loadSnapshotWithin(tx, userID)
		if err != nil {
			return err
		}
		fromStatus = user.ApplicationStatus
		snap := fingerprintDocs(docs)

		proj, err := workflow.Recompute(fromStatus, profile.RequirementInput(user.DocumentsEnabled), toDocRecords(docs))
		if err != nil {
			return err
		}

		newStatus, err = workflow.Submit(fromStatus, proj.Submit)
		if err != nil {
			return err
		}

		return commitSubmission(tx, userID, fromStatus, newStatus, snap)
	})
	if err != nil {
		var verr *workflow.ValidationError
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Candidate not found!", nil)
		case errors.Is(err, workflow.ErrProfileIncomplete):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, workflow.ErrProfileIncomplete.Error(), nil)
		case errors.As(err, &verr):
			return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, verr.Error(), fiber.Map{
				"missing":  verr.Missing,
				"rejected": verr.Rejected,
			})
		case errors.Is(err, workflow.ErrInvalidTransition):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Application cannot be submitted in its current status!", nil)
		case errors.Is(err, workflow.ErrStateChanged):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, workflow.ErrStateChanged.Error(), nil)
		default:
			log.Printf("Error submitting application: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit application!", nil)
		}
	}

	queue.Events.Publish("application.status_changed", userID, fiber.Map{
		"from": fromStatus,
		"to":   newStatus,
	})
	go utils.SendApplicationStatusEmail(user.Email, user.Name, string(newStatus))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Application submitted for review!", fiber.Map{
		"application_status": newStatus,
	})
}
