package consultantController

import (
	"courierhub/database"
	"courierhub/infra/queue"
	"courierhub/middleware"
	"courierhub/models"
	"courierhub/utils"
	"courierhub/workflow"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ReviewDocument records the consultant's verdict on one document page.
// Rejecting a document of an already approved application reopens it to
// UPDATE_REQUIRED so the candidate can replace the revoked material.
func ReviewDocument(c *fiber.Ctx) error {
	consultantID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	documentID := c.Locals("documentID").(int)
	reqData := c.Locals("validatedDocumentReview").(*struct {
		Status string `json:"status" validate:"required,oneof=APPROVED REJECTED"`
		Note   string `json:"note"`
	})

	var doc models.Document
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", documentID, false).First(&doc).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Document not found!", nil)
	}

	var owner models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", doc.UserID, false).First(&owner).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Document owner not found!", nil)
	}

	newStatus := workflow.DocStatus(reqData.Status)
	now := time.Now()
	reopened := false

	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		// Guarded against a candidate re-upload racing the verdict: the
		// verdict only lands on the exact revision that was reviewed.
		result := tx.Model(&models.Document{}).
			Where("id = ? AND status = ? AND updated_at = ?", doc.ID, doc.Status, doc.UpdatedAt).
			Updates(map[string]interface{}{
				"status":      newStatus,
				"review_note": reqData.Note,
				"reviewed_by": consultantID,
				"reviewed_at": now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return workflow.ErrStateChanged
		}

		if newStatus == workflow.DocStatusRejected {
			if next, changed := workflow.ReopenOnRejection(owner.ApplicationStatus); changed {
				res := tx.Model(&models.User{}).
					Where("id = ? AND application_status = ?", owner.ID, owner.ApplicationStatus).
					Update("application_status", next)
				if res.Error != nil {
					return res.Error
				}
				if res.RowsAffected == 0 {
					return workflow.ErrStateChanged
				}
				reopened = true
			}
		}
		return nil
	})
	if err != nil {
		if err == workflow.ErrStateChanged {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, workflow.ErrStateChanged.Error(), nil)
		}
		log.Printf("Error reviewing document: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to review document!", nil)
	}

	queue.Events.Publish("document.reviewed", owner.ID, fiber.Map{
		"doc_type": doc.DocType,
		"status":   newStatus,
		"reopened": reopened,
	})

	label := doc.DocType
	if kind, _, ok := workflow.ParseDocKey(doc.DocType); ok {
		label = workflow.Describe(kind).Label
	}
	go utils.SendDocumentReviewEmail(owner.Email, owner.Name, label, string(newStatus), reqData.Note)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Document reviewed successfully!", fiber.Map{
		"doc_type":             doc.DocType,
		"status":               newStatus,
		"application_reopened": reopened,
	})
}

// DecideApplication records the consultant's verdict on an application under
// evaluation: approve, reject, or request updates when individual documents
// were rejected rather than the whole application.
func DecideApplication(c *fiber.Ctx) error {
	candidateID := c.Locals("candidateID").(int)
	reqData := c.Locals("validatedApplicationDecision").(*struct {
		Decision string `json:"decision" validate:"required,oneof=APPROVE REJECT REQUEST_UPDATES"`
	})

	var candidate models.User
	if err := database.Database.Db.Where("id = ? AND role = ? AND is_deleted = ?", candidateID, "CANDIDATE", false).
		First(&candidate).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Candidate not found!", nil)
	}

	currentStatus := candidate.ApplicationStatus
	newStatus, err := workflow.Decide(currentStatus, workflow.ReviewDecision(reqData.Decision))
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Application is not under evaluation!", nil)
	}

	// Guarded flip against concurrent decisions.
	result := database.Database.Db.Model(&models.User{}).
		Where("id = ? AND application_status = ?", candidate.ID, currentStatus).
		Update("application_status", newStatus)
	if result.Error != nil {
		log.Printf("Error updating application status: %v", result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to decide application!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, workflow.ErrStateChanged.Error(), nil)
	}

	queue.Events.Publish("application.status_changed", candidate.ID, fiber.Map{
		"from": currentStatus,
		"to":   newStatus,
	})
	go utils.SendApplicationStatusEmail(candidate.Email, candidate.Name, string(newStatus))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Application decision recorded!", fiber.Map{
		"application_status": newStatus,
	})
}
