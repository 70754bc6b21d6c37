package candidateController

import (
	"courierhub/database"
	"courierhub/infra/queue"
	"courierhub/middleware"
	"courierhub/models"
	"courierhub/utils"
	"courierhub/workflow"
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UploadDocument stores one document (or one bundle page) for the
// authenticated candidate. The editability policy is consulted against a
// fresh projection before anything is written; a re-upload supersedes the
// old file and resets the review status and notes in the same transaction,
// so a reviewer can never see an approved status pointing at a changed file.
func UploadDocument(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	docType := c.Locals("docType").(string)
	kind, _, _ := workflow.ParseDocKey(docType)

	user, profile, docs, err := loadSnapshot(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Candidate not found!", nil)
	}

	proj, err := workflow.Recompute(user.ApplicationStatus, profile.RequirementInput(user.DocumentsEnabled), toDocRecords(docs))
	if errors.Is(err, workflow.ErrProfileIncomplete) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Complete your vehicle profile before uploading documents!", nil)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check upload permission!", nil)
	}

	// The kind must be part of the current requirement set.
	if _, required := proj.States[kind]; !required {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "This document is not required for your application!", nil)
	}

	// Policy check before any storage mutation.
	if !proj.Editable[kind] {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, workflow.ErrNotEditable.Error(), nil)
	}

	// Read the uploaded file
	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Document file is required!", nil)
	}

	content, err := utils.ReadUploadedFile(file)
	if err != nil {
		log.Printf("Error reading uploaded file: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read uploaded file!", nil)
	}

	// Store the blob first; the old file reference is discarded with the row
	// update below.
	filename := uuid.NewString() + filepath.Ext(file.Filename)
	folder := fmt.Sprintf("documents/%d", userID)
	fileURL, err := utils.Blob.UploadBytes(c.Context(), folder, filename, content)
	if err != nil {
		log.Printf("Error storing document blob: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store document!", nil)
	}
	filePath := filepath.Join(folder, filename)

	var doc models.Document
	err = database.Database.Db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ? AND doc_type = ? AND is_deleted = ?", userID, docType, false).First(&doc)
		if result.Error != nil {
			if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return result.Error
			}
			doc = models.Document{
				UserID:   userID,
				DocType:  docType,
				FilePath: filePath,
				FileURL:  fileURL,
				Status:   workflow.DocStatusPending,
			}
			return tx.Create(&doc).Error
		}

		// Supersede: new file, review state cleared as one unit.
		return tx.Model(&doc).Updates(map[string]interface{}{
			"file_path":   filePath,
			"file_url":    fileURL,
			"status":      workflow.DocStatusPending,
			"review_note": "",
			"reviewed_by": nil,
			"reviewed_at": nil,
		}).Error
	})
	if err != nil {
		log.Printf("Error saving document record: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save document!", nil)
	}

	queue.Events.Publish("document.uploaded", userID, fiber.Map{"doc_type": docType})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Document uploaded successfully!", fiber.Map{
		"doc_type": docType,
		"file_url": fileURL,
		"status":   workflow.DocStatusPending,
	})
}
