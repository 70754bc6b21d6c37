package consultantController

import (
	"courierhub/database"
	"courierhub/middleware"
	"courierhub/models"
	"courierhub/workflow"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ListCandidates returns candidate accounts with pagination and an optional
// application-status filter.
func ListCandidates(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCandidateList").(*struct {
		Page   *int    `query:"page"`
		Limit  *int    `query:"limit"`
		Status *string `query:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
	}

	page := *reqData.Page
	limit := *reqData.Limit
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.User{}).Where("role = ? AND is_deleted = ?", "CANDIDATE", false)
	if reqData.Status != nil && *reqData.Status != "" {
		db = db.Where("application_status = ?", *reqData.Status)
	}

	// Get total count
	var total int64
	db.Count(&total)

	// Fetch paginated data
	var candidates []models.User
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&candidates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch candidates!", nil)
	}

	for i := range candidates {
		candidates[i].Password = ""
	}

	// Prepare response
	response := map[string]interface{}{
		"candidates": candidates,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Candidates fetched successfully!", response)
}

// GetCandidate returns one candidate with their vehicle profile, document
// rows and the derived onboarding projection the consultant reviews against.
func GetCandidate(c *fiber.Ctx) error {
	candidateID := c.Locals("candidateID").(int)

	var candidate models.User
	if err := database.Database.Db.Where("id = ? AND role = ? AND is_deleted = ?", candidateID, "CANDIDATE", false).
		First(&candidate).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Candidate not found!", nil)
	}
	candidate.Password = ""

	var profile models.VehicleProfile
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", candidate.ID, false).First(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Vehicle profile not found!", nil)
	}

	var docs []models.Document
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", candidate.ID, false).Find(&docs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch documents!", nil)
	}

	records := make([]workflow.DocRecord, 0, len(docs))
	for _, d := range docs {
		records = append(records, workflow.DocRecord{DocType: d.DocType, Status: d.Status})
	}

	response := fiber.Map{
		"candidate":       candidate,
		"vehicle_profile": profile,
		"documents":       docs,
	}

	proj, err := workflow.Recompute(candidate.ApplicationStatus, profile.RequirementInput(candidate.DocumentsEnabled), records)
	if err != nil {
		if !errors.Is(err, workflow.ErrProfileIncomplete) {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute candidate projection!", nil)
		}
		response["requirements_undetermined"] = true
	} else {
		response["projection"] = proj
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Candidate fetched successfully!", response)
}

// SetDocumentsFlag toggles the gate that unlocks the second wave of required
// documents for one candidate.
func SetDocumentsFlag(c *fiber.Ctx) error {
	candidateID := c.Locals("candidateID").(int)
	reqData := c.Locals("validatedDocumentsFlag").(*struct {
		DocumentsEnabled *bool `json:"documents_enabled"`
	})

	var candidate models.User
	if err := database.Database.Db.Where("id = ? AND role = ? AND is_deleted = ?", candidateID, "CANDIDATE", false).
		First(&candidate).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Candidate not found!", nil)
	}

	if err := database.Database.Db.Model(&candidate).Update("documents_enabled", *reqData.DocumentsEnabled).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update document flag!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Document flag updated successfully!", fiber.Map{
		"documents_enabled": *reqData.DocumentsEnabled,
	})
}
