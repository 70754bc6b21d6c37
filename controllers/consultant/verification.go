package consultantController

import (
	"courierhub/database"
	"courierhub/middleware"
	"courierhub/models"
	"courierhub/utils"
	"courierhub/workflow"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// VerifyCompany checks a company candidate's declared tax number against the
// external company registry and stores the outcome.
func VerifyCompany(c *fiber.Ctx) error {
	candidateID := c.Locals("candidateID").(int)
	reqData := c.Locals("validatedCompanyVerification").(*struct {
		TaxNumber string `json:"tax_number" validate:"required,min=5,max=30"`
	})

	var candidate models.User
	if err := database.Database.Db.Where("id = ? AND role = ? AND is_deleted = ?", candidateID, "CANDIDATE", false).
		First(&candidate).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Candidate not found!", nil)
	}

	var profile models.VehicleProfile
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", candidate.ID, false).First(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Vehicle profile not found!", nil)
	}

	if profile.HasCompany != workflow.TriYes {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Candidate has not declared a registered company!", nil)
	}

	result, err := utils.VerifyCompany(reqData.TaxNumber)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Company registry lookup failed!", nil)
	}

	now := time.Now()
	verification := models.CompanyVerification{
		UserID:      candidate.ID,
		TaxNumber:   reqData.TaxNumber,
		CompanyName: result.CompanyName,
		IsVerified:  result.Active,
		ProviderRef: result.ReferenceID,
		CheckedAt:   &now,
	}

	if err := database.Database.Db.Create(&verification).Error; err != nil {
		log.Printf("Error saving company verification: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save verification result!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Company verification completed!", verification)
}
