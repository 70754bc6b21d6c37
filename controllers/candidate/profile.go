package candidateController

import (
	"courierhub/database"
	"courierhub/middleware"
	"courierhub/models"
	"courierhub/workflow"

	"github.com/gofiber/fiber/v2"
)

// UpdateVehicleProfile edits the candidate's vehicle/company attributes.
// The profile is only open while the application has not been submitted:
// changing the company flag mid-review would change the requirement set
// underneath the consultant.
func UpdateVehicleProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedVehicleProfile").(*struct {
		VehicleCategory     string `json:"vehicle_category"`
		VehicleSubtype      string `json:"vehicle_subtype"`
		HasCompany          string `json:"has_company"`
		HasExtraCertificate string `json:"has_extra_certificate"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if user.ApplicationStatus != workflow.StatusNewApplication {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Profile is locked once the application has been submitted!", nil)
	}

	var profile models.VehicleProfile
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).First(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Vehicle profile not found!", nil)
	}

	if reqData.VehicleCategory != "" {
		profile.VehicleCategory = reqData.VehicleCategory
	}
	if reqData.VehicleSubtype != "" {
		profile.VehicleSubtype = reqData.VehicleSubtype
	}
	if reqData.HasCompany != "" {
		profile.HasCompany = workflow.TriState(reqData.HasCompany)
	}
	if reqData.HasExtraCertificate != "" {
		profile.HasExtraCertificate = workflow.TriState(reqData.HasExtraCertificate)
	}

	if err := database.Database.Db.Save(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update vehicle profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Vehicle profile updated successfully!", profile)
}
