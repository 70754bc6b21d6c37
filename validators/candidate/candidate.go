package candidateValidator

import (
	"courierhub/middleware"
	"courierhub/workflow"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// UpdateVehicleProfile validates the vehicle/company attribute edit.
func UpdateVehicleProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			VehicleCategory     string `json:"vehicle_category"`
			VehicleSubtype      string `json:"vehicle_subtype"`
			HasCompany          string `json:"has_company"`
			HasExtraCertificate string `json:"has_extra_certificate"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		validCategory := map[string]bool{"TWO_WHEELER": true, "CAR": true}
		validTriState := map[string]bool{"UNKNOWN": true, "YES": true, "NO": true}

		if reqData.VehicleCategory != "" && !validCategory[strings.ToUpper(reqData.VehicleCategory)] {
			errors["vehicle_category"] = "Invalid vehicle category! Allowed: TWO_WHEELER, CAR"
		} else {
			reqData.VehicleCategory = strings.ToUpper(reqData.VehicleCategory)
		}

		if reqData.HasCompany != "" && !validTriState[strings.ToUpper(reqData.HasCompany)] {
			errors["has_company"] = "Invalid value! Allowed: UNKNOWN, YES, NO"
		} else {
			reqData.HasCompany = strings.ToUpper(reqData.HasCompany)
		}

		if reqData.HasExtraCertificate != "" && !validTriState[strings.ToUpper(reqData.HasExtraCertificate)] {
			errors["has_extra_certificate"] = "Invalid value! Allowed: UNKNOWN, YES, NO"
		} else {
			reqData.HasExtraCertificate = strings.ToUpper(reqData.HasExtraCertificate)
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedVehicleProfile", reqData)
		return c.Next()
	}
}

// UploadDocument validates the doc_type route parameter against the catalog.
func UploadDocument() fiber.Handler {
	return func(c *fiber.Ctx) error {
		docType := strings.TrimSpace(c.Params("docType"))
		if docType == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Document type is required!", nil)
		}

		if _, _, ok := workflow.ParseDocKey(docType); !ok {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Unknown document type!", nil)
		}

		c.Locals("docType", docType)
		return c.Next()
	}
}

// RespondAssignment validates the assignment id parameter and the
// accept/reject body.
func RespondAssignment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		assignmentIDStr := strings.TrimSpace(c.Params("id"))
		assignmentID, err := strconv.Atoi(assignmentIDStr)
		if err != nil || assignmentID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid assignment ID!", nil)
		}

		reqData := new(struct {
			Decision string `json:"decision" validate:"required,oneof=ACCEPT REJECT"`
			Reason   string `json:"reason"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Decision = strings.ToUpper(strings.TrimSpace(reqData.Decision))

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"decision": "Decision must be ACCEPT or REJECT!",
			})
		}

		// The 10-character reason rule lives in the engine; the validator
		// only rejects requests that are structurally malformed.

		c.Locals("assignmentID", assignmentID)
		c.Locals("validatedAssignmentResponse", reqData)
		return c.Next()
	}
}
