package consultantValidator

import (
	"courierhub/middleware"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// fieldErrors flattens validator errors into the response map the frontend
// expects, keyed by the lowercased struct field name.
func fieldErrors(err error) map[string]string {
	errors := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			errors[strings.ToLower(fe.Field())] = "Invalid value for " + fe.Field() + "!"
		}
	} else {
		errors["request"] = "Validation failed!"
	}
	return errors
}

// CandidateID validates the :id route parameter.
func CandidateID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid candidate ID!", nil)
		}

		c.Locals("candidateID", id)
		return c.Next()
	}
}

// CandidateList validates pagination and the optional status filter.
func CandidateList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page   *int    `query:"page"`
			Limit  *int    `query:"limit"`
			Status *string `query:"status"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		// Validate Page
		if reqData.Page == nil || *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}

		// Validate Limit
		if reqData.Limit == nil || *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		validStatus := map[string]bool{
			"NEW_APPLICATION": true, "EVALUATION": true, "APPROVED": true,
			"REJECTED": true, "UPDATE_REQUIRED": true,
		}
		if reqData.Status != nil && *reqData.Status != "" {
			upper := strings.ToUpper(*reqData.Status)
			if !validStatus[upper] {
				errors["status"] = "Invalid application status filter!"
			} else {
				reqData.Status = &upper
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCandidateList", reqData)
		return c.Next()
	}
}

// DocumentReview validates the :id parameter and the verdict body. A
// rejection must carry a note so the candidate knows what to fix.
func DocumentReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid document ID!", nil)
		}

		reqData := new(struct {
			Status string `json:"status" validate:"required,oneof=APPROVED REJECTED"`
			Note   string `json:"note"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Status = strings.ToUpper(strings.TrimSpace(reqData.Status))
		reqData.Note = strings.TrimSpace(reqData.Note)

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		if reqData.Status == "REJECTED" && reqData.Note == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"note": "A note is required when rejecting a document!",
			})
		}

		c.Locals("documentID", id)
		c.Locals("validatedDocumentReview", reqData)
		return c.Next()
	}
}

// ApplicationDecision validates the consultant's verdict body.
func ApplicationDecision() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid candidate ID!", nil)
		}

		reqData := new(struct {
			Decision string `json:"decision" validate:"required,oneof=APPROVE REJECT REQUEST_UPDATES"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Decision = strings.ToUpper(strings.TrimSpace(reqData.Decision))

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"decision": "Decision must be APPROVE, REJECT or REQUEST_UPDATES!",
			})
		}

		c.Locals("candidateID", id)
		c.Locals("validatedApplicationDecision", reqData)
		return c.Next()
	}
}

// DocumentsFlag validates the gate toggle body.
func DocumentsFlag() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid candidate ID!", nil)
		}

		reqData := new(struct {
			DocumentsEnabled *bool `json:"documents_enabled"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.DocumentsEnabled == nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"documents_enabled": "documents_enabled is required!",
			})
		}

		c.Locals("candidateID", id)
		c.Locals("validatedDocumentsFlag", reqData)
		return c.Next()
	}
}

// Posting validates the job posting creation body.
func Posting() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title        string `json:"title" validate:"required,min=3,max=120"`
			CustomerName string `json:"customer_name" validate:"max=120"`
			City         string `json:"city" validate:"max=80"`
			Shift        string `json:"shift" validate:"omitempty,oneof=MORNING EVENING NIGHT"`
			Details      string `json:"details"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)
		reqData.Shift = strings.ToUpper(strings.TrimSpace(reqData.Shift))

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedPosting", reqData)
		return c.Next()
	}
}

// Assignment validates the candidate/posting pair for a new offer.
func Assignment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CandidateID uint `json:"candidate_id" validate:"required"`
			PostingID   uint `json:"posting_id" validate:"required"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedAssignment", reqData)
		return c.Next()
	}
}

// CompanyVerification validates the registry lookup request.
func CompanyVerification() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid candidate ID!", nil)
		}

		reqData := new(struct {
			TaxNumber string `json:"tax_number" validate:"required,min=5,max=30"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.TaxNumber = strings.TrimSpace(reqData.TaxNumber)

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("candidateID", id)
		c.Locals("validatedCompanyVerification", reqData)
		return c.Next()
	}
}
