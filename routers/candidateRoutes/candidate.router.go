package candidateRoutes

import (
	controllers "courierhub/controllers/candidate"
	"courierhub/middleware"
	validators "courierhub/validators/candidate"

	"github.com/gofiber/fiber/v2"
)

// SetupCandidateRoutes sets up all candidate-facing onboarding routes
func SetupCandidateRoutes(app *fiber.App) {
	candidateGroup := app.Group("/candidate")

	// Onboarding dashboard (requirements, statuses, editability, submit check)
	candidateGroup.Get("/dashboard", middleware.JWTMiddleware, controllers.GetDashboard)

	// Vehicle/company profile
	candidateGroup.Put("/vehicle-profile", middleware.JWTMiddleware, validators.UpdateVehicleProfile(), controllers.UpdateVehicleProfile)

	// Document upload (single documents and bundle pages)
	candidateGroup.Post("/documents/:docType", middleware.JWTMiddleware, validators.UploadDocument(), controllers.UploadDocument)

	// Application submission
	candidateGroup.Get("/application/can-submit", middleware.JWTMiddleware, controllers.CanSubmit)
	candidateGroup.Post("/application/submit", middleware.JWTMiddleware, controllers.SubmitApplication)

	// Job assignments
	candidateGroup.Get("/assignments", middleware.JWTMiddleware, controllers.ListAssignments)
	candidateGroup.Post("/assignments/:id/respond", middleware.JWTMiddleware, validators.RespondAssignment(), controllers.RespondAssignment)
}
