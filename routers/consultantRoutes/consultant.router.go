package consultantRoutes

import (
	controllers "courierhub/controllers/consultant"
	"courierhub/middleware"
	validators "courierhub/validators/consultant"

	"github.com/gofiber/fiber/v2"
)

// SetupConsultantRoutes sets up all consultant/admin review routes
func SetupConsultantRoutes(app *fiber.App) {
	consultantGroup := app.Group("/consultant", middleware.JWTMiddleware, middleware.RequireRole("CONSULTANT", "ADMIN"))

	// Candidate triage
	consultantGroup.Get("/candidates", validators.CandidateList(), controllers.ListCandidates)
	consultantGroup.Get("/candidates/:id", validators.CandidateID(), controllers.GetCandidate)
	consultantGroup.Patch("/candidates/:id/documents-flag", validators.DocumentsFlag(), controllers.SetDocumentsFlag)
	consultantGroup.Post("/candidates/:id/verify-company", validators.CompanyVerification(), controllers.VerifyCompany)

	// Review
	consultantGroup.Patch("/documents/:id/review", validators.DocumentReview(), controllers.ReviewDocument)
	consultantGroup.Post("/candidates/:id/decision", validators.ApplicationDecision(), controllers.DecideApplication)

	// Job postings and offers
	consultantGroup.Post("/postings", validators.Posting(), controllers.CreatePosting)
	consultantGroup.Get("/postings", controllers.ListPostings)
	consultantGroup.Post("/assignments", validators.Assignment(), controllers.AssignCandidate)
}
