package consultantController

import (
	"courierhub/database"
	"courierhub/infra/queue"
	"courierhub/middleware"
	"courierhub/models"
	"courierhub/workflow"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CreatePosting registers a new job slot offered by a corporate customer.
func CreatePosting(c *fiber.Ctx) error {
	consultantID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData := c.Locals("validatedPosting").(*struct {
		Title        string `json:"title" validate:"required,min=3,max=120"`
		CustomerName string `json:"customer_name" validate:"max=120"`
		City         string `json:"city" validate:"max=80"`
		Shift        string `json:"shift" validate:"omitempty,oneof=MORNING EVENING NIGHT"`
		Details      string `json:"details"`
	})

	posting := models.JobPosting{
		Title:        reqData.Title,
		CustomerName: reqData.CustomerName,
		City:         reqData.City,
		Shift:        reqData.Shift,
		Details:      reqData.Details,
		CreatedBy:    consultantID,
		IsActive:     true,
	}

	if err := database.Database.Db.Create(&posting).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create job posting!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Job posting created successfully!", posting)
}

// ListPostings returns active job postings.
func ListPostings(c *fiber.Ctx) error {
	var postings []models.JobPosting
	if err := database.Database.Db.Where("is_active = ? AND is_deleted = ?", true, false).
		Order("created_at desc").
		Find(&postings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch job postings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Job postings fetched successfully!", postings)
}

// AssignCandidate offers a posting to an approved candidate. The response
// lifecycle from there on belongs to the candidate alone.
func AssignCandidate(c *fiber.Ctx) error {
	reqData := c.Locals("validatedAssignment").(*struct {
		CandidateID uint `json:"candidate_id" validate:"required"`
		PostingID   uint `json:"posting_id" validate:"required"`
	})

	var candidate models.User
	if err := database.Database.Db.Where("id = ? AND role = ? AND is_deleted = ?", reqData.CandidateID, "CANDIDATE", false).
		First(&candidate).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Candidate not found!", nil)
	}

	// Only fully onboarded candidates receive offers.
	if candidate.ApplicationStatus != workflow.StatusApproved {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Candidate application is not approved yet!", nil)
	}

	var posting models.JobPosting
	if err := database.Database.Db.Where("id = ? AND is_active = ? AND is_deleted = ?", reqData.PostingID, true, false).
		First(&posting).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Job posting not found or inactive!", nil)
	}

	// One open offer per candidate and posting.
	var existing models.JobAssignment
	if err := database.Database.Db.Where("user_id = ? AND job_posting_id = ? AND is_deleted = ?", candidate.ID, posting.ID, false).
		First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Candidate is already assigned to this posting!", nil)
	}

	assignment := models.JobAssignment{
		UserID:       candidate.ID,
		JobPostingID: posting.ID,
		Status:       workflow.AssignmentPending,
		AssignedAt:   time.Now(),
	}

	if err := database.Database.Db.Create(&assignment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to assign candidate!", nil)
	}

	queue.Events.Publish("assignment.created", candidate.ID, fiber.Map{
		"assignment_id": assignment.ID,
		"posting_id":    posting.ID,
	})

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Candidate assigned successfully!", assignment)
}
