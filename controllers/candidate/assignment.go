package candidateController

import (
	"courierhub/database"
	"courierhub/infra/queue"
	"courierhub/middleware"
	"courierhub/models"
	"courierhub/workflow"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// assignmentCounts recomputes the aggregate totals from the candidate's full
// assignment collection. Counts are a view, never maintained incrementally.
func assignmentCounts(userID uint) (workflow.AssignmentCounts, error) {
	var assignments []models.JobAssignment
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).Find(&assignments).Error; err != nil {
		return workflow.AssignmentCounts{}, err
	}

	statuses := make([]workflow.AssignmentStatus, 0, len(assignments))
	for _, a := range assignments {
		statuses = append(statuses, a.Status)
	}
	return workflow.CountAssignments(statuses), nil
}

// ListAssignments returns the candidate's offered job slots with recomputed
// aggregate counts.
func ListAssignments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var assignments []models.JobAssignment
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Preload("JobPosting").
		Order("assigned_at desc").
		Find(&assignments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch assignments!", nil)
	}

	counts, err := assignmentCounts(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute assignment counts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignments fetched successfully!", fiber.Map{
		"assignments": assignments,
		"counts":      counts,
	})
}

// RespondAssignment records the candidate's accept/reject decision on one
// offered slot. Input is validated before any mutation; a responded
// assignment is immutable.
func RespondAssignment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	assignmentID := c.Locals("assignmentID").(int)
	reqData := c.Locals("validatedAssignmentResponse").(*struct {
		Decision string `json:"decision" validate:"required,oneof=ACCEPT REJECT"`
		Reason   string `json:"reason"`
	})

	var assignment models.JobAssignment
	if err := database.Database.Db.Where("id = ? AND user_id = ? AND is_deleted = ?", assignmentID, userID, false).
		First(&assignment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Assignment not found!", nil)
	}

	response, err := workflow.RespondToAssignment(assignment.Status, workflow.AssignmentDecision(reqData.Decision), reqData.Reason, time.Now())
	if err != nil {
		var ierr *workflow.InputError
		if errors.As(err, &ierr) {
			return middleware.ValidationErrorResponse(c, map[string]string{ierr.Field: ierr.Message})
		}
		if errors.Is(err, workflow.ErrInvalidTransition) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Assignment has already been responded to!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to respond to assignment!", nil)
	}

	// Guarded update: a double-submit loses the race and gets a conflict.
	result := database.Database.Db.Model(&models.JobAssignment{}).
		Where("id = ? AND status = ?", assignment.ID, workflow.AssignmentPending).
		Updates(map[string]interface{}{
			"status":        response.Status,
			"reject_reason": response.Reason,
			"responded_at":  response.RespondedAt,
		})
	if result.Error != nil {
		log.Printf("Error updating assignment: %v", result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to respond to assignment!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, workflow.ErrStateChanged.Error(), nil)
	}

	queue.Events.Publish("assignment.responded", userID, fiber.Map{
		"assignment_id": assignment.ID,
		"status":        response.Status,
	})

	counts, err := assignmentCounts(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute assignment counts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Assignment response recorded!", fiber.Map{
		"status":       response.Status,
		"responded_at": response.RespondedAt,
		"counts":       counts,
	})
}
