package utils

import (
	"courierhub/database"
	"courierhub/models"
	"courierhub/workflow"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[REMINDER-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// processPendingAssignments emails candidates whose job offers have sat
// unanswered for more than 48 hours.
func processPendingAssignments() {
	db := database.Database.Db
	cutoff := time.Now().Add(-48 * time.Hour)

	var assignments []models.JobAssignment
	if err := db.Where("status = ? AND assigned_at <= ? AND is_deleted = false", workflow.AssignmentPending, cutoff).
		Preload("User").
		Preload("JobPosting").
		Find(&assignments).Error; err != nil {
		logScheduler("Error fetching pending assignments: " + err.Error())
		return
	}

	for _, a := range assignments {
		if a.User.Email == "" {
			continue
		}
		SendAssignmentReminderEmail(a.User.Email, a.User.Name, a.JobPosting.Title)
	}

	if len(assignments) > 0 {
		logScheduler(fmt.Sprintf("Sent %d assignment reminders", len(assignments)))
	}
}

// processStaleDocuments logs documents waiting for a consultant verdict for
// more than 72 hours so the review backlog stays visible.
func processStaleDocuments() {
	db := database.Database.Db
	cutoff := time.Now().Add(-72 * time.Hour)

	var count int64
	if err := db.Model(&models.Document{}).
		Where("status = ? AND updated_at <= ? AND is_deleted = false", workflow.DocStatusPending, cutoff).
		Count(&count).Error; err != nil {
		logScheduler("Error counting stale documents: " + err.Error())
		return
	}

	if count > 0 {
		logScheduler("Review backlog: documents pending for more than 72h")
	}
}

// StartReminderScheduler runs the reminder jobs hourly.
func StartReminderScheduler() *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("@hourly", func() {
		processPendingAssignments()
		processStaleDocuments()
	})
	if err != nil {
		logScheduler("Failed to register reminder job: " + err.Error())
		return c
	}

	c.Start()
	logScheduler("Reminder scheduler started")
	return c
}
