package candidateController

import (
	"courierhub/database"
	"courierhub/middleware"
	"courierhub/models"
	"courierhub/workflow"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// loadSnapshot fetches the candidate, vehicle profile and current document
// rows in one place so every handler derives from the same picture.
func loadSnapshot(userID uint) (models.User, models.VehicleProfile, []models.Document, error) {
	return loadSnapshotWithin(database.Database.Db, userID)
}

// loadSnapshotWithin is loadSnapshot bound to a specific connection, so a
// handler that must commit against the snapshot can read it inside its own
// transaction.
func loadSnapshotWithin(db *gorm.DB, userID uint) (models.User, models.VehicleProfile, []models.Document, error) {
	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return user, models.VehicleProfile{}, nil, err
	}

	var profile models.VehicleProfile
	if err := db.Where("user_id = ? AND is_deleted = ?", userID, false).First(&profile).Error; err != nil {
		return user, profile, nil, err
	}

	var docs []models.Document
	if err := db.Where("user_id = ? AND is_deleted = ?", userID, false).Find(&docs).Error; err != nil {
		return user, profile, nil, err
	}

	return user, profile, docs, nil
}

func toDocRecords(docs []models.Document) []workflow.DocRecord {
	records := make([]workflow.DocRecord, 0, len(docs))
	for _, d := range docs {
		records = append(records, workflow.DocRecord{DocType: d.DocType, Status: d.Status})
	}
	return records
}

// pageView is the per-page detail shown under each bundle.
type pageView struct {
	Page    int    `json:"page"`
	DocType string `json:"doc_type"`
	Badge   string `json:"badge"`
	FileURL string `json:"file_url,omitempty"`
	Note    string `json:"note,omitempty"`
}

// buildPageViews projects page badges for one requirement kind.
func buildPageViews(kind workflow.DocKind, docs []models.Document) []pageView {
	byKey := map[string]models.Document{}
	for _, d := range docs {
		byKey[d.DocType] = d
	}

	spec := workflow.Describe(kind)
	views := make([]pageView, 0, spec.Pages)
	for page := 1; page <= spec.Pages; page++ {
		key := workflow.PageKey(kind, page)
		doc, present := byKey[key]
		view := pageView{Page: page, DocType: key, Badge: workflow.PageBadge(doc.Status, present)}
		if present {
			view.FileURL = doc.FileURL
			view.Note = doc.ReviewNote
		}
		views = append(views, view)
	}
	return views
}

// GetDashboard returns the candidate's full onboarding projection:
// requirement set, per-kind derived statuses, page badges, submit readiness
// and per-kind editability.
func GetDashboard(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	user, profile, docs, err := loadSnapshot(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Candidate not found!", nil)
	}

	proj, err := workflow.Recompute(user.ApplicationStatus, profile.RequirementInput(user.DocumentsEnabled), toDocRecords(docs))
	if errors.Is(err, workflow.ErrProfileIncomplete) {
		// Not an error page: the dashboard tells the candidate to finish
		// their vehicle profile first.
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
			"application_status":        user.ApplicationStatus,
			"requirements_undetermined": true,
			"vehicle_profile":           profile,
		})
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute dashboard!", nil)
	}

	pages := map[string][]pageView{}
	for _, kind := range proj.Requirements {
		pages[string(kind)] = buildPageViews(kind, docs)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"application_status":        user.ApplicationStatus,
		"requirements_undetermined": false,
		"vehicle_profile":           profile,
		"projection":                proj,
		"pages":                     pages,
	})
}
