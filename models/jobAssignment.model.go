package models

import (
	"time"

	"gorm.io/gorm"

	"courierhub/workflow"
)

// JobAssignment is one job slot offered to a candidate. Mutated only by the
// candidate's accept/reject response and immutable once responded.
type JobAssignment struct {
	gorm.Model
	UserID       uint                      `gorm:"index;not null" json:"user_id"`
	User         User                      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	JobPostingID uint                      `gorm:"index;not null" json:"job_posting_id"`
	JobPosting   JobPosting                `gorm:"foreignKey:JobPostingID;constraint:OnDelete:CASCADE" json:"job_posting"`
	Status       workflow.AssignmentStatus `gorm:"type:varchar(20);default:'PENDING'" json:"status"`
	RejectReason string                    `gorm:"type:text;default:''" json:"reject_reason"`
	AssignedAt   time.Time                 `json:"assigned_at"`
	RespondedAt  *time.Time                `json:"responded_at"`
	IsDeleted    bool                      `gorm:"default:false"`
}
