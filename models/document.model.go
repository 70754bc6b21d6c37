package models

import (
	"time"

	"gorm.io/gorm"

	"courierhub/workflow"
)

// Document is one uploaded artifact. At most one current row exists per
// (user, doc_type); a re-upload supersedes the file and resets the review
// status in the same transaction. Bundle pages use doc_type "<kind>_<n>".
type Document struct {
	gorm.Model
	UserID     uint               `gorm:"index:idx_doc_owner_type,unique;not null" json:"user_id"`
	User       User               `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	DocType    string             `gorm:"index:idx_doc_owner_type,unique;type:varchar(50);not null" json:"doc_type"`
	FilePath   string             `gorm:"type:text;not null" json:"-"`
	FileURL    string             `gorm:"type:text" json:"file_url"`
	Status     workflow.DocStatus `gorm:"type:varchar(20);default:'PENDING'" json:"status"`
	ReviewNote string             `gorm:"type:text;default:''" json:"review_note"`
	ReviewedBy *uint              `json:"reviewed_by"`
	ReviewedAt *time.Time         `json:"reviewed_at"`
	IsDeleted  bool               `gorm:"default:false"`
}
