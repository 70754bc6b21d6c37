package models

import (
	"time"

	"gorm.io/gorm"

	"courierhub/workflow"
)

type User struct {
	gorm.Model
	ProfileImage        string             `gorm:"default:''"`
	Name                string             `gorm:"default:''"`
	Email               string             `gorm:"unique;not null"`
	Mobile              string             `gorm:"default:''"`
	Role                string             `gorm:"default:'CANDIDATE'"` // CANDIDATE, CONSULTANT, ADMIN, MIDDLEMAN, CUSTOMER
	Password            string             `gorm:"not null" json:"-"`
	ApplicationStatus   workflow.AppStatus `gorm:"type:varchar(30);default:'NEW_APPLICATION'" json:"application_status"`
	DocumentsEnabled    bool               `gorm:"default:false" json:"documents_enabled"` // consultant-set gate for the second document wave
	MiddlemanID         *uint              `gorm:"index" json:"middleman_id"`
	City                string             `gorm:"default:''"`
	Address             string             `gorm:"default:''"`
	LastLogin           time.Time          `gorm:"default:NULL"`
	FailedLoginAttempts int                `gorm:"default:0"`
	LastFailedLogin     *time.Time         `json:"last_failed_login"`
	IsBlocked           bool               `gorm:"default:false"`
	BlockedUntil        *time.Time         `json:"blocked_until"`
	IsDeleted           bool               `gorm:"default:false"`
}
