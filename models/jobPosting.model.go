package models

import (
	"gorm.io/gorm"
)

type JobPosting struct {
	gorm.Model
	Title        string `gorm:"not null" json:"title"`
	CustomerName string `gorm:"default:''" json:"customer_name"`
	City         string `gorm:"default:''" json:"city"`
	Shift        string `gorm:"default:''" json:"shift"` // e.g. MORNING, EVENING, NIGHT
	Details      string `gorm:"type:text;default:''" json:"details"`
	CreatedBy    uint   `gorm:"index" json:"created_by"` // consultant user id
	IsActive     bool   `gorm:"default:true" json:"is_active"`
	IsDeleted    bool   `gorm:"default:false"`
}
