package models

import (
	"time"

	"gorm.io/gorm"
)

// CompanyVerification records the outcome of an external registry lookup for
// candidates operating through their own registered company.
type CompanyVerification struct {
	gorm.Model
	UserID      uint       `gorm:"index;not null" json:"user_id"`
	User        User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	TaxNumber   string     `gorm:"type:varchar(30);not null" json:"tax_number"`
	CompanyName string     `gorm:"default:''" json:"company_name"`
	IsVerified  bool       `gorm:"default:false" json:"is_verified"`
	ProviderRef string     `gorm:"default:''" json:"provider_ref"` // registry lookup reference id
	CheckedAt   *time.Time `json:"checked_at"`
	IsDeleted   bool       `gorm:"default:false"`
}
