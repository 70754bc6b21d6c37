package models

import (
	"gorm.io/gorm"

	"courierhub/workflow"
)

type VehicleProfile struct {
	gorm.Model
	UserID              uint              `gorm:"uniqueIndex;not null" json:"user_id"`
	User                User              `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	VehicleCategory     string            `gorm:"default:''" json:"vehicle_category"` // TWO_WHEELER, CAR
	VehicleSubtype      string            `gorm:"default:''" json:"vehicle_subtype"`
	HasCompany          workflow.TriState `gorm:"type:varchar(10);default:'UNKNOWN'" json:"has_company"`
	HasExtraCertificate workflow.TriState `gorm:"type:varchar(10);default:'UNKNOWN'" json:"has_extra_certificate"`
	IsDeleted           bool              `gorm:"default:false"`
}

// RequirementInput maps the stored profile plus the consultant gate into the
// engine's resolver input.
func (v *VehicleProfile) RequirementInput(documentsEnabled bool) workflow.RequirementInput {
	return workflow.RequirementInput{
		HasCompany:          v.HasCompany,
		HasExtraCertificate: v.HasExtraCertificate,
		DocumentsEnabled:    documentsEnabled,
	}
}
