package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FrontOfficeSetupType enumerates the reception lookup lists.
type FrontOfficeSetupType string

const (
	SetupTypePurpose       FrontOfficeSetupType = "Purpose"
	SetupTypeComplaintType FrontOfficeSetupType = "Complaint Type"
	SetupTypeSource        FrontOfficeSetupType = "Source"
	SetupTypeReference     FrontOfficeSetupType = "Reference"
)

func (t FrontOfficeSetupType) Valid() bool {
	switch t {
	case SetupTypePurpose, SetupTypeComplaintType, SetupTypeSource, SetupTypeReference:
		return true
	default:
		return false
	}
}

type FrontOfficeSetupModel struct {
	SetupID uuid.UUID `gorm:"type:uuid;primaryKey;column:setup_id" json:"setup_id"`

	SetupType FrontOfficeSetupType `gorm:"type:varchar(20);not null;uniqueIndex:uq_front_office_setups_type_name;column:setup_type" json:"setup_type"`
	SetupName string               `gorm:"type:varchar(80);not null;uniqueIndex:uq_front_office_setups_type_name;column:setup_name" json:"setup_name"`

	SetupDescription *string `gorm:"type:text;column:setup_description" json:"setup_description,omitempty"`

	SetupCreatedAt time.Time `gorm:"column:setup_created_at;not null;autoCreateTime" json:"setup_created_at"`
	SetupUpdatedAt time.Time `gorm:"column:setup_updated_at;not null;autoUpdateTime" json:"setup_updated_at"`
}

func (FrontOfficeSetupModel) TableName() string { return "front_office_setups" }

func (s *FrontOfficeSetupModel) BeforeCreate(tx *gorm.DB) error {
	if s.SetupID == uuid.Nil {
		s.SetupID = uuid.New()
	}
	return nil
}
