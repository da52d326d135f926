package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "Pending"
	ApplicationApproved ApplicationStatus = "Approved"
	ApplicationRejected ApplicationStatus = "Rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationPending, ApplicationApproved, ApplicationRejected:
		return true
	}
	return false
}

// ApplicationDocument is one uploaded file attached to an application.
// The full list is stored as a JSON array on the application row.
type ApplicationDocument struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Path string `json:"path"`
}

type ApplicationModel struct {
	ApplicationID uuid.UUID `gorm:"type:uuid;primaryKey;column:application_id" json:"application_id"`

	ApplicationStudentName   string  `gorm:"type:varchar(120);not null;column:application_student_name" json:"application_student_name"`
	ApplicationDateOfBirth   string  `gorm:"type:varchar(10);column:application_date_of_birth" json:"application_date_of_birth"`
	ApplicationGender        string  `gorm:"type:varchar(20);column:application_gender" json:"application_gender"`
	ApplicationClassApplied  string  `gorm:"type:varchar(40);not null;column:application_class_applied" json:"application_class_applied"`
	ApplicationGuardianName  string  `gorm:"type:varchar(120);not null;column:application_guardian_name" json:"application_guardian_name"`
	ApplicationGuardianPhone string  `gorm:"type:varchar(30);not null;column:application_guardian_phone" json:"application_guardian_phone"`
	ApplicationGuardianEmail *string `gorm:"type:varchar(120);column:application_guardian_email" json:"application_guardian_email,omitempty"`
	ApplicationAddress       *string `gorm:"type:text;column:application_address" json:"application_address,omitempty"`
	ApplicationPrevSchool    *string `gorm:"type:varchar(160);column:application_prev_school" json:"application_prev_school,omitempty"`

	ApplicationStatus    ApplicationStatus `gorm:"type:varchar(20);not null;default:'Pending';column:application_status" json:"application_status"`
	ApplicationDocuments datatypes.JSON    `gorm:"column:application_documents" json:"application_documents"`

	ApplicationCreatedAt time.Time `gorm:"column:application_created_at;not null;autoCreateTime" json:"application_created_at"`
	ApplicationUpdatedAt time.Time `gorm:"column:application_updated_at;not null;autoUpdateTime" json:"application_updated_at"`
}

func (ApplicationModel) TableName() string { return "admission_applications" }

func (m *ApplicationModel) BeforeCreate(tx *gorm.DB) error {
	if m.ApplicationID == uuid.Nil {
		m.ApplicationID = uuid.New()
	}
	return nil
}
