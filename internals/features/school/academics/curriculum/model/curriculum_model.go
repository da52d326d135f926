package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CurriculumModel struct {
	CurriculumID uuid.UUID `gorm:"type:uuid;primaryKey;column:curriculum_id" json:"curriculum_id"`

	CurriculumAcademicYear string `gorm:"type:varchar(10);not null;uniqueIndex:uq_curricula_year_class_section;column:curriculum_academic_year" json:"curriculum_academic_year"`
	CurriculumClassName    string `gorm:"type:varchar(40);not null;uniqueIndex:uq_curricula_year_class_section;column:curriculum_class_name" json:"curriculum_class_name"`
	CurriculumSection      string `gorm:"type:varchar(20);not null;uniqueIndex:uq_curricula_year_class_section;column:curriculum_section" json:"curriculum_section"`

	// JSON string arrays
	CurriculumSubjects     datatypes.JSON `gorm:"column:curriculum_subjects" json:"curriculum_subjects"`
	CurriculumElectives    datatypes.JSON `gorm:"column:curriculum_electives" json:"curriculum_electives"`
	CurriculumCocurricular datatypes.JSON `gorm:"column:curriculum_cocurricular" json:"curriculum_cocurricular"`

	CurriculumCreatedAt time.Time `gorm:"column:curriculum_created_at;not null;autoCreateTime" json:"curriculum_created_at"`
	CurriculumUpdatedAt time.Time `gorm:"column:curriculum_updated_at;not null;autoUpdateTime" json:"curriculum_updated_at"`
}

func (CurriculumModel) TableName() string { return "curricula" }

func (m *CurriculumModel) BeforeCreate(tx *gorm.DB) error {
	if m.CurriculumID == uuid.Nil {
		m.CurriculumID = uuid.New()
	}
	return nil
}
