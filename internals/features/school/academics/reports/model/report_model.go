package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ReportResult string

const (
	ReportResultPass    ReportResult = "Pass"
	ReportResultFail    ReportResult = "Fail"
	ReportResultPending ReportResult = "Pending"
)

func (r ReportResult) Valid() bool {
	switch r {
	case ReportResultPass, ReportResultFail, ReportResultPending:
		return true
	default:
		return false
	}
}

// ReportSubjectMark is one row of the per-subject marks array stored in
// the report's JSON column.
type ReportSubjectMark struct {
	Subject       string `json:"subject"`
	MarksObtained int    `json:"marks_obtained"`
	MaxMarks      int    `json:"max_marks"`
}

type ReportModel struct {
	ReportID uuid.UUID `gorm:"type:uuid;primaryKey;column:report_id" json:"report_id"`

	ReportStudentID uuid.UUID `gorm:"type:uuid;not null;column:report_student_id;index" json:"report_student_id"`
	ReportClassName string    `gorm:"type:varchar(40);not null;column:report_class_name" json:"report_class_name"`
	ReportSection   string    `gorm:"type:varchar(20);column:report_section" json:"report_section"`

	// must reference an existing exam; checked at write time
	ReportExamID uuid.UUID `gorm:"type:uuid;not null;column:report_exam_id;index" json:"report_exam_id"`

	ReportSubjects datatypes.JSON `gorm:"column:report_subjects" json:"report_subjects"`

	// derived server-side from the subjects array
	ReportTotalObtained int     `gorm:"not null;default:0;column:report_total_obtained" json:"report_total_obtained"`
	ReportTotalMax      int     `gorm:"not null;default:0;column:report_total_max" json:"report_total_max"`
	ReportPercentage    float64 `gorm:"not null;default:0;column:report_percentage" json:"report_percentage"`

	ReportResult ReportResult `gorm:"type:varchar(10);not null;default:Pending;column:report_result" json:"report_result"`

	ReportCreatedAt time.Time `gorm:"column:report_created_at;not null;autoCreateTime" json:"report_created_at"`
	ReportUpdatedAt time.Time `gorm:"column:report_updated_at;not null;autoUpdateTime" json:"report_updated_at"`
}

func (ReportModel) TableName() string { return "reports" }

func (r *ReportModel) BeforeCreate(tx *gorm.DB) error {
	if r.ReportID == uuid.Nil {
		r.ReportID = uuid.New()
	}
	return nil
}
