package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExamStatus is deliberately free to move between any of its values:
// the system records state, it does not enforce transitions.
type ExamStatus string

const (
	ExamStatusScheduled ExamStatus = "Scheduled"
	ExamStatusCompleted ExamStatus = "Completed"
	ExamStatusCancelled ExamStatus = "Cancelled"
)

func (s ExamStatus) Valid() bool {
	switch s {
	case ExamStatusScheduled, ExamStatusCompleted, ExamStatusCancelled:
		return true
	default:
		return false
	}
}

type ExamModel struct {
	ExamID uuid.UUID `gorm:"type:uuid;primaryKey;column:exam_id" json:"exam_id"`

	ExamAcademicYear string `gorm:"type:varchar(10);not null;column:exam_academic_year" json:"exam_academic_year"`
	ExamClassName    string `gorm:"type:varchar(40);not null;column:exam_class_name" json:"exam_class_name"`
	ExamSection      string `gorm:"type:varchar(20);column:exam_section" json:"exam_section"`
	ExamSubject      string `gorm:"type:varchar(80);not null;column:exam_subject" json:"exam_subject"`

	ExamType  string `gorm:"type:varchar(20);not null;column:exam_type" json:"exam_type"`
	ExamTitle string `gorm:"type:varchar(160);not null;column:exam_title" json:"exam_title"`

	ExamMaxMarks     int `gorm:"not null;column:exam_max_marks" json:"exam_max_marks"`
	ExamPassingMarks int `gorm:"not null;column:exam_passing_marks" json:"exam_passing_marks"`

	ExamDate            string `gorm:"type:varchar(10);not null;column:exam_date" json:"exam_date"`
	ExamStartTime       string `gorm:"type:varchar(5);column:exam_start_time" json:"exam_start_time"`
	ExamDurationMinutes int    `gorm:"not null;default:0;column:exam_duration_minutes" json:"exam_duration_minutes"`
	ExamRoom            string `gorm:"type:varchar(40);column:exam_room" json:"exam_room"`

	ExamStatus ExamStatus `gorm:"type:varchar(20);not null;default:Scheduled;column:exam_status" json:"exam_status"`

	ExamCreatedAt time.Time `gorm:"column:exam_created_at;not null;autoCreateTime" json:"exam_created_at"`
	ExamUpdatedAt time.Time `gorm:"column:exam_updated_at;not null;autoUpdateTime" json:"exam_updated_at"`
}

func (ExamModel) TableName() string { return "exams" }

func (e *ExamModel) BeforeCreate(tx *gorm.DB) error {
	if e.ExamID == uuid.Nil {
		e.ExamID = uuid.New()
	}
	return nil
}
