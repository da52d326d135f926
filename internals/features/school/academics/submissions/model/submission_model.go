package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubmissionStatus string

const (
	SubmissionStatusSubmitted SubmissionStatus = "Submitted"
	SubmissionStatusLate      SubmissionStatus = "Late"
	SubmissionStatusGraded    SubmissionStatus = "Graded"
	SubmissionStatusResubmit  SubmissionStatus = "Resubmit"
)

func (s SubmissionStatus) Valid() bool {
	switch s {
	case SubmissionStatusSubmitted, SubmissionStatusLate, SubmissionStatusGraded, SubmissionStatusResubmit:
		return true
	default:
		return false
	}
}

type SubmissionModel struct {
	SubmissionID uuid.UUID `gorm:"type:uuid;primaryKey;column:submission_id" json:"submission_id"`

	SubmissionAssignmentTitle string    `gorm:"type:varchar(160);not null;column:submission_assignment_title" json:"submission_assignment_title"`
	SubmissionStudentID       uuid.UUID `gorm:"type:uuid;not null;column:submission_student_id;index" json:"submission_student_id"`

	SubmissionFilePath string `gorm:"type:text;column:submission_file_path" json:"submission_file_path"`

	SubmissionStatus SubmissionStatus `gorm:"type:varchar(20);not null;default:Submitted;column:submission_status" json:"submission_status"`

	SubmissionMarks    *int    `gorm:"column:submission_marks" json:"submission_marks,omitempty"`
	SubmissionGrade    *string `gorm:"type:varchar(5);column:submission_grade" json:"submission_grade,omitempty"`
	SubmissionFeedback *string `gorm:"type:text;column:submission_feedback" json:"submission_feedback,omitempty"`

	SubmissionCreatedAt time.Time `gorm:"column:submission_created_at;not null;autoCreateTime" json:"submission_created_at"`
	SubmissionUpdatedAt time.Time `gorm:"column:submission_updated_at;not null;autoUpdateTime" json:"submission_updated_at"`
}

func (SubmissionModel) TableName() string { return "submissions" }

func (s *SubmissionModel) BeforeCreate(tx *gorm.DB) error {
	if s.SubmissionID == uuid.Nil {
		s.SubmissionID = uuid.New()
	}
	return nil
}
