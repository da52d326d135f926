package dto

import (
	"strings"

	"github.com/google/uuid"

	m "vedaschool_backend/internals/features/school/academics/submissions/model"
)

type CreateSubmissionRequest struct {
	AssignmentTitle string    `json:"submission_assignment_title" validate:"required,min=1,max=160"`
	StudentID       uuid.UUID `json:"submission_student_id" validate:"required"`
	FilePath        string    `json:"submission_file_path" validate:"omitempty,max=1024"`

	Status m.SubmissionStatus `json:"submission_status" validate:"omitempty,oneof=Submitted Late Graded Resubmit"`

	Marks    *int    `json:"submission_marks" validate:"omitempty,min=0"`
	Grade    *string `json:"submission_grade" validate:"omitempty,max=5"`
	Feedback *string `json:"submission_feedback"`
}

func (r *CreateSubmissionRequest) Normalize() {
	r.AssignmentTitle = strings.TrimSpace(r.AssignmentTitle)
	r.FilePath = strings.TrimSpace(r.FilePath)
	if r.Status == "" {
		r.Status = m.SubmissionStatusSubmitted
	}
}

func (r CreateSubmissionRequest) ToModel() m.SubmissionModel {
	return m.SubmissionModel{
		SubmissionAssignmentTitle: r.AssignmentTitle,
		SubmissionStudentID:       r.StudentID,
		SubmissionFilePath:        r.FilePath,
		SubmissionStatus:          r.Status,
		SubmissionMarks:           r.Marks,
		SubmissionGrade:           r.Grade,
		SubmissionFeedback:        r.Feedback,
	}
}

type UpdateSubmissionRequest struct {
	AssignmentTitle *string    `json:"submission_assignment_title" validate:"omitempty,min=1,max=160"`
	StudentID       *uuid.UUID `json:"submission_student_id"`
	FilePath        *string    `json:"submission_file_path" validate:"omitempty,max=1024"`

	Status *m.SubmissionStatus `json:"submission_status" validate:"omitempty,oneof=Submitted Late Graded Resubmit"`

	Marks    *int    `json:"submission_marks" validate:"omitempty,min=0"`
	Grade    *string `json:"submission_grade" validate:"omitempty,max=5"`
	Feedback *string `json:"submission_feedback"`
}

func (r UpdateSubmissionRequest) Apply(sm *m.SubmissionModel) {
	if r.AssignmentTitle != nil {
		sm.SubmissionAssignmentTitle = strings.TrimSpace(*r.AssignmentTitle)
	}
	if r.StudentID != nil {
		sm.SubmissionStudentID = *r.StudentID
	}
	if r.FilePath != nil {
		sm.SubmissionFilePath = strings.TrimSpace(*r.FilePath)
	}
	if r.Status != nil {
		sm.SubmissionStatus = *r.Status
	}
	if r.Marks != nil {
		sm.SubmissionMarks = r.Marks
	}
	if r.Grade != nil {
		sm.SubmissionGrade = r.Grade
	}
	if r.Feedback != nil {
		sm.SubmissionFeedback = r.Feedback
	}
}
