package dto

import (
	"strings"

	m "vedaschool_backend/internals/features/school/academics/exams/model"
)

type CreateExamRequest struct {
	AcademicYear string `json:"exam_academic_year" validate:"required,min=4,max=10"`
	ClassName    string `json:"exam_class_name" validate:"required,min=1,max=40"`
	Section      string `json:"exam_section" validate:"omitempty,max=20"`
	Subject      string `json:"exam_subject" validate:"required,min=1,max=80"`

	Type  string `json:"exam_type" validate:"required,oneof='Unit Test' Midterm Final Practical"`
	Title string `json:"exam_title" validate:"required,min=1,max=160"`

	MaxMarks     int `json:"exam_max_marks" validate:"required,min=1"`
	PassingMarks int `json:"exam_passing_marks" validate:"min=0"`

	Date            string `json:"exam_date" validate:"required,datetime=2006-01-02"`
	StartTime       string `json:"exam_start_time" validate:"omitempty,datetime=15:04"`
	DurationMinutes int    `json:"exam_duration_minutes" validate:"omitempty,min=0,max=600"`
	Room            string `json:"exam_room" validate:"omitempty,max=40"`

	Status m.ExamStatus `json:"exam_status" validate:"omitempty,oneof=Scheduled Completed Cancelled"`
}

func (r *CreateExamRequest) Normalize() {
	r.AcademicYear = strings.TrimSpace(r.AcademicYear)
	r.ClassName = strings.TrimSpace(r.ClassName)
	r.Section = strings.TrimSpace(r.Section)
	r.Subject = strings.TrimSpace(r.Subject)
	r.Title = strings.TrimSpace(r.Title)
	r.Room = strings.TrimSpace(r.Room)
	if r.Status == "" {
		r.Status = m.ExamStatusScheduled
	}
}

func (r CreateExamRequest) ToModel() m.ExamModel {
	return m.ExamModel{
		ExamAcademicYear:    r.AcademicYear,
		ExamClassName:       r.ClassName,
		ExamSection:         r.Section,
		ExamSubject:         r.Subject,
		ExamType:            r.Type,
		ExamTitle:           r.Title,
		ExamMaxMarks:        r.MaxMarks,
		ExamPassingMarks:    r.PassingMarks,
		ExamDate:            r.Date,
		ExamStartTime:       r.StartTime,
		ExamDurationMinutes: r.DurationMinutes,
		ExamRoom:            r.Room,
		ExamStatus:          r.Status,
	}
}

type UpdateExamRequest struct {
	AcademicYear *string `json:"exam_academic_year" validate:"omitempty,min=4,max=10"`
	ClassName    *string `json:"exam_class_name" validate:"omitempty,min=1,max=40"`
	Section      *string `json:"exam_section" validate:"omitempty,max=20"`
	Subject      *string `json:"exam_subject" validate:"omitempty,min=1,max=80"`

	Type  *string `json:"exam_type" validate:"omitempty,oneof='Unit Test' Midterm Final Practical"`
	Title *string `json:"exam_title" validate:"omitempty,min=1,max=160"`

	MaxMarks     *int `json:"exam_max_marks" validate:"omitempty,min=1"`
	PassingMarks *int `json:"exam_passing_marks" validate:"omitempty,min=0"`

	Date            *string `json:"exam_date" validate:"omitempty,datetime=2006-01-02"`
	StartTime       *string `json:"exam_start_time" validate:"omitempty,datetime=15:04"`
	DurationMinutes *int    `json:"exam_duration_minutes" validate:"omitempty,min=0,max=600"`
	Room            *string `json:"exam_room" validate:"omitempty,max=40"`

	Status *m.ExamStatus `json:"exam_status" validate:"omitempty,oneof=Scheduled Completed Cancelled"`
}

func (r UpdateExamRequest) Apply(e *m.ExamModel) {
	if r.AcademicYear != nil {
		e.ExamAcademicYear = strings.TrimSpace(*r.AcademicYear)
	}
	if r.ClassName != nil {
		e.ExamClassName = strings.TrimSpace(*r.ClassName)
	}
	if r.Section != nil {
		e.ExamSection = strings.TrimSpace(*r.Section)
	}
	if r.Subject != nil {
		e.ExamSubject = strings.TrimSpace(*r.Subject)
	}
	if r.Type != nil {
		e.ExamType = *r.Type
	}
	if r.Title != nil {
		e.ExamTitle = strings.TrimSpace(*r.Title)
	}
	if r.MaxMarks != nil {
		e.ExamMaxMarks = *r.MaxMarks
	}
	if r.PassingMarks != nil {
		e.ExamPassingMarks = *r.PassingMarks
	}
	if r.Date != nil {
		e.ExamDate = *r.Date
	}
	if r.StartTime != nil {
		e.ExamStartTime = *r.StartTime
	}
	if r.DurationMinutes != nil {
		e.ExamDurationMinutes = *r.DurationMinutes
	}
	if r.Room != nil {
		e.ExamRoom = strings.TrimSpace(*r.Room)
	}
	if r.Status != nil {
		e.ExamStatus = *r.Status
	}
}
