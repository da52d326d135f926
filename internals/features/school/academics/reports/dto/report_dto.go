package dto

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/google/uuid"

	m "vedaschool_backend/internals/features/school/academics/reports/model"
)

type CreateReportRequest struct {
	StudentID uuid.UUID `json:"report_student_id" validate:"required"`
	ClassName string    `json:"report_class_name" validate:"required,min=1,max=40"`
	Section   string    `json:"report_section" validate:"omitempty,max=20"`
	ExamID    uuid.UUID `json:"report_exam_id" validate:"required"`

	Subjects []m.ReportSubjectMark `json:"report_subjects" validate:"required,min=1,dive"`

	Result m.ReportResult `json:"report_result" validate:"omitempty,oneof=Pass Fail Pending"`
}

func (r *CreateReportRequest) Normalize() {
	r.ClassName = strings.TrimSpace(r.ClassName)
	r.Section = strings.TrimSpace(r.Section)
	if r.Result == "" {
		r.Result = m.ReportResultPending
	}
}

func (r CreateReportRequest) ToModel() m.ReportModel {
	subjects, _ := json.Marshal(r.Subjects)
	obtained, max, pct := Totals(r.Subjects)
	return m.ReportModel{
		ReportStudentID:     r.StudentID,
		ReportClassName:     r.ClassName,
		ReportSection:       r.Section,
		ReportExamID:        r.ExamID,
		ReportSubjects:      subjects,
		ReportTotalObtained: obtained,
		ReportTotalMax:      max,
		ReportPercentage:    pct,
		ReportResult:        r.Result,
	}
}

type UpdateReportRequest struct {
	StudentID *uuid.UUID `json:"report_student_id"`
	ClassName *string    `json:"report_class_name" validate:"omitempty,min=1,max=40"`
	Section   *string    `json:"report_section" validate:"omitempty,max=20"`
	ExamID    *uuid.UUID `json:"report_exam_id"`

	Subjects *[]m.ReportSubjectMark `json:"report_subjects" validate:"omitempty,min=1,dive"`

	Result *m.ReportResult `json:"report_result" validate:"omitempty,oneof=Pass Fail Pending"`
}

func (r UpdateReportRequest) Apply(rm *m.ReportModel) {
	if r.StudentID != nil {
		rm.ReportStudentID = *r.StudentID
	}
	if r.ClassName != nil {
		rm.ReportClassName = strings.TrimSpace(*r.ClassName)
	}
	if r.Section != nil {
		rm.ReportSection = strings.TrimSpace(*r.Section)
	}
	if r.ExamID != nil {
		rm.ReportExamID = *r.ExamID
	}
	if r.Subjects != nil {
		b, _ := json.Marshal(*r.Subjects)
		rm.ReportSubjects = b
		obtained, max, pct := Totals(*r.Subjects)
		rm.ReportTotalObtained = obtained
		rm.ReportTotalMax = max
		rm.ReportPercentage = pct
	}
	if r.Result != nil {
		rm.ReportResult = *r.Result
	}
}

// Totals recomputes the aggregate fields from the per-subject marks.
// The client-supplied totals are never trusted.
func Totals(subjects []m.ReportSubjectMark) (obtained, max int, pct float64) {
	for _, s := range subjects {
		obtained += s.MarksObtained
		max += s.MaxMarks
	}
	if max > 0 {
		pct = math.Round(float64(obtained)/float64(max)*10000) / 100
	}
	return obtained, max, pct
}
