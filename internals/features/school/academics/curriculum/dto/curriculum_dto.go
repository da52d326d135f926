package dto

import (
	"encoding/json"
	"strings"

	m "vedaschool_backend/internals/features/school/academics/curriculum/model"
)

type CreateCurriculumRequest struct {
	AcademicYear string `json:"curriculum_academic_year" validate:"required,min=4,max=10"`
	ClassName    string `json:"curriculum_class_name" validate:"required,min=1,max=40"`
	Section      string `json:"curriculum_section" validate:"required,min=1,max=20"`

	Subjects     []string `json:"curriculum_subjects"`
	Electives    []string `json:"curriculum_electives"`
	Cocurricular []string `json:"curriculum_cocurricular"`
}

func (r *CreateCurriculumRequest) Normalize() {
	r.AcademicYear = strings.TrimSpace(r.AcademicYear)
	r.ClassName = strings.TrimSpace(r.ClassName)
	r.Section = strings.TrimSpace(r.Section)
}

func (r CreateCurriculumRequest) ToModel() m.CurriculumModel {
	subjects, _ := json.Marshal(r.Subjects)
	electives, _ := json.Marshal(r.Electives)
	cocurricular, _ := json.Marshal(r.Cocurricular)
	return m.CurriculumModel{
		CurriculumAcademicYear: r.AcademicYear,
		CurriculumClassName:    r.ClassName,
		CurriculumSection:      r.Section,
		CurriculumSubjects:     subjects,
		CurriculumElectives:    electives,
		CurriculumCocurricular: cocurricular,
	}
}

type UpdateCurriculumRequest struct {
	AcademicYear *string `json:"curriculum_academic_year" validate:"omitempty,min=4,max=10"`
	ClassName    *string `json:"curriculum_class_name" validate:"omitempty,min=1,max=40"`
	Section      *string `json:"curriculum_section" validate:"omitempty,min=1,max=20"`

	Subjects     *[]string `json:"curriculum_subjects"`
	Electives    *[]string `json:"curriculum_electives"`
	Cocurricular *[]string `json:"curriculum_cocurricular"`
}

func (r UpdateCurriculumRequest) Apply(cm *m.CurriculumModel) {
	if r.AcademicYear != nil {
		cm.CurriculumAcademicYear = strings.TrimSpace(*r.AcademicYear)
	}
	if r.ClassName != nil {
		cm.CurriculumClassName = strings.TrimSpace(*r.ClassName)
	}
	if r.Section != nil {
		cm.CurriculumSection = strings.TrimSpace(*r.Section)
	}
	if r.Subjects != nil {
		b, _ := json.Marshal(*r.Subjects)
		cm.CurriculumSubjects = b
	}
	if r.Electives != nil {
		b, _ := json.Marshal(*r.Electives)
		cm.CurriculumElectives = b
	}
	if r.Cocurricular != nil {
		b, _ := json.Marshal(*r.Cocurricular)
		cm.CurriculumCocurricular = b
	}
}
