package dto

import (
	"strings"

	m "vedaschool_backend/internals/features/school/admissions/model"
)

type CreateApplicationRequest struct {
	StudentName   string  `json:"application_student_name" validate:"required,min=2,max=120"`
	DateOfBirth   string  `json:"application_date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender        string  `json:"application_gender" validate:"omitempty,oneof=Male Female Other"`
	ClassApplied  string  `json:"application_class_applied" validate:"required,max=40"`
	GuardianName  string  `json:"application_guardian_name" validate:"required,min=2,max=120"`
	GuardianPhone string  `json:"application_guardian_phone" validate:"required,max=30"`
	GuardianEmail *string `json:"application_guardian_email" validate:"omitempty,email"`
	Address       *string `json:"application_address"`
	PrevSchool    *string `json:"application_prev_school" validate:"omitempty,max=160"`
}

func (r *CreateApplicationRequest) Normalize() {
	r.StudentName = strings.TrimSpace(r.StudentName)
	r.ClassApplied = strings.TrimSpace(r.ClassApplied)
	r.GuardianName = strings.TrimSpace(r.GuardianName)
	r.GuardianPhone = strings.TrimSpace(r.GuardianPhone)
	if r.GuardianEmail != nil {
		v := strings.ToLower(strings.TrimSpace(*r.GuardianEmail))
		r.GuardianEmail = &v
	}
}

func (r CreateApplicationRequest) ToModel() m.ApplicationModel {
	return m.ApplicationModel{
		ApplicationStudentName:   r.StudentName,
		ApplicationDateOfBirth:   r.DateOfBirth,
		ApplicationGender:        r.Gender,
		ApplicationClassApplied:  r.ClassApplied,
		ApplicationGuardianName:  r.GuardianName,
		ApplicationGuardianPhone: r.GuardianPhone,
		ApplicationGuardianEmail: r.GuardianEmail,
		ApplicationAddress:       r.Address,
		ApplicationPrevSchool:    r.PrevSchool,
		ApplicationStatus:        m.ApplicationPending,
	}
}

type UpdateApplicationRequest struct {
	StudentName   *string `json:"application_student_name" validate:"omitempty,min=2,max=120"`
	DateOfBirth   *string `json:"application_date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender        *string `json:"application_gender" validate:"omitempty,oneof=Male Female Other"`
	ClassApplied  *string `json:"application_class_applied" validate:"omitempty,max=40"`
	GuardianName  *string `json:"application_guardian_name" validate:"omitempty,min=2,max=120"`
	GuardianPhone *string `json:"application_guardian_phone" validate:"omitempty,max=30"`
	GuardianEmail *string `json:"application_guardian_email" validate:"omitempty,email"`
	Address       *string `json:"application_address"`
	PrevSchool    *string `json:"application_prev_school" validate:"omitempty,max=160"`
	Status        *string `json:"application_status" validate:"omitempty,oneof=Pending Approved Rejected"`
}

func (r UpdateApplicationRequest) Apply(am *m.ApplicationModel) {
	if r.StudentName != nil {
		am.ApplicationStudentName = strings.TrimSpace(*r.StudentName)
	}
	if r.DateOfBirth != nil {
		am.ApplicationDateOfBirth = *r.DateOfBirth
	}
	if r.Gender != nil {
		am.ApplicationGender = *r.Gender
	}
	if r.ClassApplied != nil {
		am.ApplicationClassApplied = strings.TrimSpace(*r.ClassApplied)
	}
	if r.GuardianName != nil {
		am.ApplicationGuardianName = strings.TrimSpace(*r.GuardianName)
	}
	if r.GuardianPhone != nil {
		am.ApplicationGuardianPhone = strings.TrimSpace(*r.GuardianPhone)
	}
	if r.GuardianEmail != nil {
		v := strings.ToLower(strings.TrimSpace(*r.GuardianEmail))
		am.ApplicationGuardianEmail = &v
	}
	if r.Address != nil {
		am.ApplicationAddress = r.Address
	}
	if r.PrevSchool != nil {
		am.ApplicationPrevSchool = r.PrevSchool
	}
	if r.Status != nil {
		am.ApplicationStatus = m.ApplicationStatus(*r.Status)
	}
}
