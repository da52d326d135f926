package dto

import (
	"strings"

	m "vedaschool_backend/internals/features/school/frontoffice/model"
)

/* ===== Setup entries ===== */

type CreateSetupRequest struct {
	Type        m.FrontOfficeSetupType `json:"setup_type" validate:"required,oneof=Purpose 'Complaint Type' Source Reference"`
	Name        string                 `json:"setup_name" validate:"required,min=1,max=80"`
	Description *string                `json:"setup_description"`
}

func (r *CreateSetupRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r CreateSetupRequest) ToModel() m.FrontOfficeSetupModel {
	return m.FrontOfficeSetupModel{
		SetupType:        r.Type,
		SetupName:        r.Name,
		SetupDescription: r.Description,
	}
}

type UpdateSetupRequest struct {
	Type        *m.FrontOfficeSetupType `json:"setup_type" validate:"omitempty,oneof=Purpose 'Complaint Type' Source Reference"`
	Name        *string                 `json:"setup_name" validate:"omitempty,min=1,max=80"`
	Description *string                 `json:"setup_description"`
}

func (r UpdateSetupRequest) Apply(sm *m.FrontOfficeSetupModel) {
	if r.Type != nil {
		sm.SetupType = *r.Type
	}
	if r.Name != nil {
		sm.SetupName = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		sm.SetupDescription = r.Description
	}
}

/* ===== Visitor book ===== */

type CreateVisitorRequest struct {
	Purpose     string `json:"visitor_purpose" validate:"required,min=1,max=80"`
	MeetingWith string `json:"visitor_meeting_with" validate:"omitempty,max=120"`

	Name    string `json:"visitor_name" validate:"required,min=1,max=120"`
	Phone   string `json:"visitor_phone" validate:"omitempty,max=20"`
	IDProof string `json:"visitor_id_proof" validate:"omitempty,max=80"`

	Persons int `json:"visitor_persons" validate:"omitempty,min=1,max=100"`

	Date    string `json:"visitor_date" validate:"required,datetime=2006-01-02"`
	TimeIn  string `json:"visitor_time_in" validate:"omitempty,datetime=15:04"`
	TimeOut string `json:"visitor_time_out" validate:"omitempty,datetime=15:04"`

	Note *string `json:"visitor_note"`
}

func (r *CreateVisitorRequest) Normalize() {
	r.Purpose = strings.TrimSpace(r.Purpose)
	r.MeetingWith = strings.TrimSpace(r.MeetingWith)
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	r.IDProof = strings.TrimSpace(r.IDProof)
	if r.Persons == 0 {
		r.Persons = 1
	}
}

func (r CreateVisitorRequest) ToModel() m.VisitorBookModel {
	return m.VisitorBookModel{
		VisitorPurpose:     r.Purpose,
		VisitorMeetingWith: r.MeetingWith,
		VisitorName:        r.Name,
		VisitorPhone:       r.Phone,
		VisitorIDProof:     r.IDProof,
		VisitorPersons:     r.Persons,
		VisitorDate:        r.Date,
		VisitorTimeIn:      r.TimeIn,
		VisitorTimeOut:     r.TimeOut,
		VisitorNote:        r.Note,
	}
}

type UpdateVisitorRequest struct {
	Purpose     *string `json:"visitor_purpose" validate:"omitempty,min=1,max=80"`
	MeetingWith *string `json:"visitor_meeting_with" validate:"omitempty,max=120"`

	Name    *string `json:"visitor_name" validate:"omitempty,min=1,max=120"`
	Phone   *string `json:"visitor_phone" validate:"omitempty,max=20"`
	IDProof *string `json:"visitor_id_proof" validate:"omitempty,max=80"`

	Persons *int `json:"visitor_persons" validate:"omitempty,min=1,max=100"`

	Date    *string `json:"visitor_date" validate:"omitempty,datetime=2006-01-02"`
	TimeIn  *string `json:"visitor_time_in" validate:"omitempty,datetime=15:04"`
	TimeOut *string `json:"visitor_time_out" validate:"omitempty,datetime=15:04"`

	Note *string `json:"visitor_note"`
}

func (r UpdateVisitorRequest) Apply(vm *m.VisitorBookModel) {
	if r.Purpose != nil {
		vm.VisitorPurpose = strings.TrimSpace(*r.Purpose)
	}
	if r.MeetingWith != nil {
		vm.VisitorMeetingWith = strings.TrimSpace(*r.MeetingWith)
	}
	if r.Name != nil {
		vm.VisitorName = strings.TrimSpace(*r.Name)
	}
	if r.Phone != nil {
		vm.VisitorPhone = strings.TrimSpace(*r.Phone)
	}
	if r.IDProof != nil {
		vm.VisitorIDProof = strings.TrimSpace(*r.IDProof)
	}
	if r.Persons != nil {
		vm.VisitorPersons = *r.Persons
	}
	if r.Date != nil {
		vm.VisitorDate = *r.Date
	}
	if r.TimeIn != nil {
		vm.VisitorTimeIn = *r.TimeIn
	}
	if r.TimeOut != nil {
		vm.VisitorTimeOut = *r.TimeOut
	}
	if r.Note != nil {
		vm.VisitorNote = r.Note
	}
}
