package dto

import (
	"time"

	"github.com/google/uuid"

	m "vedaschool_backend/internals/features/school/hr/model"
)

/* ===== Staff attendance ===== */

type CreateStaffAttendanceRequest struct {
	StaffID uuid.UUID          `json:"staff_attendance_staff_id" validate:"required"`
	Date    string             `json:"staff_attendance_date" validate:"required,datetime=2006-01-02"`
	Status  m.AttendanceStatus `json:"staff_attendance_status" validate:"required,oneof=Present Absent Late 'Half Day' Leave"`
	Note    *string            `json:"staff_attendance_note"`
}

func (r CreateStaffAttendanceRequest) ToModel() m.StaffAttendanceModel {
	return m.StaffAttendanceModel{
		StaffAttendanceStaffID: r.StaffID,
		StaffAttendanceDate:    r.Date,
		StaffAttendanceStatus:  r.Status,
		StaffAttendanceNote:    r.Note,
	}
}

type UpdateStaffAttendanceRequest struct {
	Status *m.AttendanceStatus `json:"staff_attendance_status" validate:"omitempty,oneof=Present Absent Late 'Half Day' Leave"`
	Note   *string             `json:"staff_attendance_note"`
}

func (r UpdateStaffAttendanceRequest) Apply(am *m.StaffAttendanceModel) {
	if r.Status != nil {
		am.StaffAttendanceStatus = *r.Status
	}
	if r.Note != nil {
		am.StaffAttendanceNote = r.Note
	}
}

/* ===== Staff payroll ===== */

type CreateStaffPayrollRequest struct {
	StaffID uuid.UUID `json:"staff_payroll_staff_id" validate:"required"`
	Month   int       `json:"staff_payroll_month" validate:"required,min=1,max=12"`
	Year    int       `json:"staff_payroll_year" validate:"required,min=2000,max=2100"`

	Basic      float64 `json:"staff_payroll_basic" validate:"min=0"`
	Allowances float64 `json:"staff_payroll_allowances" validate:"min=0"`
	Deductions float64 `json:"staff_payroll_deductions" validate:"min=0"`

	Status m.PayrollStatus `json:"staff_payroll_status" validate:"omitempty,oneof=Pending Paid"`
}

func (r *CreateStaffPayrollRequest) Normalize() {
	if r.Status == "" {
		r.Status = m.PayrollStatusPending
	}
}

func (r CreateStaffPayrollRequest) ToModel() m.StaffPayrollModel {
	p := m.StaffPayrollModel{
		StaffPayrollStaffID:    r.StaffID,
		StaffPayrollMonth:      r.Month,
		StaffPayrollYear:       r.Year,
		StaffPayrollBasic:      r.Basic,
		StaffPayrollAllowances: r.Allowances,
		StaffPayrollDeductions: r.Deductions,
		StaffPayrollStatus:     r.Status,
	}
	if r.Status == m.PayrollStatusPaid {
		now := time.Now()
		p.StaffPayrollPaidAt = &now
	}
	p.RecomputeNet()
	return p
}

type UpdateStaffPayrollRequest struct {
	Basic      *float64 `json:"staff_payroll_basic" validate:"omitempty,min=0"`
	Allowances *float64 `json:"staff_payroll_allowances" validate:"omitempty,min=0"`
	Deductions *float64 `json:"staff_payroll_deductions" validate:"omitempty,min=0"`

	Status *m.PayrollStatus `json:"staff_payroll_status" validate:"omitempty,oneof=Pending Paid"`
}

func (r UpdateStaffPayrollRequest) Apply(pm *m.StaffPayrollModel) {
	if r.Basic != nil {
		pm.StaffPayrollBasic = *r.Basic
	}
	if r.Allowances != nil {
		pm.StaffPayrollAllowances = *r.Allowances
	}
	if r.Deductions != nil {
		pm.StaffPayrollDeductions = *r.Deductions
	}
	if r.Status != nil {
		pm.StaffPayrollStatus = *r.Status
		if *r.Status == m.PayrollStatusPaid && pm.StaffPayrollPaidAt == nil {
			now := time.Now()
			pm.StaffPayrollPaidAt = &now
		}
		if *r.Status == m.PayrollStatusPending {
			pm.StaffPayrollPaidAt = nil
		}
	}
	pm.RecomputeNet()
}
