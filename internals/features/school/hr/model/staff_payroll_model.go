package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PayrollStatus string

const (
	PayrollStatusPending PayrollStatus = "Pending"
	PayrollStatusPaid    PayrollStatus = "Paid"
)

func (s PayrollStatus) Valid() bool {
	return s == PayrollStatusPending || s == PayrollStatusPaid
}

// One payroll row per staff member per month, enforced by the composite
// unique index. Net pay is always derived as basic+allowances-deductions.
type StaffPayrollModel struct {
	StaffPayrollID uuid.UUID `gorm:"type:uuid;primaryKey;column:staff_payroll_id" json:"staff_payroll_id"`

	StaffPayrollStaffID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_staff_payrolls_staff_month_year;column:staff_payroll_staff_id" json:"staff_payroll_staff_id"`
	StaffPayrollMonth   int       `gorm:"not null;uniqueIndex:uq_staff_payrolls_staff_month_year;column:staff_payroll_month" json:"staff_payroll_month"`
	StaffPayrollYear    int       `gorm:"not null;uniqueIndex:uq_staff_payrolls_staff_month_year;column:staff_payroll_year" json:"staff_payroll_year"`

	StaffPayrollBasic      float64 `gorm:"not null;default:0;column:staff_payroll_basic" json:"staff_payroll_basic"`
	StaffPayrollAllowances float64 `gorm:"not null;default:0;column:staff_payroll_allowances" json:"staff_payroll_allowances"`
	StaffPayrollDeductions float64 `gorm:"not null;default:0;column:staff_payroll_deductions" json:"staff_payroll_deductions"`
	StaffPayrollNet        float64 `gorm:"not null;default:0;column:staff_payroll_net" json:"staff_payroll_net"`

	StaffPayrollStatus PayrollStatus `gorm:"type:varchar(10);not null;default:Pending;column:staff_payroll_status" json:"staff_payroll_status"`
	StaffPayrollPaidAt *time.Time    `gorm:"column:staff_payroll_paid_at" json:"staff_payroll_paid_at,omitempty"`

	StaffPayrollCreatedAt time.Time `gorm:"column:staff_payroll_created_at;not null;autoCreateTime" json:"staff_payroll_created_at"`
	StaffPayrollUpdatedAt time.Time `gorm:"column:staff_payroll_updated_at;not null;autoUpdateTime" json:"staff_payroll_updated_at"`
}

func (StaffPayrollModel) TableName() string { return "staff_payrolls" }

func (p *StaffPayrollModel) BeforeCreate(tx *gorm.DB) error {
	if p.StaffPayrollID == uuid.Nil {
		p.StaffPayrollID = uuid.New()
	}
	return nil
}

// RecomputeNet keeps the derived pay field consistent with its parts.
func (p *StaffPayrollModel) RecomputeNet() {
	p.StaffPayrollNet = p.StaffPayrollBasic + p.StaffPayrollAllowances - p.StaffPayrollDeductions
}
