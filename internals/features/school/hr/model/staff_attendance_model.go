package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "Present"
	AttendanceStatusAbsent  AttendanceStatus = "Absent"
	AttendanceStatusLate    AttendanceStatus = "Late"
	AttendanceStatusHalfDay AttendanceStatus = "Half Day"
	AttendanceStatusLeave   AttendanceStatus = "Leave"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendanceStatusPresent, AttendanceStatusAbsent, AttendanceStatusLate,
		AttendanceStatusHalfDay, AttendanceStatusLeave:
		return true
	default:
		return false
	}
}

// One row per staff member per day, enforced by the composite unique
// index.
type StaffAttendanceModel struct {
	StaffAttendanceID uuid.UUID `gorm:"type:uuid;primaryKey;column:staff_attendance_id" json:"staff_attendance_id"`

	StaffAttendanceStaffID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_staff_attendances_staff_date;column:staff_attendance_staff_id" json:"staff_attendance_staff_id"`
	StaffAttendanceDate    string    `gorm:"type:varchar(10);not null;uniqueIndex:uq_staff_attendances_staff_date;column:staff_attendance_date" json:"staff_attendance_date"`

	StaffAttendanceStatus AttendanceStatus `gorm:"type:varchar(10);not null;column:staff_attendance_status" json:"staff_attendance_status"`
	StaffAttendanceNote   *string          `gorm:"type:text;column:staff_attendance_note" json:"staff_attendance_note,omitempty"`

	StaffAttendanceCreatedAt time.Time `gorm:"column:staff_attendance_created_at;not null;autoCreateTime" json:"staff_attendance_created_at"`
	StaffAttendanceUpdatedAt time.Time `gorm:"column:staff_attendance_updated_at;not null;autoUpdateTime" json:"staff_attendance_updated_at"`
}

func (StaffAttendanceModel) TableName() string { return "staff_attendances" }

func (a *StaffAttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if a.StaffAttendanceID == uuid.Nil {
		a.StaffAttendanceID = uuid.New()
	}
	return nil
}
