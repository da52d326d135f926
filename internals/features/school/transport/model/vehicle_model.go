package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VehicleStatus string

const (
	VehicleStatusActive      VehicleStatus = "Active"
	VehicleStatusMaintenance VehicleStatus = "Maintenance"
	VehicleStatusRetired     VehicleStatus = "Retired"
)

func (s VehicleStatus) Valid() bool {
	switch s {
	case VehicleStatusActive, VehicleStatusMaintenance, VehicleStatusRetired:
		return true
	default:
		return false
	}
}

type VehicleModel struct {
	VehicleID uuid.UUID `gorm:"type:uuid;primaryKey;column:vehicle_id" json:"vehicle_id"`

	VehicleRegistrationNo string `gorm:"type:varchar(20);not null;uniqueIndex:uq_vehicles_registration_no;column:vehicle_registration_no" json:"vehicle_registration_no"`
	VehicleModelName      string `gorm:"type:varchar(80);column:vehicle_model_name" json:"vehicle_model_name"`
	VehicleCapacity       int    `gorm:"not null;default:0;column:vehicle_capacity" json:"vehicle_capacity"`

	VehicleDriverName  string `gorm:"type:varchar(120);column:vehicle_driver_name" json:"vehicle_driver_name"`
	VehicleDriverPhone string `gorm:"type:varchar(20);column:vehicle_driver_phone" json:"vehicle_driver_phone"`

	VehicleStatus VehicleStatus `gorm:"type:varchar(20);not null;default:Active;column:vehicle_status" json:"vehicle_status"`

	VehicleCreatedAt time.Time `gorm:"column:vehicle_created_at;not null;autoCreateTime" json:"vehicle_created_at"`
	VehicleUpdatedAt time.Time `gorm:"column:vehicle_updated_at;not null;autoUpdateTime" json:"vehicle_updated_at"`
}

func (VehicleModel) TableName() string { return "vehicles" }

func (v *VehicleModel) BeforeCreate(tx *gorm.DB) error {
	if v.VehicleID == uuid.Nil {
		v.VehicleID = uuid.New()
	}
	return nil
}
