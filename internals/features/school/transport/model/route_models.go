package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RouteModel struct {
	RouteID uuid.UUID `gorm:"type:uuid;primaryKey;column:route_id" json:"route_id"`

	RouteName        string  `gorm:"type:varchar(120);not null;uniqueIndex:uq_routes_name;column:route_name" json:"route_name"`
	RouteDescription *string `gorm:"type:text;column:route_description" json:"route_description,omitempty"`

	RouteStartPoint string `gorm:"type:varchar(160);column:route_start_point" json:"route_start_point"`
	RouteEndPoint   string `gorm:"type:varchar(160);column:route_end_point" json:"route_end_point"`

	RouteCreatedAt time.Time `gorm:"column:route_created_at;not null;autoCreateTime" json:"route_created_at"`
	RouteUpdatedAt time.Time `gorm:"column:route_updated_at;not null;autoUpdateTime" json:"route_updated_at"`
}

func (RouteModel) TableName() string { return "routes" }

func (r *RouteModel) BeforeCreate(tx *gorm.DB) error {
	if r.RouteID == uuid.Nil {
		r.RouteID = uuid.New()
	}
	return nil
}

type PickupPointModel struct {
	PickupPointID uuid.UUID `gorm:"type:uuid;primaryKey;column:pickup_point_id" json:"pickup_point_id"`

	PickupPointName     string   `gorm:"type:varchar(120);not null;column:pickup_point_name" json:"pickup_point_name"`
	PickupPointLandmark string   `gorm:"type:varchar(160);column:pickup_point_landmark" json:"pickup_point_landmark"`
	PickupPointLat      *float64 `gorm:"column:pickup_point_lat" json:"pickup_point_lat,omitempty"`
	PickupPointLng      *float64 `gorm:"column:pickup_point_lng" json:"pickup_point_lng,omitempty"`

	PickupPointCreatedAt time.Time `gorm:"column:pickup_point_created_at;not null;autoCreateTime" json:"pickup_point_created_at"`
	PickupPointUpdatedAt time.Time `gorm:"column:pickup_point_updated_at;not null;autoUpdateTime" json:"pickup_point_updated_at"`
}

func (PickupPointModel) TableName() string { return "pickup_points" }

func (p *PickupPointModel) BeforeCreate(tx *gorm.DB) error {
	if p.PickupPointID == uuid.Nil {
		p.PickupPointID = uuid.New()
	}
	return nil
}

// One assignment row per route, listing the vehicles serving it.
type VehicleAssignmentModel struct {
	VehicleAssignmentID uuid.UUID `gorm:"type:uuid;primaryKey;column:vehicle_assignment_id" json:"vehicle_assignment_id"`

	VehicleAssignmentRouteID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_vehicle_assignments_route;column:vehicle_assignment_route_id" json:"vehicle_assignment_route_id"`
	VehicleAssignmentVehicleIDs datatypes.JSON `gorm:"column:vehicle_assignment_vehicle_ids" json:"vehicle_assignment_vehicle_ids"`

	VehicleAssignmentCreatedAt time.Time `gorm:"column:vehicle_assignment_created_at;not null;autoCreateTime" json:"vehicle_assignment_created_at"`
	VehicleAssignmentUpdatedAt time.Time `gorm:"column:vehicle_assignment_updated_at;not null;autoUpdateTime" json:"vehicle_assignment_updated_at"`
}

func (VehicleAssignmentModel) TableName() string { return "vehicle_assignments" }

func (a *VehicleAssignmentModel) BeforeCreate(tx *gorm.DB) error {
	if a.VehicleAssignmentID == uuid.Nil {
		a.VehicleAssignmentID = uuid.New()
	}
	return nil
}

// Join row placing a pickup point on a route at a given order. Deleting
// a route does not cascade here; the references are validated on write
// only.
type RouteStopModel struct {
	RouteStopID uuid.UUID `gorm:"type:uuid;primaryKey;column:route_stop_id" json:"route_stop_id"`

	RouteStopRouteID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_route_stops_route_point;column:route_stop_route_id" json:"route_stop_route_id"`
	RouteStopPickupPointID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_route_stops_route_point;column:route_stop_pickup_point_id" json:"route_stop_pickup_point_id"`

	RouteStopOrder int `gorm:"not null;default:0;column:route_stop_order" json:"route_stop_order"`

	RouteStopCreatedAt time.Time `gorm:"column:route_stop_created_at;not null;autoCreateTime" json:"route_stop_created_at"`
	RouteStopUpdatedAt time.Time `gorm:"column:route_stop_updated_at;not null;autoUpdateTime" json:"route_stop_updated_at"`
}

func (RouteStopModel) TableName() string { return "route_stops" }

func (s *RouteStopModel) BeforeCreate(tx *gorm.DB) error {
	if s.RouteStopID == uuid.Nil {
		s.RouteStopID = uuid.New()
	}
	return nil
}
