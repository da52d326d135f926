package dto

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	m "vedaschool_backend/internals/features/school/transport/model"
)

/* ===== Vehicles ===== */

type CreateVehicleRequest struct {
	RegistrationNo string `json:"vehicle_registration_no" validate:"required,min=1,max=20"`
	ModelName      string `json:"vehicle_model_name" validate:"omitempty,max=80"`
	Capacity       int    `json:"vehicle_capacity" validate:"omitempty,min=0,max=200"`

	DriverName  string `json:"vehicle_driver_name" validate:"omitempty,max=120"`
	DriverPhone string `json:"vehicle_driver_phone" validate:"omitempty,max=20"`

	Status m.VehicleStatus `json:"vehicle_status" validate:"omitempty,oneof=Active Maintenance Retired"`
}

func (r *CreateVehicleRequest) Normalize() {
	r.RegistrationNo = strings.ToUpper(strings.TrimSpace(r.RegistrationNo))
	r.ModelName = strings.TrimSpace(r.ModelName)
	r.DriverName = strings.TrimSpace(r.DriverName)
	r.DriverPhone = strings.TrimSpace(r.DriverPhone)
	if r.Status == "" {
		r.Status = m.VehicleStatusActive
	}
}

func (r CreateVehicleRequest) ToModel() m.VehicleModel {
	return m.VehicleModel{
		VehicleRegistrationNo: r.RegistrationNo,
		VehicleModelName:      r.ModelName,
		VehicleCapacity:       r.Capacity,
		VehicleDriverName:     r.DriverName,
		VehicleDriverPhone:    r.DriverPhone,
		VehicleStatus:         r.Status,
	}
}

type UpdateVehicleRequest struct {
	RegistrationNo *string `json:"vehicle_registration_no" validate:"omitempty,min=1,max=20"`
	ModelName      *string `json:"vehicle_model_name" validate:"omitempty,max=80"`
	Capacity       *int    `json:"vehicle_capacity" validate:"omitempty,min=0,max=200"`

	DriverName  *string `json:"vehicle_driver_name" validate:"omitempty,max=120"`
	DriverPhone *string `json:"vehicle_driver_phone" validate:"omitempty,max=20"`

	Status *m.VehicleStatus `json:"vehicle_status" validate:"omitempty,oneof=Active Maintenance Retired"`
}

func (r UpdateVehicleRequest) Apply(vm *m.VehicleModel) {
	if r.RegistrationNo != nil {
		vm.VehicleRegistrationNo = strings.ToUpper(strings.TrimSpace(*r.RegistrationNo))
	}
	if r.ModelName != nil {
		vm.VehicleModelName = strings.TrimSpace(*r.ModelName)
	}
	if r.Capacity != nil {
		vm.VehicleCapacity = *r.Capacity
	}
	if r.DriverName != nil {
		vm.VehicleDriverName = strings.TrimSpace(*r.DriverName)
	}
	if r.DriverPhone != nil {
		vm.VehicleDriverPhone = strings.TrimSpace(*r.DriverPhone)
	}
	if r.Status != nil {
		vm.VehicleStatus = *r.Status
	}
}

/* ===== Routes ===== */

type CreateRouteRequest struct {
	Name        string  `json:"route_name" validate:"required,min=1,max=120"`
	Description *string `json:"route_description"`
	StartPoint  string  `json:"route_start_point" validate:"omitempty,max=160"`
	EndPoint    string  `json:"route_end_point" validate:"omitempty,max=160"`
}

func (r *CreateRouteRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.StartPoint = strings.TrimSpace(r.StartPoint)
	r.EndPoint = strings.TrimSpace(r.EndPoint)
}

func (r CreateRouteRequest) ToModel() m.RouteModel {
	return m.RouteModel{
		RouteName:        r.Name,
		RouteDescription: r.Description,
		RouteStartPoint:  r.StartPoint,
		RouteEndPoint:    r.EndPoint,
	}
}

type UpdateRouteRequest struct {
	Name        *string `json:"route_name" validate:"omitempty,min=1,max=120"`
	Description *string `json:"route_description"`
	StartPoint  *string `json:"route_start_point" validate:"omitempty,max=160"`
	EndPoint    *string `json:"route_end_point" validate:"omitempty,max=160"`
}

func (r UpdateRouteRequest) Apply(rm *m.RouteModel) {
	if r.Name != nil {
		rm.RouteName = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		rm.RouteDescription = r.Description
	}
	if r.StartPoint != nil {
		rm.RouteStartPoint = strings.TrimSpace(*r.StartPoint)
	}
	if r.EndPoint != nil {
		rm.RouteEndPoint = strings.TrimSpace(*r.EndPoint)
	}
}

/* ===== Pickup points ===== */

type CreatePickupPointRequest struct {
	Name     string   `json:"pickup_point_name" validate:"required,min=1,max=120"`
	Landmark string   `json:"pickup_point_landmark" validate:"omitempty,max=160"`
	Lat      *float64 `json:"pickup_point_lat" validate:"omitempty,min=-90,max=90"`
	Lng      *float64 `json:"pickup_point_lng" validate:"omitempty,min=-180,max=180"`
}

func (r *CreatePickupPointRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Landmark = strings.TrimSpace(r.Landmark)
}

func (r CreatePickupPointRequest) ToModel() m.PickupPointModel {
	return m.PickupPointModel{
		PickupPointName:     r.Name,
		PickupPointLandmark: r.Landmark,
		PickupPointLat:      r.Lat,
		PickupPointLng:      r.Lng,
	}
}

type UpdatePickupPointRequest struct {
	Name     *string  `json:"pickup_point_name" validate:"omitempty,min=1,max=120"`
	Landmark *string  `json:"pickup_point_landmark" validate:"omitempty,max=160"`
	Lat      *float64 `json:"pickup_point_lat" validate:"omitempty,min=-90,max=90"`
	Lng      *float64 `json:"pickup_point_lng" validate:"omitempty,min=-180,max=180"`
}

func (r UpdatePickupPointRequest) Apply(pm *m.PickupPointModel) {
	if r.Name != nil {
		pm.PickupPointName = strings.TrimSpace(*r.Name)
	}
	if r.Landmark != nil {
		pm.PickupPointLandmark = strings.TrimSpace(*r.Landmark)
	}
	if r.Lat != nil {
		pm.PickupPointLat = r.Lat
	}
	if r.Lng != nil {
		pm.PickupPointLng = r.Lng
	}
}

/* ===== Vehicle assignments ===== */

type CreateVehicleAssignmentRequest struct {
	RouteID    uuid.UUID   `json:"vehicle_assignment_route_id" validate:"required"`
	VehicleIDs []uuid.UUID `json:"vehicle_assignment_vehicle_ids" validate:"required,min=1"`
}

func (r CreateVehicleAssignmentRequest) ToModel() m.VehicleAssignmentModel {
	ids, _ := json.Marshal(r.VehicleIDs)
	return m.VehicleAssignmentModel{
		VehicleAssignmentRouteID:    r.RouteID,
		VehicleAssignmentVehicleIDs: ids,
	}
}

type UpdateVehicleAssignmentRequest struct {
	VehicleIDs *[]uuid.UUID `json:"vehicle_assignment_vehicle_ids" validate:"omitempty,min=1"`
}

func (r UpdateVehicleAssignmentRequest) Apply(am *m.VehicleAssignmentModel) {
	if r.VehicleIDs != nil {
		ids, _ := json.Marshal(*r.VehicleIDs)
		am.VehicleAssignmentVehicleIDs = ids
	}
}

/* ===== Route stops ===== */

type CreateRouteStopRequest struct {
	RouteID       uuid.UUID `json:"route_stop_route_id" validate:"required"`
	PickupPointID uuid.UUID `json:"route_stop_pickup_point_id" validate:"required"`
	Order         int       `json:"route_stop_order" validate:"min=0"`
}

func (r CreateRouteStopRequest) ToModel() m.RouteStopModel {
	return m.RouteStopModel{
		RouteStopRouteID:       r.RouteID,
		RouteStopPickupPointID: r.PickupPointID,
		RouteStopOrder:         r.Order,
	}
}

type UpdateRouteStopRequest struct {
	Order *int `json:"route_stop_order" validate:"omitempty,min=0"`
}

func (r UpdateRouteStopRequest) Apply(sm *m.RouteStopModel) {
	if r.Order != nil {
		sm.RouteStopOrder = *r.Order
	}
}
