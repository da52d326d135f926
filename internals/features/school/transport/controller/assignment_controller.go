package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	transportDTO "vedaschool_backend/internals/features/school/transport/dto"
	transportModel "vedaschool_backend/internals/features/school/transport/model"
	helper "vedaschool_backend/internals/helpers"
)

type VehicleAssignmentController struct {
	DB *gorm.DB
}

func routeExists(tx *gorm.DB, id uuid.UUID) (bool, error) {
	var n int64
	err := tx.Model(&transportModel.RouteModel{}).
		Where("route_id = ?", id).Count(&n).Error
	return n > 0, err
}

func pickupPointExists(tx *gorm.DB, id uuid.UUID) (bool, error) {
	var n int64
	err := tx.Model(&transportModel.PickupPointModel{}).
		Where("pickup_point_id = ?", id).Count(&n).Error
	return n > 0, err
}

func vehiclesExist(tx *gorm.DB, ids []uuid.UUID) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}
	var n int64
	err := tx.Model(&transportModel.VehicleModel{}).
		Where("vehicle_id IN ?", ids).Count(&n).Error
	return n == int64(len(ids)), err
}

// GET /transport/assignments
func (h *VehicleAssignmentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&transportModel.VehicleAssignmentModel{})
	if raw := strings.TrimSpace(c.Query("route_id")); raw != "" {
		rid, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid route_id filter")
		}
		q = q.Where("vehicle_assignment_route_id = ?", rid)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count assignments")
	}

	var rows []transportModel.VehicleAssignmentModel
	if err := q.Order("vehicle_assignment_created_at ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list assignments")
	}
	return helper.JsonList(c, "Vehicle assignments", rows,
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /transport/assignments/:id
func (h *VehicleAssignmentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	var row transportModel.VehicleAssignmentModel
	if err := h.DB.First(&row, "vehicle_assignment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Vehicle assignment not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
	}
	return helper.JsonOK(c, "Vehicle assignment detail", row)
}

// POST /transport/assignments
// The route and every referenced vehicle must exist before the
// assignment row is written.
func (h *VehicleAssignmentController) Create(c *fiber.Ctx) error {
	var req transportDTO.CreateVehicleAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := req.ToModel()
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := routeExists(tx, req.RouteID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
		}
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "Referenced route does not exist")
		}
		ok, err = vehiclesExist(tx, req.VehicleIDs)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
		}
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "One or more referenced vehicles do not exist")
		}
		if err := tx.Create(&row).Error; err != nil {
			return helper.TranslateDBError(err, "Vehicle assignment not found",
				"This route already has a vehicle assignment")
		}
		return nil
	})
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Vehicle assignment created", row)
}

// PUT /transport/assignments/:id
func (h *VehicleAssignmentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req transportDTO.UpdateVehicleAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row transportModel.VehicleAssignmentModel
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&row, "vehicle_assignment_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Vehicle assignment not found")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
		}
		if req.VehicleIDs != nil {
			ok, err := vehiclesExist(tx, *req.VehicleIDs)
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
			}
			if !ok {
				return fiber.NewError(fiber.StatusBadRequest, "One or more referenced vehicles do not exist")
			}
		}
		req.Apply(&row)
		if err := tx.Save(&row).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to update vehicle assignment")
		}
		return nil
	})
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Vehicle assignment updated", row)
}

// DELETE /transport/assignments/:id
func (h *VehicleAssignmentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	res := h.DB.Delete(&transportModel.VehicleAssignmentModel{}, "vehicle_assignment_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete vehicle assignment")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Vehicle assignment not found")
	}
	return helper.JsonDeleted(c, "Vehicle assignment deleted")
}

type RouteStopController struct {
	DB *gorm.DB
}

// GET /transport/route-stops
func (h *RouteStopController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	q := h.DB.Model(&transportModel.RouteStopModel{})
	if raw := strings.TrimSpace(c.Query("route_id")); raw != "" {
		rid, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid route_id filter")
		}
		q = q.Where("route_stop_route_id = ?", rid)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count route stops")
	}

	var rows []transportModel.RouteStopModel
	if err := q.Order("route_stop_order ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list route stops")
	}
	return helper.JsonList(c, "Route stops", rows,
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /transport/route-stops/:id
func (h *RouteStopController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	var row transportModel.RouteStopModel
	if err := h.DB.First(&row, "route_stop_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Route stop not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
	}
	return helper.JsonOK(c, "Route stop detail", row)
}

// POST /transport/route-stops
// Both the route and the pickup point must already exist.
func (h *RouteStopController) Create(c *fiber.Ctx) error {
	var req transportDTO.CreateRouteStopRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := req.ToModel()
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := routeExists(tx, req.RouteID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
		}
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "Referenced route does not exist")
		}
		ok, err = pickupPointExists(tx, req.PickupPointID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
		}
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "Referenced pickup point does not exist")
		}
		if err := tx.Create(&row).Error; err != nil {
			return helper.TranslateDBError(err, "Route stop not found",
				"This pickup point is already a stop on the route")
		}
		return nil
	})
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Route stop created", row)
}

// PUT /transport/route-stops/:id
func (h *RouteStopController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req transportDTO.UpdateRouteStopRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row transportModel.RouteStopModel
	if err := h.DB.First(&row, "route_stop_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Route stop not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
	}

	req.Apply(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update route stop")
	}
	return helper.JsonOK(c, "Route stop updated", row)
}

// DELETE /transport/route-stops/:id
func (h *RouteStopController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	res := h.DB.Delete(&transportModel.RouteStopModel{}, "route_stop_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete route stop")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Route stop not found")
	}
	return helper.JsonDeleted(c, "Route stop deleted")
}
