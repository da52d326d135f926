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

type RouteController struct {
	DB *gorm.DB
}

// GET /transport/routes
func (h *RouteController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&transportModel.RouteModel{})
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count routes")
	}

	var rows []transportModel.RouteModel
	if err := q.Order("route_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list routes")
	}
	return helper.JsonList(c, "Routes", rows,
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /transport/routes/:id
func (h *RouteController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	var row transportModel.RouteModel
	if err := h.DB.First(&row, "route_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Route not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
	}
	return helper.JsonOK(c, "Route detail", row)
}

// POST /transport/routes
func (h *RouteController) Create(c *fiber.Ctx) error {
	var req transportDTO.CreateRouteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := req.ToModel()
	if err := h.DB.Create(&row).Error; err != nil {
		return helper.TranslateDBError(err, "Route not found",
			"A route with this name already exists")
	}
	return helper.JsonCreated(c, "Route created", row)
}

// PUT /transport/routes/:id
func (h *RouteController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req transportDTO.UpdateRouteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row transportModel.RouteModel
	if err := h.DB.First(&row, "route_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Route not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
	}

	req.Apply(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return helper.TranslateDBError(err, "Route not found",
			"A route with this name already exists")
	}
	return helper.JsonOK(c, "Route updated", row)
}

// DELETE /transport/routes/:id
// Stops referencing the route are left in place, matching the
// documented best-effort reference model.
func (h *RouteController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	res := h.DB.Delete(&transportModel.RouteModel{}, "route_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete route")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Route not found")
	}
	return helper.JsonDeleted(c, "Route deleted")
}

type PickupPointController struct {
	DB *gorm.DB
}

// GET /transport/pickup-points
func (h *PickupPointController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	q := h.DB.Model(&transportModel.PickupPointModel{})
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count pickup points")
	}

	var rows []transportModel.PickupPointModel
	if err := q.Order("pickup_point_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list pickup points")
	}
	return helper.JsonList(c, "Pickup points", rows,
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /transport/pickup-points/:id
func (h *PickupPointController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	var row transportModel.PickupPointModel
	if err := h.DB.First(&row, "pickup_point_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Pickup point not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
	}
	return helper.JsonOK(c, "Pickup point detail", row)
}

// POST /transport/pickup-points
func (h *PickupPointController) Create(c *fiber.Ctx) error {
	var req transportDTO.CreatePickupPointRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := req.ToModel()
	if err := h.DB.Create(&row).Error; err != nil {
		return helper.TranslateDBError(err, "Pickup point not found", "Pickup point already exists")
	}
	return helper.JsonCreated(c, "Pickup point created", row)
}

// PUT /transport/pickup-points/:id
func (h *PickupPointController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req transportDTO.UpdatePickupPointRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row transportModel.PickupPointModel
	if err := h.DB.First(&row, "pickup_point_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Pickup point not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
	}

	req.Apply(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return helper.TranslateDBError(err, "Pickup point not found", "Pickup point already exists")
	}
	return helper.JsonOK(c, "Pickup point updated", row)
}

// DELETE /transport/pickup-points/:id
func (h *PickupPointController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	res := h.DB.Delete(&transportModel.PickupPointModel{}, "pickup_point_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete pickup point")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Pickup point not found")
	}
	return helper.JsonDeleted(c, "Pickup point deleted")
}
