package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	transportDTO "vedaschool_backend/internals/features/school/transport/dto"
	transportModel "vedaschool_backend/internals/features/school/transport/model"
	helper "vedaschool_backend/internals/helpers"
)

var validate = validator.New()

type VehicleController struct {
	DB *gorm.DB
}

// GET /transport/vehicles?status=
func (h *VehicleController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&transportModel.VehicleModel{})
	if s := strings.TrimSpace(c.Query("status")); s != "" {
		if !transportModel.VehicleStatus(s).Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid status filter")
		}
		q = q.Where("vehicle_status = ?", s)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count vehicles")
	}

	var rows []transportModel.VehicleModel
	if err := q.Order("vehicle_registration_no ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list vehicles")
	}
	return helper.JsonList(c, "Vehicles", rows,
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /transport/vehicles/:id
func (h *VehicleController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	var row transportModel.VehicleModel
	if err := h.DB.First(&row, "vehicle_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Vehicle not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
	}
	return helper.JsonOK(c, "Vehicle detail", row)
}

// POST /transport/vehicles
func (h *VehicleController) Create(c *fiber.Ctx) error {
	var req transportDTO.CreateVehicleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := req.ToModel()
	if err := h.DB.Create(&row).Error; err != nil {
		return helper.TranslateDBError(err, "Vehicle not found",
			"A vehicle with this registration number already exists")
	}
	return helper.JsonCreated(c, "Vehicle created", row)
}

// PUT /transport/vehicles/:id
func (h *VehicleController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req transportDTO.UpdateVehicleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row transportModel.VehicleModel
	if err := h.DB.First(&row, "vehicle_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Vehicle not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
	}

	req.Apply(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return helper.TranslateDBError(err, "Vehicle not found",
			"A vehicle with this registration number already exists")
	}
	return helper.JsonOK(c, "Vehicle updated", row)
}

// DELETE /transport/vehicles/:id
func (h *VehicleController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	res := h.DB.Delete(&transportModel.VehicleModel{}, "vehicle_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete vehicle")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Vehicle not found")
	}
	return helper.JsonDeleted(c, "Vehicle deleted")
}
