package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	frontofficeDTO "vedaschool_backend/internals/features/school/frontoffice/dto"
	frontofficeModel "vedaschool_backend/internals/features/school/frontoffice/model"
	helper "vedaschool_backend/internals/helpers"
)

var validate = validator.New()

type FrontOfficeSetupController struct {
	DB *gorm.DB
}

// GET /front-office/setups?type=
func (h *FrontOfficeSetupController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	q := h.DB.Model(&frontofficeModel.FrontOfficeSetupModel{})
	if t := strings.TrimSpace(c.Query("type")); t != "" {
		if !frontofficeModel.FrontOfficeSetupType(t).Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid type filter")
		}
		q = q.Where("setup_type = ?", t)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count setup entries")
	}

	var rows []frontofficeModel.FrontOfficeSetupModel
	if err := q.Order("setup_type ASC, setup_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list setup entries")
	}
	return helper.JsonList(c, "Front office setup entries", rows,
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /front-office/setups/:id
func (h *FrontOfficeSetupController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	var row frontofficeModel.FrontOfficeSetupModel
	if err := h.DB.First(&row, "setup_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Setup entry not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
	}
	return helper.JsonOK(c, "Setup entry detail", row)
}

// POST /front-office/setups
func (h *FrontOfficeSetupController) Create(c *fiber.Ctx) error {
	var req frontofficeDTO.CreateSetupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := req.ToModel()
	if err := h.DB.Create(&row).Error; err != nil {
		return helper.TranslateDBError(err, "Setup entry not found",
			"A setup entry with this type and name already exists")
	}
	return helper.JsonCreated(c, "Setup entry created", row)
}

// PUT /front-office/setups/:id
func (h *FrontOfficeSetupController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req frontofficeDTO.UpdateSetupRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row frontofficeModel.FrontOfficeSetupModel
	if err := h.DB.First(&row, "setup_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Setup entry not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
	}

	req.Apply(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return helper.TranslateDBError(err, "Setup entry not found",
			"A setup entry with this type and name already exists")
	}
	return helper.JsonOK(c, "Setup entry updated", row)
}

// DELETE /front-office/setups/:id
func (h *FrontOfficeSetupController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	res := h.DB.Delete(&frontofficeModel.FrontOfficeSetupModel{}, "setup_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete setup entry")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Setup entry not found")
	}
	return helper.JsonDeleted(c, "Setup entry deleted")
}
