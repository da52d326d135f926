package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	frontofficeDTO "vedaschool_backend/internals/features/school/frontoffice/dto"
	frontofficeModel "vedaschool_backend/internals/features/school/frontoffice/model"
	helper "vedaschool_backend/internals/helpers"
)

type VisitorBookController struct {
	DB *gorm.DB
}

// GET /front-office/visitors?date=&purpose=
func (h *VisitorBookController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&frontofficeModel.VisitorBookModel{})
	if d := strings.TrimSpace(c.Query("date")); d != "" {
		q = q.Where("visitor_date = ?", d)
	}
	if p := strings.TrimSpace(c.Query("purpose")); p != "" {
		q = q.Where("visitor_purpose = ?", p)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count visitors")
	}

	var rows []frontofficeModel.VisitorBookModel
	if err := q.Order("visitor_date DESC, visitor_time_in DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list visitors")
	}
	return helper.JsonList(c, "Visitor book", rows,
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /front-office/visitors/:id
func (h *VisitorBookController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	var row frontofficeModel.VisitorBookModel
	if err := h.DB.First(&row, "visitor_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Visitor entry not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
	}
	return helper.JsonOK(c, "Visitor entry detail", row)
}

// POST /front-office/visitors
func (h *VisitorBookController) Create(c *fiber.Ctx) error {
	var req frontofficeDTO.CreateVisitorRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := req.ToModel()
	if err := h.DB.Create(&row).Error; err != nil {
		return helper.TranslateDBError(err, "Visitor entry not found", "Visitor entry already exists")
	}
	return helper.JsonCreated(c, "Visitor entry created", row)
}

// PUT /front-office/visitors/:id
func (h *VisitorBookController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req frontofficeDTO.UpdateVisitorRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row frontofficeModel.VisitorBookModel
	if err := h.DB.First(&row, "visitor_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Visitor entry not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
	}

	req.Apply(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return helper.TranslateDBError(err, "Visitor entry not found", "Visitor entry already exists")
	}
	return helper.JsonOK(c, "Visitor entry updated", row)
}

// DELETE /front-office/visitors/:id
func (h *VisitorBookController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	res := h.DB.Delete(&frontofficeModel.VisitorBookModel{}, "visitor_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete visitor entry")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Visitor entry not found")
	}
	return helper.JsonDeleted(c, "Visitor entry deleted")
}
