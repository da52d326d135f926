package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	curriculumDTO "vedaschool_backend/internals/features/school/academics/curriculum/dto"
	curriculumModel "vedaschool_backend/internals/features/school/academics/curriculum/model"
	helper "vedaschool_backend/internals/helpers"
)

var validate = validator.New()

type CurriculumController struct {
	DB *gorm.DB
}

// GET /curricula?academic_year=&class=
func (h *CurriculumController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&curriculumModel.CurriculumModel{})
	if y := strings.TrimSpace(c.Query("academic_year")); y != "" {
		q = q.Where("curriculum_academic_year = ?", y)
	}
	if cl := strings.TrimSpace(c.Query("class")); cl != "" {
		q = q.Where("curriculum_class_name = ?", cl)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count curricula")
	}

	var rows []curriculumModel.CurriculumModel
	if err := q.Order("curriculum_academic_year DESC, curriculum_class_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list curricula")
	}
	return helper.JsonList(c, "Curricula", rows,
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /curricula/:id
func (h *CurriculumController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	var row curriculumModel.CurriculumModel
	if err := h.DB.First(&row, "curriculum_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Curriculum not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
	}
	return helper.JsonOK(c, "Curriculum detail", row)
}

// POST /curricula
func (h *CurriculumController) Create(c *fiber.Ctx) error {
	var req curriculumDTO.CreateCurriculumRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := req.ToModel()
	if err := h.DB.Create(&row).Error; err != nil {
		return helper.TranslateDBError(err, "Curriculum not found",
			"A curriculum already exists for this year, class and section")
	}
	return helper.JsonCreated(c, "Curriculum created", row)
}

// PUT /curricula/:id
func (h *CurriculumController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req curriculumDTO.UpdateCurriculumRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row curriculumModel.CurriculumModel
	if err := h.DB.First(&row, "curriculum_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Curriculum not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
	}

	req.Apply(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return helper.TranslateDBError(err, "Curriculum not found",
			"A curriculum already exists for this year, class and section")
	}
	return helper.JsonOK(c, "Curriculum updated", row)
}

// DELETE /curricula/:id
func (h *CurriculumController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	res := h.DB.Delete(&curriculumModel.CurriculumModel{}, "curriculum_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete curriculum")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Curriculum not found")
	}
	return helper.JsonDeleted(c, "Curriculum deleted")
}
