package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	examDTO "vedaschool_backend/internals/features/school/academics/exams/dto"
	examModel "vedaschool_backend/internals/features/school/academics/exams/model"
	helper "vedaschool_backend/internals/helpers"
)

var validate = validator.New()

type ExamController struct {
	DB *gorm.DB
}

// GET /exams?academic_year=&class=&status=
func (h *ExamController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&examModel.ExamModel{})
	if y := strings.TrimSpace(c.Query("academic_year")); y != "" {
		q = q.Where("exam_academic_year = ?", y)
	}
	if cl := strings.TrimSpace(c.Query("class")); cl != "" {
		q = q.Where("exam_class_name = ?", cl)
	}
	if s := strings.TrimSpace(c.Query("status")); s != "" {
		if !examModel.ExamStatus(s).Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid status filter")
		}
		q = q.Where("exam_status = ?", s)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count exams")
	}

	var rows []examModel.ExamModel
	if err := q.Order("exam_date ASC, exam_start_time ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list exams")
	}
	return helper.JsonList(c, "Exams", rows,
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /exams/:id
func (h *ExamController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	var row examModel.ExamModel
	if err := h.DB.First(&row, "exam_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Exam not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
	}
	return helper.JsonOK(c, "Exam detail", row)
}

// POST /exams
func (h *ExamController) Create(c *fiber.Ctx) error {
	var req examDTO.CreateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.PassingMarks > req.MaxMarks {
		return fiber.NewError(fiber.StatusBadRequest, "Passing marks cannot exceed max marks")
	}

	row := req.ToModel()
	if err := h.DB.Create(&row).Error; err != nil {
		return helper.TranslateDBError(err, "Exam not found", "Exam already exists")
	}
	return helper.JsonCreated(c, "Exam created", row)
}

// PUT /exams/:id
func (h *ExamController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req examDTO.UpdateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row examModel.ExamModel
	if err := h.DB.First(&row, "exam_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Exam not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
	}

	req.Apply(&row)
	if row.ExamPassingMarks > row.ExamMaxMarks {
		return fiber.NewError(fiber.StatusBadRequest, "Passing marks cannot exceed max marks")
	}
	if err := h.DB.Save(&row).Error; err != nil {
		return helper.TranslateDBError(err, "Exam not found", "Exam already exists")
	}
	return helper.JsonOK(c, "Exam updated", row)
}

// DELETE /exams/:id
func (h *ExamController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	res := h.DB.Delete(&examModel.ExamModel{}, "exam_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete exam")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Exam not found")
	}
	return helper.JsonDeleted(c, "Exam deleted")
}
