package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	submissionDTO "vedaschool_backend/internals/features/school/academics/submissions/dto"
	submissionModel "vedaschool_backend/internals/features/school/academics/submissions/model"
	helper "vedaschool_backend/internals/helpers"
)

var validate = validator.New()

type SubmissionController struct {
	DB *gorm.DB
}

// GET /submissions?student_id=&status=
func (h *SubmissionController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&submissionModel.SubmissionModel{})
	if s := strings.TrimSpace(c.Query("student_id")); s != "" {
		sid, err := uuid.Parse(s)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid student_id filter")
		}
		q = q.Where("submission_student_id = ?", sid)
	}
	if s := strings.TrimSpace(c.Query("status")); s != "" {
		if !submissionModel.SubmissionStatus(s).Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid status filter")
		}
		q = q.Where("submission_status = ?", s)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count submissions")
	}

	var rows []submissionModel.SubmissionModel
	if err := q.Order("submission_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list submissions")
	}
	return helper.JsonList(c, "Submissions", rows,
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /submissions/:id
func (h *SubmissionController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	var row submissionModel.SubmissionModel
	if err := h.DB.First(&row, "submission_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Submission not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
	}
	return helper.JsonOK(c, "Submission detail", row)
}

// POST /submissions
func (h *SubmissionController) Create(c *fiber.Ctx) error {
	var req submissionDTO.CreateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := req.ToModel()
	if err := h.DB.Create(&row).Error; err != nil {
		return helper.TranslateDBError(err, "Submission not found", "Submission already exists")
	}
	return helper.JsonCreated(c, "Submission created", row)
}

// PUT /submissions/:id
func (h *SubmissionController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req submissionDTO.UpdateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row submissionModel.SubmissionModel
	if err := h.DB.First(&row, "submission_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Submission not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
	}

	req.Apply(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return helper.TranslateDBError(err, "Submission not found", "Submission already exists")
	}
	return helper.JsonOK(c, "Submission updated", row)
}

// DELETE /submissions/:id
func (h *SubmissionController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	res := h.DB.Delete(&submissionModel.SubmissionModel{}, "submission_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete submission")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Submission not found")
	}
	return helper.JsonDeleted(c, "Submission deleted")
}
