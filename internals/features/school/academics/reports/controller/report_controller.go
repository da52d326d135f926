package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	examModel "vedaschool_backend/internals/features/school/academics/exams/model"
	reportDTO "vedaschool_backend/internals/features/school/academics/reports/dto"
	reportModel "vedaschool_backend/internals/features/school/academics/reports/model"
	helper "vedaschool_backend/internals/helpers"
)

var validate = validator.New()

type ReportController struct {
	DB *gorm.DB
}

// GET /reports?student_id=&exam_id=
func (h *ReportController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&reportModel.ReportModel{})
	if s := strings.TrimSpace(c.Query("student_id")); s != "" {
		sid, err := uuid.Parse(s)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid student_id filter")
		}
		q = q.Where("report_student_id = ?", sid)
	}
	if e := strings.TrimSpace(c.Query("exam_id")); e != "" {
		eid, err := uuid.Parse(e)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid exam_id filter")
		}
		q = q.Where("report_exam_id = ?", eid)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count reports")
	}

	var rows []reportModel.ReportModel
	if err := q.Order("report_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list reports")
	}
	return helper.JsonList(c, "Reports", rows,
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /reports/:id
func (h *ReportController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	var row reportModel.ReportModel
	if err := h.DB.First(&row, "report_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Report not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
	}
	return helper.JsonOK(c, "Report detail", row)
}

// POST /reports
func (h *ReportController) Create(c *fiber.Ctx) error {
	var req reportDTO.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := h.ensureExamExists(req.ExamID); err != nil {
		return err
	}

	row := req.ToModel()
	if err := h.DB.Create(&row).Error; err != nil {
		return helper.TranslateDBError(err, "Report not found", "Report already exists")
	}
	return helper.JsonCreated(c, "Report created", row)
}

// PUT /reports/:id
func (h *ReportController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req reportDTO.UpdateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row reportModel.ReportModel
	if err := h.DB.First(&row, "report_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Report not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
	}

	if req.ExamID != nil {
		if err := h.ensureExamExists(*req.ExamID); err != nil {
			return err
		}
	}

	req.Apply(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return helper.TranslateDBError(err, "Report not found", "Report already exists")
	}
	return helper.JsonOK(c, "Report updated", row)
}

// DELETE /reports/:id
func (h *ReportController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	res := h.DB.Delete(&reportModel.ReportModel{}, "report_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete report")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Report not found")
	}
	return helper.JsonDeleted(c, "Report deleted")
}

func (h *ReportController) ensureExamExists(examID uuid.UUID) error {
	var cnt int64
	if err := h.DB.Model(&examModel.ExamModel{}).
		Where("exam_id = ?", examID).
		Count(&cnt).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check exam")
	}
	if cnt == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Referenced exam does not exist")
	}
	return nil
}
