package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	hrDTO "vedaschool_backend/internals/features/school/hr/dto"
	hrModel "vedaschool_backend/internals/features/school/hr/model"
	helper "vedaschool_backend/internals/helpers"
)

var validate = validator.New()

type StaffAttendanceController struct {
	DB *gorm.DB
}

// GET /hr/attendances?staff_id=&date=&status=
func (h *StaffAttendanceController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 31, 200)

	q := h.DB.Model(&hrModel.StaffAttendanceModel{})
	if s := strings.TrimSpace(c.Query("staff_id")); s != "" {
		sid, err := uuid.Parse(s)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid staff_id filter")
		}
		q = q.Where("staff_attendance_staff_id = ?", sid)
	}
	if d := strings.TrimSpace(c.Query("date")); d != "" {
		q = q.Where("staff_attendance_date = ?", d)
	}
	if s := strings.TrimSpace(c.Query("status")); s != "" {
		if !hrModel.AttendanceStatus(s).Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid status filter")
		}
		q = q.Where("staff_attendance_status = ?", s)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count attendances")
	}

	var rows []hrModel.StaffAttendanceModel
	if err := q.Order("staff_attendance_date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list attendances")
	}
	return helper.JsonList(c, "Staff attendances", rows,
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /hr/attendances/:id
func (h *StaffAttendanceController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	var row hrModel.StaffAttendanceModel
	if err := h.DB.First(&row, "staff_attendance_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Attendance not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
	}
	return helper.JsonOK(c, "Attendance detail", row)
}

// POST /hr/attendances
func (h *StaffAttendanceController) Create(c *fiber.Ctx) error {
	var req hrDTO.CreateStaffAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := req.ToModel()
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		// pre-check keeps the conflict deterministic even on stores
		// that report unique violations lazily
		var cnt int64
		if err := tx.Model(&hrModel.StaffAttendanceModel{}).
			Where("staff_attendance_staff_id = ? AND staff_attendance_date = ?",
				row.StaffAttendanceStaffID, row.StaffAttendanceDate).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check existing attendance")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict,
				"Attendance already recorded for this staff member and date")
		}
		if err := tx.Create(&row).Error; err != nil {
			return helper.TranslateDBError(err, "Attendance not found",
				"Attendance already recorded for this staff member and date")
		}
		return nil
	}); err != nil {
		return err
	}
	return helper.JsonCreated(c, "Attendance recorded", row)
}

// PUT /hr/attendances/:id
func (h *StaffAttendanceController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req hrDTO.UpdateStaffAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row hrModel.StaffAttendanceModel
	if err := h.DB.First(&row, "staff_attendance_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Attendance not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
	}

	req.Apply(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return helper.TranslateDBError(err, "Attendance not found",
			"Attendance already recorded for this staff member and date")
	}
	return helper.JsonOK(c, "Attendance updated", row)
}

// DELETE /hr/attendances/:id
func (h *StaffAttendanceController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	res := h.DB.Delete(&hrModel.StaffAttendanceModel{}, "staff_attendance_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete attendance")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Attendance not found")
	}
	return helper.JsonDeleted(c, "Attendance deleted")
}
