package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	hrDTO "vedaschool_backend/internals/features/school/hr/dto"
	hrModel "vedaschool_backend/internals/features/school/hr/model"
	helper "vedaschool_backend/internals/helpers"
)

type StaffPayrollController struct {
	DB *gorm.DB
}

// GET /hr/payrolls?staff_id=&month=&year=&status=
func (h *StaffPayrollController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&hrModel.StaffPayrollModel{})
	if s := strings.TrimSpace(c.Query("staff_id")); s != "" {
		sid, err := uuid.Parse(s)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid staff_id filter")
		}
		q = q.Where("staff_payroll_staff_id = ?", sid)
	}
	if ms := strings.TrimSpace(c.Query("month")); ms != "" {
		month, err := strconv.Atoi(ms)
		if err != nil || month < 1 || month > 12 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid month filter")
		}
		q = q.Where("staff_payroll_month = ?", month)
	}
	if ys := strings.TrimSpace(c.Query("year")); ys != "" {
		year, err := strconv.Atoi(ys)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid year filter")
		}
		q = q.Where("staff_payroll_year = ?", year)
	}
	if s := strings.TrimSpace(c.Query("status")); s != "" {
		if !hrModel.PayrollStatus(s).Valid() {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid status filter")
		}
		q = q.Where("staff_payroll_status = ?", s)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count payrolls")
	}

	var rows []hrModel.StaffPayrollModel
	if err := q.Order("staff_payroll_year DESC, staff_payroll_month DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list payrolls")
	}
	return helper.JsonList(c, "Staff payrolls", rows,
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /hr/payrolls/:id
func (h *StaffPayrollController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	var row hrModel.StaffPayrollModel
	if err := h.DB.First(&row, "staff_payroll_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Payroll not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
	}
	return helper.JsonOK(c, "Payroll detail", row)
}

// POST /hr/payrolls
func (h *StaffPayrollController) Create(c *fiber.Ctx) error {
	var req hrDTO.CreateStaffPayrollRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := req.ToModel()
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&hrModel.StaffPayrollModel{}).
			Where("staff_payroll_staff_id = ? AND staff_payroll_month = ? AND staff_payroll_year = ?",
				row.StaffPayrollStaffID, row.StaffPayrollMonth, row.StaffPayrollYear).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check existing payroll")
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusConflict,
				"Payroll already exists for this staff member and month")
		}
		if err := tx.Create(&row).Error; err != nil {
			return helper.TranslateDBError(err, "Payroll not found",
				"Payroll already exists for this staff member and month")
		}
		return nil
	}); err != nil {
		return err
	}
	return helper.JsonCreated(c, "Payroll created", row)
}

// PUT /hr/payrolls/:id
func (h *StaffPayrollController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req hrDTO.UpdateStaffPayrollRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row hrModel.StaffPayrollModel
	if err := h.DB.First(&row, "staff_payroll_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Payroll not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
	}

	req.Apply(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return helper.TranslateDBError(err, "Payroll not found",
			"Payroll already exists for this staff member and month")
	}
	return helper.JsonOK(c, "Payroll updated", row)
}

// DELETE /hr/payrolls/:id
func (h *StaffPayrollController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	res := h.DB.Delete(&hrModel.StaffPayrollModel{}, "staff_payroll_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete payroll")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Payroll not found")
	}
	return helper.JsonDeleted(c, "Payroll deleted")
}
