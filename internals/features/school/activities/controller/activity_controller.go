package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	activityDTO "vedaschool_backend/internals/features/school/activities/dto"
	activityModel "vedaschool_backend/internals/features/school/activities/model"
	helper "vedaschool_backend/internals/helpers"
)

var validate = validator.New()

type ActivityController struct {
	DB *gorm.DB
}

// GET /activities?type=&status=&page=&per_page=
func (h *ActivityController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&activityModel.ActivityModel{})
	if t := strings.TrimSpace(c.Query("type")); t != "" {
		q = q.Where("activity_type = ?", t)
	}
	if s := strings.TrimSpace(c.Query("status")); s != "" {
		q = q.Where("activity_status = ?", s)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count activities")
	}

	var rows []activityModel.ActivityModel
	if err := q.Order("activity_date ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list activities")
	}

	return helper.JsonList(c, "Activities",
		activityDTO.FromActivityModels(rows),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /activities/:id
func (h *ActivityController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var row activityModel.ActivityModel
	if err := h.DB.First(&row, "activity_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Activity not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
	}
	return helper.JsonOK(c, "Activity detail", activityDTO.FromActivityModel(row))
}

// POST /activities
func (h *ActivityController) Create(c *fiber.Ctx) error {
	var req activityDTO.CreateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := req.ToModel()
	if err := h.DB.Create(&row).Error; err != nil {
		return helper.TranslateDBError(err, "Activity not found", "Activity already exists")
	}
	return helper.JsonCreated(c, "Activity created", activityDTO.FromActivityModel(row))
}

// PUT /activities/:id
func (h *ActivityController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req activityDTO.UpdateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row activityModel.ActivityModel
	if err := h.DB.First(&row, "activity_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Activity not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
	}

	req.Apply(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return helper.TranslateDBError(err, "Activity not found", "Activity already exists")
	}
	return helper.JsonOK(c, "Activity updated", activityDTO.FromActivityModel(row))
}

// DELETE /activities/:id
func (h *ActivityController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	res := h.DB.Delete(&activityModel.ActivityModel{}, "activity_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete activity")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Activity not found")
	}
	return helper.JsonDeleted(c, "Activity deleted")
}
