package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	calendarDTO "vedaschool_backend/internals/features/school/calendar/dto"
	calendarModel "vedaschool_backend/internals/features/school/calendar/model"
	helper "vedaschool_backend/internals/helpers"
	authMW "vedaschool_backend/internals/middlewares/auth"
)

var validate = validator.New()

type EventTypeController struct {
	DB *gorm.DB
}

// GET /event-types
func (h *EventTypeController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	q := h.DB.Model(&calendarModel.EventTypeModel{})
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count event types")
	}

	var rows []calendarModel.EventTypeModel
	if err := q.Order("event_type_name ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list event types")
	}
	return helper.JsonList(c, "Event types", rows,
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /event-types/:id
func (h *EventTypeController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	var row calendarModel.EventTypeModel
	if err := h.DB.First(&row, "event_type_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Event type not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
	}
	return helper.JsonOK(c, "Event type detail", row)
}

// POST /event-types
func (h *EventTypeController) Create(c *fiber.Ctx) error {
	var req calendarDTO.CreateEventTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var createdBy *uuid.UUID
	if uid, err := authMW.UserIDFromCtx(c); err == nil {
		createdBy = &uid
	}

	row := req.ToModel(createdBy)
	if err := h.DB.Create(&row).Error; err != nil {
		return helper.TranslateDBError(err, "Event type not found", "Event type name already exists")
	}
	return helper.JsonCreated(c, "Event type created", row)
}

// PUT /event-types/:id
func (h *EventTypeController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req calendarDTO.UpdateEventTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row calendarModel.EventTypeModel
	if err := h.DB.First(&row, "event_type_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Event type not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
	}

	req.Apply(&row)
	if err := h.DB.Save(&row).Error; err != nil {
		return helper.TranslateDBError(err, "Event type not found", "Event type name already exists")
	}
	return helper.JsonOK(c, "Event type updated", row)
}

// DELETE /event-types/:id
func (h *EventTypeController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	res := h.DB.Delete(&calendarModel.EventTypeModel{}, "event_type_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete event type")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Event type not found")
	}
	return helper.JsonDeleted(c, "Event type deleted")
}
