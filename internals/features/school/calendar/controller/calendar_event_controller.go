package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	calendarDTO "vedaschool_backend/internals/features/school/calendar/dto"
	calendarModel "vedaschool_backend/internals/features/school/calendar/model"
	helper "vedaschool_backend/internals/helpers"
	authMW "vedaschool_backend/internals/middlewares/auth"
)

type CalendarEventController struct {
	DB *gorm.DB
}

// GET /calendar-events?type=&start=&end=
// start/end are RFC3339 or YYYY-MM-DD; events overlapping the window
// are returned.
func (h *CalendarEventController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	q := h.DB.Model(&calendarModel.CalendarEventModel{})
	if t := strings.TrimSpace(c.Query("type")); t != "" {
		q = q.Where("calendar_event_type = ?", t)
	}
	if s := strings.TrimSpace(c.Query("start")); s != "" {
		ts, err := parseTimeParam(s, false)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid start parameter")
		}
		q = q.Where("calendar_event_end_at >= ?", ts)
	}
	if e := strings.TrimSpace(c.Query("end")); e != "" {
		ts, err := parseTimeParam(e, true)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid end parameter")
		}
		q = q.Where("calendar_event_start_at <= ?", ts)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count events")
	}

	var rows []calendarModel.CalendarEventModel
	if err := q.Order("calendar_event_start_at ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list events")
	}
	return helper.JsonList(c, "Calendar events", rows,
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// GET /calendar-events/:id
func (h *CalendarEventController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	var row calendarModel.CalendarEventModel
	if err := h.DB.First(&row, "calendar_event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Event not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
	}
	return helper.JsonOK(c, "Event detail", row)
}

// POST /calendar-events
func (h *CalendarEventController) Create(c *fiber.Ctx) error {
	var req calendarDTO.CreateCalendarEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !req.ValidateRange() {
		return fiber.NewError(fiber.StatusBadRequest, "Event end must not precede start")
	}

	var createdBy *uuid.UUID
	if uid, err := authMW.UserIDFromCtx(c); err == nil {
		createdBy = &uid
	}

	row := req.ToModel(createdBy)
	if err := h.DB.Create(&row).Error; err != nil {
		return helper.TranslateDBError(err, "Event not found", "Event already exists")
	}
	return helper.JsonCreated(c, "Event created", row)
}

// PUT /calendar-events/:id
func (h *CalendarEventController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var req calendarDTO.UpdateCalendarEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row calendarModel.CalendarEventModel
	if err := h.DB.First(&row, "calendar_event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Event not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Storage operation failed")
	}

	req.Apply(&row)
	if row.CalendarEventEndAt.Before(row.CalendarEventStartAt) {
		return fiber.NewError(fiber.StatusBadRequest, "Event end must not precede start")
	}
	if err := h.DB.Save(&row).Error; err != nil {
		return helper.TranslateDBError(err, "Event not found", "Event already exists")
	}
	return helper.JsonOK(c, "Event updated", row)
}

// DELETE /calendar-events/:id
func (h *CalendarEventController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	res := h.DB.Delete(&calendarModel.CalendarEventModel{}, "calendar_event_id = ?", id)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete event")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Event not found")
	}
	return helper.JsonDeleted(c, "Event deleted")
}

func parseTimeParam(s string, endOfDay bool) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		return d.Add(24*time.Hour - time.Nanosecond), nil
	}
	return d, nil
}
