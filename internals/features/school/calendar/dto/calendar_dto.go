package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "vedaschool_backend/internals/features/school/calendar/model"
)

/* ===== Event types ===== */

type CreateEventTypeRequest struct {
	Name        string  `json:"event_type_name" validate:"required,min=1,max=80"`
	Description *string `json:"event_type_description"`
	Color       string  `json:"event_type_color" validate:"omitempty,max=20"`
	Visibility  string  `json:"event_type_visibility" validate:"omitempty,oneof=Public Private"`
	Icon        string  `json:"event_type_icon" validate:"omitempty,max=40"`
}

func (r *CreateEventTypeRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Color = strings.TrimSpace(r.Color)
	r.Icon = strings.TrimSpace(r.Icon)
	if r.Visibility == "" {
		r.Visibility = "Public"
	}
}

func (r CreateEventTypeRequest) ToModel(createdBy *uuid.UUID) m.EventTypeModel {
	return m.EventTypeModel{
		EventTypeName:        r.Name,
		EventTypeDescription: r.Description,
		EventTypeColor:       r.Color,
		EventTypeVisibility:  r.Visibility,
		EventTypeIcon:        r.Icon,
		EventTypeCreatedBy:   createdBy,
	}
}

type UpdateEventTypeRequest struct {
	Name        *string `json:"event_type_name" validate:"omitempty,min=1,max=80"`
	Description *string `json:"event_type_description"`
	Color       *string `json:"event_type_color" validate:"omitempty,max=20"`
	Visibility  *string `json:"event_type_visibility" validate:"omitempty,oneof=Public Private"`
	Icon        *string `json:"event_type_icon" validate:"omitempty,max=40"`
}

func (r UpdateEventTypeRequest) Apply(t *m.EventTypeModel) {
	if r.Name != nil {
		t.EventTypeName = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		t.EventTypeDescription = r.Description
	}
	if r.Color != nil {
		t.EventTypeColor = strings.TrimSpace(*r.Color)
	}
	if r.Visibility != nil {
		t.EventTypeVisibility = *r.Visibility
	}
	if r.Icon != nil {
		t.EventTypeIcon = strings.TrimSpace(*r.Icon)
	}
}

/* ===== Calendar events ===== */

type CreateCalendarEventRequest struct {
	Title string `json:"calendar_event_title" validate:"required,min=1,max=160"`

	StartAt time.Time `json:"calendar_event_start_at" validate:"required"`
	EndAt   time.Time `json:"calendar_event_end_at" validate:"required"`

	Type     string `json:"calendar_event_type" validate:"omitempty,max=80"`
	AllDay   bool   `json:"calendar_event_all_day"`
	Location string `json:"calendar_event_location" validate:"omitempty,max=160"`

	Visibility      string `json:"calendar_event_visibility" validate:"omitempty,oneof=Public Private"`
	Busy            bool   `json:"calendar_event_busy"`
	ReminderMinutes int    `json:"calendar_event_reminder_minutes" validate:"omitempty,min=0,max=10080"`
	Attendees       string `json:"calendar_event_attendees"`
}

func (r *CreateCalendarEventRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Type = strings.TrimSpace(r.Type)
	r.Location = strings.TrimSpace(r.Location)
	if r.Visibility == "" {
		r.Visibility = "Public"
	}
}

// Validate enforces the range invariant the schema cannot express.
func (r CreateCalendarEventRequest) ValidateRange() bool {
	return !r.EndAt.Before(r.StartAt)
}

func (r CreateCalendarEventRequest) ToModel(createdBy *uuid.UUID) m.CalendarEventModel {
	return m.CalendarEventModel{
		CalendarEventTitle:           r.Title,
		CalendarEventStartAt:         r.StartAt,
		CalendarEventEndAt:           r.EndAt,
		CalendarEventType:            r.Type,
		CalendarEventAllDay:          r.AllDay,
		CalendarEventLocation:        r.Location,
		CalendarEventVisibility:      r.Visibility,
		CalendarEventBusy:            r.Busy,
		CalendarEventReminderMinutes: r.ReminderMinutes,
		CalendarEventAttendees:       r.Attendees,
		CalendarEventCreatedBy:       createdBy,
	}
}

type UpdateCalendarEventRequest struct {
	Title *string `json:"calendar_event_title" validate:"omitempty,min=1,max=160"`

	StartAt *time.Time `json:"calendar_event_start_at"`
	EndAt   *time.Time `json:"calendar_event_end_at"`

	Type     *string `json:"calendar_event_type" validate:"omitempty,max=80"`
	AllDay   *bool   `json:"calendar_event_all_day"`
	Location *string `json:"calendar_event_location" validate:"omitempty,max=160"`

	Visibility      *string `json:"calendar_event_visibility" validate:"omitempty,oneof=Public Private"`
	Busy            *bool   `json:"calendar_event_busy"`
	ReminderMinutes *int    `json:"calendar_event_reminder_minutes" validate:"omitempty,min=0,max=10080"`
	Attendees       *string `json:"calendar_event_attendees"`
}

func (r UpdateCalendarEventRequest) Apply(e *m.CalendarEventModel) {
	if r.Title != nil {
		e.CalendarEventTitle = strings.TrimSpace(*r.Title)
	}
	if r.StartAt != nil {
		e.CalendarEventStartAt = *r.StartAt
	}
	if r.EndAt != nil {
		e.CalendarEventEndAt = *r.EndAt
	}
	if r.Type != nil {
		e.CalendarEventType = strings.TrimSpace(*r.Type)
	}
	if r.AllDay != nil {
		e.CalendarEventAllDay = *r.AllDay
	}
	if r.Location != nil {
		e.CalendarEventLocation = strings.TrimSpace(*r.Location)
	}
	if r.Visibility != nil {
		e.CalendarEventVisibility = *r.Visibility
	}
	if r.Busy != nil {
		e.CalendarEventBusy = *r.Busy
	}
	if r.ReminderMinutes != nil {
		e.CalendarEventReminderMinutes = *r.ReminderMinutes
	}
	if r.Attendees != nil {
		e.CalendarEventAttendees = *r.Attendees
	}
}
