package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CalendarEventModel struct {
	CalendarEventID uuid.UUID `gorm:"type:uuid;primaryKey;column:calendar_event_id" json:"calendar_event_id"`

	CalendarEventTitle string `gorm:"type:varchar(160);not null;column:calendar_event_title" json:"calendar_event_title"`

	CalendarEventStartAt time.Time `gorm:"not null;column:calendar_event_start_at;index" json:"calendar_event_start_at"`
	CalendarEventEndAt   time.Time `gorm:"not null;column:calendar_event_end_at" json:"calendar_event_end_at"`

	// references event_types.event_type_name, best-effort by design
	CalendarEventType string `gorm:"type:varchar(80);column:calendar_event_type;index" json:"calendar_event_type"`

	CalendarEventAllDay   bool   `gorm:"not null;default:false;column:calendar_event_all_day" json:"calendar_event_all_day"`
	CalendarEventLocation string `gorm:"type:varchar(160);column:calendar_event_location" json:"calendar_event_location"`

	CalendarEventVisibility string `gorm:"type:varchar(10);not null;default:Public;column:calendar_event_visibility" json:"calendar_event_visibility"`
	CalendarEventBusy       bool   `gorm:"not null;default:false;column:calendar_event_busy" json:"calendar_event_busy"`

	CalendarEventReminderMinutes int    `gorm:"not null;default:0;column:calendar_event_reminder_minutes" json:"calendar_event_reminder_minutes"`
	CalendarEventAttendees       string `gorm:"type:text;column:calendar_event_attendees" json:"calendar_event_attendees"`

	CalendarEventCreatedBy *uuid.UUID `gorm:"type:uuid;column:calendar_event_created_by" json:"calendar_event_created_by,omitempty"`

	CalendarEventCreatedAt time.Time `gorm:"column:calendar_event_created_at;not null;autoCreateTime" json:"calendar_event_created_at"`
	CalendarEventUpdatedAt time.Time `gorm:"column:calendar_event_updated_at;not null;autoUpdateTime" json:"calendar_event_updated_at"`
}

func (CalendarEventModel) TableName() string { return "calendar_events" }

func (e *CalendarEventModel) BeforeCreate(tx *gorm.DB) error {
	if e.CalendarEventID == uuid.Nil {
		e.CalendarEventID = uuid.New()
	}
	return nil
}
