package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventTypeModel struct {
	EventTypeID uuid.UUID `gorm:"type:uuid;primaryKey;column:event_type_id" json:"event_type_id"`

	EventTypeName        string  `gorm:"type:varchar(80);not null;uniqueIndex:uq_event_types_name;column:event_type_name" json:"event_type_name"`
	EventTypeDescription *string `gorm:"type:text;column:event_type_description" json:"event_type_description,omitempty"`
	EventTypeColor       string  `gorm:"type:varchar(20);column:event_type_color" json:"event_type_color"`
	EventTypeVisibility  string  `gorm:"type:varchar(10);not null;default:Public;column:event_type_visibility" json:"event_type_visibility"`
	EventTypeIcon        string  `gorm:"type:varchar(40);column:event_type_icon" json:"event_type_icon"`

	EventTypeCreatedBy *uuid.UUID `gorm:"type:uuid;column:event_type_created_by" json:"event_type_created_by,omitempty"`

	EventTypeCreatedAt time.Time `gorm:"column:event_type_created_at;not null;autoCreateTime" json:"event_type_created_at"`
	EventTypeUpdatedAt time.Time `gorm:"column:event_type_updated_at;not null;autoUpdateTime" json:"event_type_updated_at"`
}

func (EventTypeModel) TableName() string { return "event_types" }

func (e *EventTypeModel) BeforeCreate(tx *gorm.DB) error {
	if e.EventTypeID == uuid.Nil {
		e.EventTypeID = uuid.New()
	}
	return nil
}
