package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VisitorBookModel struct {
	VisitorID uuid.UUID `gorm:"type:uuid;primaryKey;column:visitor_id" json:"visitor_id"`

	VisitorPurpose     string `gorm:"type:varchar(80);not null;column:visitor_purpose" json:"visitor_purpose"`
	VisitorMeetingWith string `gorm:"type:varchar(120);column:visitor_meeting_with" json:"visitor_meeting_with"`

	VisitorName    string `gorm:"type:varchar(120);not null;column:visitor_name" json:"visitor_name"`
	VisitorPhone   string `gorm:"type:varchar(20);column:visitor_phone" json:"visitor_phone"`
	VisitorIDProof string `gorm:"type:varchar(80);column:visitor_id_proof" json:"visitor_id_proof"`

	VisitorPersons int `gorm:"not null;default:1;column:visitor_persons" json:"visitor_persons"`

	VisitorDate    string `gorm:"type:varchar(10);not null;column:visitor_date;index" json:"visitor_date"`
	VisitorTimeIn  string `gorm:"type:varchar(5);column:visitor_time_in" json:"visitor_time_in"`
	VisitorTimeOut string `gorm:"type:varchar(5);column:visitor_time_out" json:"visitor_time_out"`

	VisitorNote *string `gorm:"type:text;column:visitor_note" json:"visitor_note,omitempty"`

	VisitorCreatedAt time.Time `gorm:"column:visitor_created_at;not null;autoCreateTime" json:"visitor_created_at"`
	VisitorUpdatedAt time.Time `gorm:"column:visitor_updated_at;not null;autoUpdateTime" json:"visitor_updated_at"`
}

func (VisitorBookModel) TableName() string { return "visitor_books" }

func (v *VisitorBookModel) BeforeCreate(tx *gorm.DB) error {
	if v.VisitorID == uuid.Nil {
		v.VisitorID = uuid.New()
	}
	return nil
}
