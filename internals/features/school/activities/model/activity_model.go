package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ActivityStatusUpcoming  = "Upcoming"
	ActivityStatusCompleted = "Completed"
)

type ActivityWinnerEntry struct {
	Name    string `json:"name"`
	Class   string `json:"class"`
	Section string `json:"section"`
}

type ActivityWinners struct {
	First  ActivityWinnerEntry `json:"First"`
	Second ActivityWinnerEntry `json:"Second"`
	Third  ActivityWinnerEntry `json:"Third"`
}

// DeriveActivityStatus is the single place the winner→status coupling
// lives: a recorded first-place winner forces Completed, otherwise the
// submitted status stands (empty submit defaults to Upcoming).
func DeriveActivityStatus(w ActivityWinners, submitted string) string {
	if strings.TrimSpace(w.First.Name) != "" {
		return ActivityStatusCompleted
	}
	if strings.TrimSpace(submitted) == "" {
		return ActivityStatusUpcoming
	}
	return submitted
}

type ActivityModel struct {
	ActivityID uuid.UUID `gorm:"type:uuid;primaryKey;column:activity_id" json:"activity_id"`

	ActivityTitle string `gorm:"type:varchar(160);not null;column:activity_title" json:"activity_title"`
	ActivityType  string `gorm:"type:varchar(20);not null;column:activity_type" json:"activity_type"`

	// JSON arrays of class names / teacher names
	ActivityClasses  datatypes.JSON `gorm:"column:activity_classes" json:"activity_classes"`
	ActivityTeachers datatypes.JSON `gorm:"column:activity_teachers" json:"activity_teachers"`

	ActivitySection string `gorm:"type:varchar(20);column:activity_section" json:"activity_section"`

	ActivityDate string `gorm:"type:varchar(10);not null;column:activity_date" json:"activity_date"`
	ActivityTime string `gorm:"type:varchar(5);column:activity_time" json:"activity_time"`

	ActivityVenue        string  `gorm:"type:varchar(160);column:activity_venue" json:"activity_venue"`
	ActivityParticipants *string `gorm:"type:text;column:activity_participants" json:"activity_participants,omitempty"`

	ActivityNotifyStudents bool `gorm:"not null;default:false;column:activity_notify_students" json:"activity_notify_students"`
	ActivityNotifyParents  bool `gorm:"not null;default:false;column:activity_notify_parents" json:"activity_notify_parents"`

	ActivityOutcome *string `gorm:"type:text;column:activity_outcome" json:"activity_outcome,omitempty"`

	ActivityStatus  string         `gorm:"type:varchar(20);not null;default:Upcoming;column:activity_status" json:"activity_status"`
	ActivityWinners datatypes.JSON `gorm:"column:activity_winners" json:"activity_winners"`

	ActivityCreatedAt time.Time `gorm:"column:activity_created_at;not null;autoCreateTime" json:"activity_created_at"`
	ActivityUpdatedAt time.Time `gorm:"column:activity_updated_at;not null;autoUpdateTime" json:"activity_updated_at"`
}

func (ActivityModel) TableName() string { return "activities" }

func (a *ActivityModel) BeforeCreate(tx *gorm.DB) error {
	if a.ActivityID == uuid.Nil {
		a.ActivityID = uuid.New()
	}
	return nil
}
