package dto

import (
	"encoding/json"
	"strings"

	m "vedaschool_backend/internals/features/school/activities/model"
)

type CreateActivityRequest struct {
	Title string `json:"activity_title" validate:"required,min=1,max=160"`
	Type  string `json:"activity_type" validate:"required,oneof=Sports Cultural Academic Social Other"`

	Classes []string `json:"activity_classes"`
	Section string   `json:"activity_section" validate:"omitempty,max=20"`

	Date string `json:"activity_date" validate:"required,datetime=2006-01-02"`
	Time string `json:"activity_time" validate:"omitempty,datetime=15:04"`

	Venue        string  `json:"activity_venue" validate:"omitempty,max=160"`
	Participants *string `json:"activity_participants"`

	Teachers []string `json:"activity_teachers"`

	NotifyStudents bool `json:"activity_notify_students"`
	NotifyParents  bool `json:"activity_notify_parents"`

	Outcome *string `json:"activity_outcome"`

	Status  string            `json:"activity_status" validate:"omitempty,oneof=Upcoming Completed"`
	Winners m.ActivityWinners `json:"activity_winners"`
}

func (r *CreateActivityRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Section = strings.TrimSpace(r.Section)
	r.Venue = strings.TrimSpace(r.Venue)
	r.Status = strings.TrimSpace(r.Status)
}

func (r CreateActivityRequest) ToModel() m.ActivityModel {
	classes, _ := json.Marshal(r.Classes)
	teachers, _ := json.Marshal(r.Teachers)
	winners, _ := json.Marshal(r.Winners)

	return m.ActivityModel{
		ActivityTitle:          r.Title,
		ActivityType:           r.Type,
		ActivityClasses:        classes,
		ActivitySection:        r.Section,
		ActivityDate:           r.Date,
		ActivityTime:           r.Time,
		ActivityVenue:          r.Venue,
		ActivityParticipants:   r.Participants,
		ActivityTeachers:       teachers,
		ActivityNotifyStudents: r.NotifyStudents,
		ActivityNotifyParents:  r.NotifyParents,
		ActivityOutcome:        r.Outcome,
		ActivityStatus:         m.DeriveActivityStatus(r.Winners, r.Status),
		ActivityWinners:        winners,
	}
}

type UpdateActivityRequest struct {
	Title *string `json:"activity_title" validate:"omitempty,min=1,max=160"`
	Type  *string `json:"activity_type" validate:"omitempty,oneof=Sports Cultural Academic Social Other"`

	Classes *[]string `json:"activity_classes"`
	Section *string   `json:"activity_section" validate:"omitempty,max=20"`

	Date *string `json:"activity_date" validate:"omitempty,datetime=2006-01-02"`
	Time *string `json:"activity_time" validate:"omitempty,datetime=15:04"`

	Venue        *string `json:"activity_venue" validate:"omitempty,max=160"`
	Participants *string `json:"activity_participants"`

	Teachers *[]string `json:"activity_teachers"`

	NotifyStudents *bool `json:"activity_notify_students"`
	NotifyParents  *bool `json:"activity_notify_parents"`

	Outcome *string `json:"activity_outcome"`

	Status  *string            `json:"activity_status" validate:"omitempty,oneof=Upcoming Completed"`
	Winners *m.ActivityWinners `json:"activity_winners"`
}

// Apply merges the submitted fields into the row, then re-derives the
// status from the effective winners so the coupling holds on update too.
func (r UpdateActivityRequest) Apply(a *m.ActivityModel) {
	if r.Title != nil {
		a.ActivityTitle = strings.TrimSpace(*r.Title)
	}
	if r.Type != nil {
		a.ActivityType = *r.Type
	}
	if r.Classes != nil {
		b, _ := json.Marshal(*r.Classes)
		a.ActivityClasses = b
	}
	if r.Section != nil {
		a.ActivitySection = strings.TrimSpace(*r.Section)
	}
	if r.Date != nil {
		a.ActivityDate = *r.Date
	}
	if r.Time != nil {
		a.ActivityTime = *r.Time
	}
	if r.Venue != nil {
		a.ActivityVenue = strings.TrimSpace(*r.Venue)
	}
	if r.Participants != nil {
		a.ActivityParticipants = r.Participants
	}
	if r.Teachers != nil {
		b, _ := json.Marshal(*r.Teachers)
		a.ActivityTeachers = b
	}
	if r.NotifyStudents != nil {
		a.ActivityNotifyStudents = *r.NotifyStudents
	}
	if r.NotifyParents != nil {
		a.ActivityNotifyParents = *r.NotifyParents
	}
	if r.Outcome != nil {
		a.ActivityOutcome = r.Outcome
	}
	if r.Winners != nil {
		b, _ := json.Marshal(*r.Winners)
		a.ActivityWinners = b
	}

	submitted := a.ActivityStatus
	if r.Status != nil {
		submitted = *r.Status
	}
	a.ActivityStatus = m.DeriveActivityStatus(effectiveWinners(a), submitted)
}

func effectiveWinners(a *m.ActivityModel) m.ActivityWinners {
	var w m.ActivityWinners
	if len(a.ActivityWinners) > 0 {
		_ = json.Unmarshal(a.ActivityWinners, &w)
	}
	return w
}

type ActivityResponse struct {
	ActivityID             string            `json:"activity_id"`
	ActivityTitle          string            `json:"activity_title"`
	ActivityType           string            `json:"activity_type"`
	ActivityClasses        []string          `json:"activity_classes"`
	ActivitySection        string            `json:"activity_section"`
	ActivityDate           string            `json:"activity_date"`
	ActivityTime           string            `json:"activity_time"`
	ActivityVenue          string            `json:"activity_venue"`
	ActivityParticipants   *string           `json:"activity_participants,omitempty"`
	ActivityTeachers       []string          `json:"activity_teachers"`
	ActivityNotifyStudents bool              `json:"activity_notify_students"`
	ActivityNotifyParents  bool              `json:"activity_notify_parents"`
	ActivityOutcome        *string           `json:"activity_outcome,omitempty"`
	ActivityStatus         string            `json:"activity_status"`
	ActivityWinners        m.ActivityWinners `json:"activity_winners"`
	ActivityCreatedAt      string            `json:"activity_created_at"`
	ActivityUpdatedAt      string            `json:"activity_updated_at"`
}

func FromActivityModel(a m.ActivityModel) ActivityResponse {
	var classes, teachers []string
	if len(a.ActivityClasses) > 0 {
		_ = json.Unmarshal(a.ActivityClasses, &classes)
	}
	if len(a.ActivityTeachers) > 0 {
		_ = json.Unmarshal(a.ActivityTeachers, &teachers)
	}
	return ActivityResponse{
		ActivityID:             a.ActivityID.String(),
		ActivityTitle:          a.ActivityTitle,
		ActivityType:           a.ActivityType,
		ActivityClasses:        classes,
		ActivitySection:        a.ActivitySection,
		ActivityDate:           a.ActivityDate,
		ActivityTime:           a.ActivityTime,
		ActivityVenue:          a.ActivityVenue,
		ActivityParticipants:   a.ActivityParticipants,
		ActivityTeachers:       teachers,
		ActivityNotifyStudents: a.ActivityNotifyStudents,
		ActivityNotifyParents:  a.ActivityNotifyParents,
		ActivityOutcome:        a.ActivityOutcome,
		ActivityStatus:         a.ActivityStatus,
		ActivityWinners:        effectiveWinners(&a),
		ActivityCreatedAt:      a.ActivityCreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		ActivityUpdatedAt:      a.ActivityUpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func FromActivityModels(rows []m.ActivityModel) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromActivityModel(r))
	}
	return out
}
