package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey;column:user_id" json:"user_id"`

	UserName  string `gorm:"type:varchar(100);not null;column:user_name" json:"user_name"`
	UserEmail string `gorm:"type:varchar(160);not null;uniqueIndex:uq_users_email;column:user_email" json:"user_email"`

	// bcrypt hash, never serialized
	UserPassword string `gorm:"type:varchar(100);not null;column:user_password" json:"-"`

	UserRole     string `gorm:"type:varchar(20);not null;column:user_role" json:"user_role"`
	UserIsActive bool   `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;not null;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;not null;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	return nil
}
