package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GuestUsername is the shared fallback identity for comments submitted
// without a logged-in author.
const GuestUsername = "guest"

// UserModel represents a registered author or commenter.
type UserModel struct {
	Base
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Name     string `json:"name"`
	Password string `json:"-"        gorm:"not null"`
}

func (UserModel) TableName() string { return "users" }

// DisplayName returns the name shown on rendered pages.
func (u UserModel) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}

// UserSession is a revocable login session referenced by the auth cookie.
type UserSession struct {
	ID        string `gorm:"type:char(36);primaryKey"`
	UserID    uint   `gorm:"index;not null"`
	IP        string
	UA        string `gorm:"type:varchar(512)"`
	CreatedAt time.Time
	UpdatedAt time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time
}

func (UserSession) TableName() string { return "user_sessions" }

func (s *UserSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
