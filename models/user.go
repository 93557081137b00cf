package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleCoach   UserRole = "coach"
	RoleStudent UserRole = "student"
)

var UserRoles = []UserRole{RoleAdmin, RoleCoach, RoleStudent}

type UserStatus string

const (
	UserStatusTrain  UserStatus = "train"
	UserStatusRetire UserStatus = "retire"
)

var UserStatuses = []UserStatus{UserStatusTrain, UserStatusRetire}

func (s UserStatus) Valid() bool {
	return s == UserStatusTrain || s == UserStatusRetire
}

const (
	GenderFemale = 0
	GenderMale   = 1
)

type Avatar struct {
	Thumb    string `json:"thumb" gorm:"column:avatar_thumb"`
	Original string `json:"original" gorm:"column:avatar_original"`
}

// UserInfo is the contact and enrolment block shown in the user table.
type UserInfo struct {
	Email   string `json:"email" gorm:"column:email;uniqueIndex;not null"`
	School  string `json:"school" gorm:"column:school"`
	College string `json:"college" gorm:"column:college"`
	Major   string `json:"major" gorm:"column:major"`
	Grade   string `json:"grade" gorm:"column:grade"`
}

type User struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	Username    string         `json:"username" gorm:"uniqueIndex;not null"`
	Password    string         `json:"-" gorm:"not null"`
	DisplayName string         `json:"display_name"`
	Nickname    string         `json:"nickname"`
	Gender      int            `json:"gender" gorm:"default:1"`
	Role        UserRole       `json:"role" gorm:"index;default:'student'"`
	Status      UserStatus     `json:"status" gorm:"index;default:'train'"`
	Avatar      Avatar         `json:"avatar" gorm:"embedded"`
	UserInfo    UserInfo       `json:"user_info" gorm:"embedded"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// Name is the label used where a single author string is displayed.
func (u User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}
