package models

import (
	"time"

	"gorm.io/gorm"
)

type ArticleStatus string

const (
	ArticleStatusRecycle ArticleStatus = "recycle"
	ArticleStatusDraft   ArticleStatus = "draft"
	ArticleStatusPublish ArticleStatus = "publish"
	ArticleStatusPinned  ArticleStatus = "pinned"
)

// ArticleStatuses lists every status in display order.
var ArticleStatuses = []ArticleStatus{
	ArticleStatusRecycle,
	ArticleStatusDraft,
	ArticleStatusPublish,
	ArticleStatusPinned,
}

func (s ArticleStatus) Valid() bool {
	for _, v := range ArticleStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Article struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Title     string         `json:"title" gorm:"not null"`
	Type      string         `json:"type" gorm:"index;not null;default:'news'"`
	Status    ArticleStatus  `json:"status" gorm:"index;default:'draft'"`
	AuthorID  uint           `json:"author_id" gorm:"not null"`
	Author    User           `json:"user" gorm:"foreignKey:AuthorID"`
	Content   string         `json:"content" gorm:"type:text"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
