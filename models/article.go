package models

import "time"

// Article 文章主表，likes_count / views_count 为冗余计数字段
type Article struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	Title      string    `json:"title" gorm:"not null"`
	Author     string    `json:"author" gorm:"size:64;index;not null"`
	Body       string    `json:"body" gorm:"type:text"`
	LikesCount int64     `json:"likes_count" gorm:"not null;default:0"`
	ViewsCount int64     `json:"views_count" gorm:"not null;default:0"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"-"`
}
