package models

import "time"

// Notification 点赞产生的作者通知，只追加不修改
type Notification struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    string    `json:"user_id" gorm:"size:64;index"`
	ArticleID uint      `json:"article_id" gorm:"index"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
