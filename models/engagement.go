package models

import "gorm.io/gorm"

// ArticleLike 点赞去重台账，(article_id, user_id) 唯一
type ArticleLike struct {
	gorm.Model
	ArticleID uint   `gorm:"uniqueIndex:idx_like_article_user"`
	UserID    string `gorm:"size:64;uniqueIndex:idx_like_article_user"`
}

// ArticleView 浏览去重台账，(article_id, user_id) 唯一
type ArticleView struct {
	gorm.Model
	ArticleID uint   `gorm:"uniqueIndex:idx_view_article_user"`
	UserID    string `gorm:"size:64;uniqueIndex:idx_view_article_user"`
}
