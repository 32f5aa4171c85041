package services

import (
	"testing"

	"articlehub/models"

	"github.com/stretchr/testify/require"
)

func TestCreateArticleDefaults(t *testing.T) {
	db, rdb := newTestStores(t)
	svc := NewArticleService(db, rdb)

	first, err := svc.CreateArticle("A", "u1", "b")
	require.NoError(t, err)
	require.NotZero(t, first.ID)
	require.Zero(t, first.LikesCount)
	require.Zero(t, first.ViewsCount)

	second, err := svc.CreateArticle("A", "u1", "b")
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	// 同 title/author 允许重复
	var count int64
	require.NoError(t, db.Model(&models.Article{}).Count(&count).Error)
	require.EqualValues(t, 2, count)
}

func TestListArticlesCaching(t *testing.T) {
	db, rdb := newTestStores(t)
	svc := NewArticleService(db, rdb)

	_, err := svc.CreateArticle("A", "u1", "b1")
	require.NoError(t, err)
	_, err = svc.CreateArticle("B", "u2", "b2")
	require.NoError(t, err)

	list, err := svc.ListArticles()
	require.NoError(t, err)
	require.Len(t, list, 2)

	// 绕过服务直接写库：缓存仍然命中，看不到新行
	require.NoError(t, db.Create(&models.Article{Title: "C", Author: "u3", Body: "b3"}).Error)
	list, err = svc.ListArticles()
	require.NoError(t, err)
	require.Len(t, list, 2)

	// 走服务创建会使缓存失效，下一次读回源
	_, err = svc.CreateArticle("D", "u4", "b4")
	require.NoError(t, err)
	list, err = svc.ListArticles()
	require.NoError(t, err)
	require.Len(t, list, 4)
}

func TestGetLikesCount(t *testing.T) {
	db, rdb := newTestStores(t)
	svc := NewArticleService(db, rdb)

	article := createTestArticle(t, db, "u1")
	likes, err := svc.GetLikesCount(article.ID)
	require.NoError(t, err)
	require.Zero(t, likes)

	require.NoError(t, db.Model(&models.Article{}).
		Where("id = ?", article.ID).
		UpdateColumn("likes_count", 3).Error)
	likes, err = svc.GetLikesCount(article.ID)
	require.NoError(t, err)
	require.EqualValues(t, 3, likes)

	_, err = svc.GetLikesCount(999)
	require.ErrorIs(t, err, ErrArticleNotFound)
}
