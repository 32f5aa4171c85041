package services

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"articlehub/models"

	"github.com/go-redis/redis"
	"gorm.io/gorm"
)

const (
	articleListKey = "articles"
	articleListTTL = 10 * time.Minute
)

type ArticleService struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewArticleService(db *gorm.DB, rdb *redis.Client) *ArticleService {
	return &ArticleService{db: db, rdb: rdb}
}

// CreateArticle 新建文章，计数从 0 开始，并使列表缓存失效
func (s *ArticleService) CreateArticle(title, author, body string) (*models.Article, error) {
	article := models.Article{
		Title:  title,
		Author: author,
		Body:   body,
	}
	if err := s.db.Create(&article).Error; err != nil {
		return nil, err
	}

	if err := s.rdb.Del(articleListKey).Err(); err != nil {
		// 缓存失效失败不阻塞创建，最多等 TTL 过期
		log.Printf("failed to invalidate article list cache: %v", err)
	}

	return &article, nil
}

// ListArticles 优先读 Redis 缓存，未命中回源 MySQL 并回填
func (s *ArticleService) ListArticles() ([]models.Article, error) {
	cached, err := s.rdb.Get(articleListKey).Result()
	if err == nil {
		var list []models.Article
		if jsonErr := json.Unmarshal([]byte(cached), &list); jsonErr == nil {
			return list, nil
		}
		// 缓存内容损坏，当作未命中回源
	} else if err != redis.Nil {
		return nil, err
	}

	var list []models.Article
	if err := s.db.Order("id").Find(&list).Error; err != nil {
		return nil, err
	}

	if data, jsonErr := json.Marshal(list); jsonErr == nil {
		if err := s.rdb.Set(articleListKey, data, articleListTTL).Err(); err != nil {
			log.Printf("failed to cache article list: %v", err)
		}
	}

	return list, nil
}

// GetLikesCount 返回单篇文章当前的冗余点赞计数
func (s *ArticleService) GetLikesCount(articleID uint) (int64, error) {
	var article models.Article
	if err := s.db.First(&article, articleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrArticleNotFound
		}
		return 0, err
	}
	return article.LikesCount, nil
}
