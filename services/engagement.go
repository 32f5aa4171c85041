package services

import (
	"errors"
	"fmt"
	"strconv"

	"articlehub/models"

	"github.com/go-redis/redis"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// rankKey Redis 排行榜 ZSET，member 为文章 id，score 为累计互动数
const rankKey = "popular_articles"

var ErrArticleNotFound = errors.New("article not found")

type Kind string

const (
	KindLike Kind = "like"
	KindView Kind = "view"
)

// PopularArticle 排行榜条目
type PopularArticle struct {
	ID    string `json:"id"`
	Score int64  `json:"score"`
}

type EngagementService struct {
	db            *gorm.DB
	rdb           *redis.Client
	notifications *NotificationService
}

func NewEngagementService(db *gorm.DB, rdb *redis.Client, notifications *NotificationService) *EngagementService {
	return &EngagementService{
		db:            db,
		rdb:           rdb,
		notifications: notifications,
	}
}

// RecordEngagement 把一次点赞/浏览落到 MySQL 与 Redis 两侧。
//
// 顺序：查文章 -> 台账插入（冲突忽略）-> 计数 +1 -> （点赞）写通知 -> ZINCRBY。
// 各步独立提交，不包事务也不回滚；中途出错直接返回，已提交的写入保持原样。
// 注意台账靠唯一索引去重，但计数无条件 +1，重复调用时两者会有意地不一致。
func (s *EngagementService) RecordEngagement(articleID uint, userID string, kind Kind) (string, error) {
	var article models.Article
	if err := s.db.First(&article, articleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrArticleNotFound
		}
		return "", err
	}

	switch kind {
	case KindLike:
		record := models.ArticleLike{ArticleID: article.ID, UserID: userID}
		if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&record).Error; err != nil {
			return "", err
		}
		if err := s.incrementCounter(article.ID, "likes_count"); err != nil {
			return "", err
		}
		// 每次点赞请求都给作者发一条通知，重复点赞也不例外
		if err := s.notifications.NotifyLiked(article.ID, article.Author); err != nil {
			return "", err
		}
	case KindView:
		record := models.ArticleView{ArticleID: article.ID, UserID: userID}
		if err := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&record).Error; err != nil {
			return "", err
		}
		if err := s.incrementCounter(article.ID, "views_count"); err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("unknown engagement kind: %s", kind)
	}

	member := strconv.FormatUint(uint64(article.ID), 10)
	if err := s.rdb.ZIncrBy(rankKey, 1, member).Err(); err != nil {
		return "", err
	}

	if kind == KindLike {
		return "Article liked and notification sent", nil
	}
	return "Article viewed", nil
}

func (s *EngagementService) incrementCounter(articleID uint, column string) error {
	return s.db.Model(&models.Article{}).
		Where("id = ?", articleID).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1)).Error
}

// TopArticles 从 Redis 取排行榜前 limit 名，按 score 降序
func (s *EngagementService) TopArticles(limit int) ([]PopularArticle, error) {
	if limit <= 0 {
		limit = 10
	}

	zres, err := s.rdb.ZRevRangeWithScores(rankKey, 0, int64(limit-1)).Result()
	if err != nil {
		// key 不存在时返回空榜单
		if err == redis.Nil {
			return []PopularArticle{}, nil
		}
		return nil, err
	}

	list := make([]PopularArticle, 0, len(zres))
	for _, z := range zres {
		member, _ := z.Member.(string)
		list = append(list, PopularArticle{ID: member, Score: int64(z.Score)})
	}
	return list, nil
}
