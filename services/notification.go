package services

import (
	"context"
	"encoding/json"
	"log"

	"articlehub/models"

	amqp "github.com/rabbitmq/amqp091-go"
	"gorm.io/gorm"
)

type NotificationService struct {
	db    *gorm.DB
	ch    *amqp.Channel
	queue string
}

// NewNotificationService ch 可以为 nil，此时通知只落库不投递
func NewNotificationService(db *gorm.DB, ch *amqp.Channel, queue string) *NotificationService {
	return &NotificationService{db: db, ch: ch, queue: queue}
}

// NotifyLiked 给文章作者写一条点赞通知并尽力投递到队列
func (s *NotificationService) NotifyLiked(articleID uint, author string) error {
	notification := models.Notification{
		UserID:    author,
		ArticleID: articleID,
		Message:   "Your article has been liked",
	}
	if err := s.db.Create(&notification).Error; err != nil {
		return err
	}

	s.publish(&notification)
	return nil
}

// publish 投递失败只记日志，落库的通知行才是事实来源
func (s *NotificationService) publish(notification *models.Notification) {
	if s.ch == nil {
		return
	}

	body, err := json.Marshal(notification)
	if err != nil {
		log.Printf("failed to marshal notification %d: %v", notification.ID, err)
		return
	}

	err = s.ch.PublishWithContext(context.Background(), "", s.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		log.Printf("failed to publish notification %d: %v", notification.ID, err)
	}
}

// ListByUser 按时间倒序返回某用户收到的全部通知
func (s *NotificationService) ListByUser(userID string) ([]models.Notification, error) {
	var list []models.Notification
	err := s.db.Where("user_id = ?", userID).Order("id DESC").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
