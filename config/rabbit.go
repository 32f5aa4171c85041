package config

import (
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// InitRabbitMQ 建立 RabbitMQ 连接并声明通知队列。
// url 为空时跳过初始化，通知只落库不投递。
func InitRabbitMQ(cfg *Config) (*amqp.Connection, *amqp.Channel, error) {
	url := cfg.RabbitMQ.Url
	if url == "" {
		log.Println("rabbitmq url empty, skipping rabbit init")
		return nil, nil, nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("failed to open RabbitMQ channel: %w", err)
	}

	if _, err := ch.QueueDeclare(cfg.RabbitMQ.Queue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, nil, fmt.Errorf("failed to declare RabbitMQ queue: %w", err)
	}

	log.Println("RabbitMQ initialized, queue:", cfg.RabbitMQ.Queue)
	return conn, ch, nil
}
