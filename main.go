package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"articlehub/config"
	"articlehub/controllers"
	"articlehub/router"
	"articlehub/services"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	rdb, err := config.InitRedis(cfg)
	if err != nil {
		log.Fatalf("init redis: %v", err)
	}

	rabbitConn, rabbitCh, err := config.InitRabbitMQ(cfg)
	if err != nil {
		log.Fatalf("init rabbitmq: %v", err)
	}

	notifications := services.NewNotificationService(db, rabbitCh, cfg.RabbitMQ.Queue)
	engagements := services.NewEngagementService(db, rdb, notifications)
	articles := services.NewArticleService(db, rdb)

	r := router.SetupRouter(
		controllers.NewArticleController(articles, engagements),
		controllers.NewEngagementController(engagements),
		controllers.NewNotificationController(notifications),
	)

	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: r,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("%s listening on port %s", cfg.App.Name, cfg.App.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown: %v", err)
	}

	// 按依赖反向释放共享连接
	if rabbitCh != nil {
		rabbitCh.Close()
	}
	if rabbitConn != nil {
		rabbitConn.Close()
	}
	if err := rdb.Close(); err != nil {
		log.Printf("close redis: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
