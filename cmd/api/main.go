package main

import (
	"context"
	"log"

	"pulse-chat/internal/config"
	"pulse-chat/internal/domain/message"
	"pulse-chat/internal/domain/user"
	"pulse-chat/internal/handler"
	"pulse-chat/internal/repository"
	"pulse-chat/internal/server"
	"pulse-chat/internal/services"
	"pulse-chat/internal/websocket"
	"pulse-chat/pkg/database"
	"pulse-chat/pkg/events"
	"pulse-chat/pkg/logger"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logMode := logger.DevelopmentMode
	if cfg.Server.Mode == server.ReleaseMode {
		logMode = logger.ProductionMode
	}
	l := logger.New(logMode)
	logger.SetGlobalLogger(l)

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&user.User{}, &message.Message{}); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	broker := events.NewRedisBroker(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := websocket.NewHub()
	go hub.Run(ctx)

	bridge := websocket.NewRedisBridge(broker, hub)
	if err := bridge.Run(ctx, events.ChannelMessages); err != nil {
		log.Fatalf("Failed to subscribe notification transport: %v", err)
	}

	hasher := services.NewBcryptHasher(cfg.Auth.BcryptCost)
	userService := services.NewUserService(repository.NewUserRepository(db), hasher, l)
	messageService := services.NewMessageService(repository.NewMessageRepository(db), l)

	srv := server.New(cfg, l, db)
	srv.SetupRoutes(&server.Handlers{
		User:    handler.NewUserHandler(userService),
		Message: handler.NewMessageHandler(messageService, broker, l),
		WS:      websocket.NewHandler(hub),
	})

	if err := srv.Start(); err != nil {
		l.Errorf("Server shutdown error: %v", err)
	}
}
