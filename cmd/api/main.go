package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/micronlogivdev/iftaway/internal/config"
	"github.com/micronlogivdev/iftaway/internal/middleware"
	"github.com/micronlogivdev/iftaway/internal/migrations"
	"github.com/micronlogivdev/iftaway/internal/server"
	"github.com/micronlogivdev/iftaway/internal/service"
	"github.com/micronlogivdev/iftaway/internal/store"

	_ "github.com/micronlogivdev/iftaway/docs"
)

// @title IFTAway API
// @version 1.0
// @description IFTAway - IFTA fuel tax reporting API

// @host localhost:10000
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	log.Println("[API] Starting IFTAway API Server...")

	cfg := config.Load()

	if cfg.MigrateOnStart {
		if err := migrations.Up(cfg.DatabaseURL); err != nil {
			log.Fatalf("[API] Failed to migrate database: %v", err)
		}
		log.Println("[API] Database migrated")
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("[API] Failed to connect to database: %v", err)
	}
	log.Println("[API] Connected to database")

	// Redis backs rate limiting only; the API runs without it
	var limiter middleware.RateLimiter
	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.RedisURL,
		DB:   0,
	})
	defer redisClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Printf("[API] Redis unavailable, rate limiting disabled: %v", err)
	} else {
		limiter = middleware.NewRedisRateLimiter(redisClient)
		log.Println("[API] Connected to Redis")
	}

	// NATS carries entry events to websocket clients on every instance
	var events service.EventPublisher
	natsConn, err := nats.Connect(cfg.NATSURL,
		nats.Name("iftaway-api"),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		log.Printf("[API] NATS unavailable, events stay in process: %v", err)
	} else {
		log.Println("[API] Connected to NATS")
		defer natsConn.Close()

		if cfg.JetStreamEnabled {
			js, err := service.NewJetStreamPublisher(natsConn)
			if err != nil {
				log.Printf("[API] JetStream unavailable, using core NATS: %v", err)
			} else {
				events = js
				log.Printf("[API] JetStream stream %s ready", service.StreamEvents)
			}
		}
	}

	srv := server.NewServer(cfg, store.NewGormStore(db), limiter, natsConn, events)
	srv.Setup()

	demoCtx, demoCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := srv.EnsureDemoUser(demoCtx); err != nil {
		log.Printf("[API] %v", err)
	}
	demoCancel()

	addr := fmt.Sprintf(":%d", cfg.APIPort)
	go func() {
		if err := srv.Run(addr); err != nil {
			log.Fatalf("[API] Failed to start server: %v", err)
		}
	}()

	log.Printf("[API] Server ready on %s", addr)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	<-sigChan
	log.Println("[API] Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	srv.Shutdown(shutdownCtx)
	log.Println("[API] Server stopped")
}
