package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/lskolhar/complain-hub/internal/api/handler"
	"github.com/lskolhar/complain-hub/internal/classifier"
	"github.com/lskolhar/complain-hub/internal/complaint"
	"github.com/lskolhar/complain-hub/internal/config"
	"github.com/lskolhar/complain-hub/internal/docstore"
	"github.com/lskolhar/complain-hub/internal/feed"
	"github.com/lskolhar/complain-hub/internal/identity"
	"github.com/lskolhar/complain-hub/internal/models"
	"github.com/lskolhar/complain-hub/internal/telegram"
)

func setupDependencies(cfg config.Config) (*gorm.DB, *redis.Client) {
	// 1. PostgreSQL
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	// 2. Redis
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	// 3. Migrations
	err = db.AutoMigrate(
		&docstore.Record{},
		&models.AdminSubscriber{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func main() {
	log.Println("Starting ComplainHub Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}
	cfg := config.FromEnv()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set!")
	}

	// 1. Dependencies
	db, rdb := setupDependencies(cfg)
	store := docstore.NewService(db)

	// 2. Services
	hub := feed.NewManagerService(rdb)
	complaints := complaint.NewService(store, hub)
	cls := classifier.NewClient(cfg.ClassifierBaseURL)
	verifier := identity.NewVerifier(cfg.JWTSecret, cfg.DefaultRole)
	users := identity.NewUsers(store, rdb, cfg.DefaultRole)

	// 3. Main goroutines
	go hub.Run()

	if cfg.TelegramToken != "" {
		notifier, err := telegram.NewNotifierService(cfg.TelegramToken, db)
		if err != nil {
			log.Fatalf("Failed to start Telegram notifier: %v", err)
		}
		hub.RegisterCh <- notifier
	} else {
		log.Println("TELEGRAM_BOT_TOKEN not set, notifier disabled")
	}

	// 4. Gin and routing
	r := gin.Default()
	h := handler.NewHandler(complaints, cls, users, verifier, hub)

	api := r.Group("/api")
	{
		c := api.Group("/complaint")
		c.POST("/create", h.CreateComplaint)
		c.GET("/all", h.GetAllComplaints)
		c.GET("/user/:uid", h.GetComplaintsByUser)
		c.PUT("/:id/status", h.UpdateComplaintStatus)
		c.POST("/:id/comment", h.AddAdminComment)
		c.POST("/admin/classify-priority", h.ClassifyPriority)

		api.POST("/auth/verifyToken", h.VerifyToken)

		u := api.Group("/user")
		u.POST("/signup", h.Signup)
		u.POST("/signin", h.Signin)
		u.POST("/admin/login", h.AdminLogin)
		u.PUT("/edit/:id", h.EditUser)
		u.GET("/all", h.GetAllUsers)
		u.PATCH("/block/:id", h.BlockUser)
		u.POST("/block/:id", h.BlockUser)
		u.PATCH("/unblock/:id", h.UnblockUser)
		u.POST("/unblock/:id", h.UnblockUser)
	}
	r.GET("/ws/admin", h.ServeFeed)

	server := &http.Server{
		Addr:           cfg.ListenAddr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(server.ListenAndServe())
}
