package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"campusvoice/backend/internal/api/handler"
	"campusvoice/backend/internal/classify"
	"campusvoice/backend/internal/complaints"
	"campusvoice/backend/internal/config"
	"campusvoice/backend/internal/metrics"
	"campusvoice/backend/internal/models"
	"campusvoice/backend/internal/notify"
	"campusvoice/backend/internal/status"
	"campusvoice/backend/internal/storage"
	"campusvoice/backend/internal/votehub"
	"campusvoice/backend/internal/voting"
)

func setupDependencies(cfg *config.Config) (*gorm.DB, *redis.Client) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect PostgreSQL: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	err = db.AutoMigrate(
		&models.Student{},
		&models.Complaint{},
		&models.Vote{},
		&models.StatusUpdate{},
		&models.SubmissionMeta{},
	)
	if err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Database and Redis connections established, migrations complete.")
	return db, rdb
}

func setupRouter(h *handler.Handler) *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")
	{
		api.POST("/complaints", h.Submit)
		api.GET("/complaints/my", h.MyComplaints)
		api.GET("/complaints/public", h.PublicFeed)
		api.GET("/complaints/:id", h.Detail)
		api.POST("/complaints/:id/recalculate-priority", h.RecalculatePriority)

		api.POST("/vote", h.Vote)
		api.GET("/votes/:complaint_id", h.VoteStats)

		api.POST("/status/update", h.UpdateStatus)

		api.GET("/authority/:authority_type/complaints", h.AuthorityComplaints)

		api.GET("/stats", h.Stats)
		api.GET("/ws/stats", h.WSStats)
		api.GET("/health", h.Health)

		api.GET("/ws/votes/:complaint_id", h.ServeVoteFeed)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return r
}

func main() {
	log.Println("Starting CampusVoice Backend...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file")
	}
	cfg := config.Load()

	db, rdb := setupDependencies(cfg)
	store := storage.NewService(db, rdb)
	m := metrics.New()

	classifier := classify.NewGroqClassifier(cfg.GroqAPIKey, cfg.GroqModel, cfg.GroqURL, cfg.ClassifyTimeout, m)

	notifier, err := notify.New(cfg.TelegramBotToken, cfg.AuthorityChatID)
	if err != nil {
		log.Fatalf("Failed to start Telegram notifier: %v", err)
	}

	hub := votehub.NewHub(m, cfg.SweepInterval)
	listener := votehub.NewListener(hub, rdb, storage.EventsChannel)

	complaintSvc := complaints.NewService(store, classifier, notifier, cfg.ClassifyTimeout, cfg.EmailDomain)
	ledger := voting.NewLedger(store, m, notifier, cfg.EmailDomain)
	workflow := status.NewWorkflow(store, cfg.EmailDomain)

	h := handler.NewHandler(complaintSvc, ledger, workflow, hub)

	server := &http.Server{
		Addr:           cfg.HTTPAddr,
		Handler:        setupRouter(h),
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := listener.Run(gctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		hub.RunSweeper(gctx)
		return nil
	})

	g.Go(func() error {
		log.Printf("HTTP server listening on %s", cfg.HTTPAddr)
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Println("Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("HTTP shutdown: %v", err)
		}
		hub.Shutdown()
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("Server exited with error: %v", err)
	}
	log.Println("Shutdown complete.")
}
