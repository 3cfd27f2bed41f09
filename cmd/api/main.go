package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/medsched/hospital-scheduler/internal/config"
	dbpkg "github.com/medsched/hospital-scheduler/internal/db"
	"github.com/medsched/hospital-scheduler/internal/middleware"
	"github.com/medsched/hospital-scheduler/internal/routes"
	"github.com/medsched/hospital-scheduler/internal/sweep"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware(cfg))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	deps := routes.RegisterRoutes(r, db, rdb, cfg)

	runner := sweep.NewRunner(deps.OverdueSweepUC, cfg.SweepInterval)
	runner.Start()

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		log.Printf("Server running on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("server shutdown:", err)
	}

	// Stop the sweep loop first so no new audit entries are produced,
	// then drain the audit queue.
	runner.Stop()
	deps.AuditDispatcher.Stop()

	log.Println("shutdown complete")
}
