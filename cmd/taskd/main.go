package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	myPostgresRepo "github.com/Miraines/MoonyAndStarry/task-service/internal/adapters/db/postgres"
	httpTransport "github.com/Miraines/MoonyAndStarry/task-service/internal/adapters/transport/http"
	httpmw "github.com/Miraines/MoonyAndStarry/task-service/internal/adapters/transport/http/middleware"
	"github.com/Miraines/MoonyAndStarry/task-service/internal/app/auth/jwt"
	authsvc "github.com/Miraines/MoonyAndStarry/task-service/internal/app/auth/service"
	tasksvc "github.com/Miraines/MoonyAndStarry/task-service/internal/app/task/service"
	"github.com/Miraines/MoonyAndStarry/task-service/internal/infra/config"
	lg "github.com/Miraines/MoonyAndStarry/task-service/internal/infra/log"
	"github.com/Miraines/MoonyAndStarry/task-service/internal/infra/migrate"
)

func main() {
	zapLog := lg.Must(os.Getenv("LOG_LEVEL"))
	defer zapLog.Sync()

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("failed to load config", zap.Error(err))
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		zapLog.Fatal("failed to connect to database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLog.Fatal("db handle", zap.Error(err))
	}
	defer sqlDB.Close()
	if err := migrate.Up(sqlDB); err != nil {
		zapLog.Fatal("run migrations", zap.Error(err))
	}

	validate := validator.New()

	userRepo := myPostgresRepo.NewPostgresUserRepo(db)
	taskRepo := myPostgresRepo.NewPostgresTaskRepo(db)

	codec, err := jwt.NewCodec(cfg)
	if err != nil {
		zapLog.Fatal("failed to init JWT codec", zap.Error(err))
	}

	auth := authsvc.New(userRepo, codec, cfg, validate)
	tasks := tasksvc.New(taskRepo, userRepo, validate)

	created, err := auth.BootstrapAdmin(context.Background())
	if err != nil {
		zapLog.Fatal("bootstrap admin", zap.Error(err))
	}
	if created {
		zapLog.Info("admin account created", zap.Int64("id", cfg.AdminID))
	} else {
		zapLog.Info("admin account already exists", zap.Int64("id", cfg.AdminID))
	}

	metricsReg := prometheus.NewRegistry()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(httpmw.RequestLogger(zapLog))
	router.Use(httpmw.HTTPMetrics(metricsReg))

	corsConfig := cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Accept",
			"Authorization",
			"X-Requested-With",
		},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	httpTransport.NewRouter(auth, tasks, cfg, zapLog).Register(router, metricsReg)

	srv := &http.Server{Addr: cfg.HTTPAddress, Handler: router}
	rootCtx, cancel := context.WithCancel(context.Background())
	g, _ := errgroup.WithContext(rootCtx)

	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLog.Info("shutdown signal received")
	cancel()

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		zapLog.Error("shutdown error", zap.Error(err))
	}
	if err := g.Wait(); err != nil {
		zapLog.Error("server terminated", zap.Error(err))
	}
}
