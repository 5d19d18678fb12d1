package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"bridgemart-backend/internal/core/auth"
	"bridgemart-backend/internal/core/cache"
	"bridgemart-backend/internal/core/config"
	"bridgemart-backend/internal/core/database"
	"bridgemart-backend/internal/core/logger"
	"bridgemart-backend/internal/core/server"
	"bridgemart-backend/internal/domain"
	"bridgemart-backend/internal/repo"
	"bridgemart-backend/internal/service"
	"bridgemart-backend/internal/transport/http/handler"
	"bridgemart-backend/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	// 数据库（失败直接 Fatal）
	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(&domain.User{}, &domain.Product{}, &domain.Order{}, &domain.OrderItem{}); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	jwter := &auth.JWTer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
	}

	// 依赖装配：repo → service → handler
	userSvc := service.NewUserService(repo.NewUserRepo(db))
	catalogSvc := service.NewCatalogService(repo.NewProductRepo(db))
	orderSvc := service.NewOrderService(repo.NewOrderRepo(db))
	reportSvc := service.NewReportService(repo.NewReportRepo(db))
	if cfg.Redis.Addr != "" && cfg.Report.CacheTTLSec > 0 {
		reportSvc.WithCache(
			cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB),
			time.Duration(cfg.Report.CacheTTLSec)*time.Second,
		)
		log.Info("report cache enabled", zap.String("redis", cfg.Redis.Addr))
	}

	r := router.NewAPIEngine(log, jwter, router.APIHandlers{
		Auth:    handler.NewAuthHandler(userSvc, jwter),
		Product: handler.NewProductHandler(catalogSvc),
		Order:   handler.NewOrderHandler(orderSvc),
		Report:  handler.NewReportHandler(reportSvc),
	})

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("api_v1", baseURL+"/api/v1"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("api start FAILED", zap.Error(err))
		}
	}()
	log.Info("api started SUCCESS")

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("api stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
