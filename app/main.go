package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/go-social-graph/internal/config"
	"github.com/Guyuepp/go-social-graph/internal/repository"
	mysqlRepo "github.com/Guyuepp/go-social-graph/internal/repository/mysql"
	myRedisCache "github.com/Guyuepp/go-social-graph/internal/repository/redis"
	"github.com/Guyuepp/go-social-graph/internal/rest"
	"github.com/Guyuepp/go-social-graph/internal/rest/middleware"
	"github.com/Guyuepp/go-social-graph/internal/usecase/feed"
	"github.com/Guyuepp/go-social-graph/internal/usecase/follow"
	"github.com/Guyuepp/go-social-graph/internal/usecase/like"
	"github.com/Guyuepp/go-social-graph/internal/usecase/notification"
)

const (
	dbMaxRetry         = 10
	dbRetryIntervalSec = 2
	shutdownTimeout    = 5 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}
	cfg.SetupLogger()

	//prepare database
	db, err := openDB(cfg.DSN())
	if err != nil {
		logrus.Fatal("could not connect to database after retries: ", err)
	}
	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			logrus.Error("got error when getting sql.DB from gorm.DB: ", err)
			return
		}
		if err := sqlDB.Close(); err != nil {
			logrus.Error("got error when closing the DB connection: ", err)
		}
	}()

	if cfg.DBAutoMigrate {
		if err := mysqlRepo.AutoMigrate(db); err != nil {
			logrus.Fatal("failed to migrate schema: ", err)
		}
		logrus.Info("schema migrated")
	}

	// prepare cache
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.CacheAddr(),
		Password: cfg.CachePass,
		DB:       cfg.CacheDB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			logrus.Error("got error when closing the cache connection: ", err)
		}
	}()
	if err := client.Ping(context.Background()).Err(); err != nil {
		logrus.Fatal("failed to open connection to cache: ", err)
	}

	// Prepare Repository
	userRepo := mysqlRepo.NewUserRepository(db)
	postRepo := mysqlRepo.NewPostRepository(db)
	likeRepo := mysqlRepo.NewLikeRepository(db)
	notificationRepo := mysqlRepo.NewNotificationRepository(db)

	// follow edges: db, cache, then the coordinating repository
	followDBRepo := mysqlRepo.NewFollowDBRepository(db)
	followCache := myRedisCache.NewFollowCache(client)
	followRepo := repository.NewFollowRepository(followDBRepo, followCache)

	// Build service Layer
	followSvc := follow.NewService(followRepo, userRepo)
	likeSvc := like.NewService(likeRepo, postRepo)
	notificationSvc := notification.NewService(notificationRepo)
	feedSvc := feed.NewService(followRepo, postRepo, userRepo)

	// prepare gin
	route := gin.New()
	route.Use(gin.Recovery())
	route.Use(middleware.RequestID())
	route.Use(middleware.Logger())
	route.Use(middleware.Metrics())
	route.Use(middleware.CORS())
	route.Use(middleware.SetRequestContextWithTimeout(cfg.ContextTimeout))

	route.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	route.GET("/metrics", middleware.MetricsHandler())

	authorized := route.Group("/")
	authorized.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	rest.Handlers{
		Follow:       rest.NewFollowHandler(followSvc),
		Like:         rest.NewLikeHandler(likeSvc),
		Notification: rest.NewNotificationHandler(notificationSvc),
		Feed:         rest.NewFeedHandler(feedSvc),
	}.Register(authorized)

	// Start Server
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: route,
	}
	go func() {
		logrus.Infof("Server is running on %s", cfg.ServerAddress)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("listen: %s", err)
		}
	}()

	// shutdown
	<-ctx.Done()
	logrus.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Error("Server forced to shutdown: ", err)
	}
	logrus.Info("Server exiting")
}

// openDB retries until MySQL answers a ping.
func openDB(dsn string) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
		if err != nil {
			logrus.Warnf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			time.Sleep(dbRetryIntervalSec * time.Second)
			continue
		}

		sqlDB, dbErr := db.DB()
		if dbErr != nil {
			err = dbErr
			logrus.Warnf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			time.Sleep(dbRetryIntervalSec * time.Second)
			continue
		}
		if err = sqlDB.Ping(); err == nil {
			return db, nil
		}
		logrus.Warnf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		_ = sqlDB.Close()
		time.Sleep(dbRetryIntervalSec * time.Second)
	}
	return nil, err
}
