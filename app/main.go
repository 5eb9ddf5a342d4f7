package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/album-catalog/domain"
	"github.com/Guyuepp/album-catalog/internal/config"
	"github.com/Guyuepp/album-catalog/internal/repository/memory"
	mysqlRepo "github.com/Guyuepp/album-catalog/internal/repository/mysql"
	myRedisCache "github.com/Guyuepp/album-catalog/internal/repository/redis"
	"github.com/Guyuepp/album-catalog/internal/rest"
	"github.com/Guyuepp/album-catalog/internal/rest/middleware"
	"github.com/Guyuepp/album-catalog/internal/usecase/like"
	"github.com/Guyuepp/album-catalog/internal/workers"
)

const (
	dbMaxRetry         = 10
	dbRetryIntervalSec = 2
	shutdownTimeout    = 5 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Fatalf("invalid log level: %v", err)
	}
	logrus.SetLevel(level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// prepare like store
	var likeRepo domain.LikeRepository
	switch cfg.StoreDriver {
	case config.StoreDriverMySQL:
		db := openDatabase(cfg)
		defer func() {
			sqlDB, err := db.DB()
			if err != nil {
				logrus.Errorf("got error when getting sql.DB from gorm.DB: %v", err)
				return
			}
			if err := sqlDB.Close(); err != nil {
				logrus.Errorf("got error when closing the DB connection: %v", err)
			}
		}()
		likeRepo = mysqlRepo.NewLikeRepository(db)
	default:
		logrus.Warn("using the in-memory like store, likes are lost on restart")
		likeRepo = memory.NewLikeRepository(cfg.SeedAlbums...)
	}

	// prepare cache
	var client *redis.Client
	if cfg.NeedsRedis() {
		client = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr(),
			Password: cfg.CachePass,
			DB:       cfg.CacheDB,
		})
		defer func() {
			if err := client.Close(); err != nil {
				logrus.Errorf("got error when closing the cache connection: %v", err)
			}
		}()

		if err := client.Ping(ctx).Err(); err != nil {
			logrus.Fatalf("failed to open connection to cache: %v", err)
		}
	}

	var countCache domain.LikeCountCache
	switch cfg.CacheDriver {
	case config.CacheDriverRedis:
		countCache = myRedisCache.NewLikeCountCache(client)
	default:
		countCache = memory.NewLikeCountCache(cfg.CacheCapacity)
	}

	g, gctx := errgroup.WithContext(ctx)

	// the redis cache is already shared, only process-local caches need the broadcast
	var publisher domain.InvalidationPublisher
	if cfg.InvalidationBroadcast && cfg.CacheDriver == config.CacheDriverMemory {
		w := workers.NewInvalidationWorker(client, countCache)
		g.Go(func() error {
			w.Start(gctx)
			return nil
		})
		g.Go(func() error {
			w.Listen(gctx)
			return nil
		})
		publisher = w
	}

	// prepare gin
	route := gin.Default()
	route.Use(middleware.CORS())
	route.Use(middleware.SetRequestContextWithTimeout(cfg.ContextTimeout))

	likeSvc := like.NewService(likeRepo, countCache, publisher)
	rest.NewAlbumLikeHandler(likeSvc).Register(route, middleware.AuthMiddleware(cfg.JWTSecret))

	srv := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: route,
	}
	g.Go(func() error {
		logrus.Infof("Server is running on %s", cfg.ServerAddress)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logrus.Info("Shutdown signal received, stopping server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logrus.Errorf("server stopped: %v", err)
	}
	logrus.Info("Server exiting")
}

func openDatabase(cfg config.Config) *gorm.DB {
	var db *gorm.DB
	err := retry(dbMaxRetry, dbRetryIntervalSec*time.Second, func(attempt int) error {
		var err error
		db, err = gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
		if err != nil {
			logrus.Warnf("failed to open connection to database (attempt %d/%d): %v", attempt, dbMaxRetry, err)
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			logrus.Warnf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", attempt, dbMaxRetry, err)
			return err
		}
		if err := sqlDB.Ping(); err != nil {
			logrus.Warnf("failed to ping database (attempt %d/%d): %v", attempt, dbMaxRetry, err)
			_ = sqlDB.Close()
			return err
		}
		return nil
	})
	if err != nil {
		logrus.Fatalf("could not connect to database after retries: %v", err)
	}

	if cfg.AutoMigrate {
		sqlDB, err := db.DB()
		if err != nil {
			logrus.Fatalf("failed to get sql.DB from gorm.DB: %v", err)
		}
		if err := mysqlRepo.Migrate(sqlDB); err != nil {
			logrus.Fatalf("failed to migrate like schema: %v", err)
		}
	}
	return db
}

var sleep = time.Sleep

// retry calls fn up to attempts times, waiting interval between failed attempts.
// It returns the last error.
func retry(attempts int, interval time.Duration, fn func(attempt int) error) error {
	var err error
	for i := range attempts {
		if err = fn(i + 1); err == nil {
			return nil
		}
		if i < attempts-1 {
			sleep(interval)
		}
	}
	return err
}
