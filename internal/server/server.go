package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"nextin/internal/config"
	"nextin/internal/handler"
	"nextin/internal/middleware"
	"nextin/internal/move"
	"nextin/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type Server struct {
	Engine  *gin.Engine
	Repo    *repository.BoardRepository
	Config  *config.Config
	Logger  *log.Logger
	closers []func() error
}

func Init(cfg *config.Config) (*Server, error) {
	logger := NewLogger(cfg.LogLevel)
	ctx := context.Background()

	policy, err := move.ParsePolicy(cfg.MovePolicy)
	if err != nil {
		return nil, fmt.Errorf("❌ %w", err)
	}

	store, closer, err := openSnapshotStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	repo := repository.NewBoardRepository(store,
		repository.WithMovePolicy(policy),
		repository.WithLogger(logger),
	)
	if err := repo.Load(ctx); err != nil {
		return nil, fmt.Errorf("❌ failed to load board: %w", err)
	}

	s := &Server{
		Engine: NewRouter(repo, cfg, logger),
		Repo:   repo,
		Config: cfg,
		Logger: logger,
	}
	if closer != nil {
		s.closers = append(s.closers, closer)
	}
	return s, nil
}

// NewLogger builds the process logger at the given level, defaulting to info.
func NewLogger(level string) *log.Logger {
	logger := log.New()
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

func openSnapshotStore(ctx context.Context, cfg *config.Config, logger *log.Logger) (repository.SnapshotStore, func() error, error) {
	switch cfg.StoreDriver {
	case config.StoreFile:
		logger.WithField("path", cfg.DataFile).Info("✅ Using file snapshot store")
		return repository.NewFileSnapshotStore(cfg.DataFile), nil, nil

	case config.StorePostgres:
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
		)
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)})
		if err != nil {
			return nil, nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
		}
		store := repository.NewGormSnapshotStore(db, repository.DefaultSnapshotID)
		if err := store.Migrate(ctx); err != nil {
			return nil, nil, fmt.Errorf("❌ failed to migrate DB: %w", err)
		}
		logger.Info("✅ Connected to database")

		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		return store, sqlDB.Close, nil

	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("❌ failed to connect to Redis: %w", err)
		}
		logger.WithField("addr", cfg.RedisAddr).Info("✅ Connected to Redis")
		return repository.NewRedisSnapshotStore(client, cfg.RedisKey), client.Close, nil
	}
	return nil, nil, fmt.Errorf("❌ unknown store driver %q", cfg.StoreDriver)
}

// NewRouter wires the HTTP API on top of a board service.
func NewRouter(svc handler.BoardService, cfg *config.Config, logger *log.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.CORSOrigin))

	boardHandler := handler.NewBoardHandler(svc)
	issueHandler := handler.NewIssueHandler(svc)
	moveHandler := handler.NewMoveHandler(svc)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	api := r.Group("/api")
	api.GET("/board", boardHandler.Get)
	api.GET("/board/columns", boardHandler.Columns)
	api.GET("/stats", boardHandler.Stats)
	api.GET("/issues/:id", issueHandler.Get)

	// Mutating routes - require a token when JWT_SECRET is set
	mutating := api.Group("/")
	if cfg.AuthEnabled() {
		mutating.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	}
	{
		mutating.POST("/issues", issueHandler.Create)
		mutating.PUT("/issues/:id", issueHandler.Update)
		mutating.DELETE("/issues/:id", issueHandler.Delete)
		mutating.POST("/move", moveHandler.Move)
	}
	return r
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		s.Logger.Infof("🚀 Server running on port %s", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.Logger.Fatalf("❌ Failed to listen: %s", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	s.Logger.Info("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		s.Logger.Fatalf("❌ Server forced to shutdown: %s", err)
	}
	for _, closer := range s.closers {
		if err := closer(); err != nil {
			s.Logger.WithError(err).Warn("Failed to close snapshot store")
		}
	}

	s.Logger.Info("✅ Server exited properly")
}
