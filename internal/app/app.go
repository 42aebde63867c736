package app

import (
	"context"
	"fmt"
	"time"

	"Hostess/internal/cache"
	"Hostess/internal/config"
	"Hostess/internal/handlers"
	"Hostess/internal/repo"
	"Hostess/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type App struct {
	cfg    config.Config
	log    *zap.Logger
	db     *pgxpool.Pool
	redis  *redis.Client
	items  *service.ItemService
	router *gin.Engine
}

func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	a := &App{cfg: cfg, log: log}

	var snapRepo repo.SnapshotRepo
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		db, err := newPostgres(ctx, cfg.Storage.PGDSN)
		if err != nil {
			return nil, err
		}
		a.db = db
		if err := runMigrations(cfg.Storage.PGDSN, "./migrations"); err != nil {
			db.Close()
			return nil, err
		}
		snapRepo = repo.NewPGSnapshotRepo(db)
	default:
		fileRepo, err := repo.NewFileSnapshotRepo(cfg.Storage.DataDir)
		if err != nil {
			return nil, err
		}
		snapRepo = fileRepo
	}

	var boardCache *cache.BoardCache
	if cfg.Redis.Addr != "" {
		rdb, err := newRedis(ctx, cfg.Redis)
		if err != nil {
			a.close()
			return nil, err
		}
		a.redis = rdb
		boardCache = cache.NewBoardCache(rdb, cfg.Redis.DefaultTTL.Duration())
	}

	a.items = service.NewItemService(snapRepo, boardCache, log)
	if err := a.items.Load(ctx); err != nil {
		a.close()
		return nil, err
	}
	board := service.NewBoardService(a.items, boardCache)

	a.router = newRouter(cfg, a.items, board)
	return a, nil
}

func (a *App) Router() *gin.Engine {
	return a.router
}

// Close flushes the item store to durable storage and releases connections.
// The flush is the shutdown reconciliation point and its error is surfaced.
func (a *App) Close(ctx context.Context) error {
	flushErr := a.items.Flush(ctx)
	if flushErr != nil {
		flushErr = fmt.Errorf("final snapshot flush: %w", flushErr)
	}
	a.close()
	return flushErr
}

func (a *App) close() {
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.db != nil {
		a.db.Close()
	}
}

func newPostgres(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("pg parse config: %w", err)
	}
	cfg.MaxConns = 10
	cfg.MinConns = 2
	cfg.MaxConnIdleTime = 5 * time.Minute
	cfg.MaxConnLifetime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("pg connect: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pg ping: %w", err)
	}

	return pool, nil
}

func newRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return rdb, nil
}

func runMigrations(dsn string, migrationsDir string) error {
	db, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return fmt.Errorf("goose open db: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

func newRouter(cfg config.Config, items *service.ItemService, board *service.BoardService) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", "Content-Type"},
		MaxAge:        12 * time.Hour,
	}))

	Setup(r, cfg, handlers.NewBoardHandler(items, board))
	return r
}
