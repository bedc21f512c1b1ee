package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/workouttracker/internal/config"
	"github.com/2beens/workouttracker/internal/db"
	"github.com/2beens/workouttracker/internal/telemetry/metrics"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

type OpenParams struct {
	Config           *config.Config
	RedisClient      *redis.Client
	PostgresPassword string
	S3AccessKeyID    string
	S3SecretKey      string
	TracingEnabled   bool
	MetricsManager   *metrics.Manager
}

// Open creates the store selected by the config backend, wrapped in the
// memory cache when a cache size is configured.
func Open(ctx context.Context, params OpenParams) (Store, error) {
	store, err := openBackend(ctx, params)
	if err != nil {
		return nil, err
	}

	if params.Config.StoreCacheSizeMB > 0 {
		log.Debugf("store cache enabled, size: %d MB", params.Config.StoreCacheSizeMB)
		return NewCachedStore(store, params.Config.StoreCacheSizeMB, params.MetricsManager), nil
	}
	return store, nil
}

func openBackend(ctx context.Context, params OpenParams) (Store, error) {
	cfg := params.Config
	log.Infof("opening [%s] store", cfg.StoreBackend)

	switch cfg.StoreBackend {
	case config.StoreBackendMemory:
		return NewMemoryStore(), nil
	case config.StoreBackendDisk:
		return NewDiskStore(cfg.DiskStoreRootPath)
	case config.StoreBackendRedis:
		if params.RedisClient == nil {
			return nil, errors.New("redis store requires a redis client")
		}
		return NewRedisStore(params.RedisClient, cfg.RedisKeyPrefix), nil
	case config.StoreBackendPostgres:
		pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:         cfg.PostgresHost,
			DBPort:         cfg.PostgresPort,
			DBUser:         cfg.PostgresUser,
			DBPassword:     params.PostgresPassword,
			DBName:         cfg.PostgresDBName,
			TracingEnabled: params.TracingEnabled,
		})
		if err != nil {
			return nil, fmt.Errorf("new db pool: %w", err)
		}
		store := NewPostgresStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		return store, nil
	case config.StoreBackendMongo:
		return NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDBName)
	case config.StoreBackendS3:
		return NewS3Store(ctx, S3Params{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			Prefix:          cfg.S3Prefix,
			AccessKeyID:     params.S3AccessKeyID,
			SecretAccessKey: params.S3SecretKey,
		})
	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.StoreBackend)
	}
}
