package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/2beens/workouttracker/internal/config"
	"github.com/2beens/workouttracker/internal/gymstats/storage"
	"github.com/2beens/workouttracker/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	outDir := flag.String("out", ".", "directory where the backup archive is written")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	log.Printf("staring workouts backup from [%s] store ...", cfg.StoreBackend)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var rdb *redis.Client
	if cfg.RedisHost != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: os.Getenv("WORKOUTS_REDIS_PASS"),
		})
		defer rdb.Close()
	}

	store, err := storage.Open(ctx, storage.OpenParams{
		Config:           cfg,
		RedisClient:      rdb,
		PostgresPassword: os.Getenv("WORKOUTS_POSTGRES_PASS"),
		S3AccessKeyID:    os.Getenv("WORKOUTS_S3_ACCESS_KEY_ID"),
		S3SecretKey:      os.Getenv("WORKOUTS_S3_SECRET_ACCESS_KEY"),
	})
	if err != nil {
		log.Fatalf("open store: %s", err)
	}
	defer store.Close()

	archivePath, err := backup(ctx, storage.NewRepo(store), *outDir, time.Now())
	if err != nil {
		log.Fatalf("backup failed: %s", err)
	}

	log.Printf("backup done: %s", archivePath)
}

// backup exports the four collections as JSON files into a temp dir and
// packs them into <outDir>/workouts-backup-<timestamp>.tar.gz.
func backup(ctx context.Context, repo *storage.Repo, outDir string, now time.Time) (string, error) {
	tmpDir, err := os.MkdirTemp("", "workouts-backup-*")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			log.Errorf("remove temp dir [%s]: %s", tmpDir, err)
		}
	}()

	if err := exportCollections(ctx, repo, tmpDir); err != nil {
		return "", err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("create out dir: %w", err)
	}
	archivePath := filepath.Join(outDir, fmt.Sprintf("workouts-backup-%s.tar.gz", now.UTC().Format("20060102-150405")))
	archive, err := os.Create(archivePath)
	if err != nil {
		return "", fmt.Errorf("create archive: %w", err)
	}
	defer archive.Close()

	if err := pkg.Compress(tmpDir, archive); err != nil {
		return "", fmt.Errorf("compress backup: %w", err)
	}
	if err := archive.Sync(); err != nil {
		return "", fmt.Errorf("sync archive: %w", err)
	}

	return archivePath, nil
}
