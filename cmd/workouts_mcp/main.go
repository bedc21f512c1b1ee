// Package main runs the workouts MCP server over stdio.
// The same MCP server is also mounted on the main backend at /mcp over HTTP
// when mcp_enabled is set.
package main

import (
	"context"
	"flag"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/2beens/workouttracker/internal/config"
	gymstatsmcp "github.com/2beens/workouttracker/internal/gymstats/mcp"
	"github.com/2beens/workouttracker/internal/gymstats/storage"
	"github.com/2beens/workouttracker/internal/gymstats/tracker"

	"github.com/go-redis/redis/v8"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	// stdout carries the protocol
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var rdb *redis.Client
	if cfg.RedisHost != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: os.Getenv("WORKOUTS_REDIS_PASS"),
		})
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Errorf("close redis client: %s", err)
			}
		}()
	}

	store, err := storage.Open(ctx, storage.OpenParams{
		Config:           cfg,
		RedisClient:      rdb,
		PostgresPassword: os.Getenv("WORKOUTS_POSTGRES_PASS"),
		S3AccessKeyID:    os.Getenv("WORKOUTS_S3_ACCESS_KEY_ID"),
		S3SecretKey:      os.Getenv("WORKOUTS_S3_SECRET_ACCESS_KEY"),
	})
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Errorf("close store: %s", err)
		}
	}()

	service := tracker.NewService(storage.NewRepo(store), nil)
	server := gymstatsmcp.NewServer(service)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		log.Errorf("mcp server: %s", err)
	}
}
