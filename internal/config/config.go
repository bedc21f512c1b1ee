package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"
)

const (
	StoreBackendMemory   = "memory"
	StoreBackendDisk     = "disk"
	StoreBackendRedis    = "redis"
	StoreBackendPostgres = "postgres"
	StoreBackendMongo    = "mongo"
	StoreBackendS3       = "s3"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// http
	AllowedOrigins              []string `toml:"allowed_origins"`
	WriteRateLimitAllowedPerMin int      `toml:"write_rate_limit_allowed_per_min"`
	MCPEnabled                  bool     `toml:"mcp_enabled"`
	// storage
	StoreBackend      string `toml:"store_backend"`
	StoreCacheSizeMB  int    `toml:"store_cache_size_mb"`
	DiskStoreRootPath string `toml:"disk_store_root_path"`
	// redis
	RedisHost      string `toml:"redis_host"`
	RedisPort      string `toml:"redis_port"`
	RedisKeyPrefix string `toml:"redis_key_prefix"`
	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresUser   string `toml:"postgres_user"`
	PostgresDBName string `toml:"postgres_db_name"`
	// mongo
	MongoURI    string `toml:"mongo_uri"`
	MongoDBName string `toml:"mongo_db_name"`
	// s3
	S3Bucket   string `toml:"s3_bucket"`
	S3Region   string `toml:"s3_region"`
	S3Endpoint string `toml:"s3_endpoint"`
	S3Prefix   string `toml:"s3_prefix"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML file and returns the validated config of the env.
func Load(env, path string) (*Config, error) {
	var tomlConfig Toml
	if _, err := toml.DecodeFile(path, &tomlConfig); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}
	return fromToml(&tomlConfig, env)
}

// Parse is Load for an in-memory TOML document.
func Parse(env, data string) (*Config, error) {
	var tomlConfig Toml
	if _, err := toml.Decode(data, &tomlConfig); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return fromToml(&tomlConfig, env)
}

func fromToml(tomlConfig *Toml, env string) (*Config, error) {
	cfg, err := tomlConfig.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}

	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.PrometheusMetricsHost == "" {
		c.PrometheusMetricsHost = "localhost"
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = "2112"
	}
	if c.StoreBackend == "" {
		c.StoreBackend = StoreBackendMemory
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
	if c.PostgresPort == "" {
		c.PostgresPort = "5432"
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.WriteRateLimitAllowedPerMin == 0 {
		c.WriteRateLimitAllowedPerMin = 60
	}
}

// Validate reports every problem found, not only the first one.
func (c *Config) Validate() error {
	var err error
	if c.Port <= 0 {
		err = multierr.Append(err, errors.New("port must be set"))
	}
	if c.StoreCacheSizeMB < 0 {
		err = multierr.Append(err, errors.New("store cache size cannot be negative"))
	}

	switch c.StoreBackend {
	case StoreBackendMemory:
	case StoreBackendDisk:
		if c.DiskStoreRootPath == "" {
			err = multierr.Append(err, errors.New("disk store root path must be set for the disk backend"))
		}
	case StoreBackendRedis:
		if c.RedisHost == "" {
			err = multierr.Append(err, errors.New("redis host must be set for the redis backend"))
		}
	case StoreBackendPostgres:
		if c.PostgresHost == "" || c.PostgresDBName == "" {
			err = multierr.Append(err, errors.New("postgres host and db name must be set for the postgres backend"))
		}
	case StoreBackendMongo:
		if c.MongoURI == "" || c.MongoDBName == "" {
			err = multierr.Append(err, errors.New("mongo uri and db name must be set for the mongo backend"))
		}
	case StoreBackendS3:
		if c.S3Bucket == "" || c.S3Region == "" {
			err = multierr.Append(err, errors.New("s3 bucket and region must be set for the s3 backend"))
		}
	default:
		err = multierr.Append(err, fmt.Errorf("unknown store backend: %s", c.StoreBackend))
	}

	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
