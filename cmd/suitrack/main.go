package main

import (
	"context"
	"log"
	"time"

	"github.com/gabapcia/suitrack/internal/handlers/cli"
	"github.com/gabapcia/suitrack/internal/infra/blockchain/sui"
	"github.com/gabapcia/suitrack/internal/infra/storage/redis"
	"github.com/gabapcia/suitrack/internal/pkg/logger"
	"github.com/gabapcia/suitrack/internal/pkg/telemetry"
	"github.com/gabapcia/suitrack/internal/pkg/transport/http"
	"github.com/gabapcia/suitrack/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/suitrack/internal/pkg/validator"
	"github.com/gabapcia/suitrack/internal/snapshotstream"
	"github.com/gabapcia/suitrack/internal/walletregistry"
	"github.com/gabapcia/suitrack/internal/walletview"

	"github.com/kelseyhightower/envconfig"
)

const serviceName = "suitrack"

// config is loaded from the environment at startup.
type config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// OtelEndpoint enables telemetry export when set. An empty value keeps
	// the application running without a collector.
	OtelEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	RPCEndpoint string `envconfig:"SUI_RPC_ENDPOINT" default:"https://fullnode.mainnet.sui.io:443"`
	OfflineMode bool   `envconfig:"OFFLINE_MODE"`

	RefreshInterval time.Duration `envconfig:"REFRESH_INTERVAL" default:"1m"`

	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisUsername string `envconfig:"REDIS_USERNAME"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB"`
}

func main() {
	ctx := context.Background()

	var cfg config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	if cfg.OtelEndpoint != "" {
		shutdown, err := telemetry.Init(ctx, serviceName)
		if err != nil {
			log.Fatalf("failed to initialize telemetry: %v", err)
		}
		defer shutdown(ctx)
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	validator.Init()

	storage, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Fatal(ctx, "failed to connect to redis", "error", err)
	}
	defer storage.Close()

	suiOpts := make([]sui.Option, 0, 1)
	if cfg.OfflineMode {
		suiOpts = append(suiOpts, sui.WithOfflineMode())
	}

	var (
		conn   = jsonrpc.NewClient(http.NewClient().StandardClient(), cfg.RPCEndpoint)
		ledger = sui.NewClient(conn, suiOpts...)

		snapshots = walletview.New(ledger)
		registry  = walletregistry.New(storage)
		stream    = snapshotstream.New(registry, snapshots, snapshotstream.WithRefreshInterval(cfg.RefreshInterval))
	)

	if err := cli.Run(ctx, registry, snapshots, stream); err != nil {
		logger.Fatal(ctx, "application exited with an error", "error", err)
	}
}
