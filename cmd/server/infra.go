package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"billsplit/internal/dispute/guard"
	"billsplit/internal/dispute/service"
	"billsplit/internal/dispute/store/memory"
	"billsplit/internal/dispute/store/postgres"
	"billsplit/internal/platform/config"
	"billsplit/internal/platform/kafka"
	"billsplit/internal/platform/migrate"
	pgplatform "billsplit/internal/platform/postgres"
	redisplatform "billsplit/internal/platform/redis"
	audit "billsplit/pkg/platform/audit"
	"billsplit/pkg/platform/audit/publisher"
	auditpostgres "billsplit/pkg/platform/audit/store/postgres"
)

// infra holds the backing services selected by configuration.
type infra struct {
	stores service.Stores
	tx     service.DisputeStoreTx
	guard  service.ResolutionGuard
	audit  *publisher.Publisher
	health []healthCheck

	// db is nil when the in-memory stores are in use.
	db *sql.DB

	closers []func()
}

func (i *infra) Close() {
	for j := len(i.closers) - 1; j >= 0; j-- {
		i.closers[j]()
	}
}

func buildInfra(ctx context.Context, cfg *config.Config, log *slog.Logger) (*infra, error) {
	i := &infra{}
	if err := i.openStores(ctx, cfg, log); err != nil {
		i.Close()
		return nil, err
	}
	if err := i.openGuard(ctx, cfg, log); err != nil {
		i.Close()
		return nil, err
	}
	if err := i.openAudit(ctx, cfg, log); err != nil {
		i.Close()
		return nil, err
	}
	return i, nil
}

func (i *infra) openStores(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	if !cfg.UsesPostgres() {
		log.Warn("database.url not set; using in-memory stores")
		users := memory.NewUsers()
		i.stores = service.Stores{
			Users:   users,
			Ledger:  memory.NewLedger(users),
			History: memory.NewHistory(),
			Reports: memory.NewReports(),
		}
		i.tx = service.NewShardedTx(i.stores, cfg.Dispute.TxTimeout)
		return nil
	}

	db, err := pgplatform.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	i.closers = append(i.closers, func() { _ = db.Close() })
	i.db = db

	if cfg.Database.AutoMigrate {
		if err := migrate.Up(db); err != nil {
			return err
		}
		version, dirty, err := migrate.Version(db)
		if err != nil {
			return fmt.Errorf("read schema version: %w", err)
		}
		log.Info("database migrated", "version", version, "dirty", dirty)
	}

	i.stores = service.Stores{
		Users:   postgres.NewUsers(db),
		Ledger:  postgres.NewLedger(db),
		History: postgres.NewHistory(db),
		Reports: postgres.NewReports(db),
	}
	i.tx = postgres.NewTx(db, i.stores, cfg.Dispute.TxTimeout)
	i.health = append(i.health, healthCheck{name: "database", check: db.PingContext})
	return nil
}

func (i *infra) openGuard(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	client, err := redisplatform.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if client == nil {
		log.Warn("redis.url not set; resolution guard is local to this process")
		i.guard = guard.NewMemory(cfg.Dispute.GuardTTL)
		return nil
	}
	i.closers = append(i.closers, func() { _ = client.Close() })
	i.guard = guard.NewRedis(client.Client, guard.WithTTL(cfg.Dispute.GuardTTL))
	i.health = append(i.health, healthCheck{name: "redis", check: client.Health})
	return nil
}

func (i *infra) openAudit(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	client, err := kafka.NewClient(ctx, cfg.Kafka)
	if err != nil {
		return err
	}

	var sink audit.Store
	switch {
	case client == nil && i.db != nil:
		log.Info("kafka.brokers not set; audit events are stored in postgres")
		sink = auditpostgres.New(i.db)
	case client == nil:
		log.Warn("kafka.brokers not set; audit events are logged only")
		sink = publisher.NewLogSink(log)
	default:
		i.closers = append(i.closers, client.Close)
		if cfg.Kafka.CreateTopics {
			if err := kafka.EnsureTopic(ctx, client, cfg.Kafka, cfg.Audit.Topic); err != nil {
				return err
			}
		}
		sink = publisher.NewKafkaSink(client, cfg.Audit.Topic)
		i.health = append(i.health, healthCheck{name: "kafka", check: client.Ping})
	}

	i.audit = publisher.New(sink,
		publisher.WithLogger(log),
		publisher.WithMetrics(publisher.NewMetrics()),
		publisher.WithCircuitBreaker(cfg.Audit.BreakerThreshold, cfg.Audit.BreakerCooldown),
	)
	return nil
}
