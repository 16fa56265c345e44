package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("BILLSPLIT_CONFIG", "")
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.Server.Addr)
		assert.Equal(t, "pgx", cfg.Database.Driver)
		assert.False(t, cfg.UsesPostgres())
		assert.Empty(t, cfg.Kafka.Brokers)
		assert.Equal(t, "billsplit.audit", cfg.Audit.Topic)
		assert.Equal(t, 30*time.Second, cfg.Dispute.GuardTTL)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("BILLSPLIT_CONFIG", "")
		t.Setenv("BILLSPLIT_SERVER_ADDR", ":9090")
		t.Setenv("BILLSPLIT_DATABASE_URL", "postgres://localhost/billsplit")
		t.Setenv("BILLSPLIT_DATABASE_DRIVER", "postgres")
		t.Setenv("BILLSPLIT_KAFKA_BROKERS", "k1:9092,k2:9092")
		t.Setenv("BILLSPLIT_DISPUTE_GUARD_TTL", "1m")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, ":9090", cfg.Server.Addr)
		assert.True(t, cfg.UsesPostgres())
		assert.Equal(t, "postgres", cfg.Database.Driver)
		assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
		assert.Equal(t, time.Minute, cfg.Dispute.GuardTTL)
	})

	t.Run("config file below environment", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "billsplit.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":7070"
log:
  level: debug
  format: text
audit:
  topic: disputes.audit
`), 0o600))
		t.Setenv("BILLSPLIT_CONFIG", path)
		t.Setenv("BILLSPLIT_LOG_LEVEL", "warn")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, ":7070", cfg.Server.Addr)
		assert.Equal(t, "text", cfg.Log.Format)
		assert.Equal(t, "warn", cfg.Log.Level)
		assert.Equal(t, "disputes.audit", cfg.Audit.Topic)
	})

	t.Run("missing config file is an error", func(t *testing.T) {
		t.Setenv("BILLSPLIT_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("rejects unknown driver", func(t *testing.T) {
		t.Setenv("BILLSPLIT_CONFIG", "")
		t.Setenv("BILLSPLIT_DATABASE_DRIVER", "sqlite")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.driver")
	})
}
