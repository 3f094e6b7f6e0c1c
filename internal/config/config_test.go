package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "STATIC_PATH", "METRICS_PATH", "DB_BACKEND", "DB_PATH",
		"MYSQL_DSN", "POSTGRES_DSN", "WATCH_STORAGE", "LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "pasajeros.yaml")
	yamlData := `
port: 9090
storage:
  backend: mysql
  mysql_dsn: "user:pw@tcp(localhost:3306)/pasajeros"
  watch: false
  watch_debounce: 1s
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(yamlData), 0o644))

	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("PORT", "7070")

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 7070, cfg.Port, "env overrides yaml")
	require.Equal(t, BackendMySQL, cfg.Storage.Backend)
	require.Equal(t, "user:pw@tcp(localhost:3306)/pasajeros", cfg.Storage.MySQLDSN)
	require.False(t, cfg.Storage.Watch)
	require.Equal(t, time.Second, cfg.Storage.WatchDebounce)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "json", cfg.Logging.Format)
	require.Equal(t, "./data/pasajeros.db", cfg.Storage.Path, "unset fields keep defaults")
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad port", map[string]string{"PORT": "http"}},
		{"port out of range", map[string]string{"PORT": "70000"}},
		{"unknown backend", map[string]string{"DB_BACKEND": "redis"}},
		{"mysql without dsn", map[string]string{"DB_BACKEND": "mysql"}},
		{"postgres without dsn", map[string]string{"DB_BACKEND": "postgres"}},
		{"bad watch flag", map[string]string{"WATCH_STORAGE": "sometimes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			require.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
