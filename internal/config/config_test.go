package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiawesome/qa-service/pkg/database"
)

func TestLoadFrom_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, database.DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "./data/questions.db", cfg.Database.FilePath)
	assert.Equal(t, "info", cfg.Log.Level)

	dbCfg := cfg.DatabaseConfig()
	assert.Equal(t, cfg.Database.Driver, dbCfg.Driver)
	assert.Equal(t, cfg.Database.FilePath, dbCfg.FilePath)
	assert.Equal(t, "silent", dbCfg.LogLevel)
}

func TestLoadFrom_Env(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "qa")
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadFrom(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "qa", cfg.Database.DBName)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFrom_File(t *testing.T) {
	chdir(t, t.TempDir())
	dir := t.TempDir()
	yaml := []byte("server:\n  port: 7070\ndatabase:\n  driver: sqlite\n  file_path: /tmp/qa-test.db\nlog:\n  level: warn\n  pretty: true\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o644))

	cfg, err := LoadFrom(dir)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "/tmp/qa-test.db", cfg.Database.FilePath)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
}

func TestLoadFrom_InvalidDriver(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DB_DRIVER", "oracle")

	_, err := LoadFrom(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestLoadFrom_InvalidPort(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "70000")

	_, err := LoadFrom(t.TempDir())
	require.Error(t, err)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
