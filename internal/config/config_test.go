package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	for _, key := range []string{
		"WANDERSOUL_API_URL", "WANDERSOUL_DATA_DIR", "WANDERSOUL_DEFAULT_LAT",
		"WANDERSOUL_DEFAULT_LON", "WANDERSOUL_NOTIFY_TTL", "WANDERSOUL_PROVISION",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.APIBaseURL)
	assert.Equal(t, 10.5276, cfg.DefaultLatitude)
	assert.Equal(t, 76.2144, cfg.DefaultLongitude)
	assert.Equal(t, 3*time.Second, cfg.NotificationTTL)
	assert.True(t, cfg.Provision)
	assert.Equal(t, filepath.Join("data", "wandersoul.db"), cfg.DBPath())
}

func TestLoad_Environment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("WANDERSOUL_API_URL", "https://trips.example.com")
	t.Setenv("WANDERSOUL_DATA_DIR", "/tmp/ws")
	t.Setenv("WANDERSOUL_DEFAULT_LAT", "41.6688")
	t.Setenv("WANDERSOUL_DEFAULT_LON", "-69.9597")
	t.Setenv("WANDERSOUL_NOTIFY_TTL", "5s")
	t.Setenv("WANDERSOUL_PROVISION", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://trips.example.com", cfg.APIBaseURL)
	assert.Equal(t, filepath.Join("/tmp/ws", "wandersoul.db"), cfg.DBPath())
	assert.Equal(t, 41.6688, cfg.DefaultLatitude)
	assert.Equal(t, -69.9597, cfg.DefaultLongitude)
	assert.Equal(t, 5*time.Second, cfg.NotificationTTL)
	assert.False(t, cfg.Provision)
}

func TestLoad_InvalidValues(t *testing.T) {
	chdir(t, t.TempDir())

	t.Setenv("WANDERSOUL_DEFAULT_LAT", "north")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("WANDERSOUL_DEFAULT_LAT", "")
	t.Setenv("WANDERSOUL_NOTIFY_TTL", "soon")
	_, err = Load()
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
