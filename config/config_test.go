package config_test

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ttrplan/config"
)

func TestParse_DefaultsFillAbsentKeys(t *testing.T) {
	cfg, err := config.Parse([]byte("planner:\n  point_importance: 0.2\n"))
	require.NoError(t, err)

	want := config.Default()
	want.Planner.PointImportance = 0.2
	assert.Equal(t, want, *cfg)

	cfg, err = config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), *cfg)
}

func TestParse_ZeroPointImportanceIsKept(t *testing.T) {
	cfg, err := config.Parse([]byte("planner: {point_importance: 0}\n"))
	require.NoError(t, err)
	assert.Zero(t, cfg.Planner.PointImportance)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown key", "planer: {}\n"},
		{"bad yaml", "planner: [\n"},
		{"pi too large", "planner: {point_importance: 0.5}\n"},
		{"no trains", "planner: {trains: 0}\n"},
		{"one waypoint", "planner: {max_waypoints: 1}\n"},
		{"empty addr", "server: {addr: \"\"}\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.doc))
			assert.Error(t, err)
		})
	}
}

func TestValidate_AggregatesViolations(t *testing.T) {
	cfg := config.Default()
	cfg.Version = ""
	cfg.Planner.Trains = -1
	cfg.Planner.MaxDualColor = -1

	err := config.Validate(&cfg)
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), "version is required")
	assert.Contains(t, err.Error(), "planner.trains")
	assert.Contains(t, err.Error(), "planner.max_dual_color")

	assert.ErrorIs(t, config.Validate(nil), config.ErrInvalid)
}

func writeConfig(t *testing.T, path, doc string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
}

func TestLoader_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ttrplan.yaml")
	writeConfig(t, path, "planner: {point_importance: 0.1}\n")

	l, err := config.NewLoader(path)
	require.NoError(t, err)
	assert.Equal(t, 0.1, l.Config().Planner.PointImportance)

	var seen atomic.Value
	l.OnChange(func(c *config.Config) { seen.Store(c.Planner.PointImportance) })

	writeConfig(t, path, "planner: {point_importance: 0.3}\n")
	cfg, err := l.Reload()
	require.NoError(t, err)
	assert.Equal(t, 0.3, cfg.Planner.PointImportance)
	assert.Equal(t, 0.3, seen.Load())

	writeConfig(t, path, "planner: {point_importance: 3}\n")
	_, err = l.Reload()
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.Equal(t, 0.3, l.Config().Planner.PointImportance, "invalid reload keeps the previous config")
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := config.NewLoader(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoader_WatchHotReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ttrplan.yaml")
	writeConfig(t, path, "server: {addr: \":8080\"}\n")

	l, err := config.NewLoader(path)
	require.NoError(t, err)
	var errs atomic.Int32
	l.OnError(func(error) { errs.Add(1) })

	stop, err := l.Watch()
	require.NoError(t, err)
	defer stop()

	writeConfig(t, path, "server: {addr: \":9090\"}\n")
	assert.Eventually(t, func() bool {
		return l.Config().Server.Addr == ":9090"
	}, 2*time.Second, 10*time.Millisecond)

	writeConfig(t, path, "server: [\n")
	assert.Eventually(t, func() bool { return errs.Load() > 0 }, 2*time.Second, 10*time.Millisecond)
	assert.NoError(t, config.Validate(l.Config()))

	stop()
	stop()
}
