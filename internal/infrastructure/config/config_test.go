package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/foryou/internal/application/settings"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	configPath := filepath.Join(t.TempDir(), "nested", "config.yaml")

	store, err := Load(configPath)
	require.NoError(t, err)

	cfg := store.Settings
	assert.Equal(t, settings.DataSourceFixture, cfg.DataSource)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.FollowedTopics)
	assert.Equal(t, "k,up", cfg.KeyMap.Up)
	assert.Equal(t, "enter,space", cfg.KeyMap.Open)
	assert.Equal(t, "b", cfg.KeyMap.Bookmark)
	assert.Equal(t, "205", cfg.Theme.Accent)
	assert.Equal(t, "foryou.log", filepath.Base(cfg.LogFile))
	assert.Equal(t, configPath, store.Path())

	_, err = os.Stat(configPath)
	assert.NoError(t, err, "default config should be written")
}

func TestLoad_FromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	content := `data_source: FAKE
followed_topics: [2, 0, 2]
log_file: ` + filepath.Join(tmpDir, "app.log") + `
keymap:
  bookmark: s
theme:
  accent: "99"
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0600))

	store, err := Load(configPath)
	require.NoError(t, err)

	cfg := store.Settings
	assert.Equal(t, settings.DataSourceFake, cfg.DataSource)
	assert.Equal(t, []int{2, 0}, cfg.FollowedTopics)
	assert.True(t, cfg.HasInitialTopics())
	assert.Equal(t, filepath.Join(tmpDir, "app.log"), cfg.LogFile)
	assert.Equal(t, "s", cfg.KeyMap.Bookmark)
	assert.Equal(t, "k,up", cfg.KeyMap.Up, "unset keys keep defaults")
	assert.Equal(t, "99", cfg.Theme.Accent)
}

func TestLoad_InvalidDataSource(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("data_source: network\n"), 0600))

	_, err := Load(configPath)
	assert.ErrorContains(t, err, "invalid data_source")
}

func TestLoad_Corrupt(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("invalid_yaml: ["), 0600))

	_, err := Load(configPath)
	assert.Error(t, err)
}

func TestLoad_EmptyFile(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, nil, 0600))

	store, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, settings.DataSourceFixture, store.Settings.DataSource)
}

func TestStore_SaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	store, err := Load(configPath)
	require.NoError(t, err)

	store.Settings.FollowedTopics = []int{1, 3}
	store.Settings.DataSource = settings.DataSourceFake
	require.NoError(t, store.Save())

	reloaded, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, reloaded.Settings.FollowedTopics)
	assert.Equal(t, settings.DataSourceFake, reloaded.Settings.DataSource)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "feeds", "news.xml"), expandHome("~/feeds/news.xml"))
	assert.Equal(t, "/abs/news.xml", expandHome("/abs/news.xml"))
	assert.Equal(t, "", expandHome(""))
}
