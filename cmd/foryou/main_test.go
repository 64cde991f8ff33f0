package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/foryou/internal/application/settings"
	"github.com/tesso57/foryou/internal/infrastructure/fake"
	"github.com/tesso57/foryou/internal/infrastructure/fixture"
)

func TestApplyOverrides(t *testing.T) {
	base := settings.Settings{DataSource: settings.DataSourceFixture, LogLevel: "info"}

	got := applyOverrides(base, CLI{})
	assert.Equal(t, base, got)

	got = applyOverrides(base, CLI{DataSource: "fake", LogLevel: "debug"})
	assert.Equal(t, "fake", got.DataSource)
	assert.Equal(t, "debug", got.LogLevel)
}

func TestNewRepositories(t *testing.T) {
	topics, newsRepo, err := newRepositories(settings.Settings{DataSource: settings.DataSourceFake})
	require.NoError(t, err)
	assert.IsType(t, fake.TopicRepository{}, topics)
	assert.IsType(t, fake.NewsRepository{}, newsRepo)

	topics, newsRepo, err = newRepositories(settings.Settings{DataSource: settings.DataSourceFixture})
	require.NoError(t, err)
	assert.IsType(t, &fixture.TopicRepository{}, topics)
	assert.IsType(t, &fixture.NewsRepository{}, newsRepo)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	select {
	case got := <-topics.TopicsStream(ctx):
		assert.NotEmpty(t, got)
	case <-ctx.Done():
		t.Fatal("fixture topics not delivered")
	}

	_, _, err = newRepositories(settings.Settings{DataSource: "remote"})
	assert.ErrorContains(t, err, `unknown data source "remote"`)
}

func TestNewRepositories_BadFixtureFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topics.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- id: [\n"), 0600))

	_, _, err := newRepositories(settings.Settings{DataSource: settings.DataSourceFixture, TopicsFile: path})
	assert.Error(t, err)
}
