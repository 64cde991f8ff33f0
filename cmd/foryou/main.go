// Command foryou shows the "For You" news feed in the terminal.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/foryou/internal/application/settings"
	"github.com/tesso57/foryou/internal/application/usecase"
	"github.com/tesso57/foryou/internal/infrastructure/config"
	"github.com/tesso57/foryou/internal/infrastructure/fake"
	"github.com/tesso57/foryou/internal/infrastructure/fixture"
	"github.com/tesso57/foryou/internal/infrastructure/logging"
	"github.com/tesso57/foryou/internal/presentation/tui"
)

var version = "dev"

// CLI defines the command line flags.
type CLI struct {
	Config     string           `help:"Config file path (default ~/.config/foryou/config.yaml)." short:"c" type:"path"`
	DataSource string           `help:"Override the data source (fixture or fake)." name:"data-source"`
	LogLevel   string           `help:"Override the log level (debug, info, warn, error)." name:"log-level"`
	Version    kong.VersionFlag `help:"Print version and exit."`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("foryou"),
		kong.Description("A personalised news feed for the terminal."),
		kong.Vars{"version": version},
	)
	if err := run(cli); err != nil {
		fmt.Fprintln(os.Stderr, "foryou:", err)
		os.Exit(1)
	}
}

func run(cli CLI) error {
	store, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg := applyOverrides(store.Settings, cli)

	logger, closeLog, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()
	logger.Info("starting", "version", version, "config", store.Path(), "data_source", cfg.DataSource)

	topics, newsRepo, err := newRepositories(cfg)
	if err != nil {
		logger.Error("failed to open repositories", "err", err)
		return err
	}

	opts := []usecase.ViewModelOption{usecase.WithLogger(logging.Component(logger, "viewmodel"))}
	if cfg.HasInitialTopics() {
		opts = append(opts, usecase.WithFollowedTopics(cfg.FollowedTopics))
	}
	vm := usecase.NewForYouViewModel(topics, newsRepo, opts...)
	defer vm.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	vm.Start(ctx)

	model := tui.NewModel(cfg, vm, logging.Component(logger, "tui"))
	defer model.Close()

	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
		logger.Error("program failed", "err", err)
		return err
	}
	logger.Info("bye")
	return nil
}

func applyOverrides(cfg settings.Settings, cli CLI) settings.Settings {
	if cli.DataSource != "" {
		cfg.DataSource = cli.DataSource
	}
	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}
	return cfg
}

func newRepositories(cfg settings.Settings) (usecase.TopicRepository, usecase.NewsRepository, error) {
	switch cfg.DataSource {
	case settings.DataSourceFake:
		return fake.TopicRepository{}, fake.NewsRepository{}, nil
	case settings.DataSourceFixture, "":
		topics, newsRepo, err := fixture.Open(cfg.TopicsFile, cfg.NewsFile)
		if err != nil {
			return nil, nil, err
		}
		return topics, newsRepo, nil
	default:
		return nil, nil, fmt.Errorf("unknown data source %q (want fixture or fake)", cfg.DataSource)
	}
}
