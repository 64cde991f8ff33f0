// Package config handles configuration loading and saving.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/tesso57/foryou/internal/application/settings"
	"gopkg.in/yaml.v3"
)

// Store manages persisted application settings.
type Store struct {
	Settings   settings.Settings
	configPath string
}

// DefaultPath returns the config file location used when none is given.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "foryou", "config.yaml"), nil
}

// Load loads the configuration from the specified path or default location.
func Load(customPath ...string) (*Store, error) {
	var configPath string
	if len(customPath) > 0 && customPath[0] != "" {
		configPath = customPath[0]
	} else {
		path, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		configPath = path
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	cfg := settings.Settings{}
	store := &Store{configPath: configPath}

	var options []kong.Option
	if _, err := os.Stat(configPath); err == nil {
		options = append(options, kong.Configuration(yamlKongLoader, configPath))
	}

	parser, err := kong.New(&cfg, options...)
	if err != nil {
		return nil, err
	}
	if _, err := parser.Parse([]string{}); err != nil {
		return nil, err
	}

	store.Settings = cfg
	if err := store.normalize(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := store.Save(); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
	}

	return store, nil
}

// Path returns the file the store reads from and saves to.
func (s *Store) Path() string {
	return s.configPath
}

func (s *Store) normalize() error {
	cfg := &s.Settings
	cfg.DataSource = strings.ToLower(strings.TrimSpace(cfg.DataSource))
	switch cfg.DataSource {
	case "":
		cfg.DataSource = settings.DataSourceFixture
	case settings.DataSourceFixture, settings.DataSourceFake:
	default:
		return fmt.Errorf("invalid data_source %q (want %s or %s)", cfg.DataSource, settings.DataSourceFixture, settings.DataSourceFake)
	}

	cfg.TopicsFile = expandHome(strings.TrimSpace(cfg.TopicsFile))
	cfg.NewsFile = expandHome(strings.TrimSpace(cfg.NewsFile))
	cfg.FollowedTopics = dedupe(cfg.FollowedTopics)

	cfg.LogFile = expandHome(strings.TrimSpace(cfg.LogFile))
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(defaultStateHome(), "foryou", "foryou.log")
	}
	return nil
}

func dedupe(ids []int) []int {
	if len(ids) == 0 {
		return ids
	}
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func defaultStateHome() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return stateHome
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "state")
}

func yamlKongLoader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}

	var f kong.ResolverFunc = func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		names := []string{flag.Name, strings.ReplaceAll(flag.Name, "-", "_")}
		for _, name := range names {
			if v, ok := values[name]; ok {
				return v, nil
			}

			// keymap.up -> values["keymap"]["up"]
			parts := strings.Split(name, ".")
			if len(parts) < 2 {
				continue
			}
			curr := values
			for i, part := range parts {
				if i == len(parts)-1 {
					if v, ok := curr[part]; ok {
						return v, nil
					}
					break
				}
				next, ok := curr[part].(map[string]any)
				if !ok {
					break
				}
				curr = next
			}
		}
		return nil, nil
	}
	return f, nil
}

// Save writes the current settings to the config file.
func (s *Store) Save() error {
	f, err := os.Create(s.configPath)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	return yaml.NewEncoder(f).Encode(s.Settings)
}
