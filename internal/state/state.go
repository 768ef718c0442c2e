package state

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/Paintersrp/lcv/internal/cache"
	"github.com/Paintersrp/lcv/internal/config"
	"github.com/Paintersrp/lcv/internal/github"
	"github.com/Paintersrp/lcv/internal/logging"
	"github.com/Paintersrp/lcv/internal/problems"
	"github.com/Paintersrp/lcv/internal/render"
	"github.com/Paintersrp/lcv/internal/viewer"
)

type State struct {
	Config      *config.Config
	Home        string
	Client      *github.Client
	Builder     *problems.Builder
	Renderer    *render.Renderer
	Cache       *cache.Cache
	Clipboard   viewer.Clipboard
	RootAddress string
	Watcher     *ConfigWatcher
}

type Options struct {
	// ConfigPath replaces ~/.lcv/cfg.yaml when set.
	ConfigPath string
}

func NewState(opts Options) (*State, error) {
	home, err := GetHomeDir()
	if err != nil {
		return nil, err
	}

	path := opts.ConfigPath
	if path == "" {
		path = config.GetConfigPath(home)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.ApplyOverrides(); err != nil {
		return nil, err
	}

	if err := logging.Init(logging.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		OutputPath: cfg.Log.File,
	}); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	renderCache, err := cache.New(cfg.CacheSizeMB)
	if err != nil {
		return nil, fmt.Errorf("failed to create render cache: %w", err)
	}

	return newState(cfg, home, github.New(github.Config{}), renderCache), nil
}

func newState(cfg *config.Config, home string, client *github.Client, c *cache.Cache) *State {
	return &State{
		Config:      cfg,
		Home:        home,
		Client:      client,
		Builder:     problems.NewBuilder(client, cfg.Concurrency),
		Renderer:    render.New(c),
		Cache:       c,
		Clipboard:   viewer.SystemClipboard{},
		RootAddress: github.ContentsURL(cfg.APIBase, cfg.Repository),
	}
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory. err: %s", err)
	}

	return home, nil
}

func LoadConfig(path string) (*config.Config, error) {
	if err := config.EnsureConfigFile(path); err != nil {
		return nil, err
	}

	return config.LoadFile(path)
}

// Build fetches the collection for the configured repository.
func (s *State) Build(ctx context.Context) (problems.Collection, error) {
	return s.Builder.Build(ctx, s.RootAddress)
}

// Fetch downloads the content of one solution file.
func (s *State) Fetch(ctx context.Context, address string) (string, error) {
	return s.Client.FetchContent(ctx, address)
}

// WatchConfig starts watching the config file. Calling it again is a no-op.
func (s *State) WatchConfig() (*ConfigWatcher, error) {
	if s.Watcher != nil {
		return s.Watcher, nil
	}

	w, err := NewConfigWatcher(s.Config.Path())
	if err != nil {
		return nil, fmt.Errorf("failed to create config watcher: %w", err)
	}
	w.OnChange(func(path string) {
		logging.Debug("config file changed", logging.String("path", path))
	})

	s.Watcher = w
	return w, nil
}

// Close releases the config watcher and flushes the log.
func (s *State) Close() error {
	if s == nil {
		return nil
	}

	var errs []error
	if s.Watcher != nil {
		if err := s.Watcher.Close(); err != nil {
			errs = append(errs, err)
		}
		s.Watcher = nil
	}
	if err := logging.Sync(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}
