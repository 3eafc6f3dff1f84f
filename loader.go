package vkcore

import (
	"io"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/slog"

	"github.com/NOT-REAL-GAMES/vkcore/internal/loader"
)

// ErrLibraryNotFound is returned by Load when no Vulkan loader library could
// be opened.
var ErrLibraryNotFound = loader.ErrLibraryNotFound

type LoadOption func(*loadConfig)

type loadConfig struct {
	libraries []string
	logger    *slog.Logger
}

// WithLibrary replaces the platform default library names with names.
func WithLibrary(names ...string) LoadOption {
	return func(c *loadConfig) {
		c.libraries = append(c.libraries, names...)
	}
}

// WithLogger sets the logger used while loading entry points.
func WithLogger(logger *slog.Logger) LoadOption {
	return func(c *loadConfig) {
		c.logger = logger
	}
}

var (
	loadMu  sync.Mutex
	library *loader.Library
	logger  = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// Load opens the Vulkan loader and resolves every Vulkan 1.0 entry point.
// It must complete before any other function in this package is called.
// Calling Load again after a success is a no-op.
func Load(opts ...LoadOption) error {
	loadMu.Lock()
	defer loadMu.Unlock()

	if library != nil {
		return nil
	}

	cfg := loadConfig{logger: logger}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logger
	}

	lib, err := loader.Open(cfg.libraries...)
	if err != nil {
		return errors.Wrap(err, "load vulkan")
	}
	cfg.logger.Debug("opened vulkan loader", slog.String("path", lib.Path()))

	table, err := resolveCommands(lib, lib.Path(), cfg.logger)
	if err != nil {
		_ = lib.Close()
		return err
	}

	commands = table
	library = lib
	logger = cfg.logger
	return nil
}

// Loaded reports whether Load has succeeded.
func Loaded() bool {
	loadMu.Lock()
	defer loadMu.Unlock()
	return library != nil
}

// resolveCommands builds a command table from the symbols lib exports. Every
// core command must be present.
func resolveCommands(lib symbolResolver, path string, log *slog.Logger) (Commands, error) {
	var table Commands
	missing, err := registerCommands(lib, table.entries(), log)
	if err != nil {
		return Commands{}, err
	}
	if len(missing) > 0 {
		return Commands{}, errors.Newf("vulkan loader %s is missing %d core commands: %s",
			path, len(missing), strings.Join(missing, ", "))
	}

	log.Debug("registered vulkan commands", slog.Int("count", len(table.entries())))
	return table, nil
}
