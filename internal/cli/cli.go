package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jmclachlan11/boxbuilder/pkg/buildinfo"
	"github.com/jmclachlan11/boxbuilder/pkg/cache"
	"github.com/jmclachlan11/boxbuilder/pkg/config"
	"github.com/jmclachlan11/boxbuilder/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = config.AppName

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// ConfigDir overrides the directory holding config.toml and prefs.toml.
	ConfigDir string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Boxbuilder designs storage boxes for machine rolls",
		Long: `Boxbuilder computes the cut list of a wooden storage box for 6 or 10
machine rolls and draws a printable detail page for every piece.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.ConfigDir, "config-dir", c.ConfigDir, "directory holding config.toml and prefs.toml")

	root.AddCommand(c.cutlistCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.schematicCommand())
	root.AddCommand(c.assemblyCommand())
	root.AddCommand(c.machinesCommand())
	root.AddCommand(c.prefsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config
// =============================================================================

// loadConfig reads config.toml from ConfigDir, or from the XDG location.
func (c *CLI) loadConfig() (config.Config, error) {
	if c.ConfigDir != "" {
		return config.LoadFile(filepath.Join(c.ConfigDir, config.ConfigFile))
	}
	return config.Load()
}

func (c *CLI) prefsStore() (*config.PrefsStore, error) {
	return config.NewPrefsStore(c.ConfigDir)
}

// loadPrefs returns the stored prefs. A damaged prefs file is reported and
// replaced by the defaults.
func (c *CLI) loadPrefs() config.Prefs {
	store, err := c.prefsStore()
	if err != nil {
		c.Logger.Warn("prefs unavailable", "err", err)
		return config.DefaultPrefs()
	}
	p, err := store.Load()
	if err != nil {
		c.Logger.Warn("ignoring stored prefs", "path", store.Path(), "err", err)
	}
	return p
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the configured cache.
func (c *CLI) newRunner(ctx context.Context, cfg config.Config, noCache bool) (*pipeline.Runner, error) {
	ch, err := c.newCache(ctx, cfg, noCache)
	if err != nil {
		return nil, err
	}
	r := pipeline.NewRunner(ch, keyerFor(ch), c.Logger)
	r.TTL = cfg.Cache.TTL.Duration
	return r, nil
}

// keyerFor namespaces keys in a shared Redis instance. Local caches use the
// default keyer.
func keyerFor(ch cache.Cache) cache.Keyer {
	if _, shared := ch.(*cache.RedisCache); shared {
		return cache.NewScopedKeyer(cache.NewDefaultKeyer(), appName+":")
	}
	return cache.NewDefaultKeyer()
}

// newCache picks Redis when redis_addr is set and the file cache otherwise.
// An unusable file cache directory degrades to no caching.
func (c *CLI) newCache(ctx context.Context, cfg config.Config, noCache bool) (cache.Cache, error) {
	if noCache || cfg.Cache.Disabled {
		return cache.NewNullCache(), nil
	}
	if cfg.Cache.RedisAddr != "" {
		c.Logger.Debug("using redis cache", "addr", cfg.Cache.RedisAddr)
		return cache.NewRedisCache(ctx, cache.RedisConfig{Addr: cfg.Cache.RedisAddr})
	}
	dir, err := cfg.CacheDirOrDefault()
	if err != nil {
		c.Logger.Warn("cache disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	c.Logger.Debug("using file cache", "dir", dir)
	return cache.NewFileCache(dir)
}

// renderDefaults applies config.toml's canvas settings to opts.
func renderDefaults(opts *pipeline.Options, cfg config.Config) {
	if opts.Width == 0 {
		opts.Width = cfg.Render.Width
	}
	if opts.Height == 0 {
		opts.Height = cfg.Render.Height
	}
	if opts.Scale == 0 {
		opts.Scale = cfg.Render.Scale
	}
	opts.SetDefaults()
}

// writeOutput writes data to path, or to w when path is "-".
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "-" {
		_, err := w.Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
