package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/AndySiamas/LayoutLens/pkg/buildinfo"
	"github.com/AndySiamas/LayoutLens/pkg/cache"
	"github.com/AndySiamas/LayoutLens/pkg/pipeline"
	"github.com/AndySiamas/LayoutLens/pkg/store"
	"github.com/AndySiamas/LayoutLens/pkg/validate"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "layoutlens"

	// ExitRejected is the exit status when validation produced a report.
	ExitRejected = 2
)

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

	// configPath is the --config flag; empty means the default file.
	configPath string
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
		Short: "LayoutLens validates room envelopes and furniture layouts",
		Long: `LayoutLens checks 2D room layouts against geometric rules (containment,
overlaps, wall proximity, duplicates) and prints every violation as a numbered
diagnostic with suggested moves, ready to be replayed to whatever produced the plan.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ./"+defaultConfigFile+")")

	root.AddCommand(c.envelopeCommand())
	root.AddCommand(c.planCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Exit Status
// =============================================================================

// ExitError carries a process exit status without an error message.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string { return fmt.Sprintf("exit status %d", e.Code) }

// ExitCode maps err to a process exit status: 0 for nil, the carried code
// for an ExitError, 130 for a canceled context and 1 otherwise.
func ExitCode(err error) int {
	var exit *ExitError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &exit):
		return exit.Code
	case errors.Is(err, context.Canceled):
		return 130 // Standard shell convention for SIGINT
	default:
		return 1
	}
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner from the configuration. keyer may be
// nil for the default keyer.
func (c *CLI) newRunner(ctx context.Context, cfg *Config, noCache bool, keyer cache.Keyer) (*pipeline.Runner, error) {
	rc, err := newCache(ctx, cfg, noCache)
	if err != nil {
		return nil, err
	}
	st, err := newStore(ctx, cfg)
	if err != nil {
		rc.Close()
		return nil, err
	}

	r := pipeline.NewRunner(rc, keyer, c.Logger)
	r.Validator = validate.New(cfg.Tolerances)
	r.Store = st
	return r, nil
}

func newCache(ctx context.Context, cfg *Config, noCache bool) (cache.Cache, error) {
	if noCache || cfg.Cache.Disabled {
		return cache.NewNullCache(), nil
	}
	if cfg.Cache.RedisURL != "" {
		return cache.NewRedisCache(ctx, cfg.Cache.RedisURL)
	}
	dir := cfg.Cache.Dir
	if dir == "" {
		var err error
		if dir, err = cacheDir(); err != nil {
			return cache.NewNullCache(), nil
		}
	}
	return cache.NewFileCache(dir)
}

func newStore(ctx context.Context, cfg *Config) (store.Store, error) {
	switch {
	case cfg.Store.MongoURI != "":
		return store.NewMongoStore(ctx, cfg.Store.MongoURI, cfg.Store.Database)
	case cfg.Store.RunsDir != "":
		return store.NewFileStore(cfg.Store.RunsDir)
	default:
		return store.NewNullStore(), nil
	}
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/layoutlens/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
