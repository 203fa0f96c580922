// Package cmd implements the shortcuts command line.
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"shortcuts/config"
	"shortcuts/kv"
	"shortcuts/shortcut"
)

const boltFile = "shortcuts.bolt"

// app is the state shared by every subcommand for one invocation.
type app struct {
	configPath string
	overrides  config.Config

	cfg     config.Config
	log     *zap.Logger
	manager *shortcut.Manager
	close   func() error
}

// newRootCmd builds the command tree around a fresh app.
func newRootCmd() (*cobra.Command, *app) {
	a := &app{}

	root := &cobra.Command{
		Use:   "shortcuts",
		Short: "A local text-shortcut manager",
		Long: `Shortcuts stores named text snippets on this machine and expands them on
demand. Snippets can be managed from the command line or served over HTTP
for an editor front end.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	flags.StringVar(&a.overrides.Backend, "backend", "", "storage backend: file or bolt")
	flags.StringVar(&a.overrides.Path, "path", "", "data directory")
	flags.StringVar(&a.overrides.Key, "key", "", "storage key for the collection")
	flags.StringVar(&a.overrides.LogLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newServeCmd(a),
		newAddCmd(a),
		newGetCmd(a),
		newListCmd(a),
		newClearCmd(a),
		newRecentCmd(a),
		newBoldCmd(),
		newRenderCmd(),
	)
	return root, a
}

// Run executes the command line in args. The store is closed whether or not
// the command succeeds.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	root, a := newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if cerr := a.teardown(); err == nil {
		err = cerr
	}
	return err
}

func Execute() {
	if err := Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cmd.Annotations["store"] != "true" {
		return nil
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Backend = a.overrides.Backend
	}
	if flags.Changed("path") {
		cfg.Path = a.overrides.Path
	}
	if flags.Changed("key") {
		cfg.Key = a.overrides.Key
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.overrides.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.log, err = newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	store, closeFn, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("opening %s store: %w", cfg.Backend, err)
	}
	a.close = closeFn

	a.manager = shortcut.NewManager(shortcut.NewStore(store, cfg.Key), a.log)
	if warn := a.manager.LoadWarning(); warn != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v; starting with no shortcuts\n", warn)
	}
	return nil
}

func (a *app) teardown() error {
	if a.log != nil {
		_ = a.log.Sync()
	}
	if a.close != nil {
		return a.close()
	}
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}

func openStore(cfg config.Config) (kv.Store, func() error, error) {
	if cfg.Backend == config.BackendBolt {
		b, err := kv.OpenBolt(filepath.Join(cfg.Path, boltFile))
		if err != nil {
			return nil, nil, err
		}
		return b, b.Close, nil
	}
	return kv.NewFile(cfg.Path), func() error { return nil }, nil
}

// needsStore marks a command as requiring the loaded shortcut manager.
func needsStore(cmd *cobra.Command) *cobra.Command {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations["store"] = "true"
	return cmd
}
