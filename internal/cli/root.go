// Package cli implements the lvpar command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvpar/backend"
	"github.com/katalvlaran/lvpar/internal/config"
	"github.com/katalvlaran/lvpar/parallel"
)

// app carries what every subcommand needs once the root has resolved
// configuration.
type app struct {
	ctx     context.Context
	fs      afero.Fs
	out     io.Writer
	log     *logrus.Logger
	cfg     config.Config
	backend backend.Backend
}

// Execute is the entry point to running the CLI.
func Execute(ctx context.Context, version string) {
	root := NewRootCmd(ctx, afero.NewOsFs(), version)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree. Graph files are read from and
// written to fs.
func NewRootCmd(ctx context.Context, fs afero.Fs, version string) *cobra.Command {
	a := &app{ctx: ctx, fs: fs}

	rootCmd := &cobra.Command{
		Use:           "lvpar",
		Short:         "Chunk-parallel graph analytics",
		Long:          "lvpar computes betweenness centrality and tournament reachability by splitting work across a worker pool.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default .lvpar.yaml)")
	pf.String("env-file", "", "dotenv file with LVPAR_* variables (default .env if present)")
	pf.IntP("workers", "w", parallel.DefaultWorkers, "worker request: n>0 exact, 0 all CPUs, -k all but k-1")
	pf.String("backend", backend.NameParallel, "execution backend: "+strings.Join(backend.Names(), ", "))
	pf.String("log-level", logrus.InfoLevel.String(), "log level (trace, debug, info, warn, error)")
	pf.String("log-format", config.LogFormatAuto, "log format: auto, text, json")
	for key, flag := range map[string]string{
		config.KeyWorkers:   "workers",
		config.KeyBackend:   "backend",
		config.KeyLogLevel:  "log-level",
		config.KeyLogFormat: "log-format",
	} {
		_ = viper.BindPFlag(key, pf.Lookup(flag))
	}

	rootCmd.AddCommand(
		newBetweennessCmd(a),
		newReachableCmd(a),
		newStrongCmd(a),
		newNeighborhoodsCmd(a),
		newGenerateCmd(a),
	)
	return rootCmd
}

// init loads env files and configuration, then builds the logger and the
// backend.
func (a *app) init(cmd *cobra.Command) error {
	a.out = cmd.OutOrStdout()

	if err := loadEnvFile(cmd); err != nil {
		return err
	}
	if err := initConfig(cmd); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg
	a.log = newLogger(cmd.ErrOrStderr(), cfg)
	a.ctx = parallel.WithLogger(a.ctx, a.log)

	a.backend, err = backend.ByName(cfg.Backend, cfg.Parallel(a.log))
	if err != nil {
		return err
	}
	a.log.WithFields(logrus.Fields{
		"backend": cfg.Backend,
		"workers": a.backend.(*backend.Executor).Config().EffectiveWorkers(),
		"config":  viper.ConfigFileUsed(),
	}).Debug("lvpar: configured")
	return nil
}

func loadEnvFile(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("env-file")
	if path == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to read .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to read env file %s: %w", path, err)
	}
	return nil
}

func initConfig(cmd *cobra.Command) error {
	if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".lvpar")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath(filepath.Join(xdg.ConfigHome, "lvpar"))
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("LVPAR")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// A missing default config file is fine; an explicit one must load.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		if cfgFile, _ := cmd.Flags().GetString("config"); cfgFile != "" {
			return fmt.Errorf("failed to read config %s: %w", cfgFile, err)
		}
	}
	return nil
}

// newLogger builds the process logger. The auto format picks text on a
// terminal and JSON otherwise.
func newLogger(out io.Writer, cfg config.Config) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		l.SetLevel(lvl)
	}

	format := cfg.LogFormat
	if format == config.LogFormatAuto {
		format = config.LogFormatJSON
		if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			format = config.LogFormatText
		}
	}
	if format == config.LogFormatJSON {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l
}
