// Package command contains the CLI command constructors.
package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-bcrypt/config"
	"github.com/hasbyte1/go-bcrypt/hashing"
	"github.com/hasbyte1/go-bcrypt/internal/observability"
)

// RootCommand instantiates the root command, with all sub-commands bound.
func RootCommand() *cobra.Command {
	configFilePath := filepath.Join(xdg.ConfigHome, "bcrypt.yaml")
	logLevel := slog.LevelWarn.String()
	cmd := &cobra.Command{
		Use:          "bcrypt [command] [flags]",
		Short:        "Hash and verify passwords with bcrypt",
		Version:      version(),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(logLevel)); err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}
			logger := observability.InitSlog(cmd.ErrOrStderr(), level)

			cfg, err := loadHashingConfig(configFilePath)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			engine, err := hashing.NewEngine(cfg)
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			logger.DebugContext(cmd.Context(), "configuration loaded",
				slog.String("path", configFilePath),
				slog.Int("cost", cfg.Cost),
				slog.String("prefix", string(cfg.Prefix)),
				slog.Bool("long_passwords", cfg.HandleLongPasswords),
			)
			cmd.SetContext(context.WithValue(cmd.Context(), stateKey{}, &state{
				engine: engine,
				logger: logger,
			}))
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(
		&configFilePath,
		"config", "c",
		configFilePath,
		"path to the configuration file",
	)
	cmd.PersistentFlags().StringVar(
		&logLevel,
		"log-level",
		logLevel,
		"minimum log level (debug, info, warn, error)",
	)

	cmd.AddCommand(
		hashCommand(),
		verifyCommand(),
		infoCommand(),
	)

	return cmd
}

// loadHashingConfig layers the environment over the config file over the
// built-in defaults. A missing file is not an error.
func loadHashingConfig(path string) (hashing.Config, error) {
	file, err := config.LoadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		file = config.MapStore{}
	} else if err != nil {
		return hashing.Config{}, err
	}
	return config.Init(config.Chain{config.NewEnvStore(), file}, hashing.DefaultConfig())
}
