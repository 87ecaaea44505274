/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ssargent/tdswire/pkg/codec"
	"github.com/ssargent/tdswire/pkg/config"
	"github.com/ssargent/tdswire/pkg/di"
	"github.com/ssargent/tdswire/pkg/logging"
)

var container *di.Container

// SetContainer injects the dependency container used by the commands
func SetContainer(c *di.Container) {
	container = c
}

// appEnv is what PersistentPreRunE hands to every command through its context
type appEnv struct {
	config  *config.Config
	logger  zerolog.Logger
	decoder *codec.Decoder
}

type appEnvKey struct{}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tdswire",
	Short: "tdswire - TDS column value codec",
	Long: `tdswire decodes and encodes single column values of the tabular data
stream protocol: uniqueidentifier, binary/varbinary and datetimeoffset.

Values are given as hex, either with a named type or a raw TYPE_INFO block.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadAppEnv(cmd)
		if err != nil {
			return err
		}
		cmd.SetContext(context.WithValue(cmd.Context(), appEnvKey{}, env))
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", config.GetDefaultConfigPath(), "Path to the config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (trace, debug, info, warn, error, off)")
}

// loadAppEnv reads the config file when present, applies flag overrides and
// builds the logger and decoder.
func loadAppEnv(cmd *cobra.Command) (*appEnv, error) {
	configPath, _ := cmd.Flags().GetString("config")

	cfg := config.DefaultConfig()
	if config.ConfigExists(configPath) {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}
	if cmd.Flags().Lookup("temporal-scale") != nil && cmd.Flags().Changed("temporal-scale") {
		cfg.Codec.TemporalScale, _ = cmd.Flags().GetString("temporal-scale")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logging.New(logging.ProfileRuntime, cfg.Logging.Level)

	decoderConfig, err := cfg.DecoderConfig()
	if err != nil {
		return nil, err
	}
	decoderConfig.Logger = &logger

	if container == nil {
		return nil, fmt.Errorf("dependency container not initialized")
	}
	decoder := container.GetDecoderFactory().CreateDecoder(decoderConfig)

	logger.Debug().
		Str("config", configPath).
		Str("temporal_scale", decoder.TemporalScale().String()).
		Msg("environment ready")

	return &appEnv{config: cfg, logger: logger, decoder: decoder}, nil
}

func appEnvFrom(cmd *cobra.Command) (*appEnv, error) {
	env, ok := cmd.Context().Value(appEnvKey{}).(*appEnv)
	if !ok {
		return nil, fmt.Errorf("app environment not found in context")
	}
	return env, nil
}
