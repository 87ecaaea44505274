/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssargent/tdswire/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a tdswire config file",
	Long: `Create a config file with defaults and a freshly generated API key for the
inspection server.

Examples:
  tdswire init
  tdswire init --config ./tdswire.yaml --force`,
	Args: cobra.NoArgs,
	// The config may not exist yet, so skip the root setup.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		force, _ := cmd.Flags().GetBool("force")

		cfg, created, err := initConfig(configPath, force)
		if err != nil {
			return err
		}
		if !created {
			cmd.Printf("Config already exists at %s. Use --force to overwrite.\n", configPath)
			return nil
		}

		cmd.Printf("Config written to %s\n", configPath)
		cmd.Printf("API key: %s\n", cfg.Security.APIKey)
		cmd.Printf("\nYou can now start the server with:\n")
		cmd.Printf("  tdswire serve --config %s\n", configPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
}

// initConfig bootstraps configPath unless it exists and force is false.
func initConfig(configPath string, force bool) (*config.Config, bool, error) {
	if config.ConfigExists(configPath) && !force {
		return nil, false, nil
	}
	cfg, err := config.BootstrapConfig(configPath)
	if err != nil {
		return nil, false, fmt.Errorf("failed to bootstrap config: %w", err)
	}
	return cfg, true, nil
}
