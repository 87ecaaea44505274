/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssargent/tdswire/pkg/api"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP inspection server",
	Long: `Start the HTTP inspection server. It decodes and encodes column values
posted as JSON and exposes Prometheus metrics on /metrics.

Requests to /api/v1 need the X-API-Key header when security.api_key is set.

Examples:
  tdswire serve
  tdswire serve --port 9300 --bind 0.0.0.0`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := appEnvFrom(cmd)
		if err != nil {
			return err
		}

		serverConfig := serverConfigFrom(cmd, env)

		if container == nil {
			return fmt.Errorf("dependency container not initialized")
		}
		starter := container.GetServerFactory().CreateServerStarter()

		if serverConfig.APIKey == "" {
			env.logger.Warn().Msg("no API key configured, /api/v1 is unauthenticated")
		}
		return starter.StartServer(cmd.Context(), env.decoder, serverConfig, env.logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().String("bind", "", "Address to bind (overrides config)")
	serveCmd.Flags().String("temporal-scale", "", "Override codec.temporal_scale (fixed or declared)")
}

func serverConfigFrom(cmd *cobra.Command, env *appEnv) api.ServerConfig {
	sc := api.ServerConfig{
		Bind:         env.config.Bind,
		Port:         env.config.Port,
		APIKey:       env.config.Security.APIKey,
		MaxValueSize: env.config.Codec.MaxValueSize,
	}
	if cmd.Flags().Changed("port") {
		sc.Port, _ = cmd.Flags().GetInt("port")
	}
	if cmd.Flags().Changed("bind") {
		sc.Bind, _ = cmd.Flags().GetString("bind")
	}
	return sc
}
