package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dinequickly/costco-programatic/internal/config"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

func newRootCmd() *cobra.Command {
	v := config.New()
	var configPath string

	cmd := &cobra.Command{
		Use:   "costco-availability",
		Short: "Costco item availability API",
		Long: `costco-availability resolves the nearest Costco warehouse for a postal code
(or an explicit store id), searches that warehouse's catalog and serves the
normalized results over HTTP.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configPath)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	cmd.SetVersionTemplate("costco-availability version {{.Version}}\n")

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "path to a config file (yaml, json or toml)")
	flags.Int("port", config.DefaultPort, "port to listen on; the next free port is used if taken")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.Bool("differentiate-status", false, "return 400/404/502 instead of a flat 500 on failures")

	bindFlag(v, "server.port", cmd, "port")
	bindFlag(v, "log.level", cmd, "log-level")
	bindFlag(v, "http.differentiate_status", cmd, "differentiate-status")

	return cmd
}

// bindFlag binds a flag so that an explicitly set flag wins over env and file.
func bindFlag(v *viper.Viper, key string, cmd *cobra.Command, name string) {
	if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
		panic(err)
	}
}
