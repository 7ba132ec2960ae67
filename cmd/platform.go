package cmd

import (
	"github.com/spf13/cobra"

	"codecircle/platform"
)

type platformOptions struct {
	Env      string
	Listen   string
	LogLevel string
}

func platformCmd() *cobra.Command {
	var opts platformOptions
	cmd := &cobra.Command{
		Use:          "platform",
		SilenceUsage: true,
		Short:        "platform starts the provisioning API server",
		Long:         `platform starts the HTTP control plane that provisions workspaces across the downstream services.`,

		RunE: func(cmd *cobra.Command, args []string) error {
			return platform.Start(platform.StartOptions{
				Env:      opts.Env,
				Listen:   opts.Listen,
				LogLevel: opts.LogLevel,
			})
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&opts.Listen, "listen", "l", "", "listen address, overrides config")
	fs.StringVar(&opts.Env, "env", "", "config overlay to merge (deploy/conf.<env>.yaml)")
	fs.StringVar(&opts.LogLevel, "log-level", "", "log level (silent, info, error, warn, verbose)")
	return cmd
}
