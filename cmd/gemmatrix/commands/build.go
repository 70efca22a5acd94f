package commands

import (
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/gemmatrix/internal/app"
	"go.trai.ch/gemmatrix/internal/core/domain"
	"go.trai.ch/gemmatrix/internal/engine/matrix"
)

// FormatEnv names the environment variable holding the default --format.
const FormatEnv = "GEMMATRIX_FORMAT"

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [dependencies-file]",
		Short: "Build the dependency matrix and print it",
		Long: "Build reads the dependencies file (default " + DefaultConfigFile + "), merges the shared\n" +
			"entries into every platform and prints one entry list per <platform>-<runtime> key.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatName, _ := cmd.Flags().GetString("format")
			keys, _ := cmd.Flags().GetStringArray("key")
			watch, _ := cmd.Flags().GetBool("watch")
			discoveryName, _ := cmd.Flags().GetString("discovery")

			format, err := domain.ParseFormat(formatName)
			if err != nil {
				return err
			}
			discovery, err := matrix.ParseDiscovery(discoveryName)
			if err != nil {
				return err
			}

			opts := app.BuildOptions{
				Format:    format,
				Keys:      keys,
				Out:       cmd.OutOrStdout(),
				Discovery: discovery,
			}

			path := configPath(args)
			if watch {
				return c.app.Watch(cmd.Context(), path, opts)
			}
			return c.app.Build(cmd.Context(), path, opts)
		},
	}
	cmd.Flags().StringP("format", "f", defaultFormat(),
		"Output format: auto, yaml, json, gemfile or summary (env "+FormatEnv+")")
	cmd.Flags().StringArrayP("key", "k", nil, "Only print this <platform>-<runtime> key (repeatable)")
	cmd.Flags().BoolP("watch", "w", false, "Rebuild whenever the dependencies file changes")
	cmd.Flags().String("discovery", matrix.DiscoverUnion.String(),
		"Runtime keys paired with each platform: union (shared and own) or declared (own only)")
	return cmd
}

func defaultFormat() string {
	if f := os.Getenv(FormatEnv); f != "" {
		return f
	}
	return string(domain.FormatAuto)
}
