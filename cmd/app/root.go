package main

import (
	"log/slog"
	"os"

	"burgerpos/cmd"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	envFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "burgerpos",
		Short:         "Point-of-sale core for a smash burger counter",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "optional dotenv file loaded before reading the environment")

	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newMenuCmd(opts))
	return root
}

func (o *rootOptions) bootstrap() (cmd.Config, *slog.Logger, error) {
	config, err := cmd.LoadConfig(o.envFile)
	if err != nil {
		return cmd.Config{}, nil, err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: config.LogLevel}))
	return config, logger, nil
}
