package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/leafn/paillier/pkg/logging"
)

// app carries the state shared by all subcommands.
type app struct {
	v      *viper.Viper
	logger logging.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "paillier",
		Short:         "Paillier key generation and homomorphic encryption",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "optional config file (yaml, json, toml)")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	flags.String("log-format", "text", "log format: text or json")

	root.AddCommand(
		a.keygenCmd(),
		a.encryptCmd(),
		a.decryptCmd(),
		a.addCmd(),
		a.inspectCmd(),
		a.versionCmd(),
	)
	return root
}

// setup resolves configuration for the running command. Precedence is flags,
// then PAILLIER_* environment variables, then the config file, then defaults.
func (a *app) setup(cmd *cobra.Command) error {
	a.v.SetEnvPrefix("PAILLIER")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}

	a.logger = logging.New(newSlogLogger(cmd.ErrOrStderr(), a.v.GetString("log-level"), a.v.GetString("log-format")))
	return nil
}

func newSlogLogger(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: logging.ParseLevel(level)}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
