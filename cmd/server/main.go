package main

import (
	"fmt"
	"log/slog"
	"os"

	"gamereviews/backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// @title           Game Reviews API
// @version         1.0
// @description     Games, users and the reviews users write about games.
// @host            localhost:5555
// @BasePath        /
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "server",
		Short:        "Game reviews API server",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadConfig(); err != nil {
				return err
			}
			logger := newLogger(config.AppConfig)
			slog.SetDefault(logger)
			gin.SetMode(config.AppConfig.GinMode)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), config.AppConfig)
		},
	}

	flags := root.PersistentFlags()
	flags.String("database-url", "", "database DSN or SQLite file (overrides DATABASE_URL)")
	flags.String("port", "", "listen port (overrides PORT)")
	cobra.CheckErr(bindFlags(viper.GetViper(), root))

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newSeedCmd(),
	)
	return root
}

// flagKeys maps persistent flags to the config keys they override.
var flagKeys = map[string]string{
	"database-url": "DATABASE_URL",
	"port":         "PORT",
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, cmd.PersistentFlags().Lookup(flag)); err != nil {
			return fmt.Errorf("bind --%s to %s: %w", flag, key, err)
		}
	}
	return nil
}

// newLogger writes JSON in release mode and text otherwise.
func newLogger(cfg *config.Config) *slog.Logger {
	level, _ := cfg.SlogLevel()
	opts := &slog.HandlerOptions{Level: level}
	if cfg.GinMode == gin.ReleaseMode {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
