// Package main is the entry point for the todos binary. It loads the
// profile's config, wires all dependencies using samber/do v2, and either
// serves the web app or applies database migrations.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"github.com/fugu-chop/todo-db/internal/platform/config"
	"github.com/fugu-chop/todo-db/internal/platform/logging"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

var profile string

var rootCmd = &cobra.Command{
	Use:           "todos",
	Short:         "Multi-user todo list manager",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "p", os.Getenv("APP_PROFILE"),
		"config profile to load (local, dev, qa, prod, memory); defaults to $APP_PROFILE")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

// bootstrap loads config for the selected profile and builds the root logger.
func bootstrap() (*config.Config, *slog.Logger, error) {
	if profile == "" {
		return nil, nil, errors.New("a profile is required: pass --profile or set APP_PROFILE (e.g. local, memory, prod)")
	}
	cfg, err := config.Load(profile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, logging.New(cfg.Log, os.Stderr), nil
}
