package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	corecfg "github.com/mucritic/mucritic/internal/core/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "mucritic",
	Short: "muCritic feature-vector engine",
	Long: `mucritic turns stored music profiles, reviews, albums, artists and tracks
into fixed-shape numeric feature vectors, caches them and exports them as CSV.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "mucritic.yaml",
		"Path to configuration file (empty to use defaults and MUCRITIC_ env vars only)")
}

// loadConfig reads the config file, tolerating a missing default file.
func loadConfig() (*corecfg.Config, error) {
	path := configPath
	if path == "mucritic.yaml" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			path = ""
		}
	}
	cfg, err := corecfg.Load(path)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(newLogger(cfg.Log))
	return cfg, nil
}

func newLogger(cfg corecfg.LogConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
