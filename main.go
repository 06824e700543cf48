package main

import (
	"flag"
	"log/slog"

	"github.com/soocke/pixel-trimmer-go/app"
	"github.com/soocke/pixel-trimmer-go/config"
)

func main() {
	cfgPath := flag.String("config", "pixel-trimmer.json", "path to the JSON config file")
	verbose := flag.Bool("v", false, "log debug messages")
	flag.Parse()

	envFile := config.LoadDotEnv()
	cfg, cfgErr := config.Load(*cfgPath)
	cfg.ApplyEnv()

	level := slog.LevelInfo
	if *verbose || cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level, cfg.LogFormat)
	if cfgErr != nil {
		logger.Warn("config load failed, using defaults", "path", *cfgPath, "error", cfgErr)
		if bak, err := config.Backup(*cfgPath); err != nil {
			logger.Error("config backup failed", "error", err)
		} else {
			logger.Warn("unreadable config preserved", "backup", bak)
		}
	}
	if envFile != "" {
		logger.Debug("env file loaded", "path", envFile)
	}

	application := app.NewApp("Image Trimmer", cfg, *cfgPath, logger)
	application.Start()
}
