package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	app "github.com/rocketscienceinc/tictactoe-hotseat/internal"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the game or the results watcher.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	configPath := flag.String("config", "", "path to the YAML config file")
	gridSize := flag.Int("size", 0, "board size, overrides grid-size from the config")
	watch := flag.Bool("watch", false, "print round results published to redis instead of playing")
	flag.Parse()

	conf := initConfig(*configPath, *gridSize)

	logger, closeLog := initLogger(conf)
	defer closeLog()

	run := app.RunApp
	if *watch {
		run = app.RunWatch
	}

	if err := run(logger, conf, os.Stdout); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config.
func initConfig(path string, gridSize int) *config.Config {
	conf := config.MustLoad(config.Resolve(path))

	if gridSize != 0 {
		conf.GridSize = gridSize
		if err := conf.Validate(); err != nil {
			panic(fmt.Errorf("invalid -size flag: %w", err))
		}
	}

	return conf
}

// initialize logger. Records go to the log file because the terminal UI owns stdout.
func initLogger(conf *config.Config) (*slog.Logger, func()) {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		panic(fmt.Errorf("failed to open log file: %w", err))
	}

	logger := slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level}))

	return logger, func() { _ = file.Close() }
}
