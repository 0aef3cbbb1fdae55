package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	app "github.com/rocketscienceinc/santorini-backend/internal"
	"github.com/rocketscienceinc/santorini-backend/internal/config"
)

var CLI struct {
	Config string `help:"Path to the configuration file." default:"config.yml" short:"c"`
	Debug  bool   `help:"Whether to enable debug logging."`

	Serve struct{} `cmd:"" default:"1" help:"Run the tournament server."`

	Play struct {
		Addr     string `arg:"" help:"Server address, host:port for TCP or a ws:// URL."`
		Name     string `help:"Name announced to the server." required:""`
		Strategy string `help:"Strategy playing for you: human, random, greedy or lua." default:"human"`
		Seed     uint64 `help:"Seed of the random strategy."`
		Script   string `help:"Lua script of the lua strategy." type:"existingfile"`
	} `cmd:"" help:"Join a tournament server as a player."`
}

// main - is the entry point of the application. It initializes the configuration, logger, and runs the command.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	ctx := kong.Parse(&CLI,
		kong.Name("santorini"),
		kong.Description("a Santorini referee and tournament server"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	conf := initConfig(CLI.Config)
	if CLI.Debug {
		conf.LogLevel = "debug"
	}

	logger := initLogger(conf)

	switch ctx.Command() {
	case "serve":
		if err := app.RunApp(logger, conf); err != nil {
			panic(fmt.Errorf("app run failed: %w", err))
		}
	case "play <addr>":
		options := app.PlayerOptions{
			Addr:     CLI.Play.Addr,
			Name:     CLI.Play.Name,
			Strategy: CLI.Play.Strategy,
			Seed:     CLI.Play.Seed,
			Script:   CLI.Play.Script,
		}

		if err := app.RunPlayer(logger, conf, options); err != nil {
			panic(fmt.Errorf("player run failed: %w", err))
		}
	default:
		panic(fmt.Errorf("unknown command %q", ctx.Command()))
	}
}

// initialize config.
func initConfig(path string) *config.Config {
	if filepath.IsAbs(path) {
		return config.MustLoad(path)
	}

	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, path))
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
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

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
