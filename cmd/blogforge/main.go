package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"blogforge/internal/build"
	"blogforge/internal/config"
	"blogforge/internal/preview"
	"blogforge/internal/version"
)

var CLI struct {
	Config  string           `short:"c" help:"Site configuration file path" default:"site.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `help:"Print version and exit"`

	Build struct {
		Output string `short:"o" help:"Output directory override (defaults to the configured output_dir)"`
	} `cmd:"" help:"Build the static site from content and templates"`

	Preview struct {
		Port int `short:"p" help:"Port to serve the site on" default:"8080"`
	} `cmd:"" help:"Build the site, serve it locally and rebuild on changes"`

	Init struct {
		Force bool `help:"Overwrite existing files"`
	} `cmd:"" help:"Scaffold a starter site.yaml and .env"`
}

func main() {
	ctx := kong.Parse(&CLI, kong.Vars{"version": version.String()})

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	switch ctx.Command() {
	case "build":
		site := loadSite()
		if CLI.Build.Output != "" {
			site.OutputDir = CLI.Build.Output
		}
		if _, err := build.NewGenerator(site).Build(); err != nil {
			os.Exit(1)
		}

	case "preview":
		site := loadSite()
		runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := preview.Run(runCtx, site, CLI.Preview.Port); err != nil {
			slog.Error("preview failed", "error", err)
			os.Exit(1)
		}

	case "init":
		if err := runInit(CLI.Config, CLI.Init.Force); err != nil {
			slog.Error("init failed", "error", err)
			os.Exit(1)
		}

	default:
		_ = ctx.PrintUsage(false)
		os.Exit(1)
	}
}

// loadSite resolves the configuration, falling back to built-in defaults when
// no site.yaml exists so a fresh checkout can still build.
func loadSite() *config.Site {
	if _, err := os.Stat(CLI.Config); os.IsNotExist(err) {
		slog.Warn("no configuration file found, using defaults", "path", CLI.Config)
		return config.Default()
	}
	site, err := config.Load(CLI.Config)
	if err != nil {
		slog.Error("failed to load configuration", "path", CLI.Config, "error", err)
		os.Exit(1)
	}
	return site
}
