// ABOUTME: Main entry point for the image-of-the-day wallpaper utility
// ABOUTME: Wires together all components and executes one wallpaper run

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"iotd-wallpaper/core/acquire"
	"iotd-wallpaper/core/feed"
	"iotd-wallpaper/core/interfaces"
	"iotd-wallpaper/core/page"
	"iotd-wallpaper/core/pipeline"
	"iotd-wallpaper/core/services"
	"iotd-wallpaper/core/store"
	corewallpaper "iotd-wallpaper/core/wallpaper"
	"iotd-wallpaper/infrastructure/cache/memory"
	stdhttp "iotd-wallpaper/infrastructure/http/standard"
	"iotd-wallpaper/infrastructure/journal/file"
	consolelogger "iotd-wallpaper/infrastructure/logger/logrus"
	platformwallpaper "iotd-wallpaper/infrastructure/wallpaper"
	"iotd-wallpaper/pkg/config"
)

var (
	flagConfig      string
	flagSaveDir     string
	flagLogDir      string
	flagKeepHistory bool
	flagSource      string
	flagPageURL     string
	flagFeedURL     string
	flagTimeout     int
	flagLogLevel    string
	flagNoMetadata  bool
	flagNoColors    bool
)

var rootCmd = &cobra.Command{
	Use:   "iotd",
	Short: "Set the NASA Image of the Day as your desktop wallpaper",
	Long: `iotd fetches NASA's Image of the Day, bounds it to 4K, saves it,
and applies it as the desktop wallpaper. Every run is journalled to
iotdLog.log inside the log directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return run(cmd.Context(), cfg)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "path to a YAML config file")
	rootCmd.Flags().StringVar(&flagSaveDir, "save-dir", "", "directory images are saved into")
	rootCmd.Flags().StringVar(&flagLogDir, "log-dir", "", "directory holding the run log")
	rootCmd.Flags().BoolVar(&flagKeepHistory, "keep-history", false, "keep previously saved images")
	rootCmd.Flags().StringVar(&flagSource, "source", "", "image source: page or feed")
	rootCmd.Flags().StringVar(&flagPageURL, "page-url", "", "override the image-of-the-day page URL")
	rootCmd.Flags().StringVar(&flagFeedURL, "feed-url", "", "override the image-of-the-day feed URL")
	rootCmd.Flags().IntVar(&flagTimeout, "timeout", 0, "HTTP timeout in seconds")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "console log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&flagNoMetadata, "no-metadata", false, "skip page metadata extraction")
	rootCmd.Flags().BoolVar(&flagNoColors, "no-colors", false, "skip accent color extraction")
}

// loadConfig layers defaults, the YAML file, environment variables, and
// finally any flags explicitly set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("save-dir") {
		cfg.SaveDir = flagSaveDir
	}
	if cmd.Flags().Changed("log-dir") {
		cfg.LogDir = flagLogDir
	}
	if cmd.Flags().Changed("keep-history") {
		cfg.KeepHistory = flagKeepHistory
	}
	if cmd.Flags().Changed("source") {
		cfg.Source = flagSource
	}
	if cmd.Flags().Changed("page-url") {
		cfg.PageURL = flagPageURL
	}
	if cmd.Flags().Changed("feed-url") {
		cfg.FeedURL = flagFeedURL
	}
	if cmd.Flags().Changed("timeout") {
		cfg.HTTPTimeout = flagTimeout
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if flagNoMetadata {
		off := false
		cfg.ExtractMetadata = &off
	}
	if flagNoColors {
		off := false
		cfg.ExtractColors = &off
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// run wires the services and executes one wallpaper run
func run(ctx context.Context, cfg *config.Config) error {
	logger := consolelogger.NewConsoleLogger(cfg.LogLevel)

	deps := interfaces.Dependencies{
		Cache:      memory.NewMemoryCache(),
		HTTPClient: stdhttp.NewStandardHTTPClient(time.Duration(cfg.HTTPTimeout) * time.Second),
		Logger:     logger,
		Journal:    file.NewFileJournal(cfg.LogDir),
	}

	var source interfaces.ImageSource
	if cfg.Source == config.SourceFeed {
		source = feed.NewService(deps, cfg.FeedURL)
	} else {
		source = page.NewService(deps, cfg.PageURL)
	}

	pageURL := cfg.PageURL
	if pageURL == "" {
		pageURL = page.DefaultPageURL
	}

	runner := pipeline.NewRunner(deps, pipeline.Options{
		Source:     source,
		Acquirer:   acquire.NewService(deps),
		Store:      store.NewService(deps),
		Applier:    corewallpaper.NewService(deps, platformwallpaper.NewSetter()),
		Metadata:   services.NewMetadataService(deps),
		Colors:     services.NewAccentColorService(deps),
		Enrichment: cfg.Enrichment(),
		PageURL:    pageURL,
	})

	_, err := runner.Run(ctx, cfg.RunConfig())
	return err
}

func main() {
	// A missing .env file is fine; the environment still applies
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
