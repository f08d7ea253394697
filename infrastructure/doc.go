// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, logging, the run journal, and the
// platform wallpaper call.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache backed by patrickmn/go-cache
// - http/standard: Standard library HTTP client with timeout and rate limiting
// - logger/logrus: Console logger backed by sirupsen/logrus
// - journal/file: Prepend-style run log file (iotdLog.log)
// - wallpaper: One desktop wallpaper setter per platform, selected by build tag
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration values
// - Testable: Include unit tests against local fixtures
//
// # Cache
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// # HTTP Client
//
// The HTTP client performs single-attempt requests spaced by a politeness
// rate limiter:
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.Get(ctx, "https://www.nasa.gov/image-of-the-day/")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.NewConsoleLogger("info")
//	logger.Info("Stage transition", map[string]interface{}{
//	    "run_id": "123",
//	    "stage":  "Downloading",
//	})
//
// # Journal
//
// The journal prepends rendered entries to iotdLog.log so the newest run
// reads first:
//
//	journal := file.NewFileJournal(cfg.LogDir)
//	err := journal.Record(ctx, domain.LogLevelInfo, "image saved")
//
// # Wallpaper
//
// One Setter per platform: SystemParametersInfoW on Windows, gsettings on
// Linux/GNOME, osascript on macOS, and an unsupported-platform fallback
// elsewhere.
//
//	setter := wallpaper.NewSetter()
//	err := setter.Set(ctx, "/tmp/iotd_wallpaper.bmp")
package infrastructure
