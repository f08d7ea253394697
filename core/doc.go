// Package core contains the business logic for the image-of-the-day
// wallpaper utility. It is framework-agnostic and can be used independently
// of any CLI or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (ImageReference, DecodedImage, RunResult, LogEntry)
// - page: Image source scraping the image-of-the-day HTML page
// - feed: Image source reading the image-of-the-day RSS feed
// - acquire: Image download, decode, and bounded resize
// - store: Image persistence and history cleanup
// - wallpaper: BMP conversion and hand-off to the platform setter
// - services: Best-effort enrichment (page metadata, accent color)
// - pipeline: The run state machine orchestrating one wallpaper run
// - errors: Custom error types for each failure kind
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, journal)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "iotd-wallpaper/core/interfaces"
//	    "iotd-wallpaper/core/page"
//	    "iotd-wallpaper/core/pipeline"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	    Journal:    myJournal,    // implements interfaces.RunJournal
//	}
//
//	// Create the runner
//	runner := pipeline.NewRunner(deps, pipeline.Options{
//	    Source:   page.NewService(deps, ""),
//	    Acquirer: acquireService,
//	    Store:    storeService,
//	    Applier:  wallpaperService,
//	})
//
//	// Execute one run
//	result, err := runner.Run(ctx, cfg)
//
package core
