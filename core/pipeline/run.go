// ABOUTME: Pipeline runner drives one wallpaper run through its stages
// ABOUTME: Every stage transition is journalled; the first failure ends the run

package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"iotd-wallpaper/core/config"
	"iotd-wallpaper/core/domain"
	coreerrors "iotd-wallpaper/core/errors"
	"iotd-wallpaper/core/interfaces"
)

// Options wires the services one run needs
type Options struct {
	// Source locates today's image
	Source interfaces.ImageSource

	// Acquirer downloads and decodes the image
	Acquirer interfaces.ImageAcquirer

	// Store persists the image and manages history
	Store interfaces.ImageStore

	// Applier sets the decoded image as the desktop wallpaper
	Applier interfaces.WallpaperApplier

	// Metadata and Colors decorate the run result, best effort
	Metadata interfaces.MetadataService
	Colors   interfaces.AccentColorService

	// Enrichment toggles the decoration features
	Enrichment config.EnrichmentConfig

	// PageURL is the page enriched for metadata
	PageURL string
}

// Runner executes wallpaper runs
type Runner struct {
	deps interfaces.Dependencies
	opts Options
}

// NewRunner creates a pipeline runner
func NewRunner(deps interfaces.Dependencies, opts Options) *Runner {
	return &Runner{
		deps: deps,
		opts: opts,
	}
}

// Run executes one wallpaper run: locate the image, download, bound,
// persist, apply, then enrich. The returned result reflects the terminal
// stage even when err is non-nil.
func (r *Runner) Run(ctx context.Context, cfg domain.RunConfig) (*domain.RunResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	result := &domain.RunResult{
		RunID:   uuid.NewString(),
		Stage:   domain.StageStart,
		Started: time.Now(),
	}

	r.deps.Logger.Info("Starting wallpaper run", map[string]interface{}{
		"run_id":       result.RunID,
		"save_dir":     cfg.SaveDir,
		"keep_history": cfg.KeepHistory,
	})

	err := r.execute(ctx, cfg, result)
	result.Finished = time.Now()

	if err != nil {
		r.fail(ctx, result, err)
		return result, err
	}

	r.transition(ctx, result, domain.StageDone, "wallpaper run completed")
	r.deps.Logger.Info("Wallpaper run completed", map[string]interface{}{
		"run_id":  result.RunID,
		"image":   result.Reference.URL,
		"skipped": result.Skipped,
		"elapsed": result.Finished.Sub(result.Started).String(),
	})

	return result, nil
}

func (r *Runner) execute(ctx context.Context, cfg domain.RunConfig, result *domain.RunResult) error {
	if err := r.transition(ctx, result, domain.StageFetching, "fetching image of the day"); err != nil {
		return err
	}

	ref, err := r.opts.Source.Resolve(ctx)
	if err != nil {
		return err
	}
	result.Reference = ref
	r.journal(ctx, domain.LogLevelInfo, fmt.Sprintf("image URL detected: %s", ref.URL))

	var decoded *domain.DecodedImage

	if path, exists := r.opts.Store.ExistingPath(ref, cfg); exists {
		// The image was saved by an earlier run; reuse it from disk
		r.journal(ctx, domain.LogLevelInfo, fmt.Sprintf("image already saved at %s, applying from disk", path))
		result.Skipped = true

		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return &coreerrors.IOError{Op: "read", Path: path, Err: readErr}
		}

		decoded, err = r.opts.Acquirer.DecodeAndFit(ctx, ref, data)
		if err != nil {
			return err
		}

		if !cfg.KeepHistory {
			r.opts.Store.CleanupHistory(ctx, path, cfg)
		}
	} else {
		if err := r.transition(ctx, result, domain.StageDownloading, "downloading image"); err != nil {
			return err
		}
		data, err := r.opts.Acquirer.Download(ctx, ref)
		if err != nil {
			return err
		}

		if err := r.transition(ctx, result, domain.StageResizing, "decoding and bounding image"); err != nil {
			return err
		}
		decoded, err = r.opts.Acquirer.DecodeAndFit(ctx, ref, data)
		if err != nil {
			return err
		}
		if decoded.Resized {
			r.journal(ctx, domain.LogLevelInfo, fmt.Sprintf("image resized to %dx%d", decoded.Width, decoded.Height))
		} else {
			r.journal(ctx, domain.LogLevelInfo, fmt.Sprintf("image within bounds at %dx%d", decoded.Width, decoded.Height))
		}

		if err := r.transition(ctx, result, domain.StageSaving, "saving image"); err != nil {
			return err
		}
		stored, err := r.opts.Store.Persist(ctx, decoded, ref, cfg)
		if err != nil {
			return err
		}
		result.Stored = stored
		r.journal(ctx, domain.LogLevelInfo, fmt.Sprintf("image saved to %s", stored.Path))
	}

	if err := r.transition(ctx, result, domain.StageApplying, "applying wallpaper"); err != nil {
		return err
	}
	if err := r.opts.Applier.Apply(ctx, decoded); err != nil {
		return err
	}

	r.enrich(ctx, result)

	return nil
}

// enrich decorates the result with page metadata and the accent color.
// It runs after the wallpaper is applied and cannot fail the run.
func (r *Runner) enrich(ctx context.Context, result *domain.RunResult) {
	if !r.opts.Enrichment.Any() {
		return
	}

	if r.opts.Enrichment.ExtractMetadata && r.opts.Metadata != nil && r.opts.PageURL != "" {
		meta, err := r.opts.Metadata.ExtractMetadata(ctx, r.opts.PageURL)
		if err != nil {
			r.deps.Logger.Debug("Metadata enrichment failed", map[string]interface{}{
				"run_id": result.RunID,
				"url":    r.opts.PageURL,
				"error":  err.Error(),
			})
		} else if meta != nil {
			result.Metadata = meta
			if meta.Title != "" {
				r.journal(ctx, domain.LogLevelInfo, fmt.Sprintf("page title: %s", meta.Title))
			}
		}
	}

	if r.opts.Enrichment.ExtractColors && r.opts.Colors != nil && result.Reference.URL != "" {
		color, err := r.opts.Colors.ExtractColor(ctx, result.Reference.URL)
		if err != nil {
			r.deps.Logger.Debug("Color enrichment failed", map[string]interface{}{
				"run_id": result.RunID,
				"url":    result.Reference.URL,
				"error":  err.Error(),
			})
		} else if color != nil {
			result.Accent = color
			r.journal(ctx, domain.LogLevelInfo, fmt.Sprintf("accent color: %s", color.Hex()))
		}
	}
}

// transition moves the run to the next stage and journals it
func (r *Runner) transition(ctx context.Context, result *domain.RunResult, next domain.RunStage, message string) error {
	if !result.Stage.CanTransition(next) {
		return fmt.Errorf("illegal stage transition from %s to %s", result.Stage, next)
	}
	result.Stage = next

	r.deps.Logger.Info("Stage transition", map[string]interface{}{
		"run_id": result.RunID,
		"stage":  next.String(),
	})
	r.journal(ctx, domain.LogLevelInfo, message)

	return nil
}

// fail moves the run to Failed and journals the cause
func (r *Runner) fail(ctx context.Context, result *domain.RunResult, cause error) {
	if result.Stage.CanTransition(domain.StageFailed) {
		result.Stage = domain.StageFailed
	}

	r.deps.Logger.Error("Wallpaper run failed", map[string]interface{}{
		"run_id": result.RunID,
		"error":  cause.Error(),
	})
	r.journal(ctx, domain.LogLevelError, cause.Error())
}

// journal records a run log entry, degrading to a console warning when
// the journal itself fails
func (r *Runner) journal(ctx context.Context, level domain.LogLevel, message string) {
	if r.deps.Journal == nil {
		return
	}
	if err := r.deps.Journal.Record(ctx, level, message); err != nil {
		r.deps.Logger.Warn("Failed to write run journal", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
