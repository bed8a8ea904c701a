// Package app implements the application layer for tabicons.
package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"

	"go.trai.ch/tabicons/internal/core/domain"
	"go.trai.ch/tabicons/internal/core/ports"
	"go.trai.ch/tabicons/internal/ui/preview"
	"go.trai.ch/zerr"
)

// CompletionMessage is printed after every icon has been written.
const CompletionMessage = "All tabBar icons created successfully!"

// App represents the main application logic.
type App struct {
	renderer  ports.IconRenderer
	loader    ports.ManifestLoader
	writer    ports.ImageWriter
	hasher    ports.Hasher
	verifier  ports.OutputVerifier
	telemetry ports.Telemetry
	logger    ports.Logger
	watcher   ports.Watcher
	palette   domain.Palette
}

// New creates a new App instance using the default palette.
func New(
	renderer ports.IconRenderer,
	loader ports.ManifestLoader,
	writer ports.ImageWriter,
	hasher ports.Hasher,
	verifier ports.OutputVerifier,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		renderer:  renderer,
		loader:    loader,
		writer:    writer,
		hasher:    hasher,
		verifier:  verifier,
		telemetry: telemetry,
		logger:    log,
		palette:   domain.DefaultPalette(),
	}
}

// WithPalette replaces the category palette.
func (a *App) WithPalette(p domain.Palette) *App {
	a.palette = p
	return a
}

// WithWatcher sets the watcher used by Watch.
func (a *App) WithWatcher(w ports.Watcher) *App {
	a.watcher = w
	return a
}

// PlanOptions selects the manifest and the overrides applied on top of it.
type PlanOptions struct {
	ManifestPath     string
	ManifestRequired bool
	// OutputDir overrides the manifest output directory when non-empty.
	OutputDir string
	// Style overrides the manifest render style when non-empty.
	Style string
}

// Plan loads the manifest and applies the overrides from opts.
func (a *App) Plan(opts PlanOptions) (*domain.GenerationPlan, error) {
	plan, err := a.loader.Load(opts.ManifestPath, opts.ManifestRequired)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load manifest")
	}

	if opts.OutputDir != "" {
		plan.OutputDir = opts.OutputDir
	}
	if opts.Style != "" {
		style, err := domain.ParseRenderStyle(opts.Style)
		if err != nil {
			return nil, err
		}
		plan.Style = style
	}

	return plan, nil
}

// GenerateOptions configuration for the Generate method.
type GenerateOptions struct {
	PlanOptions
	// Out receives the per-file and completion messages.
	Out io.Writer
	// Journal, when set, names a file that receives the progress journal.
	Journal string
}

// Generate renders every manifest entry in order and writes it under the
// output directory. The first failure halts the run and leaves files that
// were already written in place.
func (a *App) Generate(ctx context.Context, opts GenerateOptions) error {
	if opts.Journal != "" {
		if err := a.telemetry.Journal(opts.Journal); err != nil {
			return err
		}
	}

	plan, err := a.Plan(opts.PlanOptions)
	if err != nil {
		return err
	}
	return a.GeneratePlan(ctx, plan, opts.Out)
}

// GeneratePlan runs the generation for an already loaded plan.
func (a *App) GeneratePlan(ctx context.Context, plan *domain.GenerationPlan, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}

	if err := a.writer.EnsureDir(plan.OutputDir); err != nil {
		return err
	}

	for _, spec := range plan.Icons {
		if err := ctx.Err(); err != nil {
			return errors.Join(domain.ErrIconGenerationFailed, err)
		}
		path, err := a.generateIcon(ctx, plan, spec)
		if err != nil {
			return errors.Join(domain.ErrIconGenerationFailed, domain.WithDetail(err, "file", spec.Filename))
		}
		_, _ = fmt.Fprintf(out, "Created: %s\n", path)
	}

	_, _ = fmt.Fprintln(out, CompletionMessage)
	return nil
}

func (a *App) generateIcon(ctx context.Context, plan *domain.GenerationPlan, spec domain.IconSpec) (path string, err error) {
	_, vertex := a.telemetry.Record(ctx, spec.Filename)
	defer func() {
		vertex.Complete(err)
	}()

	c, err := a.palette.Lookup(spec.Category)
	if err != nil {
		return "", err
	}

	img := a.renderer.Render(c, spec.Active, plan.Style)
	path = filepath.Join(plan.OutputDir, spec.Filename)
	if err = a.writer.WriteFile(path, img); err != nil {
		return "", err
	}

	vertex.Log(domain.LogLevelInfo, "Created: "+path)
	return path, nil
}

// VerifyOptions configuration for the Verify method.
type VerifyOptions struct {
	PlanOptions
	// Out receives one status line per icon.
	Out io.Writer
}

// Verify compares every file on disk with a fresh in-memory render. The
// returned report is complete even when verification fails.
func (a *App) Verify(ctx context.Context, opts VerifyOptions) (*domain.VerifyReport, error) {
	plan, err := a.Plan(opts.PlanOptions)
	if err != nil {
		return nil, err
	}

	report, err := a.VerifyPlan(ctx, plan)
	if err != nil {
		return nil, err
	}

	if opts.Out != nil {
		for _, res := range report.Results {
			_, _ = fmt.Fprintf(opts.Out, "%-8s %s\n", res.Status, res.Path)
		}
	}

	if report.Failed() {
		outdated := zerr.With(zerr.With(zerr.New("icons out of date"),
			"missing", report.Count(domain.VerifyStatusMissing)),
			"drifted", report.Count(domain.VerifyStatusDrifted))
		return report, errors.Join(domain.ErrVerificationFailed, outdated)
	}
	return report, nil
}

// VerifyPlan builds the verification report for an already loaded plan.
func (a *App) VerifyPlan(ctx context.Context, plan *domain.GenerationPlan) (*domain.VerifyReport, error) {
	missing, err := a.verifier.MissingOutputs(plan.OutputDir, plan.Icons.Filenames())
	if err != nil {
		return nil, zerr.Wrap(err, "failed to check outputs")
	}
	absent := make(map[string]bool, len(missing))
	for _, name := range missing {
		absent[name] = true
	}

	report := &domain.VerifyReport{Results: make([]domain.VerifyResult, 0, len(plan.Icons))}
	for _, spec := range plan.Icons {
		if err := ctx.Err(); err != nil {
			return nil, zerr.Wrap(err, "verification interrupted")
		}

		res, err := a.verifyIcon(plan, spec, absent[spec.Filename])
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to verify icon"), "file", spec.Filename)
		}
		if res.Status != domain.VerifyStatusOK {
			a.logger.Warn(fmt.Sprintf("%s is %s", res.Path, res.Status))
		}
		report.Results = append(report.Results, res)
	}

	report.Stray, err = a.verifier.StrayOutputs(plan.OutputDir, plan.Icons.Filenames())
	if err != nil {
		a.logger.Warn(fmt.Sprintf("could not list %s for stray icons: %v", plan.OutputDir, err))
	}
	for _, name := range report.Stray {
		a.logger.Warn(fmt.Sprintf("%s is not in the manifest", filepath.Join(plan.OutputDir, name)))
	}

	return report, nil
}

func (a *App) verifyIcon(plan *domain.GenerationPlan, spec domain.IconSpec, missing bool) (domain.VerifyResult, error) {
	res := domain.VerifyResult{
		Filename: spec.Filename,
		Path:     filepath.Join(plan.OutputDir, spec.Filename),
	}

	c, err := a.palette.Lookup(spec.Category)
	if err != nil {
		return res, err
	}

	var buf bytes.Buffer
	if err := a.writer.Encode(&buf, a.renderer.Render(c, spec.Active, plan.Style)); err != nil {
		return res, err
	}
	res.Want = a.hasher.HashBytes(buf.Bytes())

	if missing {
		res.Status = domain.VerifyStatusMissing
		return res, nil
	}

	got, err := a.hasher.HashFile(res.Path)
	if err != nil {
		return res, err
	}
	res.Got = got
	if got == res.Want {
		res.Status = domain.VerifyStatusOK
	} else {
		res.Status = domain.VerifyStatusDrifted
	}
	return res, nil
}

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	GenerateOptions
}

// Watch generates once and then again every time the manifest file is
// written, until ctx is done. Generation failures are logged and do not end
// the watch.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	if a.watcher == nil {
		return zerr.With(zerr.Wrap(domain.ErrWatchFailed, "no watcher configured"), "manifest", opts.ManifestPath)
	}

	manifest, err := filepath.Abs(opts.ManifestPath)
	if err != nil {
		return errors.Join(domain.ErrWatchFailed, zerr.With(err, "manifest", opts.ManifestPath))
	}

	gen := opts.GenerateOptions
	if gen.Journal != "" {
		if err := a.telemetry.Journal(gen.Journal); err != nil {
			return err
		}
		gen.Journal = ""
	}

	if err := a.watcher.Start(ctx, filepath.Dir(manifest)); err != nil {
		return err
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	a.regenerate(ctx, gen)
	a.logger.Info(fmt.Sprintf("watching %s for changes", opts.ManifestPath))

	for paths := range a.watcher.Changes() {
		if !slices.Contains(paths, manifest) {
			continue
		}
		a.regenerate(ctx, gen)
	}

	if err := ctx.Err(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (a *App) regenerate(ctx context.Context, opts GenerateOptions) {
	if err := a.Generate(ctx, opts); err != nil && ctx.Err() == nil {
		a.logger.Error(err)
	}
}

// ListOptions configuration for the List method.
type ListOptions struct {
	PlanOptions
	Out io.Writer
}

// List prints the manifest entries in order as "filename category state".
func (a *App) List(opts ListOptions) error {
	plan, err := a.Plan(opts.PlanOptions)
	if err != nil {
		return err
	}

	for _, spec := range plan.Icons {
		_, _ = fmt.Fprintf(opts.Out, "%-22s %-10s %s\n", spec.Filename, spec.Category, spec.State())
	}
	return nil
}

// PreviewOptions configuration for the Preview method.
type PreviewOptions struct {
	Category string
	Active   bool
	Style    string
	Out      io.Writer
}

// Preview renders a single icon as an ASCII grid.
func (a *App) Preview(opts PreviewOptions) error {
	style, err := domain.ParseRenderStyle(opts.Style)
	if err != nil {
		return err
	}

	c, err := a.palette.Lookup(domain.Category(opts.Category))
	if err != nil {
		return err
	}

	if err := preview.Write(opts.Out, a.renderer.Render(c, opts.Active, style)); err != nil {
		return errors.Join(domain.ErrImageWriteFailed, err)
	}
	return nil
}
