// Package assetset renders the fixed set of app icon images and writes them to a directory.
package assetset

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/besmile/brand-assets/go/logo"
)

// DefaultDir is the output directory, resolved against the working directory.
const DefaultDir = "assets"

// Config configures a Builder. Zero fields take their defaults.
type Config struct {
	Dir    string
	Preset logo.Preset
	Fonts  []logo.FontSource
	Specs  []Spec
}

// Builder renders and persists an asset set.
type Builder struct {
	dir    string
	preset logo.Preset
	fonts  []logo.FontSource
	specs  []Spec
}

// Asset is one written file.
type Asset struct {
	Spec Spec
	Path string
}

// Report lists what a build wrote.
type Report struct {
	Dir    string
	Assets []Asset
}

// New returns a Builder for config.
func New(config Config) *Builder {
	b := &Builder{
		dir:    config.Dir,
		preset: config.Preset,
		fonts:  config.Fonts,
		specs:  config.Specs,
	}
	if b.dir == "" {
		b.dir = DefaultDir
	}
	if b.preset.Name == "" {
		b.preset = logo.PresetShine
	}
	if b.fonts == nil {
		b.fonts = logo.DefaultFonts
	}
	if b.specs == nil {
		b.specs = DefaultSpecs
	}
	return b
}

// Build renders every spec in order and writes it under the output directory.
// It stops at the first failure; files written before it stay on disk.
func (b *Builder) Build(ctx context.Context) (*Report, error) {
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", b.dir, err)
	}
	slog.InfoContext(ctx, "generating logo assets", "dir", b.dir, "preset", b.preset.Name,
		"gradient", b.preset.Direction, "highlight", b.preset.Highlight)

	report := &Report{Dir: b.dir}
	for i, spec := range b.specs {
		slog.InfoContext(ctx, fmt.Sprintf("[%d/%d] creating %s", i+1, len(b.specs), spec.Filename),
			"size", fmt.Sprintf("%dx%d", spec.Size, spec.Size), "variant", spec.Variant)
		img, err := b.Render(spec)
		if err != nil {
			return report, fmt.Errorf("rendering %s: %w", spec.Filename, err)
		}
		path := filepath.Join(b.dir, spec.Filename)
		if err := writePNG(path, img); err != nil {
			return report, fmt.Errorf("writing %s: %w", path, err)
		}
		report.Assets = append(report.Assets, Asset{Spec: spec, Path: path})
		slog.InfoContext(ctx, "saved", "path", path)
	}

	slog.InfoContext(ctx, "all logo assets generated", "dir", b.dir, "count", len(report.Assets))
	return report, nil
}
