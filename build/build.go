// Package build applies a manifest to an engine and writes one JSON document
// per artifact.
package build

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	gocomp "github.com/reoring/gocomp"
	"github.com/reoring/gocomp/manifest"
)

// Options controls how artifacts are rendered and written.
type Options struct {
	// OutputDir receives the artifacts. Empty means the current directory.
	OutputDir string
	// Indent is the JSON indent; empty gives compact output.
	Indent string
	// Nested splits target paths into nested objects.
	Nested bool
	// KeepGoing builds the remaining artifacts after a failure.
	KeepGoing bool
	// Jobs bounds the number of artifacts built concurrently. Values below 1
	// mean one at a time.
	Jobs int
	// DryRun renders and digests artifacts without writing them.
	DryRun bool
}

// Result describes one built artifact.
type Result struct {
	Artifact string
	Path     string // absolute or OutputDir-relative path of the file
	Digest   string // BLAKE3 of the encoded document
	Written  bool   // false when the file already had identical content
	Err      error
}

// Builder renders manifests through an engine.
type Builder struct {
	engine *gocomp.Engine
	opts   Options
	logger zerolog.Logger
}

// New returns a Builder.
func New(engine *gocomp.Engine, opts Options, logger zerolog.Logger) *Builder {
	return &Builder{engine: engine, opts: opts, logger: logger}
}

// Render builds the document of a single artifact: base sections first, then
// each component use in order.
func (b *Builder) Render(ctx context.Context, a manifest.Artifact) (*gocomp.Document, error) {
	doc := gocomp.NewDocument()
	doc.Merge(a.BaseEmissions()...)
	if err := b.engine.Apply(ctx, doc, a.Components...); err != nil {
		return nil, fmt.Errorf("artifact %q: %w", a.Name, err)
	}
	return doc, nil
}

// Build renders and writes every artifact of m. Results are returned in
// manifest order. Without KeepGoing the first failure stops the build; with
// it, all failures are joined into the returned error.
func (b *Builder) Build(ctx context.Context, m *manifest.Manifest) ([]Result, error) {
	results := make([]Result, len(m.Artifacts))
	g, gctx := errgroup.WithContext(ctx)
	jobs := b.opts.Jobs
	if jobs < 1 {
		jobs = 1
	}
	g.SetLimit(jobs)

	for i, a := range m.Artifacts {
		i, a := i, a // per-iteration copy; go.mod targets go1.21 (pre-1.22 loopvar semantics)
		g.Go(func() error {
			res := b.buildOne(gctx, a)
			results[i] = res
			if res.Err != nil && !b.opts.KeepGoing {
				return res.Err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}

	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return results, errors.Join(errs...)
}

func (b *Builder) buildOne(ctx context.Context, a manifest.Artifact) Result {
	res := Result{Artifact: a.Name, Path: filepath.Join(b.opts.OutputDir, a.OutputPath())}
	if err := ctx.Err(); err != nil {
		res.Err = fmt.Errorf("artifact %q: %w", a.Name, err)
		return res
	}
	log := b.logger.With().Str("artifact", a.Name).Logger()

	doc, err := b.Render(ctx, a)
	if err != nil {
		log.Error().Err(err).Msg("artifact failed")
		res.Err = err
		return res
	}
	data, err := doc.Encode(b.opts.Indent, b.opts.Nested)
	if err != nil {
		res.Err = fmt.Errorf("artifact %q: encoding: %w", a.Name, err)
		return res
	}
	res.Digest = gocomp.Digest(data)

	if b.opts.DryRun {
		log.Info().Str("digest", res.Digest).Msg("artifact rendered")
		return res
	}
	written, err := writeIfChanged(res.Path, data, res.Digest)
	if err != nil {
		res.Err = fmt.Errorf("artifact %q: %w", a.Name, err)
		log.Error().Err(res.Err).Msg("artifact failed")
		return res
	}
	res.Written = written
	log.Info().
		Str("path", res.Path).
		Str("digest", res.Digest).
		Bool("written", written).
		Msg("artifact built")
	return res
}

// writeIfChanged writes data to path through a temporary file and rename,
// unless the file at path already has the given digest.
func writeIfChanged(path string, data []byte, digest string) (bool, error) {
	if existing, err := os.ReadFile(path); err == nil {
		if gocomp.Digest(existing) == digest {
			return false, nil
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("creating output dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return false, fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}
