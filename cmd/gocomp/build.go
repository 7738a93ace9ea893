package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/pflag"

	"github.com/reoring/gocomp/build"
	"github.com/reoring/gocomp/manifest"
)

type buildFlags struct {
	config    *string
	manifest  string
	out       string
	watch     bool
	keepGoing bool
	jobs      int
	dryRun    bool
}

func buildCmd(args []string) error {
	var f buildFlags
	fs := pflag.NewFlagSet("build", pflag.ContinueOnError)
	f.config = addConfigFlag(fs)
	fs.StringVar(&f.manifest, "manifest", "", "manifest file (overrides config)")
	fs.StringVarP(&f.out, "out", "o", "", "output directory (overrides config)")
	fs.BoolVarP(&f.watch, "watch", "w", false, "rebuild when the manifest or component files change")
	fs.BoolVarP(&f.keepGoing, "keep-going", "k", false, "continue after a failed artifact")
	fs.IntVarP(&f.jobs, "jobs", "j", 1, "artifacts built concurrently")
	fs.BoolVar(&f.dryRun, "dry-run", false, "render and digest artifacts without writing them")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !f.watch {
		return buildOnce(ctx, f)
	}
	return watch(ctx, f)
}

// buildOnce reloads configuration, components and manifest, then builds.
func buildOnce(ctx context.Context, f buildFlags) error {
	e, err := loadEnv(*f.config)
	if err != nil {
		return err
	}
	manifestPath, outDir := resolveBuildPaths(e, f)
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	b := build.New(e.engine, build.Options{
		OutputDir: outDir,
		Indent:    e.cfg.Indent,
		Nested:    e.cfg.Nested,
		KeepGoing: f.keepGoing || e.cfg.KeepGoing,
		Jobs:      f.jobs,
		DryRun:    f.dryRun,
	}, e.logger)

	start := time.Now()
	results, err := b.Build(ctx, m)
	written, failed := 0, 0
	for _, r := range results {
		if r.Written {
			written++
		}
		if r.Err != nil {
			failed++
		}
	}
	e.logger.Info().
		Int("artifacts", len(m.Artifacts)).
		Int("written", written).
		Int("failed", failed).
		Dur("took", time.Since(start)).
		Msg("build finished")
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	return nil
}

func resolveBuildPaths(e *env, f buildFlags) (manifestPath, outDir string) {
	manifestPath, outDir = e.cfg.Manifest, e.cfg.Output
	if f.manifest != "" {
		manifestPath = f.manifest
	}
	if f.out != "" {
		outDir = f.out
	}
	return manifestPath, outDir
}

// watch builds once, then rebuilds whenever a file in the manifest's
// directory or a component directory changes. Events are debounced.
func watch(ctx context.Context, f buildFlags) error {
	e, err := loadEnv(*f.config)
	if err != nil {
		return err
	}
	manifestPath, outDir := resolveBuildPaths(e, f)
	absOut, _ := filepath.Abs(outDir)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dirs := append([]string{filepath.Dir(manifestPath)}, e.cfg.Components...)
	for _, dir := range dirs {
		if err := addRecursive(watcher, dir, absOut); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	rebuild := func() {
		if err := buildOnce(ctx, f); err != nil {
			e.logger.Error().Err(err).Msg("rebuild failed")
		}
	}
	rebuild()
	e.logger.Info().Strs("dirs", dirs).Msg("watching for changes")

	const debounce = 200 * time.Millisecond
	timer := time.NewTimer(debounce)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if within(event.Name, absOut) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = addRecursive(watcher, event.Name, absOut)
				}
			}
			e.logger.Debug().Str("event", event.Op.String()).Str("file", event.Name).Msg("change detected")
			timer.Reset(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			e.logger.Error().Err(err).Msg("file watcher error")
		case <-timer.C:
			rebuild()
		}
	}
}

func addRecursive(w *fsnotify.Watcher, root, skip string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if within(path, skip) {
			return filepath.SkipDir
		}
		return w.Add(path)
	})
}

// within reports whether path is dir or lies below it.
func within(path, dir string) bool {
	if dir == "" {
		return false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(dir, abs)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !filepath.IsAbs(rel) && !startsWithParent(rel))
}

func startsWithParent(rel string) bool {
	return len(rel) >= 3 && rel[:3] == ".."+string(filepath.Separator)
}
