package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	gocomp "github.com/reoring/gocomp"
	"github.com/reoring/gocomp/components/genshicraft"
	"github.com/reoring/gocomp/config"
	"github.com/reoring/gocomp/declarative"
	"github.com/reoring/gocomp/i18n"
)

// builtins are the component packs selectable through config.Builtin.
var builtins = map[string]func(*gocomp.Registry) error{
	genshicraft.Namespace: genshicraft.Register,
}

// env is the loaded configuration with its logger and engine.
type env struct {
	cfg    *config.Config
	logger zerolog.Logger
	engine *gocomp.Engine
}

func addConfigFlag(fs *pflag.FlagSet) *string {
	return fs.String("config", "", "config file (default: $"+config.EnvVar+")")
}

func loadEnv(configFlag string) (*env, error) {
	cfg, err := config.Load(config.Resolve(configFlag))
	if err != nil {
		return nil, err
	}
	if cfg.Language != "" {
		i18n.SetLanguage(cfg.Language)
	}
	logger := newLogger(cfg.Logging, os.Stderr)
	engine, err := newEngine(cfg, logger)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, logger: logger, engine: engine}, nil
}

// newEngine builds a fresh registry from the built-in packs and component
// directories named in cfg.
func newEngine(cfg *config.Config, logger zerolog.Logger) (*gocomp.Engine, error) {
	reg := gocomp.NewRegistry()
	for _, name := range cfg.Builtin {
		register, ok := builtins[name]
		if !ok {
			return nil, fmt.Errorf("unknown builtin component pack %q", name)
		}
		if err := register(reg); err != nil {
			return nil, fmt.Errorf("builtin %s: %w", name, err)
		}
	}
	for _, dir := range cfg.Components {
		names, err := declarative.RegisterDir(reg, dir)
		if err != nil {
			return nil, err
		}
		logger.Debug().Str("dir", dir).Strs("components", names).Msg("loaded component files")
	}

	opts := []gocomp.Option{gocomp.WithLogger(logger)}
	if p, ok := cfg.UnknownPolicy(); ok {
		opts = append(opts, gocomp.WithUnknownPolicy(p))
	}
	logger.Debug().Int("components", reg.Len()).Msg("registry loaded")
	return gocomp.New(reg, opts...), nil
}

func newLogger(c config.LoggingConfig, w io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(c.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	if c.Format == "json" {
		return zerolog.New(w).Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(level).With().Timestamp().Logger()
}
