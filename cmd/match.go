package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/viant/baiwen/asset"
	"github.com/viant/baiwen/asset/config"
	"github.com/viant/baiwen/asset/loader"
	"github.com/viant/baiwen/asset/matcher"
	"github.com/viant/baiwen/asset/report"
)

// Match runs a single lookup.  An unrecognized type label prints guidance and
// returns nil before the input document is touched; read and decode failures
// are returned.
func (o *Options) Match(ctx context.Context, stdout, stderr io.Writer) error {
	logger := newLogger(stderr, o.Verbose)

	var cfg *config.Config
	if o.Config != "" {
		var err error
		if cfg, err = config.Load(ctx, o.Config); err != nil {
			return err
		}
		logger.Debug("loaded config", "location", o.Config)
	}

	format, err := report.ParseFormat(firstNonEmpty(o.Format, cfg.FormatOr(string(report.FormatText))))
	if err != nil {
		return err
	}
	reporter := report.New(stdout, stderr,
		report.WithFormat(format),
		report.WithSort(o.Sort || (cfg != nil && cfg.Sort)),
		report.WithFullPath(o.FullPath || (cfg != nil && cfg.FullPath)),
	)
	reporter.Banner()

	typeList := o.Type
	if typeList == "" && !o.explicitType {
		typeList = cfg.TypeList(asset.DefaultType.String())
	}
	types, err := asset.ParseTypes(typeList)
	if err != nil {
		var unknown *asset.UnknownTypeError
		if errors.As(err, &unknown) {
			reporter.UnknownType(unknown.Label, asset.Types)
			return nil
		}
		return err
	}

	reporter.Request(o.String, typeList, o.Path)

	start := time.Now()
	assets, err := loader.New()
	if err != nil {
		return err
	}
	records, err := assets.Load(ctx, o.Path)
	if err != nil {
		return err
	}
	logger.Debug("loaded records", "location", o.Path, "count", len(records))
	sources := matcher.Match(records, o.String, types)
	elapsed := time.Since(start)
	logger.Debug("matched sources", "pattern", o.String, "types", types.Labels(), "count", sources.Len())

	reporter.Done(elapsed)
	return reporter.Sources(sources)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
