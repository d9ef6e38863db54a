// Package site evaluates the navigation menu of every page of a static site
// and writes the reconciled pages to an output directory.
package site

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/mchmarny/sitenav/pkg/document"
	"github.com/mchmarny/sitenav/pkg/metric"
	"github.com/mchmarny/sitenav/pkg/nav"
	"github.com/mchmarny/sitenav/pkg/navbar"
)

// ErrSourceNotDir is returned when the source is not a directory.
var ErrSourceNotDir = errors.New("source is not a directory")

const (
	outcomeRendered = "rendered"
	outcomeFallback = "fallback"
	outcomeCopied   = "copied"
	outcomeFailed   = "failed"
)

// Builder renders the navigation menu into the pages of a site.
type Builder struct {
	// Src is the site source directory.
	Src string

	// Out is the output directory. It is skipped when nested inside Src.
	Out string

	// BasePath is prepended to page locations.
	BasePath string

	// Site holds the classifier parameters.
	Site nav.Site

	// Include selects the pages that get a menu; other files are copied as is.
	Include []string

	// Exclude selects files that are neither rendered nor copied.
	Exclude []string

	// Concurrency bounds the number of files processed at once.
	Concurrency int

	// Logger receives diagnostics. Defaults to slog.Default().
	Logger *slog.Logger

	// Counters are updated per page and per render.
	Counters metric.NavCounters
}

// Report summarizes a build.
type Report struct {
	Pages     int `json:"pages"`
	Fallbacks int `json:"fallbacks"`
	Copied    int `json:"copied"`
}

type job struct {
	rel    string // slash separated path relative to Src
	render bool
}

// Build processes every file of Src and returns a summary.
// It stops at the first error or when ctx is canceled.
func (b *Builder) Build(ctx context.Context) (Report, error) {
	var report Report

	info, err := os.Stat(b.Src)
	if err != nil {
		return report, fmt.Errorf("failed to stat source %s: %w", b.Src, err)
	}
	if !info.IsDir() {
		return report, fmt.Errorf("%s: %w", b.Src, ErrSourceNotDir)
	}

	jobs, err := b.collect()
	if err != nil {
		return report, err
	}

	log := b.logger()
	counters := b.counters()

	var pages, fallbacks, copied atomic.Int64

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(max(b.Concurrency, 1))

	for _, j := range jobs {
		if gCtx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			if !j.render {
				if err := copyFile(filepath.Join(b.Src, filepath.FromSlash(j.rel)), filepath.Join(b.Out, filepath.FromSlash(j.rel))); err != nil {
					counters.Pages.Increment(outcomeFailed)
					return err
				}
				copied.Add(1)
				counters.Pages.Increment(outcomeCopied)
				return nil
			}

			fallback, err := b.renderPage(j.rel, log, counters)
			if err != nil {
				counters.Pages.Increment(outcomeFailed)
				return err
			}

			pages.Add(1)
			if fallback {
				fallbacks.Add(1)
				counters.Pages.Increment(outcomeFallback)
			} else {
				counters.Pages.Increment(outcomeRendered)
			}
			return nil
		})
	}

	err = g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	report = Report{
		Pages:     int(pages.Load()),
		Fallbacks: int(fallbacks.Load()),
		Copied:    int(copied.Load()),
	}

	if err != nil {
		return report, fmt.Errorf("build failed: %w", err)
	}

	log.Info("site built",
		"src", b.Src,
		"out", b.Out,
		"pages", report.Pages,
		"fallbacks", report.Fallbacks,
		"copied", report.Copied)

	return report, nil
}

// Location returns the page location a file is evaluated with.
func (b *Builder) Location(rel string) string {
	base := strings.TrimSuffix(b.BasePath, "/")
	return base + "/" + strings.TrimPrefix(filepath.ToSlash(rel), "/")
}

// renderPage evaluates the menu of one page and writes the result.
// It reports whether the menu had to be prepended to the body.
func (b *Builder) renderPage(rel string, log *slog.Logger, counters metric.NavCounters) (bool, error) {
	src := filepath.Join(b.Src, filepath.FromSlash(rel))

	f, err := os.Open(src)
	if err != nil {
		return false, fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer f.Close()

	doc, err := document.Parse(f)
	if err != nil {
		return false, fmt.Errorf("%s: %w", rel, err)
	}

	fallback := !doc.Exists(navbar.PlaceholderSelector)
	location := b.Location(rel)

	syncer := navbar.New(
		navbar.WithLogger(log.With("file", rel)),
		navbar.WithCounters(counters),
	)
	if err := syncer.Render(doc, b.Site.Resolve(location)); err != nil {
		return false, fmt.Errorf("%s: %w", rel, err)
	}

	dst := filepath.Join(b.Out, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return false, fmt.Errorf("failed to create directory for %s: %w", dst, err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return false, fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if err := doc.Render(out); err != nil {
		out.Close()
		return false, fmt.Errorf("%s: %w", rel, err)
	}

	if err := out.Close(); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", dst, err)
	}

	log.Debug("page rendered", "file", rel, "location", location, "fallback", fallback)

	return fallback, nil
}

// collect walks Src and classifies every file as page or asset.
func (b *Builder) collect() ([]job, error) {
	outAbs, _ := filepath.Abs(b.Out)
	include := b.Include
	if len(include) == 0 {
		include = []string{"**/*.html"}
	}

	var jobs []job
	err := filepath.WalkDir(b.Src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(b.Src, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if abs, _ := filepath.Abs(p); abs == outAbs {
				return filepath.SkipDir
			}
			if rel != "." && (matchesAny(rel, b.Exclude) || matchesAny(rel+"/", b.Exclude)) {
				return filepath.SkipDir
			}
			return nil
		}

		if matchesAny(rel, b.Exclude) {
			return nil
		}

		jobs = append(jobs, job{
			rel:    rel,
			render: matchesAny(rel, include) && strings.EqualFold(path.Ext(rel), ".html"),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", b.Src, err)
	}

	return jobs, nil
}

func (b *Builder) logger() *slog.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return slog.Default()
}

func (b *Builder) counters() metric.NavCounters {
	if b.Counters.Renders == nil || b.Counters.Toggles == nil || b.Counters.Pages == nil {
		return metric.NoopNavCounters()
	}
	return b.Counters
}

// matchesAny reports whether rel matches one of the doublestar patterns.
func matchesAny(rel string, patterns []string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", dst, err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}

	return out.Close()
}
