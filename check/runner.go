// Copyright © 2025 The pyvet authors

package check

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/tjkuson/pyvet/semantic"
	"github.com/tjkuson/pyvet/syntax"
)

const tracerName = "github.com/tjkuson/pyvet/check"

// Runner checks a batch of files. Files are independent, so they are
// analyzed in parallel; within each file the immediate phase still
// completes before the deferred phase begins.
type Runner struct {
	Checker *Checker

	// Jobs caps the number of files analyzed concurrently.
	// Zero or negative means GOMAXPROCS.
	Jobs int
}

// Files decodes and checks each path, returning all diagnostics grouped by
// file in argument order. The per-file diagnostic order is the checker's
// insertion order.
func (r *Runner) Files(ctx context.Context, paths []string) ([]Diagnostic, error) {
	jobs := r.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([][]Diagnostic, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			diags, err := r.file(ctx, path)
			if err != nil {
				return err
			}
			results[i] = diags
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Diagnostic
	for _, diags := range results {
		all = append(all, diags...)
	}
	return all, nil
}

// File decodes and checks a single path.
func (r *Runner) File(ctx context.Context, path string) ([]Diagnostic, error) {
	return r.file(ctx, path)
}

func (r *Runner) file(ctx context.Context, path string) ([]Diagnostic, error) {
	tracer := otel.GetTracerProvider().Tracer(tracerName)
	_, span := tracer.Start(ctx, "check.file",
		trace.WithAttributes(attribute.String("pyvet.file", path)))
	defer span.End()

	src, err := os.ReadFile(path) //nolint:gosec // CLI tool reads user-specified files
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	diags, err := r.Source(src, path)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("pyvet.diagnostics", len(diags)))
	return diags, nil
}

// Source checks an in-memory syntax tree dump.
func (r *Runner) Source(src []byte, path string) ([]Diagnostic, error) {
	file, err := syntax.DecodeBytes(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if file.Name == "" {
		file.Name = path
	}
	return r.Checker.File(file, semantic.Resolve(file))
}
