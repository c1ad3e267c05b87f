// Package parallel splits row-major grids into horizontal bands and
// processes the bands concurrently.
//
// Every stage that uses it is elementwise (or row-local), so results do not
// depend on the number of workers or on the order bands complete in.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// MinBandRows is the smallest band handed to a worker. Smaller bands cost
// more in scheduling than they save.
const MinBandRows = 16

// Band is a half-open range of rows [Lo, Hi).
type Band struct {
	Lo, Hi int
}

// Workers resolves a requested worker count. Zero or negative means GOMAXPROCS.
func Workers(n int) int {
	if n <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}

// Split divides rows into at most parts bands of near-equal size.
// Bands are never shorter than MinBandRows unless rows itself is.
func Split(rows, parts int) []Band {
	if rows <= 0 {
		return nil
	}
	if parts < 1 {
		parts = 1
	}
	if maxParts := max(rows/MinBandRows, 1); parts > maxParts {
		parts = maxParts
	}

	bands := make([]Band, 0, parts)
	size := rows / parts
	rem := rows % parts
	lo := 0
	for i := range parts {
		hi := lo + size
		if i < rem {
			hi++
		}
		bands = append(bands, Band{Lo: lo, Hi: hi})
		lo = hi
	}
	return bands
}

// Bands runs fn over every band of rows using up to workers goroutines.
// The first error cancels the context passed to the remaining bands and is
// returned once all started bands have finished.
func Bands(ctx context.Context, rows, workers int, fn func(ctx context.Context, b Band) error) error {
	workers = Workers(workers)
	bands := Split(rows, workers)
	if len(bands) == 0 {
		return ctx.Err()
	}

	// Single band: stay on the caller's goroutine.
	if len(bands) == 1 {
		if err := ctx.Err(); err != nil {
			return err
		}
		return fn(ctx, bands[0])
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, b := range bands {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, b)
		})
	}
	return g.Wait()
}
