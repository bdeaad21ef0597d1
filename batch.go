package passgen

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// GenerateN produces n passwords with policy p, spread over at most
// GOMAXPROCS goroutines. The generator's Source must be safe for concurrent
// use; the default CryptoSource is.
func (g *Generator) GenerateN(ctx context.Context, p Policy, n int) ([]string, error) {
	if !p.Valid() {
		return nil, errors.Wrapf(ErrUnknownPolicy, "%q", p)
	}
	if n <= 0 {
		return []string{}, nil
	}

	out := make([]string, n)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))

	for i := range out {
		i := i
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			pw, err := g.Generate(p)
			if err != nil {
				return err
			}
			out[i] = pw
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, errors.Wrapf(err, "generating %d %s passwords", n, p)
	}
	return out, nil
}
