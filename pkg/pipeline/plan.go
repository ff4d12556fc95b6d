package pipeline

import (
	"context"
	"encoding/json"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/waffle/pkg/cache"
	"github.com/matzehuels/waffle/pkg/chart"
	"github.com/matzehuels/waffle/pkg/errors"
	"github.com/matzehuels/waffle/pkg/waffle"
)

// Plan computes the block plan of every panel concurrently. The first failing
// panel cancels the rest; its error names the panel key.
func Plan(ctx context.Context, fig *chart.Figure) ([]*waffle.Result, error) {
	if fig == nil || len(fig.Panels) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "figure has no panels")
	}

	plans := make([]*waffle.Result, len(fig.Panels))
	g, ctx := errgroup.WithContext(ctx)
	for i, p := range fig.Panels {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := waffle.Plan(p.Config.Values.Numbers, p.Config.Grid())
			if err != nil {
				return panelError(fig, p.Key, err)
			}
			plans[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return plans, nil
}

// panelError prefixes err with the panel key on multi-panel figures.
func panelError(fig *chart.Figure, key string, err error) error {
	if len(fig.Panels) == 1 {
		return err
	}
	return errors.New(codeOf(err), "panel %s: %s", key, errors.UserMessage(err))
}

// codeOf returns the error code of err, treating uncoded errors as internal.
func codeOf(err error) errors.Code {
	if code := errors.GetCode(err); code != "" {
		return code
	}
	return errors.ErrCodeInternal
}

// FigureHash returns the content hash of fig, used as the layout cache key.
func FigureHash(fig *chart.Figure) (string, error) {
	data, err := json.Marshal(fig)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "serialize figure")
	}
	return cache.Hash(data), nil
}
