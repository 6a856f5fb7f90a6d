package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/scionsamurai/tonights-review/reviews"
)

// reviewSource names where review markup comes from: a page URL wins over a
// local file.
type reviewSource struct {
	input string
	url   string
}

// checkInput fails early with ErrMissingInput so nothing else runs first.
func (s reviewSource) checkInput() error {
	if s.url != "" {
		return nil
	}
	if _, err := os.Stat(s.input); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrMissingInput, s.input)
		}
		return err
	}
	return nil
}

func (a *app) loadReviews(ctx context.Context, src reviewSource) ([]reviews.Review, error) {
	var markup string
	if src.url != "" {
		fmt.Fprintf(a.out, "Fetching reviews from %s...\n", src.url)
		body, err := reviews.NewFetcher(nil).Fetch(ctx, src.url)
		if err != nil {
			return nil, err
		}
		markup = body
	} else {
		if err := src.checkInput(); err != nil {
			return nil, err
		}
		fmt.Fprintf(a.out, "Extracting reviews from %s...\n", src.input)
		data, err := os.ReadFile(src.input)
		if err != nil {
			return nil, err
		}
		markup = string(data)
	}

	var opts []reviews.Option
	if a.cfg.SiteBaseURL != "" {
		opts = append(opts, reviews.WithBaseURL(a.cfg.SiteBaseURL))
	}
	out := reviews.NewExtractor(opts...).Extract(markup)
	a.infof("extracted %d reviews", len(out))
	return out, nil
}

// renderScratch renders reviews into a temp file and reads them back. The
// returned cleanup removes the file.
func renderScratch(list []reviews.Review) (string, func(), error) {
	f, err := os.CreateTemp("", "reviews-*.md")
	if err != nil {
		return "", func() {}, err
	}
	cleanup := func() { _ = os.Remove(f.Name()) }

	if err := reviews.RenderTo(f, list); err != nil {
		f.Close()
		cleanup()
		return "", func() {}, fmt.Errorf("render reviews: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", func() {}, err
	}
	data, err := os.ReadFile(f.Name())
	if err != nil {
		cleanup()
		return "", func() {}, err
	}
	return string(data), cleanup, nil
}
