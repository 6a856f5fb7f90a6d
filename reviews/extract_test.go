package reviews

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const twoReviewPage = `<html><body>
<article class="user-review-item">
  <span class="ipc-rating-star ipc-rating-star--base"><svg></svg><span class="ipc-rating-star--rating">7</span><span class="ipc-rating-star--maxRating">/10</span></span>
  <h3 class="ipc-title__text">Great finale </h3>
  <a data-testid="author-link" href="/user/ur1/">moviefan</a>
  <div class="ipc-html-content-inner-div">  Loved every minute.  </div>
  <a data-testid="permalink-link" href="/review/rw1/">Permalink</a>
</article>
<article class="user-review-item">
  <h3 class="ipc-title__text">Meh</h3>
  <div class="ipc-html-content-inner-div">Not for me.</div>
  <a data-testid="permalink-link" href="https://example.com/review/rw2/">Permalink</a>
</article>
</body></html>`

func TestExtractTwoReviews(t *testing.T) {
	got := NewExtractor().Extract(twoReviewPage)
	require.Len(t, got, 2)

	first := got[0]
	require.NotNil(t, first.Rating)
	require.Equal(t, 7, *first.Rating)
	require.Equal(t, "moviefan", first.Reviewer)
	require.Equal(t, "Great finale", first.Title)
	require.Equal(t, "Loved every minute.", first.Body)
	require.Equal(t, "https://www.imdb.com/review/rw1/", first.Permalink)

	second := got[1]
	require.Nil(t, second.Rating)
	require.Equal(t, DefaultReviewer, second.Reviewer)
	require.Equal(t, "Meh", second.Title)
	require.Equal(t, "https://example.com/review/rw2/", second.Permalink)
}

func TestExtractNoContainers(t *testing.T) {
	cases := []string{
		"",
		"<html><body><p>nothing here</p></body></html>",
		"<article class=\"other\">x</article>",
		"not markup at all <<<",
	}
	for _, markup := range cases {
		got := NewExtractor().Extract(markup)
		require.NotNil(t, got)
		require.Empty(t, got, "markup %q", markup)
	}
}

func TestExtractDefaults(t *testing.T) {
	got := NewExtractor().Extract(`<article class="user-review-item"></article>`)
	require.Len(t, got, 1)
	require.Equal(t, Review{
		Reviewer: DefaultReviewer,
		Title:    DefaultTitle,
	}, got[0])
}

func TestExtractRating(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   *int
	}{
		{
			name:   "missing star node",
			markup: `<article class="user-review-item"><h3 class="ipc-title__text">t</h3></article>`,
		},
		{
			name:   "star without inner rating",
			markup: `<article class="user-review-item"><span class="ipc-rating-star"></span></article>`,
		},
		{
			name:   "non numeric",
			markup: `<article class="user-review-item"><span class="ipc-rating-star"><span class="ipc-rating-star--rating">seven</span></span></article>`,
		},
		{
			name:   "out of range",
			markup: `<article class="user-review-item"><span class="ipc-rating-star"><span class="ipc-rating-star--rating">11</span></span></article>`,
		},
		{
			name:   "padded",
			markup: `<article class="user-review-item"><span class="ipc-rating-star"><span class="ipc-rating-star--rating"> 10 </span></span></article>`,
			want:   intPtr(10),
		},
		{
			name:   "zero",
			markup: `<article class="user-review-item"><span class="ipc-rating-star"><span class="ipc-rating-star--rating">0</span></span></article>`,
			want:   intPtr(0),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewExtractor().Extract(tt.markup)
			require.Len(t, got, 1)
			require.Equal(t, tt.want, got[0].Rating)
		})
	}
}

func TestExtractTitleStripsIconMarkup(t *testing.T) {
	markup := `<article class="user-review-item"><h3 class="ipc-title__text">Solid season &lt;svg class="chevron"&gt;&lt;/svg&gt;</h3></article>`
	got := NewExtractor().Extract(markup)
	require.Len(t, got, 1)
	require.Equal(t, "Solid season", got[0].Title)
}

func TestExtractCustomBaseURL(t *testing.T) {
	markup := `<article class="user-review-item"><a data-testid="permalink-link" href="/r/1">p</a></article>`
	got := NewExtractor(WithBaseURL("https://reviews.example.org/")).Extract(markup)
	require.Len(t, got, 1)
	require.Equal(t, "https://reviews.example.org/r/1", got[0].Permalink)
}

func TestExtractPermalinkWithoutHref(t *testing.T) {
	markup := `<article class="user-review-item"><a data-testid="permalink-link">p</a></article>`
	got := NewExtractor().Extract(markup)
	require.Len(t, got, 1)
	require.Empty(t, got[0].Permalink)
}

func intPtr(v int) *int {
	return &v
}
