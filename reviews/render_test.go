package reviews

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderEmpty(t *testing.T) {
	require.Equal(t, "# User Reviews\n\n", Render(nil))
	require.Equal(t, "# User Reviews\n\n", Render([]Review{}))
}

func TestRenderBlocks(t *testing.T) {
	reviews := []Review{
		{Reviewer: "moviefan", Rating: intPtr(7), Title: "Great finale", Body: "Loved it.", Permalink: "https://www.imdb.com/review/rw1/"},
		{Reviewer: DefaultReviewer, Title: "Meh", Body: "Not for me."},
	}

	want := "# User Reviews\n\n" +
		"## 1. Great finale\n\n" +
		"**Reviewer:** moviefan  \n" +
		"**Rating:** 7/10 ★★★★★★★☆☆☆\n\n" +
		"Loved it.\n\n" +
		"[Read full review on IMDb](https://www.imdb.com/review/rw1/)\n\n" +
		"---\n\n" +
		"## 2. Meh\n\n" +
		"**Reviewer:** Anonymous  \n" +
		"**Rating:** Not provided\n\n" +
		"Not for me.\n\n"

	require.Equal(t, want, Render(reviews))
}

func TestRenderIsDeterministic(t *testing.T) {
	reviews := []Review{
		{Reviewer: "a", Rating: intPtr(3), Title: "one", Body: "x"},
		{Reviewer: "b", Title: "two", Body: "y"},
		{Reviewer: "c", Rating: intPtr(10), Title: "three", Body: "z"},
	}
	require.Equal(t, Render(reviews), Render(reviews))
	require.Equal(t, 2, strings.Count(Render(reviews), "---\n\n"))
}

func TestStarBar(t *testing.T) {
	require.Equal(t, "☆☆☆☆☆☆☆☆☆☆", StarBar(0))
	require.Equal(t, "★★★★★★★★★★", StarBar(10))
	require.Equal(t, "★★★★★★★★★★", StarBar(12))
	require.Equal(t, "☆☆☆☆☆☆☆☆☆☆", StarBar(-1))
}

func TestExtractThenRender(t *testing.T) {
	out := Render(NewExtractor().Extract(twoReviewPage))

	seven := strings.Index(out, "**Rating:** 7/10 ★★★★★★★☆☆☆")
	missing := strings.Index(out, "**Rating:** Not provided")
	require.NotEqual(t, -1, seven)
	require.NotEqual(t, -1, missing)
	require.Less(t, seven, missing)
	require.Equal(t, 1, strings.Count(out, "7/10"))
	require.Equal(t, 1, strings.Count(out, "Not provided"))
}
