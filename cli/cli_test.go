package cli

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scionsamurai/tonights-review/config"
)

const reviewPage = `<html><body>
<article class="user-review-item">
  <span class="ipc-rating-star"><span class="ipc-rating-star--rating">7</span></span>
  <h3 class="ipc-title__text">Great finale</h3>
  <a data-testid="author-link">moviefan</a>
  <div class="ipc-html-content-inner-div">Loved every minute.</div>
  <a data-testid="permalink-link" href="/review/rw1/">Permalink</a>
</article>
<article class="user-review-item">
  <h3 class="ipc-title__text">Meh</h3>
  <div class="ipc-html-content-inner-div">Not for me.</div>
</article>
</body></html>`

type harness struct {
	dir   string
	input string
	out   bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	for _, k := range []string{"LLM_PROVIDER", "LLM_MODEL", "LLM_BASE_URL", "ANTHROPIC_API_KEY"} {
		t.Setenv(k, "")
	}
	h := &harness{dir: t.TempDir()}
	h.input = filepath.Join(h.dir, "imdb_reviews.html")
	require.NoError(t, os.WriteFile(h.input, []byte(reviewPage), 0o644))
	return h
}

func (h *harness) run(stdin string, args ...string) error {
	root := NewRootCmd(strings.NewReader(stdin), &h.out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append([]string{"--config", filepath.Join(h.dir, "absent.json")}, args...))
	return root.Execute()
}

func TestGenerateDryRunWritesPost(t *testing.T) {
	h := newHarness(t)
	posts := filepath.Join(h.dir, "posts")

	err := h.run("My chosen topic\n",
		"generate", "--dry-run", "--input", h.input, "--posts-dir", posts, "--summary", "Season one recap", "--html")
	require.NoError(t, err)

	path := filepath.Join(posts, "my-chosen-topic.md")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "---\n"))
	require.Contains(t, string(data), "image: /images/my-chosen-topic-banner-png.png")
	require.Contains(t, string(data), "## Mock draft")

	_, err = os.Stat(filepath.Join(posts, "my-chosen-topic.html"))
	require.NoError(t, err)

	printed := h.out.String()
	require.Contains(t, printed, "Placeholder question 10?")
	require.Contains(t, printed, "Blog post saved to "+path)
	require.NotContains(t, printed, "Would you like to add any context summaries")
}

func TestGenerateDryRunPickWritesNumbered(t *testing.T) {
	h := newHarness(t)
	posts := filepath.Join(h.dir, "posts")

	// blank line ends the summaries; the first paste is ambiguous, the second unique
	err := h.run("\nPlaceholder question\nquestion 2?\n",
		"generate", "--dry-run", "--pick", "--count", "3", "--input", h.input, "--posts-dir", posts)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(posts, "blog_post_2.md"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "## Mock draft"))
	require.Contains(t, h.out.String(), "appears in 3 suggestions")
}

func TestGenerateMissingInput(t *testing.T) {
	h := newHarness(t)
	err := h.run("", "generate", "--dry-run", "--input", filepath.Join(h.dir, "nope.html"))
	require.ErrorIs(t, err, ErrMissingInput)
}

func TestGenerateMissingCredentialFailsBeforePrompting(t *testing.T) {
	h := newHarness(t)
	err := h.run("topic\n", "generate", "--input", h.input, "--posts-dir", filepath.Join(h.dir, "posts"))

	var cfgErr *config.ConfigError
	require.True(t, errors.As(err, &cfgErr), "expected ConfigError, got %v", err)
	require.Equal(t, "ANTHROPIC_API_KEY", cfgErr.Field)
	require.Empty(t, h.out.String())
}

func TestSuggestDryRun(t *testing.T) {
	h := newHarness(t)
	out := filepath.Join(h.dir, "blog_suggestions.md")

	err := h.run("", "suggest", "--dry-run", "--input", h.input, "--output", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "1. Placeholder question 1?"))
	require.Contains(t, string(data), "5. Placeholder question 5?")
	require.Contains(t, h.out.String(), "Saved 5 suggestions to "+out)
}

func TestExtractWritesMarkdownAndTable(t *testing.T) {
	h := newHarness(t)
	out := filepath.Join(h.dir, "extracted_reviews.md")

	require.NoError(t, h.run("", "extract", "--input", h.input, "--output", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "# User Reviews\n\n## 1. Great finale\n\n"))
	require.Contains(t, string(data), "[Read full review on IMDb](https://www.imdb.com/review/rw1/)")

	printed := h.out.String()
	require.Contains(t, printed, "moviefan")
	require.Contains(t, printed, "7/10")
	require.Contains(t, printed, "Extracted 2 reviews to "+out)
}

func TestExtractFromURL(t *testing.T) {
	h := newHarness(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(reviewPage))
	}))
	defer srv.Close()

	out := filepath.Join(h.dir, "remote.md")
	require.NoError(t, h.run("", "extract", "--url", srv.URL, "--output", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(data), "## 2. Meh")
}

func TestRefineDryRun(t *testing.T) {
	h := newHarness(t)
	doc := filepath.Join(h.dir, "post.md")
	require.NoError(t, os.WriteFile(doc, []byte("# H1\nbody1\n# H2\nbody2\n"), 0o644))

	require.NoError(t, h.run("", "refine", "--dry-run", "-f", doc))

	data, err := os.ReadFile(filepath.Join(h.dir, "post_suggestions.md"))
	require.NoError(t, err)
	require.Equal(t, "# H1\nbody1\n\n# H2\nbody2\n", string(data))
}

func TestRefineRequiresFile(t *testing.T) {
	h := newHarness(t)
	require.Error(t, h.run("", "refine", "--dry-run"))

	err := h.run("", "refine", "--dry-run", "-f", filepath.Join(h.dir, "missing.md"))
	require.ErrorIs(t, err, ErrMissingInput)
}
