package publisher

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

const (
	// DateLayout is the HTTP-date style the blog front end parses.
	DateLayout = "Mon, 02 Jan 2006 15:04:05 GMT"

	SuggestionsFile = "blog_suggestions.md"

	descriptionPlaceholder = "TODO - Add description"
	categoryPlaceholder    = "TODO"
	bannerAltPlaceholder   = "TODO - Add alt text"

	// fallbackName is used for the file name when a topic slugs to nothing.
	fallbackName = "untitled"
)

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases title and collapses every run of other characters into a
// single hyphen, with no hyphen at either end.
func Slugify(title string) string {
	return strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(title), "-"), "-")
}

// Date renders as a single-quoted string so YAML readers keep it verbatim.
type Date time.Time

func (d Date) MarshalYAML() (interface{}, error) {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!str",
		Style: yaml.SingleQuotedStyle,
		Value: time.Time(d).UTC().Format(DateLayout),
	}, nil
}

func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	t, err := time.Parse(DateLayout, node.Value)
	if err != nil {
		return err
	}
	*d = Date(t)
	return nil
}

// Frontmatter is the metadata block at the top of a generated post.
type Frontmatter struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Date        Date     `yaml:"date"`
	Categories  []string `yaml:"categories"`
	AuthorID    int      `yaml:"author_id"`
	Image       string   `yaml:"image"`
	WebpImage   string   `yaml:"webp_image"`
	ImageThumb  string   `yaml:"image_thumb"`
	BannerAlt   string   `yaml:"banner_alt"`
	ShowBanner  bool     `yaml:"show_banner"`
	Comments    bool     `yaml:"comments"`
	Published   bool     `yaml:"published"`
}

// NewFrontmatter fills the template for title. Image paths follow the slug.
func NewFrontmatter(title string, authorID int, now time.Time) Frontmatter {
	slug := Slugify(title)
	return Frontmatter{
		Title:       title,
		Description: descriptionPlaceholder,
		Date:        Date(now),
		Categories:  []string{categoryPlaceholder},
		AuthorID:    authorID,
		Image:       "/images/" + slug + "-banner-png.png",
		WebpImage:   "/images/" + slug + "-banner.webp",
		ImageThumb:  "/images/" + slug + "-banner-png_thumb.png",
		BannerAlt:   bannerAltPlaceholder,
		ShowBanner:  true,
		Comments:    true,
		Published:   false,
	}
}

// Render returns the block between "---" fences followed by a blank line.
func (f Frontmatter) Render() (string, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return "", fmt.Errorf("encode frontmatter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	buf.WriteString("---\n\n")
	return buf.String(), nil
}

// Publisher writes generated artifacts under a posts directory.
type Publisher struct {
	dir      string
	authorID int
	verbose  bool
	logger   *log.Logger
}

func New(dir string, authorID int, verbose bool, logger *log.Logger) (*Publisher, error) {
	if dir == "" {
		return nil, errors.New("posts directory is required")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Publisher{dir: dir, authorID: authorID, verbose: verbose, logger: logger}, nil
}

func (p *Publisher) infof(format string, args ...interface{}) {
	if !p.verbose {
		return
	}
	p.logger.Printf("[INFO] "+format, args...)
}

// WritePost writes frontmatter plus body to <dir>/<slug>.md and returns the path.
func (p *Publisher) WritePost(topic, body string, now time.Time) (string, error) {
	fm, err := NewFrontmatter(topic, p.authorID, now).Render()
	if err != nil {
		return "", err
	}
	name := Slugify(topic)
	if name == "" {
		name = fallbackName
	}
	path := filepath.Join(p.dir, name+".md")
	if err := p.write(path, fm+body); err != nil {
		return "", err
	}
	p.infof("Wrote post %s (%d bytes)", path, len(fm)+len(body))
	return path, nil
}

// WriteNumbered writes body as-is to <dir>/blog_post_<index>.md.
func (p *Publisher) WriteNumbered(index int, body string) (string, error) {
	path := filepath.Join(p.dir, fmt.Sprintf("blog_post_%d.md", index))
	if err := p.write(path, body); err != nil {
		return "", err
	}
	p.infof("Wrote numbered post %s", path)
	return path, nil
}

// WriteHTMLPreview renders markdown (frontmatter stripped) next to mdPath as .html.
func (p *Publisher) WriteHTMLPreview(mdPath, markdown string) (string, error) {
	html, err := mdToHTML(StripFrontmatter(markdown))
	if err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	path := strings.TrimSuffix(mdPath, filepath.Ext(mdPath)) + ".html"
	if err := p.write(path, html); err != nil {
		return "", err
	}
	p.infof("Converted Markdown to HTML: %s", path)
	return path, nil
}

func (p *Publisher) write(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteSuggestions writes the raw suggestion text to path.
func WriteSuggestions(path, raw string) error {
	if path == "" {
		path = SuggestionsFile
	}
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// StripFrontmatter drops a leading "---" fenced block, if any.
func StripFrontmatter(md string) string {
	if !strings.HasPrefix(md, "---\n") {
		return md
	}
	rest := md[len("---\n"):]
	end := strings.Index(rest, "\n---\n")
	if end == -1 {
		return md
	}
	return strings.TrimLeft(rest[end+len("\n---\n"):], "\n")
}

func mdToHTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
