package reviews

import (
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	containerSelector  = "article.user-review-item"
	ratingSelector     = "span.ipc-rating-star"
	ratingTextSelector = "span.ipc-rating-star--rating"
	authorSelector     = `a[data-testid="author-link"]`
	contentSelector    = "div.ipc-html-content-inner-div"
	permalinkSelector  = `a[data-testid="permalink-link"]`
	titleSelector      = "h3.ipc-title__text"
)

// titles sometimes carry the raw markup of the expand chevron
var trailingIcon = regexp.MustCompile(`\s*<svg.*$`)

// Extractor turns a review listing page into Review records.
type Extractor struct {
	baseURL string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithBaseURL sets the origin prefixed to site-relative permalinks.
func WithBaseURL(baseURL string) Option {
	return func(e *Extractor) {
		e.baseURL = strings.TrimRight(baseURL, "/")
	}
}

func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses markup and returns one Review per container, in document order.
// Missing or malformed sub-elements fall back to defaults; it never fails.
func (e *Extractor) Extract(markup string) []Review {
	return e.ExtractReader(strings.NewReader(markup))
}

// ExtractReader is Extract for a stream.
func (e *Extractor) ExtractReader(r io.Reader) []Review {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return []Review{}
	}

	result := []Review{}
	doc.Find(containerSelector).Each(func(_ int, item *goquery.Selection) {
		result = append(result, e.parseItem(item))
	})
	return result
}

func (e *Extractor) parseItem(item *goquery.Selection) Review {
	return Review{
		Reviewer:  parseReviewer(item),
		Rating:    parseRating(item),
		Title:     parseTitle(item),
		Body:      parseBody(item),
		Permalink: e.parsePermalink(item),
	}
}

func parseRating(item *goquery.Selection) *int {
	star := item.Find(ratingSelector).First()
	if star.Length() == 0 {
		return nil
	}
	inner := star.Find(ratingTextSelector).First()
	if inner.Length() == 0 {
		return nil
	}
	value, err := strconv.Atoi(strings.TrimSpace(inner.Text()))
	if err != nil || value < 0 || value > MaxRating {
		return nil
	}
	return &value
}

func parseReviewer(item *goquery.Selection) string {
	author := item.Find(authorSelector).First()
	if author.Length() == 0 {
		return DefaultReviewer
	}
	name := strings.TrimSpace(author.Text())
	if name == "" {
		return DefaultReviewer
	}
	return name
}

func parseBody(item *goquery.Selection) string {
	content := item.Find(contentSelector).First()
	if content.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(content.Text())
}

func (e *Extractor) parsePermalink(item *goquery.Selection) string {
	link := item.Find(permalinkSelector).First()
	href, ok := link.Attr("href")
	if !ok {
		return ""
	}
	if strings.HasPrefix(href, "/") {
		return e.baseURL + href
	}
	return href
}

func parseTitle(item *goquery.Selection) string {
	heading := item.Find(titleSelector).First()
	if heading.Length() == 0 {
		return DefaultTitle
	}
	title := strings.TrimSpace(heading.Text())
	return trailingIcon.ReplaceAllString(title, "")
}
