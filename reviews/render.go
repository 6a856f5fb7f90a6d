package reviews

import (
	"fmt"
	"io"
	"strings"
)

const (
	documentTitle = "# User Reviews"
	filledStar    = "★"
	emptyStar     = "☆"
	separator     = "---"
)

// Render formats reviews as a markdown document. The output is a pure
// function of the input slice.
func Render(reviews []Review) string {
	var sb strings.Builder
	// strings.Builder never returns a write error
	_ = RenderTo(&sb, reviews)
	return sb.String()
}

// RenderTo writes the markdown rendering of reviews to w.
func RenderTo(w io.Writer, reviews []Review) error {
	if _, err := fmt.Fprintf(w, "%s\n\n", documentTitle); err != nil {
		return err
	}
	for i, r := range reviews {
		if err := writeBlock(w, i+1, r); err != nil {
			return err
		}
		if i < len(reviews)-1 {
			if _, err := fmt.Fprintf(w, "%s\n\n", separator); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeBlock(w io.Writer, n int, r Review) error {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## %d. %s\n\n", n, r.Title))
	sb.WriteString(fmt.Sprintf("**Reviewer:** %s  \n", r.Reviewer))
	sb.WriteString(ratingLine(r.Rating))
	sb.WriteString(r.Body)
	sb.WriteString("\n\n")
	if r.Permalink != "" {
		sb.WriteString(fmt.Sprintf("[Read full review on %s](%s)\n\n", DefaultSiteName, r.Permalink))
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func ratingLine(rating *int) string {
	if rating == nil {
		return "**Rating:** Not provided\n\n"
	}
	return fmt.Sprintf("**Rating:** %d/%d %s\n\n", *rating, MaxRating, StarBar(*rating))
}

// StarBar draws rating filled marks followed by empty marks up to MaxRating.
// Values outside the scale are clamped.
func StarBar(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > MaxRating {
		rating = MaxRating
	}
	return strings.Repeat(filledStar, rating) + strings.Repeat(emptyStar, MaxRating-rating)
}
