package refiner

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/scionsamurai/tonights-review/generator"
)

//go:embed rubric.md
var rubric string

const (
	headingMarker = "#"
	currentMarker = "→ "
	otherMarker   = "  "

	// PreviousWindow is how many rewritten sections are carried into the next prompt.
	PreviousWindow = 2
)

// Section is a heading line and the lines that follow it up to the next heading.
type Section struct {
	Header string
	Body   string
}

// Split breaks a markdown document into sections on lines starting with '#'.
// Lines before the first heading are ignored. The final section is kept only
// when at least one line follows its heading, so a document that ends right
// after a heading loses that heading.
func Split(text string) []Section {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")

	var sections []Section
	var header string
	var body []string
	open := false

	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, headingMarker) {
			if open {
				sections = append(sections, Section{Header: header, Body: strings.Join(body, "\n")})
			}
			header = line
			body = nil
			open = true
			continue
		}
		if open {
			body = append(body, line)
		}
	}
	if open && len(body) > 0 {
		sections = append(sections, Section{Header: header, Body: strings.Join(body, "\n")})
	}
	return sections
}

// Assemble joins sections back into a document: header, body, blank line.
func Assemble(sections []Section) string {
	parts := make([]string, 0, len(sections)*3)
	for _, s := range sections {
		parts = append(parts, s.Header, s.Body, "")
	}
	return strings.Join(parts, "\n")
}

// SuggestionsPath returns "<stem>_suggestions<ext>" next to path.
func SuggestionsPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_suggestions" + ext
}

// Refiner rewrites sections one at a time, feeding each prompt the document
// outline and the most recent rewritten sections.
type Refiner struct {
	llm      generator.LLMClient
	settings generator.GenerationSettings
	logger   *log.Logger
}

func New(llm generator.LLMClient, settings generator.GenerationSettings, logger *log.Logger) (*Refiner, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Refiner{llm: llm, settings: settings, logger: logger}, nil
}

// Refine returns sections with rewritten bodies, in order. Calls are strictly
// sequential since each prompt includes the previous rewrites.
func (r *Refiner) Refine(ctx context.Context, sections []Section) ([]Section, error) {
	headers := make([]string, len(sections))
	for i, s := range sections {
		headers[i] = s.Header
	}

	out := make([]Section, 0, len(sections))
	for i, s := range sections {
		r.logger.Printf("[refine] processing section %d/%d: %s", i+1, len(sections), s.Header)
		rewritten, err := r.llm.Complete(ctx, generator.Prompt{
			Kind:     generator.KindRefine,
			User:     BuildPrompt(headers, i, lastN(out, PreviousWindow), s.Body),
			Settings: r.settings,
		})
		if err != nil {
			return nil, fmt.Errorf("refine section %q: %w", s.Header, err)
		}
		out = append(out, Section{Header: s.Header, Body: rewritten})
	}
	return out, nil
}

// RefineFile rewrites the document at path and writes the result to
// SuggestionsPath(path), which it returns.
func (r *Refiner) RefineFile(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	rewritten, err := r.Refine(ctx, Split(string(data)))
	if err != nil {
		return "", err
	}
	outPath := SuggestionsPath(path)
	if err := os.WriteFile(outPath, []byte(Assemble(rewritten)), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", outPath, err)
	}
	return outPath, nil
}

// BuildPrompt renders the rewrite instruction for section current.
func BuildPrompt(headers []string, current int, previous []Section, body string) string {
	var sb strings.Builder
	sb.WriteString("Given a technical document with the following structure:\n\n")
	sb.WriteString("Document Structure:\n")
	for i, h := range headers {
		if i == current {
			sb.WriteString(currentMarker)
		} else {
			sb.WriteString(otherMarker)
		}
		sb.WriteString(h)
		if i < len(headers)-1 {
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\n\nYou are currently processing the section marked with →.\n")
	if len(previous) > 0 {
		prev := make([]string, len(previous))
		for i, p := range previous {
			prev[i] = p.Header + "\n" + p.Body
		}
		sb.WriteString("\nPrevious Sections:\n")
		sb.WriteString(strings.Join(prev, "\n\n"))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(strings.TrimSpace(rubric))
	sb.WriteString("\n\n")
	sb.WriteString(generator.SectionBodyMarker)
	sb.WriteString("\n\n")
	sb.WriteString(body)
	return sb.String()
}

func lastN(sections []Section, n int) []Section {
	if len(sections) <= n {
		return sections
	}
	return sections[len(sections)-n:]
}
