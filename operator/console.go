package operator

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/scionsamurai/tonights-review/generator"
)

var (
	headingStyle    = lipgloss.NewStyle().Bold(true)
	suggestionStyle = lipgloss.NewStyle().PaddingLeft(2)
	hintStyle       = lipgloss.NewStyle().Faint(true)
	warnStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// ErrNoInput is returned when the input stream closes before an answer is given.
var ErrNoInput = errors.New("operator input closed")

// Console talks to the operator over line-oriented streams.
type Console struct {
	in  *bufio.Reader
	out io.Writer
	// CopyPaste requires the answer to identify exactly one suggestion.
	CopyPaste bool
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Summaries collects optional context lines until a blank line or EOF.
func (c *Console) Summaries(ctx context.Context) ([]string, error) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, headingStyle.Render("Would you like to add any context summaries (e.g. previous season recaps)?"))
	fmt.Fprintln(c.out, hintStyle.Render("Enter summaries one at a time. Press Enter on an empty line when done."))

	var summaries []string
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fmt.Fprint(c.out, "Enter a summary (or press Enter to finish): ")
		line, err := c.readLine()
		if errors.Is(err, ErrNoInput) {
			return summaries, nil
		}
		if err != nil {
			return nil, err
		}
		if line == "" {
			return summaries, nil
		}
		summaries = append(summaries, line)
	}
}

// Select implements generator.Selector.
func (c *Console) Select(ctx context.Context, suggestions []generator.Suggestion) (generator.Selection, error) {
	c.printSuggestions(suggestions)
	if c.CopyPaste {
		return c.selectCopyPaste(ctx, suggestions)
	}
	return c.selectFreeForm(ctx)
}

func (c *Console) printSuggestions(suggestions []generator.Suggestion) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, headingStyle.Render("Blog post suggestions (feel free to use these or write your own):"))
	for _, s := range suggestions {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, suggestionStyle.Render(s.Text))
	}
	fmt.Fprintln(c.out)
}

func (c *Console) selectFreeForm(ctx context.Context) (generator.Selection, error) {
	for {
		if err := ctx.Err(); err != nil {
			return generator.Selection{}, err
		}
		fmt.Fprintln(c.out, "Enter your chosen blog topic (you can copy/paste a suggestion or write your own):")
		line, err := c.readLine()
		if err != nil {
			return generator.Selection{}, err
		}
		if line != "" {
			return generator.Selection{Topic: line}, nil
		}
	}
}

func (c *Console) selectCopyPaste(ctx context.Context, suggestions []generator.Suggestion) (generator.Selection, error) {
	if len(suggestions) == 0 {
		return generator.Selection{}, errors.New("no suggestions to choose from")
	}
	m := NewMatcher(suggestions)
	for m.State() != Matched {
		if err := ctx.Err(); err != nil {
			return generator.Selection{}, err
		}
		fmt.Fprintln(c.out, "Copy and paste part of the suggestion you want to use:")
		line, err := c.readLine()
		if err != nil {
			return generator.Selection{}, err
		}
		if m.Feed(line) == NoMatch {
			c.explainMismatch(m, line)
		}
	}
	sel, _ := m.Selection()
	fmt.Fprintln(c.out, hintStyle.Render(fmt.Sprintf("Selected suggestion %d.", sel.Index)))
	return sel, nil
}

func (c *Console) explainMismatch(m *Matcher, line string) {
	if m.Candidates() > 1 {
		fmt.Fprintln(c.out, warnStyle.Render(fmt.Sprintf("That text appears in %d suggestions; paste a longer part.", m.Candidates())))
		return
	}
	fmt.Fprintln(c.out, warnStyle.Render("That text does not match any suggestion."))
	if s, ok := m.Closest(line); ok {
		fmt.Fprintln(c.out, hintStyle.Render("Closest: "+titleLine(s.Text)))
	}
}

func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", ErrNoInput
			}
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
