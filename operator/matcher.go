package operator

import (
	"strings"

	"github.com/antzucaro/matchr"

	"github.com/scionsamurai/tonights-review/generator"
)

// State is the position of a Matcher in the copy/paste selection loop.
type State int

const (
	AwaitingInput State = iota
	Matched
	NoMatch
)

func (s State) String() string {
	switch s {
	case AwaitingInput:
		return "awaiting-input"
	case Matched:
		return "matched"
	case NoMatch:
		return "no-match"
	}
	return "unknown"
}

// Matcher resolves pasted operator input to exactly one known suggestion.
// Matched is terminal; NoMatch accepts further input.
type Matcher struct {
	suggestions []generator.Suggestion
	state       State
	match       generator.Suggestion
	candidates  int
}

func NewMatcher(suggestions []generator.Suggestion) *Matcher {
	return &Matcher{suggestions: suggestions, state: AwaitingInput}
}

func (m *Matcher) State() State {
	return m.state
}

// Candidates is how many suggestions contained the last input.
func (m *Matcher) Candidates() int {
	return m.candidates
}

// Feed consumes one line of operator input and returns the new state.
func (m *Matcher) Feed(input string) State {
	if m.state == Matched {
		return m.state
	}
	input = strings.TrimSpace(input)
	m.candidates = 0
	if input == "" {
		m.state = NoMatch
		return m.state
	}

	var found generator.Suggestion
	for _, s := range m.suggestions {
		if strings.Contains(s.Text, input) {
			m.candidates++
			found = s
		}
	}
	if m.candidates != 1 {
		m.state = NoMatch
		return m.state
	}
	m.match = found
	m.state = Matched
	return m.state
}

// Selection returns the resolved suggestion once Matched.
func (m *Matcher) Selection() (generator.Selection, bool) {
	if m.state != Matched {
		return generator.Selection{}, false
	}
	return generator.Selection{Index: m.match.Index, Topic: m.match.Text}, true
}

// Closest returns the suggestion whose title line is most similar to input.
func (m *Matcher) Closest(input string) (generator.Suggestion, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return generator.Suggestion{}, false
	}
	var best generator.Suggestion
	var bestScore float64
	for _, s := range m.suggestions {
		score := matchr.JaroWinkler(strings.ToLower(input), strings.ToLower(strings.TrimLeft(titleLine(s.Text), "0123456789. ")), false)
		if score > bestScore {
			bestScore = score
			best = s
		}
	}
	return best, bestScore > 0
}

func titleLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i != -1 {
		return text[:i]
	}
	return text
}
