package generator

import (
	"context"
	"fmt"
	"strings"
)

// MockLLM 一个简单的占位实现，便于本地调试（--dry-run），不调用外部模型。
type MockLLM struct {
	// Suggestions is the number of numbered topics returned for suggest prompts.
	Suggestions int
}

func (m MockLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	switch prompt.Kind {
	case KindSuggest:
		n := m.Suggestions
		if n <= 0 {
			n = DefaultSuggestOnlyCount
		}
		var sb strings.Builder
		for i := 1; i <= n; i++ {
			sb.WriteString(fmt.Sprintf("%d. Placeholder question %d?\n", i, i))
			sb.WriteString("   Placeholder rationale drawn from the reviews.\n\n")
		}
		return sb.String(), nil
	case KindRefine:
		// echo the section body back unchanged
		if i := strings.Index(prompt.User, SectionBodyMarker); i != -1 {
			return strings.TrimPrefix(prompt.User[i+len(SectionBodyMarker):], "\n\n"), nil
		}
		return prompt.User, nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Mock %s\n\n", prompt.Kind))
	sb.WriteString("Generated without contacting a model. Prompt excerpt:\n\n")
	sb.WriteString("```\n")
	sb.WriteString(firstLines(prompt.User, 3))
	sb.WriteString("\n```\n")
	return sb.String(), nil
}

func firstLines(s string, n int) string {
	lines := strings.SplitN(s, "\n", n+1)
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}
