package generator

import (
	"fmt"
	"strings"
)

// Prompt kinds, used for logging and by MockLLM.
const (
	KindSuggest  = "suggest"
	KindExcerpts = "excerpts"
	KindOutline  = "outline"
	KindDraft    = "draft"
	KindRefine   = "refine"
)

// SectionBodyMarker precedes the original section body in refine prompts.
const SectionBodyMarker = "Below is the markdown section to enhance. Provide only the updated markdown content without any meta-commentary:"

// Prompt 表示发送给 LLM 的一次请求。
type Prompt struct {
	Kind     string
	User     string
	Settings GenerationSettings
}

// BuildSuggestPrompt asks for count enumerated topic suggestions grounded in the reviews.
func BuildSuggestPrompt(reviews string, summaries []string, count int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Based on these user reviews and previous context, suggest %d blog post topics that address questions or concerns expressed by the reviewers.\n\n", count))
	if len(summaries) > 0 {
		sb.WriteString("Previous Context:\n\n")
		for i, s := range summaries {
			sb.WriteString("- ")
			sb.WriteString(s)
			if i < len(summaries)-1 {
				sb.WriteString("\n\n")
			}
		}
		sb.WriteString("\n\n")
	}
	sb.WriteString("Reviews:\n")
	sb.WriteString(reviews)
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Generate %d blog post suggestions in this format:\n", count))
	sb.WriteString("1. [Question/Title]\n")
	sb.WriteString("   Brief explanation of why this topic matters to viewers\n\n")
	sb.WriteString("Each suggestion should be a question that viewers would want answered based on the reviews.")
	return sb.String()
}

// BuildExcerptsPrompt asks for 2-3 paragraphs of topic-relevant material from the reviews.
func BuildExcerptsPrompt(topic, reviews string) string {
	return fmt.Sprintf(`Given this selected blog topic:

%s

Please analyze these reviews and extract the most relevant details, opinions, and insights that relate to this topic. Compose them into 2-3 coherent paragraphs that we can use as source material for the blog post:

%s`, topic, reviews)
}

// BuildOutlinePrompt asks for a sectioned outline of the post.
func BuildOutlinePrompt(topic, excerpts string) string {
	return fmt.Sprintf(`Create a detailed outline for a blog post addressing this topic:

%s

Using these extracted insights from user reviews:

%s

Generate an outline with main sections and key points to cover in each section.`, topic, excerpts)
}

// BuildDraftPrompt asks for the finished post.
func BuildDraftPrompt(topic, outline, excerpts string) string {
	return fmt.Sprintf(`Write a comprehensive blog post following this outline:

%s

Use these extracted insights from user reviews as source material:

%s

The blog post should address this topic:
%s

Write in a clear, engaging style with proper formatting and structure.`, outline, excerpts, topic)
}
