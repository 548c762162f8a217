package essay

import "strings"

// PromptType classifies what kind of writing a prompt asks for, derived
// from its wording.
type PromptType string

const (
	PromptGeneral     PromptType = "general"
	PromptDescriptive PromptType = "descriptive"
	PromptPersuasive  PromptType = "persuasive"
	PromptExplanatory PromptType = "explanatory"
	PromptNarrative   PromptType = "narrative"
)

// Criteria is the grading contract for one prompt: length bounds, the
// prompt classification, and the content keywords the response is
// expected to touch.
type Criteria struct {
	MinWords int
	MaxWords int
	Type     PromptType
	Keywords []string
}

// Default length bounds for exam-practice prompts.
const (
	defaultMinWords = 100
	defaultMaxWords = 400
)

// filler words excluded from content-keyword extraction.
var fillerWords = map[string]bool{
	"describe": true,
	"write":    true,
	"about":    true,
	"would":    true,
	"could":    true,
	"should":   true,
	"think":    true,
}

// Classify derives grading criteria from a prompt's wording: a scan for
// signal verbs picks the prompt type and seeds the keyword set, then
// every content word longer than four characters is added. Pure and
// deterministic.
func Classify(prompt string) Criteria {
	c := Criteria{
		MinWords: defaultMinWords,
		MaxWords: defaultMaxWords,
		Type:     PromptGeneral,
	}
	if prompt == "" {
		return c
	}

	lower := strings.ToLower(prompt)
	var keywords []string

	switch {
	case strings.Contains(lower, "describe"):
		c.Type = PromptDescriptive
		keywords = append(keywords, "describe", "detail", "appearance", "setting")
	case strings.Contains(lower, "persuade"), strings.Contains(lower, "convince"):
		c.Type = PromptPersuasive
		keywords = append(keywords, "argument", "opinion", "convince", "reason")
	case strings.Contains(lower, "explain"), strings.Contains(lower, "why"):
		c.Type = PromptExplanatory
		keywords = append(keywords, "explain", "reason", "because", "therefore")
	case strings.Contains(lower, "story"), strings.Contains(lower, "adventure"):
		c.Type = PromptNarrative
		keywords = append(keywords, "character", "setting", "plot", "event")
	}

	for _, word := range strings.Fields(lower) {
		if len(word) > 4 && !fillerWords[word] {
			keywords = append(keywords, word)
		}
	}

	c.Keywords = dedupe(keywords)
	return c
}

// dedupe removes duplicates preserving first-seen order.
func dedupe(words []string) []string {
	seen := make(map[string]bool, len(words))
	out := words[:0]
	for _, w := range words {
		if !seen[w] {
			seen[w] = true
			out = append(out, w)
		}
	}
	return out
}
