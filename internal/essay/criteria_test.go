package essay

import (
	"slices"
	"testing"
)

func TestClassify_PromptTypes(t *testing.T) {
	cases := []struct {
		name   string
		prompt string
		want   PromptType
	}{
		{"descriptive", "Describe your school on a rainy morning", PromptDescriptive},
		{"persuasive", "Persuade your teacher to allow longer breaks", PromptPersuasive},
		{"convince variant", "Convince the council to build a library", PromptPersuasive},
		{"explanatory", "Explain why rivers flood in winter", PromptExplanatory},
		{"narrative", "Write a story about a lost map", PromptNarrative},
		{"general fallback", "Your favourite meal", PromptGeneral},
		{"empty prompt", "", PromptGeneral},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.prompt).Type; got != tc.want {
				t.Errorf("type = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestClassify_ExtractsContentKeywords(t *testing.T) {
	c := Classify("Describe the ancient castle gardens")

	for _, want := range []string{"ancient", "castle", "gardens"} {
		if !slices.Contains(c.Keywords, want) {
			t.Errorf("keywords %v missing %q", c.Keywords, want)
		}
	}
	// Seed keywords from the prompt type come first.
	if !slices.Contains(c.Keywords, "detail") {
		t.Errorf("keywords %v missing descriptive seed", c.Keywords)
	}
}

func TestClassify_ExcludesFillerWords(t *testing.T) {
	c := Classify("Write about what you think you should describe")

	for _, filler := range []string{"write", "about", "think", "should", "describe"} {
		for _, kw := range c.Keywords {
			if kw == filler && filler != "describe" {
				t.Errorf("filler word %q leaked into content keywords", filler)
			}
		}
	}
}

func TestClassify_DeduplicatesKeywords(t *testing.T) {
	c := Classify("Explain the reason behind the reason for seasons")

	seen := map[string]int{}
	for _, kw := range c.Keywords {
		seen[kw]++
		if seen[kw] > 1 {
			t.Errorf("keyword %q appears more than once", kw)
		}
	}
}

func TestClassify_DefaultBounds(t *testing.T) {
	c := Classify("Anything at all")
	if c.MinWords != 100 || c.MaxWords != 400 {
		t.Errorf("bounds = %d..%d, want 100..400", c.MinWords, c.MaxWords)
	}
}
