package essay

import (
	"fmt"
	"regexp"
	"strings"
)

// Score thresholds. PassScore is the correctness boundary fed into the
// run counters; ExcellentScore additionally gates the top feedback tier
// and the type-specific improvement advice.
const (
	PassScore      = 50
	ExcellentScore = 70
)

// Tier is the feedback band for a graded response.
type Tier string

const (
	TierExcellent        Tier = "Excellent"
	TierGood             Tier = "Good effort"
	TierNeedsImprovement Tier = "Needs improvement"
)

// Result is the outcome of grading one response. Identical text and
// criteria always produce an identical Result.
type Result struct {
	Score    int
	Feedback string
	Tier     Tier
}

// Correct reports how the response feeds the run counters.
func (r Result) Correct() bool {
	return r.Score >= PassScore
}

var (
	paragraphSplit = regexp.MustCompile(`\n\s*\n`)
	sentenceSplit  = regexp.MustCompile(`[.!?]+`)
	punctuation    = regexp.MustCompile(`[.,;:!?]`)
)

// Grade scores free text against criteria, out of 100:
//
//	word-count band            15
//	paragraph structure        15
//	punctuation density        10
//	sentence-length balance    10
//	lexical variety        up to 20
//	topic-keyword coverage up to 30 (15 when no keywords extracted)
//
// Misses accumulate feedback messages; a score under ExcellentScore
// appends type-specific improvement advice.
func Grade(text string, criteria Criteria) Result {
	score := 0
	var feedback strings.Builder

	// Word-count band.
	words := strings.Fields(text)
	wordCount := len(words)
	switch {
	case wordCount >= criteria.MinWords && wordCount <= criteria.MaxWords:
		score += 15
	case wordCount < criteria.MinWords:
		fmt.Fprintf(&feedback, "Your essay is too short (%d words). Aim for at least %d words. ", wordCount, criteria.MinWords)
	default:
		fmt.Fprintf(&feedback, "Your essay is too long (%d words). Try to keep it under %d words. ", wordCount, criteria.MaxWords)
	}

	// Paragraph structure: blank-line delimited.
	if len(paragraphSplit.Split(text, -1)) >= 3 {
		score += 15
	} else {
		feedback.WriteString("Remember to structure your essay with clear paragraphs (introduction, body, conclusion). ")
	}

	// Punctuation density: at least one mark per ten words.
	marks := len(punctuation.FindAllString(text, -1))
	if float64(marks) >= float64(wordCount)/10 {
		score += 10
	} else {
		feedback.WriteString("Use more varied punctuation to enhance your writing. ")
	}

	// Sentence-length balance.
	sentences := 0
	for _, s := range sentenceSplit.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			sentences++
		}
	}
	avgLen := float64(criteria.MaxWords + 1) // no sentences counts as unbalanced
	if sentences > 0 {
		avgLen = float64(wordCount) / float64(sentences)
	}
	if sentences >= 5 && avgLen <= 20 {
		score += 10
	} else if avgLen > 20 {
		feedback.WriteString("Your sentences are very long. Try using a mix of short and long sentences. ")
	}

	// Lexical variety: unique-word ratio, scaled and capped at 20.
	if wordCount > 0 {
		unique := make(map[string]bool, wordCount)
		for _, w := range words {
			unique[strings.ToLower(w)] = true
		}
		ratio := float64(len(unique)) / float64(wordCount)
		score += min(20, int(20*ratio*2))
	}

	// Topic-keyword coverage, scaled and capped at 30.
	if len(criteria.Keywords) > 0 {
		lower := strings.ToLower(text)
		matched := 0
		for _, kw := range criteria.Keywords {
			if strings.Contains(lower, kw) {
				matched++
			}
		}
		coverage := float64(matched) / float64(len(criteria.Keywords))
		score += min(30, int(30*coverage*1.5))
	} else {
		score += 15
	}

	if score < ExcellentScore {
		feedback.WriteString(improvementAdvice(criteria.Type))
	}

	msg := feedback.String()
	if msg == "" {
		msg = "Good job!"
	}

	return Result{
		Score:    score,
		Feedback: msg,
		Tier:     tierFor(score),
	}
}

func tierFor(score int) Tier {
	switch {
	case score >= ExcellentScore:
		return TierExcellent
	case score >= PassScore:
		return TierGood
	default:
		return TierNeedsImprovement
	}
}

func improvementAdvice(pt PromptType) string {
	switch pt {
	case PromptDescriptive:
		return "Try to include more sensory details (what you can see, hear, smell, touch, and taste). "
	case PromptPersuasive:
		return "Make sure to include clear arguments and supporting evidence for your opinion. "
	case PromptExplanatory:
		return "Ensure you provide clear explanations with logical connections between your points. "
	case PromptNarrative:
		return "Focus on developing characters, setting, and a clear plot structure with a beginning, middle, and end. "
	default:
		return "Make sure your essay stays focused on the main topic. "
	}
}
