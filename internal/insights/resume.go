package insights

import (
	"math"
	"strings"
	"unicode"
)

// ResumeAnalysis is the keyword match of a resume against required skills.
type ResumeAnalysis struct {
	Matched      []string
	Missing      []string
	KeywordCount int
	// Score is the percentage of required skills found, rounded.
	Score int
}

// tokenize lower-cases the text and splits it into words. Dots, plus and hash
// signs are kept inside words so "node.js", "c++" and "c#" survive.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '.' && r != '+' && r != '#'
	})

	tokens := fields[:0]
	for _, f := range fields {
		f = strings.Trim(f, ".")
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// AnalyzeResume counts keyword frequencies in the resume and checks every
// required skill against them. Multi-word skills must appear as a phrase.
func AnalyzeResume(text string, required []string) ResumeAnalysis {
	tokens := tokenize(text)

	frequency := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		frequency[tok]++
	}
	joined := " " + strings.Join(tokens, " ") + " "

	result := ResumeAnalysis{
		Matched:      []string{},
		Missing:      []string{},
		KeywordCount: len(tokens),
	}

	seen := make(map[string]struct{}, len(required))
	for _, skill := range required {
		skill = strings.TrimSpace(skill)
		key := strings.Join(tokenize(skill), " ")
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		found := frequency[key] > 0
		if !found && strings.Contains(key, " ") {
			found = strings.Contains(joined, " "+key+" ")
		}

		if found {
			result.Matched = append(result.Matched, skill)
		} else {
			result.Missing = append(result.Missing, skill)
		}
	}

	if total := len(result.Matched) + len(result.Missing); total > 0 {
		result.Score = int(math.Round(float64(len(result.Matched)) / float64(total) * 100))
	}

	return result
}
