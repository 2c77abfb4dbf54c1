package analytics

import "strings"

// CharStats summarizes character and layout counts.
type CharStats struct {
	Total             int
	NoSpaces          int
	Lines             int
	Paragraphs        int
	AverageLineLength float64
}

// Chars counts characters, lines and paragraphs.
// Lines are separated by "\n", so empty text has one line.
// Paragraphs are non-blank blocks separated by "\n\n".
func Chars(text string) CharStats {
	total := runeLen(text)
	lines := len(strings.Split(text, "\n"))

	paragraphs := 0
	for _, p := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(p) != "" {
			paragraphs++
		}
	}

	stats := CharStats{
		Total:      total,
		NoSpaces:   runeLen(strings.ReplaceAll(text, " ", "")),
		Lines:      lines,
		Paragraphs: paragraphs,
	}
	if lines > 0 {
		stats.AverageLineLength = float64(total) / float64(lines)
	}
	return stats
}
