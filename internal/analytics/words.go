package analytics

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

const (
	// MinWordLength is the shortest token counted as a word.
	MinWordLength = 3
	// TopWords is how many frequent words WordStats reports.
	TopWords = 15
)

// WordCount pairs a word with its frequency.
type WordCount struct {
	Word  string
	Count int
}

// WordStats summarizes word usage.
type WordStats struct {
	Total         int
	Unique        int
	Top           []WordCount
	AverageLength float64 // zero when Total is zero
}

// Words counts tokens of at least MinWordLength characters.
// Top is ordered by descending count; equal counts keep first-seen order.
func Words(text string) WordStats {
	var (
		counts  = make(map[string]int)
		order   []string
		lengths []float64
	)

	for _, tok := range Tokenize(text) {
		n := runeLen(tok)
		if n < MinWordLength {
			continue
		}
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
		lengths = append(lengths, float64(n))
	}

	ranked := make([]WordCount, len(order))
	for i, w := range order {
		ranked[i] = WordCount{Word: w, Count: counts[w]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	if len(ranked) > TopWords {
		ranked = ranked[:TopWords]
	}

	stats := WordStats{
		Total:  len(lengths),
		Unique: len(order),
		Top:    ranked,
	}
	if len(lengths) > 0 {
		stats.AverageLength = stat.Mean(lengths, nil)
	}
	return stats
}
