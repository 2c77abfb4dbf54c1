package analytics

// Label is the overall polarity of a text.
type Label string

const (
	Positive Label = "Positive"
	Negative Label = "Negative"
	Neutral  Label = "Neutral"
)

var (
	positiveWords = lexicon("good", "great", "excellent", "amazing", "wonderful", "fantastic", "love", "like", "happy", "joy")
	negativeWords = lexicon("bad", "terrible", "awful", "hate", "dislike", "sad", "angry", "frustrated", "disappointed")
)

func lexicon(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Sentiment is a lexicon-based polarity score.
type Sentiment struct {
	Positive int
	Negative int
	Score    int
	Label    Label
}

// Hits returns the number of tokens found in either lexicon.
func (s Sentiment) Hits() int {
	return s.Positive + s.Negative
}

// PositiveRatio returns the percentage of lexicon hits that were positive.
// ok is false when there were no hits.
func (s Sentiment) PositiveRatio() (pct float64, ok bool) {
	if s.Hits() == 0 {
		return 0, false
	}
	return float64(s.Positive) / float64(s.Hits()) * 100, true
}

// Score scores text against the fixed positive and negative lexicons.
func Score(text string) Sentiment {
	var s Sentiment
	for _, tok := range Tokenize(text) {
		if _, ok := positiveWords[tok]; ok {
			s.Positive++
		}
		if _, ok := negativeWords[tok]; ok {
			s.Negative++
		}
	}

	s.Score = s.Positive - s.Negative
	switch {
	case s.Score > 0:
		s.Label = Positive
	case s.Score < 0:
		s.Label = Negative
	default:
		s.Label = Neutral
	}
	return s
}
