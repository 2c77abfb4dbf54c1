package data

import (
	"context"

	"github.com/GriffinCanCode/AgentOS/toolbox/internal/analytics"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/params"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/report"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/toolerr"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/types"
)

// Analysis types accepted by analyze_text.
const (
	AnalysisWordCount = "word_count"
	AnalysisCharCount = "char_count"
	AnalysisSentiment = "sentiment"
)

// TextOps handles free-text analysis
type TextOps struct {
	*DataOps
}

// GetTools returns text analysis tool definitions
func (t *TextOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "data.analyze_text",
			Name:        "Analyze Text",
			Description: "Analyze text for word count, character count and sentiment",
			Parameters: []types.Parameter{
				{Name: "text", Type: "string", Description: "Text to analyze", Required: true},
				{Name: "analysis_type", Type: "string", Description: "Analysis to run (default: word_count)", Required: false, Default: AnalysisWordCount,
					Enum: []string{AnalysisWordCount, AnalysisCharCount, AnalysisSentiment}},
			},
			Returns: "string",
		},
	}
}

// AnalyzeText runs one analysis over text
func (t *TextOps) AnalyzeText(ctx context.Context, p map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	const action = "analyzing text"

	text, err := params.String(p, "text")
	if err != nil {
		return Failure(action, err)
	}
	kind := params.StringOr(p, "analysis_type", AnalysisWordCount)

	rep := report.New("Text Analysis - Type: " + kind)
	var data map[string]interface{}

	switch kind {
	case AnalysisWordCount:
		stats := analytics.Words(text)
		rep.Linef("Total words: %d", stats.Total).
			Linef("Unique words: %d", stats.Unique)
		if stats.Total > 0 {
			rep.Linef("Average word length: %.1f characters", stats.AverageLength)
		}
		rep.Linef("Top %d most frequent words:", analytics.TopWords)
		for _, wc := range stats.Top {
			rep.Linef("  %s: %d", wc.Word, wc.Count)
		}
		data = map[string]interface{}{"total": stats.Total, "unique": stats.Unique}

	case AnalysisCharCount:
		stats := analytics.Chars(text)
		rep.Linef("Total characters: %d", stats.Total).
			Linef("Characters (no spaces): %d", stats.NoSpaces).
			Linef("Lines: %d", stats.Lines).
			Linef("Paragraphs: %d", stats.Paragraphs)
		if stats.Lines > 0 {
			rep.Linef("Average line length: %.1f characters", stats.AverageLineLength)
		}
		data = map[string]interface{}{"characters": stats.Total, "lines": stats.Lines, "paragraphs": stats.Paragraphs}

	case AnalysisSentiment:
		s := analytics.Score(text)
		rep.Linef("Positive words: %d", s.Positive).
			Linef("Negative words: %d", s.Negative).
			Linef("Sentiment score: %d", s.Score).
			Linef("Overall sentiment: %s", s.Label)
		if pct, ok := s.PositiveRatio(); ok {
			rep.Linef("Sentiment ratio: %.1f%% positive", pct)
		}
		data = map[string]interface{}{"score": s.Score, "label": string(s.Label)}

	default:
		return Failure(action, toolerr.Unknown("analysis type", kind, AnalysisWordCount, AnalysisCharCount, AnalysisSentiment))
	}

	return Success(rep.String(), data)
}
