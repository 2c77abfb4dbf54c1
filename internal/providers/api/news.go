package api

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/params"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/report"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/toolerr"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/types"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 30

	// storyFetchLimit bounds concurrent item requests per call.
	storyFetchLimit = 5
)

// NewsOps handles Hacker News headlines
type NewsOps struct {
	*APIOps
}

// Story is one ranked headline
type Story struct {
	Rank     int    `json:"rank"`
	Title    string `json:"title"`
	URL      string `json:"url,omitempty"`
	Score    int64  `json:"score"`
	Comments int64  `json:"comments"`
}

// GetTools returns news tool definitions
func (n *NewsOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "api.get_news",
			Name:        "Get News",
			Description: "Get latest tech news from Hacker News",
			Parameters: []types.Parameter{
				{Name: "page_size", Type: "number", Description: "Number of top stories (default: 10, max: 30)", Required: false, Default: DefaultPageSize},
			},
			Returns: "string",
		},
	}
}

// GetNews reports the top stories in rank order. Stories whose details
// cannot be fetched are left out; their rank is not reused.
func (n *NewsOps) GetNews(ctx context.Context, p map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	const action = "getting news"

	size := params.Int(p, "page_size", DefaultPageSize)
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	top, err := n.GetJSON(ctx, joinURL(n.Endpoints.News, "topstories.json"), nil)
	if err != nil {
		return Failure(action, err)
	}
	if !top.IsArray() {
		return Failure(action, &toolerr.ResponseError{Source: "news service", Msg: "top stories is not a list"})
	}
	ids := top.Array()
	if len(ids) > size {
		ids = ids[:size]
	}

	// Each goroutine writes only its own slot
	stories := make([]*Story, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(storyFetchLimit)
	for i, id := range ids {
		g.Go(func() error {
			item, err := n.GetJSON(gctx, joinURL(n.Endpoints.News, "item/"+id.String()+".json"), nil)
			if err != nil || !item.IsObject() {
				return nil
			}
			stories[i] = &Story{
				Rank:     i + 1,
				Title:    orDefault(item.Get("title").String(), "No title"),
				URL:      item.Get("url").String(),
				Score:    item.Get("score").Int(),
				Comments: item.Get("descendants").Int(),
			}
			return nil
		})
	}
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return Failure(action, err)
	}

	rep := report.New("Top Tech News (Hacker News)")
	listed := []Story{}
	for _, s := range stories {
		if s == nil {
			continue
		}
		listed = append(listed, *s)
		rep.Blank().
			Linef("%d. %s", s.Rank, s.Title).
			Linef("   Score: %d | Comments: %d", s.Score, s.Comments)
		if s.URL != "" {
			rep.Linef("   URL: %s", s.URL)
		}
	}
	if len(listed) == 0 {
		rep.Add("No stories found.")
	}

	return Success(rep.String(), map[string]interface{}{
		"stories": listed,
		"count":   len(listed),
	})
}
