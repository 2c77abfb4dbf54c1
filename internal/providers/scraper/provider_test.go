package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/AgentOS/toolbox/internal/fetch"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/markup"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/types"
)

const articlePage = `<html>
<head><title> My   Page </title><style>.x{}</style></head>
<body>
  <script>alert("hidden")</script>
  <h1>Welcome</h1>
  <p>Some	text
  here.</p>
</body>
</html>`

func newTestProvider(t *testing.T, handler http.Handler) (*Provider, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := fetch.NewClient(fetch.Options{Timeout: 2 * time.Second})
	return NewProvider(client, srv.URL+"/html/"), srv
}

func servePage(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		io.WriteString(w, body)
	})
}

func TestDefinition(t *testing.T) {
	p := NewProvider(nil, "")
	def := p.Definition()

	assert.Equal(t, "scraper", def.ID)
	assert.Equal(t, types.CategoryScraper, def.Category)

	ids := make([]string, 0, len(def.Tools))
	for _, tool := range def.Tools {
		ids = append(ids, tool.ID)
	}
	assert.Equal(t, []string{"scraper.extract_text", "scraper.extract_links", "scraper.search_web"}, ids)
}

func TestExtractText(t *testing.T) {
	p, srv := newTestProvider(t, servePage(articlePage))
	ctx := context.Background()

	result, err := p.Execute(ctx, "scraper.extract_text", map[string]interface{}{"url": srv.URL}, &types.Context{})
	require.NoError(t, err)
	require.True(t, result.Success)

	want := "Title: My Page\nURL: " + srv.URL + "\n\nMy Page Welcome Some text here."
	assert.Equal(t, want, result.Text)
	assert.NotContains(t, result.Text, "hidden")
}

func TestExtractTextWithoutCleaning(t *testing.T) {
	p, srv := newTestProvider(t, servePage(articlePage))

	result, err := p.Execute(context.Background(), "scraper.extract_text", map[string]interface{}{
		"url":        srv.URL,
		"clean_text": false,
	}, nil)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(result.Text, "Some\ttext\n  here."), result.Text)
}

func TestExtractTextNoTitle(t *testing.T) {
	p, srv := newTestProvider(t, servePage("<p>bare</p>"))

	result, err := p.Execute(context.Background(), "scraper.extract_text", map[string]interface{}{"url": srv.URL}, nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.Text, "Title: No title\n"))
}

func TestExtractTextFetchFailure(t *testing.T) {
	p, srv := newTestProvider(t, http.NotFoundHandler())

	result, err := p.Execute(context.Background(), "scraper.extract_text", map[string]interface{}{"url": srv.URL}, nil)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.True(t, strings.HasPrefix(result.Text, "Error extracting text: "), result.Text)
	assert.Contains(t, result.Text, "404")
	require.NotNil(t, result.Error)
	assert.Equal(t, result.Text, *result.Error)
}

func TestExtractTextMissingURL(t *testing.T) {
	p := NewProvider(nil, "")
	result, err := p.Execute(context.Background(), "scraper.extract_text", map[string]interface{}{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Error: url parameter required", result.Text)
}

func linkPage(host string) string {
	var b strings.Builder
	b.WriteString(`<html><body>`)
	b.WriteString(`<a href="/about">About <b>us</b></a>`)
	b.WriteString(`<a href="https://other.example/x">Other</a>`)
	b.WriteString(`<a href="/about">Duplicate</a>`)
	b.WriteString(`<a href="http://` + host + `/contact">Contact</a>`)
	b.WriteString(`<a name="anchor">No href</a>`)
	b.WriteString(`<a href="http://[::1">Broken</a>`)
	b.WriteString(`</body></html>`)
	return b.String()
}

func TestExtractLinks(t *testing.T) {
	p, srv := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, linkPage(r.Host))
	}))

	result, err := p.Execute(context.Background(), "scraper.extract_links", map[string]interface{}{"url": srv.URL + "/index.html"}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)

	want := strings.Join([]string{
		"Extracted 3 unique links from " + srv.URL + "/index.html:",
		"🏠 About us: " + srv.URL + "/about",
		"🌐 Other: https://other.example/x",
		"🏠 Contact: " + srv.URL + "/contact",
	}, "\n")
	assert.Equal(t, want, result.Text)
}

func TestExtractLinksInternalOnly(t *testing.T) {
	p, srv := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, linkPage(r.Host))
	}))

	result, err := p.Execute(context.Background(), "scraper.extract_links", map[string]interface{}{
		"url":           srv.URL,
		"internal_only": "true",
	}, nil)
	require.NoError(t, err)
	assert.Contains(t, result.Text, "Extracted 2 unique links")
	assert.NotContains(t, result.Text, "other.example")
}

func TestExtractLinksTruncates(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 25; i++ {
		fmt.Fprintf(&b, `<a href="/p%d">P%d</a>`, i, i)
	}
	p, srv := newTestProvider(t, servePage(b.String()))

	result, err := p.Execute(context.Background(), "scraper.extract_links", map[string]interface{}{"url": srv.URL}, nil)
	require.NoError(t, err)

	lines := strings.Split(result.Text, "\n")
	require.Len(t, lines, 1+MaxListedLinks+1)
	assert.Equal(t, "Extracted 25 unique links from "+srv.URL+":", lines[0])
	assert.Equal(t, "🏠 P19: "+srv.URL+"/p19", lines[MaxListedLinks])
	assert.Equal(t, "... and 5 more links", lines[len(lines)-1])
}

func TestCollectLinksComparesPort(t *testing.T) {
	doc, err := markup.ParseString(`<a href="http://example.com:9090/x">Alt</a><a href="http://example.com:8080/y">Same</a><a href="/z">Rel</a>`)
	require.NoError(t, err)
	base, _ := url.Parse("http://example.com:8080/")

	links := CollectLinks(doc, base, false)
	require.Len(t, links, 3)
	assert.False(t, links[0].Internal)
	assert.True(t, links[1].Internal)
	assert.True(t, links[2].Internal)

	internal := CollectLinks(doc, base, true)
	require.Len(t, internal, 2)
	assert.Equal(t, "http://example.com:8080/y", internal[0].URL)
}

func TestCollectLinksNeverDuplicates(t *testing.T) {
	doc, err := markup.ParseString(`<a href="a">1</a><a href="./a">2</a><a href="/dir/a">3</a><a href="a#x">4</a>`)
	require.NoError(t, err)
	base, _ := url.Parse("http://example.com/dir/")

	links := CollectLinks(doc, base, false)
	seen := map[string]bool{}
	for _, l := range links {
		assert.False(t, seen[l.URL], "duplicate %s", l.URL)
		seen[l.URL] = true
	}
	require.Len(t, links, 2)
	assert.Equal(t, "1", links[0].Text)
	assert.Equal(t, "http://example.com/dir/a#x", links[1].URL)
}

const searchPage = `<html><body>
<div class="results">
  <div class="result results_links web-result">
    <h2><a class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fgo.dev%2F&amp;rut=abc">The Go   Programming Language</a></h2>
    <a class="result__snippet" href="#">Go is an open source language.</a>
  </div>
  <div class="result">
    <a class="result__a" href="https://example.com/two">Second</a>
  </div>
  <div class="result">
    <span class="result__snippet">Orphan snippet</span>
  </div>
</div>
</body></html>`

func TestSearchWeb(t *testing.T) {
	p, _ := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/html/" {
			http.NotFound(w, r)
			return
		}
		if r.URL.Query().Get("q") != "golang & tests" {
			http.Error(w, "bad query", http.StatusBadRequest)
			return
		}
		io.WriteString(w, searchPage)
	}))

	result, err := p.Execute(context.Background(), "scraper.search_web", map[string]interface{}{"query": "golang & tests"}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)

	want := strings.Join([]string{
		"Search results for: golang & tests",
		strings.Repeat("=", 50),
		"",
		"1. The Go Programming Language",
		"   https://go.dev/",
		"   Go is an open source language.",
		"",
		"2. Second",
		"   https://example.com/two",
		"   No snippet",
		"",
		"3. No title",
		"   No URL",
		"   Orphan snippet",
	}, "\n")
	assert.Equal(t, want, result.Text)
}

func TestSearchWebLimit(t *testing.T) {
	p, _ := newTestProvider(t, servePage(searchPage))

	result, err := p.Execute(context.Background(), "scraper.search_web", map[string]interface{}{
		"query":       "go",
		"num_results": float64(1),
	}, nil)
	require.NoError(t, err)
	assert.Contains(t, result.Text, "1. The Go Programming Language")
	assert.NotContains(t, result.Text, "2. Second")

	result, err = p.Execute(context.Background(), "scraper.search_web", map[string]interface{}{
		"query":       "go",
		"num_results": 0,
	}, nil)
	require.NoError(t, err)
	assert.Contains(t, result.Text, "3. No title")
}

func TestSearchWebNoResults(t *testing.T) {
	p, _ := newTestProvider(t, servePage("<html><body><p>nothing</p></body></html>"))

	result, err := p.Execute(context.Background(), "scraper.search_web", map[string]interface{}{"query": "zzz"}, nil)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Search results for: zzz\n"+strings.Repeat("=", 50)+"\nNo search results found.", result.Text)
}

func TestSearchWebFailure(t *testing.T) {
	p, _ := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	result, err := p.Execute(context.Background(), "scraper.search_web", map[string]interface{}{"query": "go"}, nil)
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.True(t, strings.HasPrefix(result.Text, "Error searching web: "), result.Text)
}

func TestUnknownTool(t *testing.T) {
	result, err := NewProvider(nil, "").Execute(context.Background(), "scraper.nope", nil, nil)
	require.NoError(t, err)
	assert.False(t, result.Success)
}
