package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/AgentOS/toolbox/internal/fetch"
	"github.com/GriffinCanCode/AgentOS/toolbox/internal/shared/types"
)

const weatherBody = `{
  "current_condition": [{
    "FeelsLikeC": "12", "FeelsLikeF": "54", "humidity": "81",
    "temp_C": "14", "temp_F": "57",
    "weatherDesc": [{"value": "Partly cloudy"}],
    "winddir16Point": "SW", "windspeedKmph": "19"
  }],
  "nearest_area": [{
    "areaName": [{"value": "London"}],
    "country": [{"value": "United Kingdom"}]
  }]
}`

const ipBody = `{
  "status": "success", "country": "United States", "regionName": "Virginia",
  "city": "Ashburn", "zip": "20149", "lat": 39.03, "lon": -77.5,
  "timezone": "America/New_York", "isp": "Google LLC", "org": "Google Public DNS",
  "query": "8.8.8.8"
}`

func newTestProvider(t *testing.T, handler http.Handler) *Provider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := fetch.NewClient(fetch.Options{Timeout: 2 * time.Second})
	return NewProvider(client, Endpoints{
		Weather: srv.URL + "/weather/",
		News:    srv.URL + "/hn/v0/",
		Crypto:  srv.URL + "/price",
		IPInfo:  srv.URL + "/json/",
	})
}

func serveJSON(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, body)
	})
}

// lastURL records the most recent request URL seen by a handler.
type lastURL struct {
	mu sync.Mutex
	u  url.URL
}

func (l *lastURL) record(r *http.Request) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.u = *r.URL
}

func (l *lastURL) get() url.URL {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.u
}

func run(t *testing.T, p *Provider, toolID string, params map[string]interface{}) *types.Result {
	t.Helper()
	result, err := p.Execute(context.Background(), toolID, params, nil)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func TestDefinition(t *testing.T) {
	def := NewProvider(nil, Endpoints{}).Definition()

	assert.Equal(t, "api", def.ID)
	assert.Equal(t, types.CategoryAPI, def.Category)

	ids := make([]string, 0, len(def.Tools))
	for _, tool := range def.Tools {
		ids = append(ids, tool.ID)
	}
	assert.Equal(t, []string{"api.get_weather", "api.get_news", "api.get_crypto_prices", "api.get_ip_info"}, ids)
}

func TestEndpointDefaults(t *testing.T) {
	ops := NewAPIOps(nil, Endpoints{News: "http://news.local/"})
	assert.Equal(t, DefaultWeatherEndpoint, ops.Endpoints.Weather)
	assert.Equal(t, "http://news.local/", ops.Endpoints.News)
	assert.Equal(t, "http://news.local/item/1.json", joinURL(ops.Endpoints.News, "item/1.json"))
}

func TestGetWeather(t *testing.T) {
	var seen lastURL
	p := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen.record(r)
		io.WriteString(w, weatherBody)
	}))

	result := run(t, p, "api.get_weather", map[string]interface{}{"location": "New York"})
	require.True(t, result.Success, result.Text)
	got := seen.get()
	assert.Equal(t, "/weather/New%20York", got.EscapedPath())
	assert.Equal(t, "j1", got.Query().Get("format"))

	want := strings.Join([]string{
		"Weather for London, United Kingdom",
		strings.Repeat("=", 50),
		"Condition: Partly cloudy",
		"Temperature: 14°C (57°F)",
		"Feels like: 12°C (54°F)",
		"Humidity: 81%",
		"Wind: 19 km/h SW",
	}, "\n")
	assert.Equal(t, want, result.Text)
}

func TestGetWeatherFailures(t *testing.T) {
	p := newTestProvider(t, serveJSON(`{"nearest_area": []}`))

	result := run(t, p, "api.get_weather", map[string]interface{}{"location": "Nowhere"})
	assert.False(t, result.Success)
	assert.Equal(t, "Error getting weather: weather service: no current conditions for Nowhere", result.Text)
	assert.Equal(t, "response", result.ErrorKind)

	result = run(t, p, "api.get_weather", map[string]interface{}{"location": "  "})
	assert.Equal(t, "Error: location parameter required", result.Text)

	broken := newTestProvider(t, serveJSON(`<html>`))
	result = run(t, broken, "api.get_weather", map[string]interface{}{"location": "Paris"})
	assert.False(t, result.Success)
	assert.Contains(t, result.Text, "response is not valid JSON")

	down := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	result = run(t, down, "api.get_weather", map[string]interface{}{"location": "Paris"})
	assert.True(t, strings.HasPrefix(result.Text, "Error getting weather: fetch "), result.Text)
	assert.Equal(t, "fetch", result.ErrorKind)
}

func newsHandler(requests *atomic.Int32) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/hn/v0/topstories.json", serveJSON(`[101, 102, 103, 104]`))
	mux.HandleFunc("/hn/v0/item/", func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		switch r.URL.Path {
		case "/hn/v0/item/101.json":
			io.WriteString(w, `{"id":101,"title":"Go 2 released","url":"https://go.dev/blog","score":420,"descendants":99}`)
		case "/hn/v0/item/102.json":
			http.Error(w, "gone", http.StatusNotFound)
		case "/hn/v0/item/103.json":
			io.WriteString(w, `{"id":103,"title":"Ask HN: Tabs or spaces?","score":12}`)
		default:
			io.WriteString(w, `{"id":104}`)
		}
	})
	return mux
}

func TestGetNews(t *testing.T) {
	var requests atomic.Int32
	p := newTestProvider(t, newsHandler(&requests))

	result := run(t, p, "api.get_news", map[string]interface{}{"page_size": "3"})
	require.True(t, result.Success, result.Text)
	assert.Equal(t, int32(3), requests.Load())

	want := strings.Join([]string{
		"Top Tech News (Hacker News)",
		strings.Repeat("=", 50),
		"",
		"1. Go 2 released",
		"   Score: 420 | Comments: 99",
		"   URL: https://go.dev/blog",
		"",
		"3. Ask HN: Tabs or spaces?",
		"   Score: 12 | Comments: 0",
	}, "\n")
	assert.Equal(t, want, result.Text)
	assert.Equal(t, 2, result.Data["count"])
}

func TestGetNewsPageSize(t *testing.T) {
	var requests atomic.Int32
	p := newTestProvider(t, newsHandler(&requests))

	result := run(t, p, "api.get_news", map[string]interface{}{"page_size": float64(0)})
	require.True(t, result.Success)
	assert.Equal(t, int32(4), requests.Load())
	assert.Contains(t, result.Text, "4. No title")
}

func TestGetNewsBadList(t *testing.T) {
	p := newTestProvider(t, serveJSON(`{"error":"nope"}`))
	result := run(t, p, "api.get_news", nil)
	assert.False(t, result.Success)
	assert.Equal(t, "Error getting news: news service: top stories is not a list", result.Text)
}

func TestGetCryptoPrices(t *testing.T) {
	var seen lastURL
	p := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen.record(r)
		io.WriteString(w, `{
			"bitcoin": {"usd": 67123.456, "usd_24h_change": 1.254},
			"ethereum": {"usd": 3050, "usd_24h_change": -2.5},
			"shiba-inu": {"usd": 0.0000251},
			"broken": {}
		}`)
	}))

	result := run(t, p, "api.get_crypto_prices", nil)
	require.True(t, result.Success, result.Text)
	query := seen.get().Query()
	assert.Equal(t, "bitcoin,ethereum,litecoin,ripple,cardano", query.Get("ids"))
	assert.Equal(t, "usd", query.Get("vs_currencies"))
	assert.Equal(t, "true", query.Get("include_24hr_change"))

	want := strings.Join([]string{
		"Cryptocurrency Prices (USD)",
		strings.Repeat("=", 50),
		"Bitcoin (BTC): $67,123.46 (+1.25%)",
		"Ethereum (ETH): $3,050.00 (-2.50%)",
		"Shiba Inu: $0.00 (+0.00%)",
	}, "\n")
	assert.Equal(t, want, result.Text)
	assert.Equal(t, 3, result.Data["count"])

	run(t, p, "api.get_crypto_prices", map[string]interface{}{"coins": " Dogecoin, ,solana "})
	assert.Equal(t, "dogecoin,solana", seen.get().Query().Get("ids"))
}

func TestGetIPInfo(t *testing.T) {
	var seen lastURL
	p := newTestProvider(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen.record(r)
		io.WriteString(w, ipBody)
	}))

	result := run(t, p, "api.get_ip_info", map[string]interface{}{"ip_address": "8.8.8.8"})
	require.True(t, result.Success, result.Text)
	assert.Equal(t, "/json/8.8.8.8", seen.get().Path)

	want := strings.Join([]string{
		"IP Information for 8.8.8.8",
		strings.Repeat("=", 50),
		"Country: United States",
		"Region: Virginia",
		"City: Ashburn",
		"ZIP: 20149",
		"ISP: Google LLC",
		"Organization: Google Public DNS",
		"Timezone: America/New_York",
		"Coordinates: 39.03, -77.5",
	}, "\n")
	assert.Equal(t, want, result.Text)

	run(t, p, "api.get_ip_info", nil)
	assert.Equal(t, "/json/", seen.get().Path)
}

func TestGetIPInfoLookupFailure(t *testing.T) {
	p := newTestProvider(t, serveJSON(`{"status":"fail","message":"invalid query","query":"nope"}`))

	result := run(t, p, "api.get_ip_info", map[string]interface{}{"ip_address": "nope"})
	assert.False(t, result.Success)
	assert.Equal(t, "Error getting IP info: IP lookup: invalid query", result.Text)

	partial := newTestProvider(t, serveJSON(`{"status":"success","query":"1.1.1.1"}`))
	result = run(t, partial, "api.get_ip_info", nil)
	require.True(t, result.Success)
	assert.Contains(t, result.Text, "City: Unknown")
	assert.Contains(t, result.Text, "Coordinates: Unknown, Unknown")
}

func TestUnknownTool(t *testing.T) {
	result := run(t, NewProvider(nil, Endpoints{}), "api.nope", nil)
	assert.False(t, result.Success)
	assert.Equal(t, "unknown_tool", result.ErrorKind)
}
