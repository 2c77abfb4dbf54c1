// Package api provides lookups against public JSON APIs.
//
// Modules:
//   - weather: current conditions from wttr.in
//   - news: Hacker News top stories, item details fetched concurrently
//   - crypto: CoinGecko USD prices with 24 hour change
//   - ip: ip-api.com geolocation
//
// Responses are read with gjson paths rather than decoded into structs, so
// missing fields degrade to placeholders instead of failing the call.
package api
