// Package data provides data transformation and analysis operations.
//
// This package is organized into specialized modules:
//   - json: JSON formatting/validation and JSON <-> CSV conversion
//   - text: Word, character and sentiment statistics
//   - codec: Hash digests, base64 and URL encoding
//
// All operations are pure; the provider holds no state between calls.
//
// Example Usage:
//
//	data := data.NewProvider()
//	result, err := data.Execute(ctx, "data.hash_data", map[string]interface{}{"data": "abc"}, appCtx)
package data
