// Package dataset converts structured data between JSON and CSV.
//
// Documents are held as Value, a tagged variant that preserves object member
// order and number literals, so a CSV header always follows the order in
// which keys were written.
//
// Example Usage:
//
//	v, err := dataset.ParseJSON(`[{"a":"1","b":"2"}]`)
//	out, err := dataset.RenderCSV(v) // "a,b\n1,2"
package dataset
