// Package fetch is the single outbound HTTP primitive: GET a URL and return
// status, headers and body, bounded by a timeout and the caller's context.
//
// Built on go-resty/resty with retries disabled and no cookie jar.
package fetch
