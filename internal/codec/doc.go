// Package codec provides deterministic byte-level transforms: hash digests,
// base64, and URL percent-encoding.
//
// Every function is pure. Unknown algorithms fail with
// toolerr.UnsupportedFormatError and malformed input with toolerr.DecodeError.
//
// Example Usage:
//
//	h, err := codec.NewHasher("sha256")
//	digest := h.HashString("abc")
//	encoded := codec.Base64Encode("hello world") // aGVsbG8gd29ybGQ=
package codec
