// Package analytics computes word, character and sentiment statistics for
// free text. All functions are pure; the sentiment lexicons are fixed
// package tables that are never modified.
package analytics
