// Package sanitizer provides the text and phone normalization helpers shared by the lead
// pipeline.
//
// Functions never return errors. Invalid input degrades to an empty string or to the
// input itself, so callers can chain them without checks.
//
// Normalization includes:
//   - Strings: collapse whitespace, trim, fold case and diacritics for keyword matching
//   - Phones: split comma separated lists, strip formatting, format for display
//   - Numbers: clamp scores to the valid range
package sanitizer
