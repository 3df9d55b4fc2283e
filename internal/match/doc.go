// Package match provides destination member-name normalization and
// Levenshtein distance calculation for near-miss suggestions.
//
// Key functions:
//   - NormalizeMember: canonical camel-case rendering of a member identifier
//   - Levenshtein: edit distance between strings
//   - Nearest: ranks member names closest to an unmatched key
package match
