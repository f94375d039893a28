// Package match provides name normalization and edit-distance ranking used
// to suggest the intended name when a lookup by name fails.
//
// Key functions:
//   - Normalize: folds case and drops separators
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks candidate names by similarity
package match
