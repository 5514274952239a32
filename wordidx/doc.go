// Package wordidx provides the letter-position index behind fast
// "words differing in exactly one position" queries.
//
// What
//
//   - NewIndex(words) builds a two-level mapping, position → letter → word set,
//     from a dictionary of fixed-length words. Duplicates collapse.
//   - WordsAt(pos, letter) returns the words carrying letter at pos.
//   - Similar(word, pos) returns the words identical to word at every
//     position except pos (and different from word itself) — the
//     one-substitution neighbors at that position.
//   - Contains and Len expose plain dictionary membership and size.
//
// Why
//
//	Ladder search expands a word into its one-letter neighbors many
//	times per query. Enumerating the whole dictionary per expansion is
//	O(N·p); intersecting the precomputed buckets of the unchanged
//	positions touches only the words that can possibly match.
//
// Determinism
//
//	WordsAt and Similar return lexicographically sorted slices, so any
//	traversal driven by them is fully reproducible.
//
// Edge cases
//
//   - Unpopulated (pos, letter) pairs yield empty results, never errors.
//   - A single-letter word has no "other" positions; its Similar result
//     is defined as empty (the vacuous intersection is special-cased,
//     it does not silently mean "everything").
//
// The Index is immutable after construction and safe for concurrent
// readers. Rebuilding from the same word set yields an equivalent index.
//
// Complexity (N = words, p = word length)
//
//   - NewIndex: O(N·p) time and memory.
//   - WordsAt:  O(k log k) for a bucket of k words.
//   - Similar:  O(k·p) plus the output sort, k = smallest bucket size.
package wordidx
