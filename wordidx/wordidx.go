// Package wordidx provides the letter-position index used to answer
// "which dictionary words have letter L at position i" in O(1) average time,
// and the similar-word query built on top of it.
package wordidx

import "sort"

// wordSet is the membership representation shared by every bucket.
type wordSet map[string]struct{}

// Index is a read-only lookup structure over a fixed word set.
// It maps (position, letter) to the set of words carrying that letter
// at that position. Build it once with NewIndex; it never mutates
// afterwards and is safe for concurrent readers.
type Index struct {
	// byPos[i][c] is the set of words whose i-th byte is c.
	byPos map[int]map[byte]wordSet
	// words is the full dictionary, duplicates collapsed.
	words wordSet
}

// NewIndex builds an Index from the given dictionary.
// Every word is registered under each of its (position, letter) pairs,
// so for every word w and position i, w lives in exactly one bucket for
// position i: the one keyed by w[i].
// Duplicate input words collapse. An empty input yields a valid index
// whose every lookup is empty; it is never an error.
// Complexity: O(total letters) time and memory.
func NewIndex(words []string) *Index {
	ix := &Index{
		byPos: make(map[int]map[byte]wordSet),
		words: make(wordSet, len(words)),
	}
	for _, w := range words {
		if _, dup := ix.words[w]; dup {
			continue
		}
		ix.words[w] = struct{}{}
		for i := 0; i < len(w); i++ {
			byLetter, ok := ix.byPos[i]
			if !ok {
				byLetter = make(map[byte]wordSet)
				ix.byPos[i] = byLetter
			}
			bucket, ok := byLetter[w[i]]
			if !ok {
				bucket = make(wordSet)
				byLetter[w[i]] = bucket
			}
			bucket[w] = struct{}{}
		}
	}

	return ix
}

// Len reports the number of distinct words in the index.
func (ix *Index) Len() int { return len(ix.words) }

// Contains reports whether word is part of the indexed dictionary.
func (ix *Index) Contains(word string) bool {
	_, ok := ix.words[word]
	return ok
}

// WordsAt returns every indexed word whose pos-th letter is letter,
// sorted lexicographically. A (pos, letter) pair that was never
// populated yields an empty slice, not an error.
// Complexity: O(k log k) for a bucket of k words.
func (ix *Index) WordsAt(pos int, letter byte) []string {
	bucket := ix.bucket(pos, letter)
	out := make([]string, 0, len(bucket))
	for w := range bucket {
		out = append(out, w)
	}
	sort.Strings(out)

	return out
}

// Similar returns every indexed word that agrees with word at all
// positions except possibly pos, excluding word itself — i.e. the words
// reachable by substituting exactly one letter at position pos.
//
// The result is the intersection, over every position j != pos, of the
// buckets at (j, word[j]). A single-letter word has no other positions,
// so the intersection is vacuous: the result is defined to be empty
// rather than "all words".
//
// Results are sorted lexicographically so that callers iterating them
// behave deterministically. Complexity: O(k·p) for the smallest bucket
// size k and word length p, plus the sort.
func (ix *Index) Similar(word string, pos int) []string {
	if len(word) <= 1 {
		return []string{}
	}

	// Gather the buckets for every position other than pos.
	buckets := make([]wordSet, 0, len(word)-1)
	for j := 0; j < len(word); j++ {
		if j == pos {
			continue
		}
		b := ix.bucket(j, word[j])
		if len(b) == 0 {
			return []string{}
		}
		buckets = append(buckets, b)
	}

	// Intersect starting from the smallest bucket; dictionary buckets
	// are typically small relative to the full word set.
	smallest := buckets[0]
	for _, b := range buckets[1:] {
		if len(b) < len(smallest) {
			smallest = b
		}
	}

	out := make([]string, 0, len(smallest))
candidates:
	for w := range smallest {
		if w == word {
			continue
		}
		for _, b := range buckets {
			if _, ok := b[w]; !ok {
				continue candidates
			}
		}
		out = append(out, w)
	}
	sort.Strings(out)

	return out
}

// bucket returns the raw set at (pos, letter); nil when unpopulated.
func (ix *Index) bucket(pos int, letter byte) wordSet {
	byLetter, ok := ix.byPos[pos]
	if !ok {
		return nil
	}

	return byLetter[letter]
}
