// Package ladder finds shortest word ladders: transformation sequences
// between two words where each step substitutes exactly one letter and
// every intermediate word belongs to the dictionary behind a
// wordidx.Index.
package ladder

import (
	"github.com/katalvlaran/dictdash/wordidx"
)

// cacheKey identifies one similar-word query against one index.
type cacheKey struct {
	word string
	pos  int
}

// Engine runs shortest-ladder searches against a single immutable
// index, memoizing similar-word queries across searches. The cache is
// scoped to the engine and therefore to exactly one index, so results
// from different dictionaries can never collide; entries never expire
// because the index never mutates.
//
// An Engine is not safe for concurrent use (the cache is written on
// read-through); run concurrent searches on separate Engines sharing
// the same index.
type Engine struct {
	idx   *wordidx.Index
	cache map[cacheKey][]string
}

// NewEngine binds a search engine to idx.
// Returns ErrIndexNil if idx is nil.
func NewEngine(idx *wordidx.Index) (*Engine, error) {
	if idx == nil {
		return nil, ErrIndexNil
	}

	return &Engine{
		idx:   idx,
		cache: make(map[cacheKey][]string),
	}, nil
}

// similar answers wordidx.Similar through the engine's cache.
func (e *Engine) similar(word string, pos int) []string {
	key := cacheKey{word: word, pos: pos}
	if hit, ok := e.cache[key]; ok {
		return hit
	}
	res := e.idx.Similar(word, pos)
	e.cache[key] = res

	return res
}

// node is one word reached during the search; parent indexes the node
// it was reached from within the arena, -1 for the root.
type node struct {
	word   string
	parent int
}

// searcher encapsulates mutable per-query state.
type searcher struct {
	eng      *Engine
	opts     Options
	arena    []node
	frontier []int // arena indices of the current layer
	used     map[string]struct{}
}

// Shortest finds a shortest ladder from start to end, applying any
// number of functional Options.
//
// Rounds of breadth-first expansion grow a tree of nodes from start;
// each round expands every frontier word into its one-substitution
// neighbors at every position, skipping words already incorporated
// into the tree. The first node produced whose word equals end wins and
// the search returns immediately, so the result is a shortest ladder
// (every word enters the tree at its true minimum distance). Among
// multiple equally short ladders, whichever the deterministic expansion
// order produces first is returned.
//
// start == end is a trivial zero-length ladder containing the single
// word once; it is returned without any expansion.
//
// Returns ErrOptionViolation for bad options, the context's error on
// cancellation, and *NoLadderError (matching ErrNoLadder) when the
// frontier is exhausted, or the round limit is reached, without
// producing end.
func (e *Engine) Shortest(start, end string, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Trivial ladder: nothing to expand.
	if start == end {
		return &Result{Words: []string{start}}, nil
	}

	s := &searcher{
		eng:      e,
		opts:     o,
		arena:    []node{{word: start, parent: -1}},
		frontier: []int{0},
		used:     map[string]struct{}{start: {}},
	}

	return s.run(start, end)
}

// run drives expansion rounds until the end word is produced, the
// frontier empties, or the round limit is hit.
func (s *searcher) run(start, end string) (*Result, error) {
	for depth := 1; ; depth++ {
		// cancellation check (once per round)
		select {
		case <-s.opts.Ctx.Done():
			return nil, s.opts.Ctx.Err()
		default:
		}

		if s.opts.MaxRounds > 0 && depth > s.opts.MaxRounds {
			return nil, &NoLadderError{Start: start, End: end}
		}

		next, found := s.expand(end)
		if found >= 0 {
			return s.retrace(found), nil
		}
		if len(next) == 0 {
			return nil, &NoLadderError{Start: start, End: end}
		}
		s.opts.OnLayer(depth, len(next))
		s.frontier = next
	}
}

// expand grows one layer. It returns the arena indices of the new layer
// and the arena index of the end word if it was produced (-1 otherwise),
// in which case expansion stops immediately, mid-layer.
func (s *searcher) expand(end string) (next []int, found int) {
	for _, fi := range s.frontier {
		word := s.arena[fi].word
		for pos := 0; pos < len(word); pos++ {
			for _, cand := range s.eng.similar(word, pos) {
				if _, seen := s.used[cand]; seen {
					// Any ladder re-deriving a used word is at least as
					// long as the one that used it first.
					continue
				}
				s.arena = append(s.arena, node{word: cand, parent: fi})
				if cand == end {
					return nil, len(s.arena) - 1
				}
				s.used[cand] = struct{}{}
				next = append(next, len(s.arena)-1)
			}
		}
	}

	return next, -1
}

// retrace walks parent links from the terminal node to the root and
// reverses, producing the start..end word sequence.
func (s *searcher) retrace(terminal int) *Result {
	words := []string{}
	for i := terminal; i >= 0; i = s.arena[i].parent {
		words = append(words, s.arena[i].word)
	}
	for i, j := 0, len(words)-1; i < j; i, j = i+1, j-1 {
		words[i], words[j] = words[j], words[i]
	}

	return &Result{Words: words}
}

// Shortest is a convenience wrapper running a single search on a
// throwaway Engine. Callers issuing many queries against the same
// index should hold an Engine instead, to reuse its query cache.
// Returns ErrIndexNil if idx is nil.
func Shortest(idx *wordidx.Index, start, end string, opts ...Option) (*Result, error) {
	e, err := NewEngine(idx)
	if err != nil {
		return nil, err
	}

	return e.Shortest(start, end, opts...)
}
