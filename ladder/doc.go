// Package ladder provides shortest word-ladder search over a
// wordidx.Index, with memoized similar-word queries and parent-link
// path reconstruction.
//
// What
//
//   - A ladder is an ordered word sequence, start to end, each
//     consecutive pair differing in exactly one letter position, every
//     word drawn from the dictionary behind the index.
//   - Engine binds a query cache to one index; Engine.Shortest (or the
//     package-level Shortest convenience) returns a Result carrying the
//     full word sequence, or *NoLadderError when none exists.
//   - Functional options: WithContext (cancellation), WithMaxRounds
//     (bounded search depth), WithOnLayer (per-round observation hook).
//
// Why breadth-first with a global used-words set
//
//	Expansion proceeds in rounds: round k holds exactly the words at
//	minimum distance k from the start. A word, once incorporated, is
//	never re-added — any later derivation would be at least as long —
//	which both guarantees that the first node naming the end word lies
//	on a shortest ladder and bounds the search by dictionary size.
//
// Determinism
//
//	Similar-word results are sorted and the frontier is expanded in
//	creation order, so repeated searches over equivalent indexes yield
//	identical ladders, including the tie-break among equally short ones.
//	That tie-break is an artifact of expansion order, not a semantic
//	guarantee; rely on ladder length, not on which ladder is chosen.
//
// Special cases
//
//   - start == end returns a trivial zero-length ladder holding the one
//     word; no expansion runs.
//   - An end word absent from the dictionary is not pre-validated: the
//     search simply exhausts and reports *NoLadderError.
//
// Caching
//
//	Similar-word queries are pure functions of (word, position, index).
//	The Engine memoizes them for the lifetime of the engine, which is
//	bound to exactly one index, so results from different dictionaries
//	cannot collide and entries never need to expire. An Engine is not
//	safe for concurrent use; concurrent searches should use separate
//	Engines over the same (read-only) index.
//
// Complexity (N = dictionary size, p = word length)
//
//   - Time:   O(N·p) similar-word queries per search worst case, each
//     O(k·p) on bucket size k; every word enters the tree at most once.
//   - Memory: O(N) for the arena, frontier, and used set.
//
// Usage
//
//	idx := wordidx.NewIndex(words)
//	eng, err := ladder.NewEngine(idx)
//	if err != nil { ... }
//	res, err := eng.Shortest("hot", "dog")
//	switch {
//	case errors.Is(err, ladder.ErrNoLadder):
//	    // expected per-query outcome: report and continue
//	case err != nil:
//	    // ErrOptionViolation, context cancellation
//	default:
//	    fmt.Println(res.Len(), res.Words)
//	}
//
// Errors
//
//   - ErrIndexNil        if the index pointer is nil.
//   - ErrOptionViolation if an invalid Option is supplied (e.g. negative MaxRounds).
//   - *NoLadderError     (matches ErrNoLadder) when no ladder connects the pair.
//   - The context's error when cancelled via WithContext.
package ladder
