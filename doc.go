// Package dictdash solves the "Dictionary Dash" word-ladder problem:
// finding the shortest transformation sequence between two equal-length
// words, where each step changes exactly one letter and every
// intermediate word belongs to a fixed dictionary.
//
// The module is organized as small, focused packages:
//
//	wordidx/      — letter-position index: (position, letter) → word set,
//	                plus the similar-word (one-substitution) query
//	ladder/       — breadth-first shortest-ladder search engine with a
//	                per-index query cache and parent-link reconstruction
//	dash/         — the I/O wrapper: line-protocol parsing and batch
//	                running with the original output contract
//	cmd/dictdash/ — the CLI
//
// Data flows one way: word set → index → search engine → ladder (or a
// definitive no-ladder failure). The index is immutable once built and
// shared freely; per-query state lives and dies inside one search.
//
// Quick start:
//
//	idx := wordidx.NewIndex([]string{"cog", "dog", "dot", "hit", "hot", "log", "lot"})
//	res, err := ladder.Shortest(idx, "hot", "dog")
//	if err == nil {
//	    fmt.Println(res.Len(), res.Words) // 2 [hot dot dog]
//	}
package dictdash
