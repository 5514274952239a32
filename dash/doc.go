// Package dash is the I/O collaborator around the ladder search core:
// it parses the Dictionary Dash line protocol and runs query batches.
//
// Input protocol (one item per line, whitespace trimmed):
//
//	<word count>
//	<that many dictionary words>
//	<pair count>
//	<start word>
//	<end word>        (repeated per pair)
//
// Output contract, per pair, in input order:
//
//   - primary channel (Runner.Out): the ladder length in steps, or -1
//     when no ladder exists;
//   - diagnostic channel (Runner.Diag): the full trace
//     ("hit -> hot -> dot -> dog -> cog") or the failure notice.
//
// One unsolvable pair never aborts the batch; Run reports it via its
// failed return so callers can choose a nonzero exit. The dictionary is
// indexed once per Run and shared by every pair through one
// ladder.Engine, so repeated neighborhoods are served from its cache.
package dash
