package dash

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/dictdash/ladder"
	"github.com/katalvlaran/dictdash/wordidx"
)

// NoLadderSentinel is the primary-channel value written for a pair with
// no ladder.
const NoLadderSentinel = -1

// Runner solves a parsed Problem against a single shared index and
// engine, writing per-pair results as they are produced.
//
// Out receives one line per pair: the ladder length in steps, or
// NoLadderSentinel. Diag receives the human-readable trace
// ("hot -> dot -> dog") or the failure notice for that pair.
type Runner struct {
	Out  io.Writer
	Diag io.Writer
	Log  *slog.Logger
}

// NewRunner returns a Runner wired to stdout/stderr with a no-op logger.
func NewRunner() *Runner {
	return &Runner{
		Out:  os.Stdout,
		Diag: os.Stderr,
		Log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Run builds the index once, then solves every pair in input order.
// A pair with no ladder is reported on both channels and does not abort
// the batch; failed reports whether any such pair occurred. Any other
// error stops the run.
func (r *Runner) Run(p *Problem) (failed bool, err error) {
	idx := wordidx.NewIndex(p.Words)
	eng, err := ladder.NewEngine(idx)
	if err != nil {
		return false, err
	}
	r.Log.Debug("index built", "words", idx.Len(), "pairs", len(p.Pairs))

	for _, pair := range p.Pairs {
		res, err := eng.Shortest(pair.Start, pair.End)
		if err != nil {
			if !errors.Is(err, ladder.ErrNoLadder) {
				return failed, err
			}
			failed = true
			r.Log.Debug("no ladder", "start", pair.Start, "end", pair.End)
			fmt.Fprintln(r.Out, NoLadderSentinel)
			fmt.Fprintln(r.Diag, err)
			continue
		}
		r.Log.Debug("ladder found", "start", pair.Start, "end", pair.End, "len", res.Len())
		fmt.Fprintln(r.Out, res.Len())
		fmt.Fprintln(r.Diag, strings.Join(res.Words, " -> "))
	}

	return failed, nil
}
