// Package dash implements the Dictionary Dash problem wrapper around
// the ladder search core: parsing the line-oriented input protocol and
// running query batches.
package dash

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Sentinel errors for problem parsing.
var (
	// ErrBadCount indicates a count line that does not parse as an integer.
	ErrBadCount = errors.New("dash: malformed count line")

	// ErrTruncated indicates the input ended before the announced
	// number of words or pairs was read.
	ErrTruncated = errors.New("dash: input ended early")
)

// Pair is one (start, end) ladder query.
type Pair struct {
	Start, End string
}

// Problem is a parsed input: the dictionary plus the ordered queries.
// Pair order matters: output lines correlate with input order.
type Problem struct {
	Words []string
	Pairs []Pair
}

// Parse reads a problem from r in the fixed line protocol: a word
// count, that many dictionary words, a pair count, then that many
// start/end word pairs (two lines per pair). Surrounding whitespace on
// each line is trimmed.
//
// Only framing is validated (ErrBadCount, ErrTruncated); word content
// is taken as-is, per the well-formed-input assumption of the core.
func Parse(r io.Reader) (*Problem, error) {
	sc := bufio.NewScanner(r)

	numWords, err := readCount(sc, "word")
	if err != nil {
		return nil, err
	}
	words := make([]string, 0, numWords)
	for i := 0; i < numWords; i++ {
		w, err := readLine(sc)
		if err != nil {
			return nil, fmt.Errorf("%w: word %d of %d", err, i+1, numWords)
		}
		words = append(words, w)
	}

	numPairs, err := readCount(sc, "pair")
	if err != nil {
		return nil, err
	}
	pairs := make([]Pair, 0, numPairs)
	for i := 0; i < numPairs; i++ {
		start, err := readLine(sc)
		if err != nil {
			return nil, fmt.Errorf("%w: pair %d of %d", err, i+1, numPairs)
		}
		end, err := readLine(sc)
		if err != nil {
			return nil, fmt.Errorf("%w: pair %d of %d", err, i+1, numPairs)
		}
		pairs = append(pairs, Pair{Start: start, End: end})
	}

	return &Problem{Words: words, Pairs: pairs}, nil
}

// readLine returns the next trimmed line, or ErrTruncated (wrapping any
// underlying read error) at end of input.
func readLine(sc *bufio.Scanner) (string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("%w: %v", ErrTruncated, err)
		}
		return "", ErrTruncated
	}

	return strings.TrimSpace(sc.Text()), nil
}

// readCount reads one line and parses it as a non-negative integer.
func readCount(sc *bufio.Scanner, what string) (int, error) {
	line, err := readLine(sc)
	if err != nil {
		return 0, fmt.Errorf("%w: missing %s count", err, what)
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s count %q", ErrBadCount, what, line)
	}

	return n, nil
}
