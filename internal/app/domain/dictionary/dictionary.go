package dictionary

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"wordscan/internal/app/infrastructure/trie"
)

var (
	ErrWordTooLong  = errors.New("word exceeds maximum length")
	ErrTooManyWords = errors.New("dictionary exceeds maximum word count")
	ErrUnsorted     = trie.ErrUnsorted
)

type Options struct {
	MaxWordLen int  // 0 means unlimited
	MaxWords   int  // 0 means unlimited
	Sort       bool // re-sort instead of rejecting unsorted input
}

// Dictionary is the word table: row 0 is reserved so that word ids are 1-based.
type Dictionary struct {
	rows [][]byte
}

// Parse reads one word per line. Carriage returns are dropped, blank lines are
// skipped and words are lower-cased (ASCII).
func Parse(data []byte, opts Options) (*Dictionary, error) {
	d := &Dictionary{rows: make([][]byte, 1, bytes.Count(data, []byte{'\n'})+2)}

	line := 0
	for len(data) > 0 {
		line++
		raw, rest, _ := bytes.Cut(data, []byte{'\n'})
		data = rest

		if err := d.add(raw, line, opts); err != nil {
			return nil, err
		}
	}

	d.finish(opts)
	return d, nil
}

func FromWords(words []string, opts Options) (*Dictionary, error) {
	d := &Dictionary{rows: make([][]byte, 1, len(words)+1)}
	for i, w := range words {
		if err := d.add([]byte(w), i+1, opts); err != nil {
			return nil, err
		}
	}

	d.finish(opts)
	return d, nil
}

func (d *Dictionary) add(raw []byte, line int, opts Options) error {
	word := make([]byte, 0, len(raw))
	for _, b := range raw {
		if b == '\r' {
			continue
		}
		word = append(word, trie.Lower(b))
	}
	if len(word) == 0 {
		return nil
	}

	if opts.MaxWordLen > 0 && len(word) > opts.MaxWordLen {
		return fmt.Errorf("line %d: %w: %d > %d", line, ErrWordTooLong, len(word), opts.MaxWordLen)
	}
	if opts.MaxWords > 0 && d.Len() >= opts.MaxWords {
		return fmt.Errorf("line %d: %w: limit %d", line, ErrTooManyWords, opts.MaxWords)
	}
	if !opts.Sort && d.Len() > 0 {
		if prev := d.rows[len(d.rows)-1]; bytes.Compare(prev, word) > 0 {
			return fmt.Errorf("line %d: %w: %q sorts before %q", line, ErrUnsorted, word, prev)
		}
	}

	d.rows = append(d.rows, word)
	return nil
}

func (d *Dictionary) finish(opts Options) {
	if opts.Sort {
		slices.SortStableFunc(d.rows[1:], bytes.Compare)
	}
}

// Len is the number of words, excluding the reserved row.
func (d *Dictionary) Len() int { return len(d.rows) - 1 }

// Rows exposes the word table including the reserved row 0.
func (d *Dictionary) Rows() [][]byte { return d.rows }

// Word returns the word with the given id, or "" when out of range.
func (d *Dictionary) Word(id uint32) string {
	if id == 0 || int(id) >= len(d.rows) {
		return ""
	}
	return string(d.rows[id])
}

func (d *Dictionary) Compile() (*trie.Automaton, error) {
	return trie.Build(d.rows)
}
