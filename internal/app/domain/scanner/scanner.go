package scanner

import (
	"context"
	"iter"
	"time"
	"wordscan/internal/app/infrastructure/trie"
)

// checkEvery is how many text bytes ScanContext consumes between ctx checks.
const checkEvery = 64 << 10

type Hit struct {
	Word uint32
	Len  uint32
}

// Hits is the hit table: one entry per text offset, the zero Hit means no match.
type Hits []Hit

func (h Hits) At(offset int) (Hit, bool) {
	if offset < 0 || offset >= len(h) || h[offset].Word == 0 {
		return Hit{}, false
	}
	return h[offset], true
}

func (h Hits) Count() int {
	var n int
	for _, hit := range h {
		if hit.Word != 0 {
			n++
		}
	}
	return n
}

// All yields populated entries in offset order.
func (h Hits) All() iter.Seq2[int, Hit] {
	return func(yield func(int, Hit) bool) {
		for off, hit := range h {
			if hit.Word == 0 {
				continue
			}
			if !yield(off, hit) {
				return
			}
		}
	}
}

type Summary struct {
	Chars   int
	Hits    int
	Elapsed time.Duration
}

// Scan finds every whole-word dictionary occurrence in text. The automaton is
// only read, so concurrent scans may share it.
func Scan(a *trie.Automaton, text []byte) Hits {
	hits := make(Hits, len(text))
	scanRange(a, text, 0, len(text), hits)
	return hits
}

// ScanContext is Scan that gives up once ctx is done. ctx is checked every
// checkEvery bytes.
func ScanContext(ctx context.Context, a *trie.Automaton, text []byte) (Hits, error) {
	hits := make(Hits, len(text))
	for pos := 0; pos < len(text); {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		pos = scanRange(a, text, pos, min(pos+checkEvery, len(text)), hits)
	}
	return hits, nil
}

// Run scans text and reports what it found and how long it took.
func Run(ctx context.Context, a *trie.Automaton, text []byte) (Hits, Summary, error) {
	start := time.Now()
	hits, err := ScanContext(ctx, a, text)
	if err != nil {
		return nil, Summary{}, err
	}

	return hits, Summary{
		Chars:   len(text),
		Hits:    hits.Count(),
		Elapsed: time.Since(start),
	}, nil
}

// scanRange processes tokens starting before limit and returns where the
// next token begins, which may lie past limit.
func scanRange(a *trie.Automaton, text []byte, pos, limit int, hits Hits) int {
	for pos < limit {
		b := trie.Lower(text[pos])
		if _, ok := a.Root(b); !ok {
			// No word starts here; a letter drags the rest of its token with it
			// so matches only ever begin on a word boundary.
			pos++
			if trie.IsAlpha(b) {
				pos = skipAlpha(text, pos)
			}
			continue
		}

		pos = descend(a, text, pos, hits)
		pos = skipAlpha(text, pos)
	}

	return pos
}

// descend walks the automaton from the root slot at text[start] and returns
// the offset of the first byte it could not consume.
func descend(a *trie.Automaton, text []byte, start int, hits Hits) int {
	node := uint32(trie.Lower(text[start]))
	pos, depth := start, 1

	for {
		if atBoundary(text, pos+1) {
			if word, ok := a.Terminal(node); ok {
				hits[start] = Hit{Word: word, Len: uint32(depth)}
			}
		}

		pos++
		depth++
		if pos >= len(text) {
			return pos
		}

		next, ok := a.Child(node, trie.Lower(text[pos]))
		if !ok {
			return pos
		}
		node = next
	}
}

func atBoundary(text []byte, pos int) bool {
	return pos >= len(text) || !trie.IsAlpha(text[pos])
}

func skipAlpha(text []byte, pos int) int {
	for pos < len(text) && trie.IsAlpha(text[pos]) {
		pos++
	}
	return pos
}
