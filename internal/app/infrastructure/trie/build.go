package trie

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Build compiles a word table into an automaton. rows[0] is reserved so word
// ids start at 1, and symbols are stored lower-cased. Rows must be sorted
// ASCII-case-insensitively; an out-of-order row returns ErrUnsorted.
//
// Nodes are created column by column: every word contributes its j-th byte
// before any word contributes its (j+1)-th, and a node is only allocated when
// the word's prefix differs from the previous word's prefix.
func Build(rows [][]byte) (*Automaton, error) {
	for i := 2; i < len(rows); i++ {
		if compareFold(rows[i-1], rows[i]) > 0 {
			return nil, fmt.Errorf("build: %w: row %d %q sorts after row %d %q", ErrUnsorted, i-1, rows[i-1], i, rows[i])
		}
	}

	lens := Lengths(rows)

	total, width := RootSlots, 0
	for _, l := range lens {
		total += int(l)
		width = max(width, int(l))
	}
	if uint64(total) > math.MaxUint32 {
		return nil, fmt.Errorf("build: %d nodes exceed id space", total)
	}

	nodes := make([]Node, RootSlots, total)
	// reached[i] is the node word i reached at the column being processed.
	reached := make([]uint32, len(rows))

	for j := 0; j < width; j++ {
		for i := 1; i < len(rows); i++ {
			word := rows[i]
			if len(word) <= j {
				continue
			}

			if j == 0 {
				sym := Lower(word[0])
				if nodes[sym].Word == 0 {
					nodes[sym].Symbol = sym
					nodes[sym].Word = uint32(i)
				}
				reached[i] = uint32(sym)
				continue
			}

			if samePrefix(rows[i-1], word, j+1) {
				reached[i] = reached[i-1]
				continue
			}

			id := uint32(len(nodes))
			parent := reached[i]
			nodes = append(nodes, Node{
				Symbol: Lower(word[j]),
				Parent: parent,
				Word:   uint32(i),
			})
			if nodes[parent].FirstChild == 0 {
				nodes[parent].FirstChild = id
			}
			reached[i] = id
		}
	}

	a, err := New(slices.Clip(nodes), lens)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	return a, nil
}

// Lengths builds the word-length table, index = word id.
func Lengths(rows [][]byte) []uint32 {
	lens := make([]uint32, len(rows))
	for i, row := range rows {
		lens[i] = uint32(len(row))
	}
	return lens
}

// samePrefix compares the first n bytes of a and b ignoring ASCII case.
// A row shorter than n never matches, the way a NUL-padded row would not.
func samePrefix(a, b []byte, n int) bool {
	if len(a) < n || len(b) < n {
		return false
	}
	for k := 0; k < n; k++ {
		if Lower(a[k]) != Lower(b[k]) {
			return false
		}
	}
	return true
}

// compareFold orders a and b byte-wise ignoring ASCII case; a proper prefix
// sorts first.
func compareFold(a, b []byte) int {
	for k := 0; k < min(len(a), len(b)); k++ {
		if x, y := Lower(a[k]), Lower(b[k]); x != y {
			return cmp.Compare(x, y)
		}
	}
	return cmp.Compare(len(a), len(b))
}

func Lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func IsAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
