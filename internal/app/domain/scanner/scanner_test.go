package scanner

import (
	"bytes"
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
	"wordscan/internal/app/domain/dictionary"
	"wordscan/internal/app/infrastructure/trie"
)

func compile(t testing.TB, words ...string) *trie.Automaton {
	t.Helper()

	d, err := dictionary.FromWords(words, dictionary.Options{})
	require.NoError(t, err)
	a, err := d.Compile()
	require.NoError(t, err)
	return a
}

func collect(h Hits) map[int]Hit {
	out := make(map[int]Hit)
	for off, hit := range h.All() {
		out[off] = hit
	}
	return out
}

func TestScan(t *testing.T) {
	tests := []struct {
		name     string
		words    []string
		text     string
		expected map[int]Hit
	}{
		{
			name:  "ant and cat",
			words: []string{"and", "ant", "cat"},
			text:  "the ant can cat",
			expected: map[int]Hit{
				4:  {Word: 2, Len: 3},
				12: {Word: 3, Len: 3},
			},
		},
		{
			name:     "followed by a letter",
			words:    []string{"cat"},
			text:     "cats",
			expected: map[int]Hit{},
		},
		{
			name:  "followed by space, punctuation, digit and end",
			words: []string{"cat"},
			text:  "cat cat. cat1 cat",
			expected: map[int]Hit{
				0:  {Word: 1, Len: 3},
				4:  {Word: 1, Len: 3},
				9:  {Word: 1, Len: 3},
				14: {Word: 1, Len: 3},
			},
		},
		{
			name:  "case insensitive",
			words: []string{"cat"},
			text:  "CAT Cat cAt",
			expected: map[int]Hit{
				0: {Word: 1, Len: 3},
				4: {Word: 1, Len: 3},
				8: {Word: 1, Len: 3},
			},
		},
		{
			name:     "prefix word alone",
			words:    []string{"cat", "category"},
			text:     "cat ",
			expected: map[int]Hit{0: {Word: 1, Len: 3}},
		},
		{
			name:     "longer word only",
			words:    []string{"cat", "category"},
			text:     "category ",
			expected: map[int]Hit{0: {Word: 2, Len: 8}},
		},
		{
			name:     "partial longer word",
			words:    []string{"cat", "category"},
			text:     "categ",
			expected: map[int]Hit{},
		},
		{
			name:     "no match inside a word",
			words:    []string{"at", "cat"},
			text:     "bat concat",
			expected: map[int]Hit{},
		},
		{
			name:     "phrase beats its prefix",
			words:    []string{"new", "new york"},
			text:     "new york",
			expected: map[int]Hit{0: {Word: 2, Len: 8}},
		},
		{
			name:     "prefix kept when phrase breaks",
			words:    []string{"new", "new york"},
			text:     "new yorker",
			expected: map[int]Hit{0: {Word: 1, Len: 3}},
		},
		{
			name:  "single letter word",
			words: []string{"a", "an"},
			text:  "a an ax",
			expected: map[int]Hit{
				0: {Word: 1, Len: 1},
				2: {Word: 2, Len: 2},
			},
		},
		{
			name:     "duplicate entry reports first id",
			words:    []string{"cat", "cat"},
			text:     "cat",
			expected: map[int]Hit{0: {Word: 1, Len: 3}},
		},
		{
			name:     "empty text",
			words:    []string{"cat"},
			text:     "",
			expected: map[int]Hit{},
		},
		{
			name:     "empty dictionary",
			words:    []string{},
			text:     "cat dog",
			expected: map[int]Hit{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := compile(t, tt.words...)
			hits := Scan(a, []byte(tt.text))

			assert.Len(t, hits, len(tt.text))
			assert.Equal(t, tt.expected, collect(hits))
			assert.Equal(t, len(tt.expected), hits.Count())
		})
	}
}

func TestScan_RoundTrip(t *testing.T) {
	words := []string{"a", "an", "and", "ant", "anthem", "be", "bee", "beef", "cat", "category", "cats", "dog", "x"}
	separators := []string{" ", ",", "\n", "-", "1", ". "}
	a := compile(t, words...)

	var text strings.Builder
	offsets := make([]int, len(words))
	for i, w := range words {
		offsets[i] = text.Len()
		text.WriteString(w)
		text.WriteString(separators[i%len(separators)])
	}

	hits := Scan(a, []byte(text.String()))
	require.Equal(t, len(words), hits.Count())
	for i, w := range words {
		hit, ok := hits.At(offsets[i])
		require.True(t, ok, w)
		assert.Equal(t, Hit{Word: uint32(i + 1), Len: uint32(len(w))}, hit, w)
	}
}

func TestScan_NoFalsePositives(t *testing.T) {
	a := compile(t, "a", "an", "and", "ant", "anthem", "be", "bee", "beef", "cat", "category", "cats", "dog")
	hits := Scan(a, []byte("the quick brown fox; bean ants catty dogs, categories andy"))

	assert.Equal(t, map[int]Hit{}, collect(hits))
}

func TestScan_Deterministic(t *testing.T) {
	a := compile(t, "and", "ant", "cat")
	text := []byte("ant cat and ANT, cats; and")

	assert.Equal(t, Scan(a, text), Scan(a, text))
}

func TestHits_At(t *testing.T) {
	hits := Hits{{}, {Word: 3, Len: 2}, {}}

	_, ok := hits.At(0)
	assert.False(t, ok)
	_, ok = hits.At(-1)
	assert.False(t, ok)
	_, ok = hits.At(3)
	assert.False(t, ok)

	hit, ok := hits.At(1)
	require.True(t, ok)
	assert.Equal(t, Hit{Word: 3, Len: 2}, hit)
}

func TestHits_AllStopsEarly(t *testing.T) {
	hits := Hits{{Word: 1, Len: 1}, {}, {Word: 2, Len: 1}, {Word: 3, Len: 1}}

	var seen []int
	for off := range hits.All() {
		seen = append(seen, off)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []int{0, 2}, seen)
}

func TestScanContext_Canceled(t *testing.T) {
	a := compile(t, "cat")
	text := bytes.Repeat([]byte("cat "), checkEvery/2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	hits, err := ScanContext(ctx, a, text)
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, hits)
}

func TestScanContext_MatchesScanAcrossChecks(t *testing.T) {
	a := compile(t, "cat", "category")

	// "category" straddles the first check offset and "xcat" must still be
	// skipped as one token after it.
	text := append(bytes.Repeat([]byte(" "), checkEvery-3), "category xcat cat"...)

	hits, err := ScanContext(context.Background(), a, text)
	require.NoError(t, err)
	assert.Equal(t, Scan(a, text), hits)
	assert.Equal(t, map[int]Hit{
		checkEvery - 3:  {Word: 2, Len: 8},
		checkEvery + 11: {Word: 1, Len: 3},
	}, collect(hits))
}

func TestRun_Summary(t *testing.T) {
	a := compile(t, "and", "ant", "cat")
	text := []byte("the ant can cat")

	hits, sum, err := Run(context.Background(), a, text)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Hits)
	assert.Equal(t, len(text), sum.Chars)
	assert.Equal(t, hits.Count(), sum.Hits)
	assert.GreaterOrEqual(t, sum.Elapsed.Nanoseconds(), int64(0))
}

func BenchmarkScan(b *testing.B) {
	a := compile(b, "and", "ant", "anthem", "cat", "category", "cats", "dog", "dogma", "the", "zebra")
	text := bytes.Repeat([]byte("The zebra and the dog ate a category of cats, anthems and dogmas. "), 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Scan(a, text)
	}
}
