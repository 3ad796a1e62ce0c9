package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"wordscan/internal/app/domain/scanner"
)

var header = []string{"txt_pos", "wd_id", "len", "word"}

func WriteSummary(w io.Writer, sum scanner.Summary) error {
	_, err := fmt.Fprintf(w, "%d chars\n%d hits\n%dms\n", sum.Chars, sum.Hits, sum.Elapsed.Milliseconds())
	return err
}

// WriteCSV lists every populated hit with the matched text sliced out of text.
func WriteCSV(w io.Writer, text []byte, hits scanner.Hits) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}

	for off, hit := range hits.All() {
		end := min(off+int(hit.Len), len(text))
		record := []string{
			strconv.Itoa(off),
			strconv.FormatUint(uint64(hit.Word), 10),
			strconv.FormatUint(uint64(hit.Len), 10),
			string(text[off:end]),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

type Match struct {
	Offset int    `json:"offset"`
	WordID uint32 `json:"word_id"`
	Len    uint32 `json:"len"`
	Word   string `json:"word"`
	Entry  string `json:"entry,omitempty"` // dictionary form, filled by callers holding the word table
}

// Matches is the JSON-friendly form of the hit table.
func Matches(text []byte, hits scanner.Hits) []Match {
	out := make([]Match, 0)
	for off, hit := range hits.All() {
		end := min(off+int(hit.Len), len(text))
		out = append(out, Match{
			Offset: off,
			WordID: hit.Word,
			Len:    hit.Len,
			Word:   string(text[off:end]),
		})
	}
	return out
}
