package trie

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// On-disk layout, little-endian, matching a C struct {u8; u32; u32; u32}:
//
//	node record   (16 bytes): symbol u8, 3 zero bytes, parent u32, first_child u32, word u32
//	length record  (4 bytes): int32
const (
	NodeRecordSize   = 16
	LengthRecordSize = 4
)

// WriteNodes dumps the node array as fixed-size records.
func (a *Automaton) WriteNodes(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var rec [NodeRecordSize]byte
	var written int64

	for _, n := range a.nodes {
		rec[0] = n.Symbol
		binary.LittleEndian.PutUint32(rec[4:], n.Parent)
		binary.LittleEndian.PutUint32(rec[8:], n.FirstChild)
		binary.LittleEndian.PutUint32(rec[12:], n.Word)
		k, err := bw.Write(rec[:])
		written += int64(k)
		if err != nil {
			return written, err
		}
	}

	return written, bw.Flush()
}

// WriteLengths dumps the word-length table, one int32 per word id.
func (a *Automaton) WriteLengths(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var rec [LengthRecordSize]byte
	var written int64

	for _, l := range a.lens {
		binary.LittleEndian.PutUint32(rec[:], l)
		k, err := bw.Write(rec[:])
		written += int64(k)
		if err != nil {
			return written, err
		}
	}

	return written, bw.Flush()
}

func ReadNodes(r io.Reader) ([]Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read nodes: %w", err)
	}
	if len(data)%NodeRecordSize != 0 {
		return nil, fmt.Errorf("%w: node dump of %d bytes is not a multiple of %d", ErrMalformed, len(data), NodeRecordSize)
	}
	if len(data)/NodeRecordSize < RootSlots {
		return nil, fmt.Errorf("%w: node dump holds %d records, need at least %d", ErrMalformed, len(data)/NodeRecordSize, RootSlots)
	}

	nodes := make([]Node, len(data)/NodeRecordSize)
	for i := range nodes {
		rec := data[i*NodeRecordSize : (i+1)*NodeRecordSize]
		nodes[i] = Node{
			Symbol:     rec[0],
			Parent:     binary.LittleEndian.Uint32(rec[4:]),
			FirstChild: binary.LittleEndian.Uint32(rec[8:]),
			Word:       binary.LittleEndian.Uint32(rec[12:]),
		}
	}
	return nodes, nil
}

func ReadLengths(r io.Reader) ([]uint32, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read lengths: %w", err)
	}
	if len(data)%LengthRecordSize != 0 {
		return nil, fmt.Errorf("%w: length dump of %d bytes is not a multiple of %d", ErrMalformed, len(data), LengthRecordSize)
	}

	lens := make([]uint32, len(data)/LengthRecordSize)
	for i := range lens {
		v := int32(binary.LittleEndian.Uint32(data[i*LengthRecordSize:]))
		if v < 0 {
			return nil, fmt.Errorf("%w: word %d has length %d", ErrMalformed, i, v)
		}
		lens[i] = uint32(v)
	}
	return lens, nil
}

// Load rebuilds an automaton from the two dumps written by WriteNodes and
// WriteLengths.
func Load(nodesR, lensR io.Reader) (*Automaton, error) {
	nodes, err := ReadNodes(nodesR)
	if err != nil {
		return nil, err
	}
	lens, err := ReadLengths(lensR)
	if err != nil {
		return nil, err
	}

	a, err := New(nodes, lens)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	return a, nil
}
