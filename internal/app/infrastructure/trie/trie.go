package trie

import "errors"

// RootSlots is the number of direct-indexed root nodes, one per byte value.
const RootSlots = 256

var (
	ErrMalformed = errors.New("malformed automaton dump")
	ErrCorrupt   = errors.New("automaton invariant violated")
	ErrUnsorted  = errors.New("word table is not sorted")
)

// Node is one automaton state. Root slots are addressed by the byte itself,
// allocated nodes start at RootSlots. Zero in Parent/FirstChild/Word means absent.
type Node struct {
	Symbol     byte
	Parent     uint32
	FirstChild uint32
	Word       uint32
}

type State uint8

const (
	Uninitialized State = iota
	Interior
	WordEnd
)

func (s State) String() string {
	switch s {
	case Interior:
		return "interior"
	case WordEnd:
		return "word_end"
	}
	return "uninitialized"
}

// Automaton is the compiled dictionary: the node array, the word-length table
// and the per-node state derived from both. It is read-only once built.
type Automaton struct {
	nodes  []Node
	lens   []uint32
	states []State
}

// New wraps a node array and length table, derives node states and checks the
// structural invariants the scanner relies on.
func New(nodes []Node, lens []uint32) (*Automaton, error) {
	a := &Automaton{nodes: nodes, lens: lens}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	a.states = a.deriveStates()
	return a, nil
}

func (a *Automaton) Nodes() []Node     { return a.nodes }
func (a *Automaton) Lengths() []uint32 { return a.lens }
func (a *Automaton) NumNodes() int     { return len(a.nodes) }

// NumWords excludes the reserved row 0.
func (a *Automaton) NumWords() int {
	if len(a.lens) == 0 {
		return 0
	}
	return len(a.lens) - 1
}

func (a *Automaton) Node(id uint32) Node { return a.nodes[id] }

// Root returns the root slot for b and whether any word starts with b.
func (a *Automaton) Root(b byte) (Node, bool) {
	n := a.nodes[b]
	return n, n.Word != 0
}

func (a *Automaton) State(id uint32) State { return a.states[id] }

// Terminal reports the word that ends exactly at node id, if any.
func (a *Automaton) Terminal(id uint32) (uint32, bool) {
	if a.states[id] != WordEnd {
		return 0, false
	}
	return a.nodes[id].Word, true
}

// WordLen returns the length of word id, or 0 when id is out of range.
func (a *Automaton) WordLen(id uint32) int {
	if int(id) >= len(a.lens) {
		return 0
	}
	return int(a.lens[id])
}

// Child finds the child of parent labelled sym by walking its sibling group.
func (a *Automaton) Child(parent uint32, sym byte) (uint32, bool) {
	for id := a.nodes[parent].FirstChild; id != 0 && int(id) < len(a.nodes); id++ {
		n := a.nodes[id]
		if n.Parent != parent {
			break
		}
		if n.Symbol == sym {
			return id, true
		}
	}
	return 0, false
}

// deriveStates relies on parents being allocated before their children.
func (a *Automaton) deriveStates() []State {
	states := make([]State, len(a.nodes))
	depth := make([]uint32, len(a.nodes))

	for id := range a.nodes {
		n := a.nodes[id]
		if id < RootSlots {
			if n.Word == 0 {
				continue
			}
			depth[id] = 1
		} else {
			depth[id] = depth[n.Parent] + 1
		}

		states[id] = Interior
		if n.Word != 0 && a.WordLen(n.Word) == int(depth[id]) {
			states[id] = WordEnd
		}
	}

	return states
}
