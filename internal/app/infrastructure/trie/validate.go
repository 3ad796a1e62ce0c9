package trie

import "fmt"

// Validate checks the layout the scanner depends on:
//   - there are at least RootSlots nodes and every root slot sits at its own byte;
//   - every allocated node has an initialized parent with a smaller id;
//   - children of one parent form a single run starting at the parent's FirstChild;
//   - symbols strictly increase within a run, so a byte has at most one child;
//   - word ids fall inside the length table.
func (a *Automaton) Validate() error {
	nodes := a.nodes
	if len(nodes) < RootSlots {
		return fmt.Errorf("%w: %d nodes, need at least %d root slots", ErrCorrupt, len(nodes), RootSlots)
	}

	for id, n := range nodes {
		if int(n.Word) >= len(a.lens) && n.Word != 0 {
			return fmt.Errorf("%w: node %d: word %d outside length table of %d", ErrCorrupt, id, n.Word, len(a.lens))
		}
		if n.FirstChild != 0 && (int(n.FirstChild) >= len(nodes) || int(n.FirstChild) <= id) {
			return fmt.Errorf("%w: node %d: first child %d out of range", ErrCorrupt, id, n.FirstChild)
		}

		if id < RootSlots {
			if n.Word != 0 && int(n.Symbol) != id {
				return fmt.Errorf("%w: root slot %d holds symbol %d", ErrCorrupt, id, n.Symbol)
			}
			continue
		}

		if n.Word == 0 {
			return fmt.Errorf("%w: node %d has no word", ErrCorrupt, id)
		}
		if int(n.Parent) >= id {
			return fmt.Errorf("%w: node %d: parent %d not allocated before it", ErrCorrupt, id, n.Parent)
		}
		parent := nodes[n.Parent]
		if n.Parent < RootSlots && parent.Word == 0 {
			return fmt.Errorf("%w: node %d: parent root slot %d is uninitialized", ErrCorrupt, id, n.Parent)
		}

		prev := nodes[id-1]
		switch {
		case parent.FirstChild == uint32(id):
		case prev.Parent == n.Parent && id-1 >= RootSlots:
			if prev.Symbol >= n.Symbol {
				return fmt.Errorf("%w: node %d: sibling symbols out of order (%q after %q)", ErrCorrupt, id, n.Symbol, prev.Symbol)
			}
		default:
			return fmt.Errorf("%w: node %d: sibling group of parent %d is not contiguous", ErrCorrupt, id, n.Parent)
		}
	}

	return nil
}
