package ports

import (
	"wordscan/internal/app/domain/dictionary"
	"wordscan/internal/app/infrastructure/trie"
)

type FilesPort interface {
	LoadDictionary(path string, opts dictionary.Options) (*dictionary.Dictionary, error)
	LoadText(path string) ([]byte, error)
	SaveAutomaton(a *trie.Automaton, nodesPath, lensPath string) error
	LoadAutomaton(nodesPath, lensPath string) (*trie.Automaton, error)
}
