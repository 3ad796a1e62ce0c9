package ports

import (
	"context"
	"time"
	"wordscan/internal/app/domain/dictionary"
	"wordscan/internal/app/infrastructure/trie"
)

type DictionaryEntry struct {
	Name       string
	Dictionary *dictionary.Dictionary
	Automaton  *trie.Automaton
	LoadedAt   time.Time
}

type DictionaryStatus struct {
	Name     string     `json:"name"`
	Path     string     `json:"path"`
	Loaded   bool       `json:"loaded"`
	Words    int        `json:"words,omitempty"`
	Nodes    int        `json:"nodes,omitempty"`
	LoadedAt *time.Time `json:"loaded_at,omitempty"`
}

type RegistryPort interface {
	Get(ctx context.Context, name string) (*DictionaryEntry, error)
	List() []DictionaryStatus
	Put(ctx context.Context, name, path string) (DictionaryStatus, error)
	Remove(name string) error
}
