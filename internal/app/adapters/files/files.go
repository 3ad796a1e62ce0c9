package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"wordscan/internal/app/domain/dictionary"
	"wordscan/internal/app/infrastructure/trie"
	"wordscan/pkg/logger"
)

type Files struct {
	log logger.Logger
}

func New(log logger.Logger) *Files {
	return &Files{log: log}
}

func (f *Files) LoadDictionary(path string, opts dictionary.Options) (*dictionary.Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}

	d, err := dictionary.Parse(data, opts)
	if err != nil {
		return nil, fmt.Errorf("parse dictionary %s: %w", path, err)
	}

	f.log.Debug("Dictionary loaded", "path", path, "bytes", len(data), "words", d.Len())
	return d, nil
}

// LoadText reads the whole file. No sentinel byte is appended: the scanner
// treats the end of the buffer as a word boundary.
func (f *Files) LoadText(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read text: %w", err)
	}

	f.log.Debug("Text loaded", "path", path, "bytes", len(data))
	return data, nil
}

// SaveAutomaton writes the node and length dumps. Each file is written to a
// temporary name first so a failed run never leaves half a dump behind.
func (f *Files) SaveAutomaton(a *trie.Automaton, nodesPath, lensPath string) error {
	if err := writeAtomic(nodesPath, func(w *os.File) error {
		_, err := a.WriteNodes(w)
		return err
	}); err != nil {
		return fmt.Errorf("save nodes: %w", err)
	}

	if err := writeAtomic(lensPath, func(w *os.File) error {
		_, err := a.WriteLengths(w)
		return err
	}); err != nil {
		return fmt.Errorf("save lengths: %w", err)
	}

	f.log.Info("Automaton saved", "nodes", nodesPath, "lengths", lensPath, "node_count", a.NumNodes(), "words", a.NumWords())
	return nil
}

func (f *Files) LoadAutomaton(nodesPath, lensPath string) (*trie.Automaton, error) {
	nodes, err := os.Open(nodesPath)
	if err != nil {
		return nil, fmt.Errorf("open nodes: %w", err)
	}
	defer nodes.Close()

	lens, err := os.Open(lensPath)
	if err != nil {
		return nil, fmt.Errorf("open lengths: %w", err)
	}
	defer lens.Close()

	a, err := trie.Load(nodes, lens)
	if err != nil {
		return nil, fmt.Errorf("load %s, %s: %w", nodesPath, lensPath, err)
	}

	f.log.Debug("Automaton loaded", "nodes", nodesPath, "node_count", a.NumNodes(), "words", a.NumWords())
	return a, nil
}

func writeAtomic(path string, write func(w *os.File) error) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.tmp-%d", filepath.Base(path), time.Now().UnixNano()))

	file, err := os.Create(tmp)
	if err != nil {
		return err
	}

	werr := write(file)
	cerr := file.Close()
	if err := errors.Join(werr, cerr); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}
