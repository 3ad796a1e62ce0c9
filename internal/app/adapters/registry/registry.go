package registry

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"github.com/prometheus/client_golang/prometheus"
	"slices"
	"time"
	"wordscan/internal/app/adapters/metrics"
	"wordscan/internal/app/domain/dictionary"
	"wordscan/internal/app/infrastructure/config"
	"wordscan/internal/app/infrastructure/storage"
	"wordscan/internal/app/ports"
	"wordscan/pkg/logger"
)

var ErrUnknownDictionary = errors.New("unknown dictionary")

// Registry compiles the dictionaries named in the config on first use and
// keeps the automata in an access-expiring cache.
type Registry struct {
	log     logger.Logger
	manager *config.Manager
	files   ports.FilesPort
	cache   ports.CachePort[*ports.DictionaryEntry]
}

func New(log logger.Logger, manager *config.Manager, files ports.FilesPort) *Registry {
	cfg := manager.Get()
	r := &Registry{
		log:     log,
		manager: manager,
		files:   files,
	}
	r.cache = storage.NewCache[*ports.DictionaryEntry](cfg.Cache.Capacity, cfg.Cache.TTL, func(name string, _ *ports.DictionaryEntry) {
		r.log.Debug("Dictionary evicted", "dictionary", name)
		metrics.AutomatonNodes.DeleteLabelValues(name)
		metrics.CachedAutomata.Set(float64(r.cache.Len()))
	})

	return r
}

func (r *Registry) Get(ctx context.Context, name string) (*ports.DictionaryEntry, error) {
	if _, ok := r.manager.Get().Dictionaries[name]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDictionary, name)
	}
	return r.cache.GetOrLoad(ctx, name, r.load)
}

func (r *Registry) load(_ context.Context, name string) (*ports.DictionaryEntry, error) {
	cfg := r.manager.Get()
	path, ok := cfg.Dictionaries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDictionary, name)
	}

	start := time.Now()
	d, err := r.files.LoadDictionary(path, dictionary.Options{
		MaxWordLen: cfg.Limits.MaxWordLen,
		MaxWords:   cfg.Limits.MaxWords,
		Sort:       cfg.Limits.Sort,
	})
	if err != nil {
		r.log.Error("Failed to load dictionary", err, "dictionary", name)
		return nil, err
	}

	a, err := d.Compile()
	if err != nil {
		r.log.Error("Failed to compile dictionary", err, "dictionary", name)
		return nil, fmt.Errorf("compile %s: %w", name, err)
	}
	elapsed := time.Since(start)

	metrics.AutomataBuilt.With(prometheus.Labels{"source": "dictionary"}).Inc()
	metrics.BuildDuration.Observe(elapsed.Seconds())
	metrics.AutomatonNodes.With(prometheus.Labels{"dictionary": name}).Set(float64(a.NumNodes()))
	metrics.CachedAutomata.Set(float64(r.cache.Len() + 1))
	r.log.Info("Dictionary compiled", "dictionary", name, "words", d.Len(), "nodes", a.NumNodes(), "elapsed", elapsed)

	return &ports.DictionaryEntry{
		Name:       name,
		Dictionary: d,
		Automaton:  a,
		LoadedAt:   time.Now(),
	}, nil
}

func (r *Registry) List() []ports.DictionaryStatus {
	cfg := r.manager.Get()
	out := make([]ports.DictionaryStatus, 0, len(cfg.Dictionaries))
	for name, path := range cfg.Dictionaries {
		out = append(out, r.status(name, path))
	}
	slices.SortFunc(out, func(a, b ports.DictionaryStatus) int {
		return cmp.Compare(a.Name, b.Name)
	})

	return out
}

// Put points name at path in the config and compiles it right away. When the
// new dictionary does not compile the previous mapping is restored.
func (r *Registry) Put(ctx context.Context, name, path string) (ports.DictionaryStatus, error) {
	prev, existed := r.manager.Get().Dictionaries[name]
	if err := r.manager.Update(func(cfg *config.Config) {
		cfg.Dictionaries[name] = path
	}); err != nil {
		return ports.DictionaryStatus{}, fmt.Errorf("update config: %w", err)
	}
	r.Invalidate(name)

	if _, err := r.Get(ctx, name); err != nil {
		if rerr := r.manager.Update(func(cfg *config.Config) {
			if existed {
				cfg.Dictionaries[name] = prev
			} else {
				delete(cfg.Dictionaries, name)
			}
		}); rerr != nil {
			r.log.Error("Failed to restore dictionary mapping", rerr, "dictionary", name)
		}
		return ports.DictionaryStatus{}, err
	}

	r.log.Info("Dictionary set", "dictionary", name, "path", path, "replaced", existed)
	return r.status(name, path), nil
}

func (r *Registry) Remove(name string) error {
	if _, ok := r.manager.Get().Dictionaries[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownDictionary, name)
	}

	if err := r.manager.Update(func(cfg *config.Config) {
		delete(cfg.Dictionaries, name)
	}); err != nil {
		return fmt.Errorf("update config: %w", err)
	}
	r.Invalidate(name)

	r.log.Info("Dictionary removed", "dictionary", name)
	return nil
}

// Invalidate drops the compiled automaton; the next Get recompiles it.
func (r *Registry) Invalidate(name string) {
	r.cache.ClearKey(name)
}

func (r *Registry) status(name, path string) ports.DictionaryStatus {
	st := ports.DictionaryStatus{Name: name, Path: path}
	if e, ok := r.cache.Get(name); ok {
		loadedAt := e.LoadedAt
		st.Loaded = true
		st.Words = e.Dictionary.Len()
		st.Nodes = e.Automaton.NumNodes()
		st.LoadedAt = &loadedAt
	}
	return st
}
