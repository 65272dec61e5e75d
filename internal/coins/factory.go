package coins

import (
	"fmt"
	"sort"
	"sync"
)

// CounterFactory creates and looks up counters by name.
type CounterFactory interface {
	// Get returns the counter registered under name.
	Get(name string) (Counter, error)
	// MustGet is like Get but panics on unknown names.
	MustGet(name string) Counter
	// List returns the registered names in sorted order.
	List() []string
	// ForMode returns the counters of mode m, sorted by name.
	ForMode(m Mode) []Counter
	// Register adds c under name, failing on duplicates.
	Register(name string, c Counter) error
}

// DefaultFactory is the thread-safe CounterFactory used by the application.
type DefaultFactory struct {
	mu       sync.RWMutex
	counters map[string]Counter
}

// NewDefaultFactory returns a factory with the built-in counters registered.
func NewDefaultFactory() *DefaultFactory {
	f := &DefaultFactory{counters: make(map[string]Counter)}
	for _, core := range []coreCounter{DPCounter{}, MemoCounter{}, SuffixCounter{}, KnapsackCounter{}} {
		f.counters[core.Name()] = NewCounter(core)
	}
	return f
}

var (
	globalFactory     *DefaultFactory
	globalFactoryOnce sync.Once
)

// GlobalFactory returns the process-wide default factory.
func GlobalFactory() *DefaultFactory {
	globalFactoryOnce.Do(func() { globalFactory = NewDefaultFactory() })
	return globalFactory
}

// Get implements CounterFactory.
func (f *DefaultFactory) Get(name string) (Counter, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	c, ok := f.counters[name]
	if !ok {
		return nil, fmt.Errorf("unknown counter %q (available: %v)", name, f.listLocked())
	}
	return c, nil
}

// MustGet implements CounterFactory.
func (f *DefaultFactory) MustGet(name string) Counter {
	c, err := f.Get(name)
	if err != nil {
		panic(err)
	}
	return c
}

// List implements CounterFactory.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.listLocked()
}

func (f *DefaultFactory) listLocked() []string {
	names := make([]string, 0, len(f.counters))
	for name := range f.counters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ForMode implements CounterFactory.
func (f *DefaultFactory) ForMode(m Mode) []Counter {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []Counter
	for _, name := range f.listLocked() {
		if c := f.counters[name]; c.Mode() == m {
			out = append(out, c)
		}
	}
	return out
}

// Register implements CounterFactory.
func (f *DefaultFactory) Register(name string, c Counter) error {
	if name == "" || c == nil {
		return fmt.Errorf("counter name and implementation are required")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.counters[name]; exists {
		return fmt.Errorf("counter %q already registered", name)
	}
	f.counters[name] = c
	return nil
}

// DefaultCounterName is the counter used for m when none is requested.
func DefaultCounterName(m Mode) string {
	if m == ModeCombinations {
		return SuffixCounter{}.Name()
	}
	return DPCounter{}.Name()
}
