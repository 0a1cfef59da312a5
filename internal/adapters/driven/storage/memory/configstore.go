package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/custodia-labs/drivecaffeine/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interfaces.
var (
	_ driven.ConfigStore   = (*ConfigStore)(nil)
	_ driven.ConfigWatcher = (*ConfigStore)(nil)
)

// ConfigStore is an in-memory implementation of driven.ConfigStore for testing.
// Load notifies watchers, standing in for an edit to the file on disk.
type ConfigStore struct {
	mu       sync.RWMutex
	values   map[string]any
	watchers []chan struct{}
}

// NewConfigStore creates a new in-memory config store.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{
		values: make(map[string]any),
	}
}

// Get retrieves a configuration value by key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	return val, ok
}

// GetString retrieves a string configuration value.
func (s *ConfigStore) GetString(key string) string {
	val, _ := s.Get(key)
	str, _ := val.(string)
	return str
}

// GetInt retrieves an integer configuration value.
func (s *ConfigStore) GetInt(key string) int {
	val, _ := s.Get(key)
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

// GetBool retrieves a boolean configuration value.
func (s *ConfigStore) GetBool(key string) bool {
	val, _ := s.Get(key)
	b, _ := val.(bool)
	return b
}

// GetStringSlice retrieves a string slice configuration value.
// The returned slice is a copy.
func (s *ConfigStore) GetStringSlice(key string) []string {
	val, ok := s.Get(key)
	if !ok {
		return nil
	}
	switch v := val.(type) {
	case []string:
		return slices.Clone(v)
	case []any:
		result := make([]string, 0, len(v))
		for _, item := range v {
			if str, ok := item.(string); ok {
				result = append(result, str)
			}
		}
		return result
	default:
		return nil
	}
}

// Set stores a configuration value.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := value.([]string); ok {
		value = slices.Clone(v)
	}
	s.values[key] = value
	return nil
}

// Save persists the current configuration (no-op for memory store).
func (s *ConfigStore) Save() error {
	return nil
}

// Load signals every watcher that the configuration changed.
func (s *ConfigStore) Load() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ch := range s.watchers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
	return nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return ":memory:"
}

// Watch returns a channel signalled on every Load until ctx is done.
func (s *ConfigStore) Watch(ctx context.Context) (<-chan struct{}, error) {
	internal := make(chan struct{}, 1)
	out := make(chan struct{})

	s.mu.Lock()
	s.watchers = append(s.watchers, internal)
	s.mu.Unlock()

	go func() {
		defer close(out)
		defer s.unwatch(internal)
		for {
			select {
			case <-ctx.Done():
				return
			case <-internal:
				select {
				case out <- struct{}{}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

func (s *ConfigStore) unwatch(ch chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchers = slices.DeleteFunc(s.watchers, func(c chan struct{}) bool {
		return c == ch
	})
}
