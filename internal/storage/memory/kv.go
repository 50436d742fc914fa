package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/vladislavdragonenkov/bakeshop/internal/domain"
)

// kvInMemory — простая in-memory реализация KeyValueStore.
type kvInMemory struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewKeyValueStore возвращает in-memory хранилище для локальной разработки и тестов.
func NewKeyValueStore() domain.KeyValueStore {
	return &kvInMemory{
		items: make(map[string]string),
	}
}

// Get возвращает значение по ключу или found=false, если его нет.
func (s *kvInMemory) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.items[key]
	return value, ok, nil
}

// Set безусловно перезаписывает значение по ключу.
func (s *kvInMemory) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = value
	return nil
}

// List возвращает отсортированные ключи с заданным префиксом.
func (s *kvInMemory) List(_ context.Context, prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.items))
	for key := range s.items {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

var _ domain.KeyValueStore = (*kvInMemory)(nil)
